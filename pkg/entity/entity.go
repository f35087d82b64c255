package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                  uuid.UUID
	Name                string
	PasswordHash        string
	Score               int
	XP                  int
	Level               int
	TotalLogins         int
	LoginStreak         int
	LastLogin           *time.Time
	LastActivity        time.Time
	CompletedChallenges int
	Badges              []string
}

type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"uid,omitempty"`
	ChallengeID *uuid.UUID `json:"challenge_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	Points      int        `json:"points"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ParticipantStatus string

const (
	StatusInProgress ParticipantStatus = "in-progress"
	StatusCompleted  ParticipantStatus = "completed"
)

type Challenge struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"desc"`
	DurationDays int       `json:"duration_days"`
	Category     string    `json:"category"`
	CreatedBy    uuid.UUID `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
}

type Participant struct {
	ChallengeID uuid.UUID         `json:"challenge_id"`
	UserID      uuid.UUID         `json:"uid"`
	Status      ParticipantStatus `json:"status"`
	EnrolledAt  time.Time         `json:"enrolled_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
}

// XPBreakdown holds the weighted sub-totals a user's XP is built from.
type XPBreakdown struct {
	TaskXP           int `json:"task_xp"`
	StreakXP         int `json:"streak_xp"`
	LoginXP          int `json:"login_xp"`
	DecayXP          int `json:"decay_xp"`
	TotalBeforeDecay int `json:"total_before_decay"`
}

type LevelInfo struct {
	XP                int         `json:"xp"`
	Level             int         `json:"level"`
	XPForCurrentLevel int         `json:"xp_for_current_level"`
	XPForNextLevel    int         `json:"xp_for_next_level"`
	Breakdown         XPBreakdown `json:"breakdown"`
}

type UserStats struct {
	UserID        uuid.UUID  `json:"uid"`
	Name          string     `json:"name"`
	Level         int        `json:"level"`
	XP            int        `json:"xp"`
	Score         int        `json:"score"`
	CurrentStreak int        `json:"streak"`
	LoginStreak   int        `json:"login_streak"`
	TotalLogins   int        `json:"total_logins"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	LastActivity  time.Time  `json:"last_activity"`
	Badges        []string   `json:"badges"`
}

type LoginStats struct {
	LoginStreak int `json:"login_streak"`
	TotalLogins int `json:"total_logins"`
}

type DecayStatus struct {
	Status       string `json:"status"`
	DaysInactive int    `json:"days_inactive"`
	DecayXP      int    `json:"decay_xp"`
	CurrentXP    int    `json:"current_xp"`
	CurrentLevel int    `json:"current_level"`
}

type LeaderboardEntry struct {
	Rank  int       `json:"rank"`
	ID    uuid.UUID `json:"uid"`
	Name  string    `json:"name"`
	XP    int       `json:"xp"`
	Level int       `json:"level"`
	Score int       `json:"score"`
}
