package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/iAndrei22/DisciplineBuddy/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database with all counters zeroed
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Persists recomputed raw score
	UpdateScore(ctx context.Context, uid uuid.UUID, score int) error
	// Persists derived xp and level, refreshes last_activity
	UpdateProgress(ctx context.Context, uid uuid.UUID, xp, level int, lastActivity time.Time) error
	// Persists login tracking counters after a counted (not same-day) login
	UpdateLoginStats(ctx context.Context, uid uuid.UUID, lastLogin time.Time, loginStreak, totalLogins int) error
	// Appends badge ids to the user's badge set
	AddBadges(ctx context.Context, uid uuid.UUID, badgeIDs []string) error
	// Adjusts completed challenges counter by delta, floored at zero
	AdjustCompletedChallenges(ctx context.Context, uid uuid.UUID, delta int) error
	// Provides top users ordered by xp for the leaderboard
	TopByXP(ctx context.Context, limit int) ([]*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type TasksRepositoryI interface {
	// Creates new task. UserID nil means challenge template task
	Create(ctx context.Context, task *entity.Task) (uuid.UUID, error)
	// Searches task with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	// Lists tasks owned by user with uid, newest first. Requires pagination params
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Task, error)
	// Lists user's task copies under a challenge
	GetByUserAndChallenge(ctx context.Context, uid, challengeID uuid.UUID) ([]*entity.Task, error)
	// Lists template tasks of a challenge (rows without owner)
	GetTemplatesByChallenge(ctx context.Context, challengeID uuid.UUID) ([]*entity.Task, error)
	// Updates title, description and points by ID
	Update(ctx context.Context, task *entity.Task) error
	// Flips completion flag; completedAt is set on completion, cleared on revert
	SetCompletion(ctx context.Context, id uuid.UUID, completed bool, completedAt *time.Time) error
	// Deletes task with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Sums points over the user's completed tasks (authoritative score source)
	SumCompletedPoints(ctx context.Context, uid uuid.UUID) (int, error)
	// Counts the user's completed tasks
	CountCompleted(ctx context.Context, uid uuid.UUID) (int, error)
	// Provides distinct UTC calendar dates with at least one completion
	GetCompletionDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
	// Reports whether any completed task finished before 08:00
	HasEarlyCompletion(ctx context.Context, uid uuid.UUID) (bool, error)
}

type ChallengesRepositoryI interface {
	// Creates new challenge
	Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error)
	// Searches challenge with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists challenges, newest first. Requires pagination params
	List(ctx context.Context, limit, offset int) ([]*entity.Challenge, error)
	// Deletes challenge with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Enrolls user; duplicate enrollment is a unique violation
	AddParticipant(ctx context.Context, challengeID, uid uuid.UUID, enrolledAt time.Time) error
	// Provides a single enrollment record
	GetParticipant(ctx context.Context, challengeID, uid uuid.UUID) (*entity.Participant, error)
	// Lists all enrollments of a challenge
	GetParticipants(ctx context.Context, challengeID uuid.UUID) ([]entity.Participant, error)
	// Persists participant status transition
	UpdateParticipantStatus(ctx context.Context, challengeID, uid uuid.UUID, status entity.ParticipantStatus, completedAt *time.Time) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
