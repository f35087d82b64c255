package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/iAndrei22/DisciplineBuddy/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateTaskRequest struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"required,min=1,max=2000"`
	Points      int    `validate:"gte=0,lte=1000"`
}

type EditTaskRequest struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"required,min=1,max=2000"`
	Points      int    `validate:"gte=0,lte=1000"`
}

type TaskTemplate struct {
	Title       string `validate:"required,min=1,max=200"`
	Description string `validate:"required,min=1,max=2000"`
	Points      int    `validate:"gte=0,lte=1000"`
}

type CreateChallengeRequest struct {
	Title        string         `validate:"required,min=1,max=200"`
	Description  string         `validate:"max=2000"`
	DurationDays int            `validate:"gte=0,lte=365"`
	Category     string         `validate:"max=100"`
	Tasks        []TaskTemplate `validate:"required,min=1,dive"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, runs login tracking and the level
	// pipeline (best-effort) and gives back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type TasksServiceI interface {
	CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error)
	GetUserTasks(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Task, error)
	EditTask(ctx context.Context, taskID, userID uuid.UUID, req *EditTaskRequest) (*entity.Task, error)
	// Flips completion state. The primary mutation commits even when the
	// downstream recomputation pipeline fails.
	ToggleTaskCompletion(ctx context.Context, taskID, userID uuid.UUID, completed bool) (*entity.Task, error)
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
}

type ChallengesServiceI interface {
	CreateChallenge(ctx context.Context, creatorID uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error)
	ListChallenges(ctx context.Context, pagination PaginationOpts) ([]*entity.Challenge, error)
	DeleteChallenge(ctx context.Context, challengeID, userID uuid.UUID) error
	// Enrolls user and copies the challenge's template tasks to them
	Enroll(ctx context.Context, challengeID, userID uuid.UUID) error
	GetParticipants(ctx context.Context, challengeID uuid.UUID) ([]entity.Participant, error)
	GetTemplateTasks(ctx context.Context, challengeID uuid.UUID) ([]*entity.Task, error)
	Categories() []string
	ChallengeSyncI
}

// ChallengeSyncI is the narrow surface the task pipeline needs to keep
// participation status consistent after a task-copy toggle.
type ChallengeSyncI interface {
	SyncParticipantStatus(ctx context.Context, userID, challengeID uuid.UUID) error
}

type ProgressionServiceI interface {
	// Recomputes score from the authoritative completed-task set, persists it
	// and runs the level pipeline. Never applies deltas.
	RecalculateScore(ctx context.Context, userID uuid.UUID) (int, error)
	// Derives xp, level and the weighted breakdown without mutating state
	CalculateUserLevel(ctx context.Context, userID uuid.UUID) (*entity.LevelInfo, error)
	// CalculateUserLevel plus persistence; refreshing last_activity here is
	// what resets the decay clock. Badge check fires iff level changed.
	UpdateUserLevel(ctx context.Context, userID uuid.UUID) (*entity.LevelInfo, error)
	// Incremental login-streak update; same-day repeats are no-ops
	UpdateLoginTracking(ctx context.Context, userID uuid.UUID) (*entity.LoginStats, error)
	// Idempotent, append-only badge assignment. Returns newly earned ids
	CheckAndAssignBadges(ctx context.Context, userID uuid.UUID) ([]string, error)
	ComputeCurrentStreak(ctx context.Context, userID uuid.UUID) (int, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error)
	DecayStatus(ctx context.Context, userID uuid.UUID) (*entity.DecayStatus, error)
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}
