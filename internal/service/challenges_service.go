package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/iAndrei22/DisciplineBuddy/internal/error_values"
	"github.com/iAndrei22/DisciplineBuddy/internal/repository"
	"github.com/iAndrei22/DisciplineBuddy/pkg/entity"
)

const defaultChallengeDuration = 7

var challengeCategories = []string{
	"Fitness & Health",
	"Mindfulness & Meditation",
	"Productivity",
	"Learning & Education",
	"Finance & Savings",
	"Social & Relationships",
	"Creativity",
	"Career & Professional",
	"Habits & Routines",
	"Wellness & Self-Care",
}

const defaultCategory = "Habits & Routines"

type ChallengesService struct {
	repo        repository.ChallengesRepositoryI
	tasksRepo   repository.TasksRepositoryI
	usersRepo   repository.UsersRepositoryI
	progression ProgressionServiceI
	now         func() time.Time
}

func NewChallengesService(
	challengesRepo repository.ChallengesRepositoryI,
	tasksRepo repository.TasksRepositoryI,
	usersRepo repository.UsersRepositoryI,
	progression ProgressionServiceI,
) *ChallengesService {
	if challengesRepo == nil || tasksRepo == nil || usersRepo == nil || progression == nil {
		log.Fatal("on challenges service provided nil dependencies")
	}
	return &ChallengesService{
		repo:        challengesRepo,
		tasksRepo:   tasksRepo,
		usersRepo:   usersRepo,
		progression: progression,
		now:         time.Now,
	}
}

func (serv *ChallengesService) CreateChallenge(ctx context.Context, creatorID uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	category := req.Category
	if category == "" {
		category = defaultCategory
	}
	if !slices.Contains(challengeCategories, category) {
		return nil, errorvalues.ErrUnknownCategory
	}
	duration := req.DurationDays
	if duration == 0 {
		duration = defaultChallengeDuration
	}
	c := entity.Challenge{
		Title:        req.Title,
		Description:  req.Description,
		DurationDays: duration,
		Category:     category,
		CreatedBy:    creatorID,
	}
	id, err := serv.repo.Create(ctx, &c)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	// Template tasks carry no owner; enrollment stamps copies per user
	for _, tmpl := range req.Tasks {
		points := tmpl.Points
		if points == 0 {
			points = defaultTaskPoints
		}
		_, err = serv.tasksRepo.Create(ctx, &entity.Task{
			ChallengeID: &id,
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Points:      points,
		})
		if err != nil {
			return nil, errors.New("tasks repository error: " + err.Error())
		}
	}
	return serv.repo.GetByID(ctx, id)
}

func (serv *ChallengesService) ListChallenges(ctx context.Context, pagination PaginationOpts) ([]*entity.Challenge, error) {
	challenges, err := serv.repo.List(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return challenges, nil
}

func (serv *ChallengesService) DeleteChallenge(ctx context.Context, challengeID, userID uuid.UUID) error {
	challenge, err := serv.repo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	if challenge.CreatedBy != userID {
		return errorvalues.ErrWrongOwner
	}
	err = serv.repo.Delete(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	return nil
}

func (serv *ChallengesService) Enroll(ctx context.Context, challengeID, userID uuid.UUID) error {
	challenge, err := serv.repo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	err = serv.repo.AddParticipant(ctx, challenge.ID, userID, serv.now())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDuplicateEnrollment):
			return err
		case errors.Is(err, errorvalues.ErrChallengeNotFound):
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	templates, err := serv.tasksRepo.GetTemplatesByChallenge(ctx, challengeID)
	if err != nil {
		return errors.New("tasks repository error: " + err.Error())
	}
	for _, tmpl := range templates {
		_, err = serv.tasksRepo.Create(ctx, &entity.Task{
			UserID:      &userID,
			ChallengeID: &challengeID,
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Points:      tmpl.Points,
		})
		if err != nil {
			return errors.New("tasks repository error: " + err.Error())
		}
	}
	return nil
}

func (serv *ChallengesService) GetParticipants(ctx context.Context, challengeID uuid.UUID) ([]entity.Participant, error) {
	_, err := serv.repo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	participants, err := serv.repo.GetParticipants(ctx, challengeID)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return participants, nil
}

func (serv *ChallengesService) GetTemplateTasks(ctx context.Context, challengeID uuid.UUID) ([]*entity.Task, error) {
	_, err := serv.repo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	templates, err := serv.tasksRepo.GetTemplatesByChallenge(ctx, challengeID)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return templates, nil
}

func (serv *ChallengesService) Categories() []string {
	return slices.Clone(challengeCategories)
}

// SyncParticipantStatus re-derives the participation status from the user's
// task copies. Idempotent: an unchanged status performs no writes and no
// level or badge recomputation.
func (serv *ChallengesService) SyncParticipantStatus(ctx context.Context, userID, challengeID uuid.UUID) error {
	tasks, err := serv.tasksRepo.GetByUserAndChallenge(ctx, userID, challengeID)
	if err != nil {
		return errors.New("tasks repository error: " + err.Error())
	}
	if len(tasks) == 0 {
		return nil
	}
	allCompleted := true
	for _, t := range tasks {
		if !t.IsCompleted {
			allCompleted = false
			break
		}
	}
	participant, err := serv.repo.GetParticipant(ctx, challengeID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParticipantNotFound) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	newStatus := entity.StatusInProgress
	if allCompleted {
		newStatus = entity.StatusCompleted
	}
	if participant.Status == newStatus {
		return nil
	}
	var completedAt *time.Time
	var delta int
	if newStatus == entity.StatusCompleted {
		now := serv.now()
		completedAt = &now
		delta = 1
	} else {
		// Reverting: completion timestamp is cleared, counter floored at 0
		delta = -1
	}
	err = serv.repo.UpdateParticipantStatus(ctx, challengeID, userID, newStatus, completedAt)
	if err != nil {
		if errors.Is(err, errorvalues.ErrParticipantNotFound) {
			return err
		}
		return errors.New("challenges repository error: " + err.Error())
	}
	err = serv.usersRepo.AdjustCompletedChallenges(ctx, userID, delta)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	// Status actually flipped; rerun the derived-state pipeline, best-effort
	if _, err := serv.progression.UpdateUserLevel(ctx, userID); err != nil {
		slog.Error("level update after challenge transition failed",
			slog.String("uid", userID.String()),
			slog.String("error", err.Error()),
		)
	}
	if _, err := serv.progression.CheckAndAssignBadges(ctx, userID); err != nil {
		slog.Error("badge check after challenge transition failed",
			slog.String("uid", userID.String()),
			slog.String("error", err.Error()),
		)
	}
	return nil
}
