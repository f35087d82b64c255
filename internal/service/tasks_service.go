package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/iAndrei22/DisciplineBuddy/internal/error_values"
	"github.com/iAndrei22/DisciplineBuddy/internal/repository"
	"github.com/iAndrei22/DisciplineBuddy/pkg/entity"
)

const defaultTaskPoints = 10

type TasksService struct {
	repo        repository.TasksRepositoryI
	progression ProgressionServiceI
	challenges  ChallengeSyncI
	now         func() time.Time
}

func NewTasksService(tasksRepo repository.TasksRepositoryI, progression ProgressionServiceI, challenges ChallengeSyncI) *TasksService {
	if tasksRepo == nil || progression == nil || challenges == nil {
		log.Fatal("on tasks service provided nil dependencies")
	}
	return &TasksService{
		repo:        tasksRepo,
		progression: progression,
		challenges:  challenges,
		now:         time.Now,
	}
}

func (serv *TasksService) CreateTask(ctx context.Context, uid uuid.UUID, req *CreateTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	points := req.Points
	if points == 0 {
		points = defaultTaskPoints
	}
	t := entity.Task{
		UserID:      &uid,
		Title:       req.Title,
		Description: req.Description,
		Points:      points,
	}
	id, err := serv.repo.Create(ctx, &t)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	// Created incomplete, so no score recomputation is due yet
	task, err := serv.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return task, nil
}

func (serv *TasksService) GetUserTasks(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Task, error) {
	tasks, err := serv.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	return tasks, nil
}

func (serv *TasksService) EditTask(ctx context.Context, taskID, userID uuid.UUID, req *EditTaskRequest) (*entity.Task, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	task, err := serv.ownedTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	task.Title = req.Title
	task.Description = req.Description
	task.Points = req.Points
	err = serv.repo.Update(ctx, task)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	// Points may have changed on a completed task
	serv.reconcile(ctx, userID)
	return serv.repo.GetByID(ctx, taskID)
}

func (serv *TasksService) ToggleTaskCompletion(ctx context.Context, taskID, userID uuid.UUID, completed bool) (*entity.Task, error) {
	task, err := serv.ownedTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}
	if task.IsCompleted == completed {
		// No actual transition, no side effects
		return task, nil
	}
	var completedAt *time.Time
	if completed {
		now := serv.now()
		completedAt = &now
	}
	// Reverting clears completedAt so the streak date set stays exact
	err = serv.repo.SetCompletion(ctx, taskID, completed, completedAt)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}

	// The toggle is committed; everything below is best-effort recomputation
	serv.reconcile(ctx, userID)
	if completed {
		if _, err := serv.progression.CheckAndAssignBadges(ctx, userID); err != nil {
			slog.Error("badge check after completion failed",
				slog.String("uid", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	if task.ChallengeID != nil {
		if err := serv.challenges.SyncParticipantStatus(ctx, userID, *task.ChallengeID); err != nil {
			slog.Error("challenge status sync failed",
				slog.String("uid", userID.String()),
				slog.String("challenge_id", task.ChallengeID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return serv.repo.GetByID(ctx, taskID)
}

func (serv *TasksService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	task, err := serv.ownedTask(ctx, taskID, userID)
	if err != nil {
		return err
	}
	err = serv.repo.Delete(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return err
		}
		return errors.New("tasks repository error: " + err.Error())
	}
	// A deleted completed task changes the score
	if task.IsCompleted {
		serv.reconcile(ctx, userID)
	}
	if task.ChallengeID != nil {
		if err := serv.challenges.SyncParticipantStatus(ctx, userID, *task.ChallengeID); err != nil {
			slog.Error("challenge status sync failed",
				slog.String("uid", userID.String()),
				slog.String("challenge_id", task.ChallengeID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return nil
}

func (serv *TasksService) ownedTask(ctx context.Context, taskID, userID uuid.UUID) (*entity.Task, error) {
	task, err := serv.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrTaskNotFound) {
			return nil, err
		}
		return nil, errors.New("tasks repository error: " + err.Error())
	}
	if task.UserID == nil || *task.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return task, nil
}

// reconcile reruns the score pipeline after a committed mutation. Failures
// are logged and skipped; the next triggering event recomputes from scratch.
func (serv *TasksService) reconcile(ctx context.Context, userID uuid.UUID) {
	if _, err := serv.progression.RecalculateScore(ctx, userID); err != nil {
		slog.Error("score reconciliation failed",
			slog.String("uid", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func validateStruct(req any) error {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	return nil
}
