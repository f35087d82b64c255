package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/iAndrei22/DisciplineBuddy/internal/error_values"
	"github.com/iAndrei22/DisciplineBuddy/internal/repository/mocks"
	"github.com/iAndrei22/DisciplineBuddy/internal/service"
	svcmocks "github.com/iAndrei22/DisciplineBuddy/internal/service/mocks"
	"github.com/iAndrei22/DisciplineBuddy/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type tasksServiceMocks struct {
	tasksRepo   *mocks.MockTasksRepositoryI
	progression *svcmocks.MockProgressionServiceI
	challenges  *svcmocks.MockChallengeSyncI
}

func newTasksService(t *testing.T) (*service.TasksService, tasksServiceMocks) {
	ctrl := gomock.NewController(t)
	deps := tasksServiceMocks{
		tasksRepo:   mocks.NewMockTasksRepositoryI(ctrl),
		progression: svcmocks.NewMockProgressionServiceI(ctrl),
		challenges:  svcmocks.NewMockChallengeSyncI(ctrl),
	}
	return service.NewTasksService(deps.tasksRepo, deps.progression, deps.challenges), deps
}

func personalTask(taskID, userID uuid.UUID, completed bool) *entity.Task {
	t := &entity.Task{
		ID:          taskID,
		UserID:      &userID,
		Title:       "morning run",
		Description: "5km before work",
		Points:      20,
		IsCompleted: completed,
	}
	if completed {
		now := time.Now()
		t.CompletedAt = &now
	}
	return t
}

func TestCreateTask(t *testing.T) {
	serv, deps := newTasksService(t)
	userID := uuid.New()
	taskID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		created := personalTask(taskID, userID, false)
		deps.tasksRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(taskID, nil)
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(created, nil)
		task, err := serv.CreateTask(ctx, userID, &service.CreateTaskRequest{
			Title:       "morning run",
			Description: "5km before work",
			Points:      20,
		})
		assert.NoError(t, err)
		assert.Equal(t, created, task)
	})
	t.Run("zero points fall back to the default", func(t *testing.T) {
		deps.tasksRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *entity.Task) (uuid.UUID, error) {
				assert.Equal(t, 10, task.Points)
				return taskID, nil
			})
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, false), nil)
		_, err := serv.CreateTask(ctx, userID, &service.CreateTaskRequest{
			Title:       "morning run",
			Description: "5km before work",
		})
		assert.NoError(t, err)
	})
	t.Run("validation error", func(t *testing.T) {
		_, err := serv.CreateTask(ctx, userID, &service.CreateTaskRequest{
			Title: "",
		})
		assert.Error(t, err)
	})
	t.Run("owner not found", func(t *testing.T) {
		deps.tasksRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrUserNotFound)
		_, err := serv.CreateTask(ctx, userID, &service.CreateTaskRequest{
			Title:       "morning run",
			Description: "5km before work",
			Points:      20,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestToggleTaskCompletion(t *testing.T) {
	serv, deps := newTasksService(t)
	userID := uuid.New()
	taskID := uuid.New()
	ctx := context.Background()
	t.Run("completing runs the pipeline", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, false), nil)
		deps.tasksRepo.EXPECT().SetCompletion(gomock.Any(), taskID, true, gomock.Any()).Return(nil)
		deps.progression.EXPECT().RecalculateScore(gomock.Any(), userID).Return(20, nil)
		deps.progression.EXPECT().CheckAndAssignBadges(gomock.Any(), userID).Return(nil, nil)
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, true), nil)
		task, err := serv.ToggleTaskCompletion(ctx, taskID, userID, true)
		assert.NoError(t, err)
		assert.True(t, task.IsCompleted)
	})
	t.Run("reverting clears completed_at and skips badges", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, true), nil)
		deps.tasksRepo.EXPECT().SetCompletion(gomock.Any(), taskID, false, gomock.Nil()).Return(nil)
		deps.progression.EXPECT().RecalculateScore(gomock.Any(), userID).Return(0, nil)
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, false), nil)
		task, err := serv.ToggleTaskCompletion(ctx, taskID, userID, false)
		assert.NoError(t, err)
		assert.False(t, task.IsCompleted)
		assert.Nil(t, task.CompletedAt)
	})
	t.Run("repeat completion is a no-op", func(t *testing.T) {
		completed := personalTask(taskID, userID, true)
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(completed, nil)
		task, err := serv.ToggleTaskCompletion(ctx, taskID, userID, true)
		assert.NoError(t, err)
		assert.Equal(t, completed, task)
	})
	t.Run("pipeline failure does not undo the toggle", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, false), nil)
		deps.tasksRepo.EXPECT().SetCompletion(gomock.Any(), taskID, true, gomock.Any()).Return(nil)
		deps.progression.EXPECT().RecalculateScore(gomock.Any(), userID).Return(0, errors.New("db error"))
		deps.progression.EXPECT().CheckAndAssignBadges(gomock.Any(), userID).Return(nil, errors.New("db error"))
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, true), nil)
		task, err := serv.ToggleTaskCompletion(ctx, taskID, userID, true)
		assert.NoError(t, err)
		assert.True(t, task.IsCompleted)
	})
	t.Run("challenge copy triggers participation sync", func(t *testing.T) {
		challengeID := uuid.New()
		linked := personalTask(taskID, userID, false)
		linked.ChallengeID = &challengeID
		done := personalTask(taskID, userID, true)
		done.ChallengeID = &challengeID
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(linked, nil)
		deps.tasksRepo.EXPECT().SetCompletion(gomock.Any(), taskID, true, gomock.Any()).Return(nil)
		deps.progression.EXPECT().RecalculateScore(gomock.Any(), userID).Return(20, nil)
		deps.progression.EXPECT().CheckAndAssignBadges(gomock.Any(), userID).Return(nil, nil)
		deps.challenges.EXPECT().SyncParticipantStatus(gomock.Any(), userID, challengeID).Return(nil)
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(done, nil)
		task, err := serv.ToggleTaskCompletion(ctx, taskID, userID, true)
		assert.NoError(t, err)
		assert.True(t, task.IsCompleted)
	})
	t.Run("wrong owner", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, uuid.New(), false), nil)
		_, err := serv.ToggleTaskCompletion(ctx, taskID, userID, true)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("task not found", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(nil, errorvalues.ErrTaskNotFound)
		_, err := serv.ToggleTaskCompletion(ctx, taskID, userID, true)
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
}

func TestEditTask(t *testing.T) {
	serv, deps := newTasksService(t)
	userID := uuid.New()
	taskID := uuid.New()
	ctx := context.Background()
	t.Run("success triggers reconciliation", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, true), nil)
		deps.tasksRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		deps.progression.EXPECT().RecalculateScore(gomock.Any(), userID).Return(30, nil)
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, true), nil)
		_, err := serv.EditTask(ctx, taskID, userID, &service.EditTaskRequest{
			Title:       "evening run",
			Description: "5km after work",
			Points:      30,
		})
		assert.NoError(t, err)
	})
	t.Run("wrong owner", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, uuid.New(), false), nil)
		_, err := serv.EditTask(ctx, taskID, userID, &service.EditTaskRequest{
			Title:       "evening run",
			Description: "5km after work",
			Points:      30,
		})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("validation error", func(t *testing.T) {
		_, err := serv.EditTask(ctx, taskID, userID, &service.EditTaskRequest{})
		assert.Error(t, err)
	})
}

func TestDeleteTask(t *testing.T) {
	serv, deps := newTasksService(t)
	userID := uuid.New()
	taskID := uuid.New()
	ctx := context.Background()
	t.Run("deleting a completed task reconciles the score", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, true), nil)
		deps.tasksRepo.EXPECT().Delete(gomock.Any(), taskID).Return(nil)
		deps.progression.EXPECT().RecalculateScore(gomock.Any(), userID).Return(0, nil)
		err := serv.DeleteTask(ctx, taskID, userID)
		assert.NoError(t, err)
	})
	t.Run("deleting an incomplete task skips reconciliation", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(personalTask(taskID, userID, false), nil)
		deps.tasksRepo.EXPECT().Delete(gomock.Any(), taskID).Return(nil)
		err := serv.DeleteTask(ctx, taskID, userID)
		assert.NoError(t, err)
	})
	t.Run("deleting a challenge copy resyncs participation", func(t *testing.T) {
		challengeID := uuid.New()
		linked := personalTask(taskID, userID, false)
		linked.ChallengeID = &challengeID
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(linked, nil)
		deps.tasksRepo.EXPECT().Delete(gomock.Any(), taskID).Return(nil)
		deps.challenges.EXPECT().SyncParticipantStatus(gomock.Any(), userID, challengeID).Return(nil)
		err := serv.DeleteTask(ctx, taskID, userID)
		assert.NoError(t, err)
	})
	t.Run("task not found", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(nil, errorvalues.ErrTaskNotFound)
		err := serv.DeleteTask(ctx, taskID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrTaskNotFound)
	})
}
