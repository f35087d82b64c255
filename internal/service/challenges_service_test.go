package service_test

import (
	"context"
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

type challengesServiceMocks struct {
	challengesRepo *mocks.MockChallengesRepositoryI
	tasksRepo      *mocks.MockTasksRepositoryI
	usersRepo      *mocks.MockUsersRepositoryI
	progression    *svcmocks.MockProgressionServiceI
}

func newChallengesService(t *testing.T) (*service.ChallengesService, challengesServiceMocks) {
	ctrl := gomock.NewController(t)
	deps := challengesServiceMocks{
		challengesRepo: mocks.NewMockChallengesRepositoryI(ctrl),
		tasksRepo:      mocks.NewMockTasksRepositoryI(ctrl),
		usersRepo:      mocks.NewMockUsersRepositoryI(ctrl),
		progression:    svcmocks.NewMockProgressionServiceI(ctrl),
	}
	serv := service.NewChallengesService(deps.challengesRepo, deps.tasksRepo, deps.usersRepo, deps.progression)
	return serv, deps
}

func challengeCopies(userID, challengeID uuid.UUID, completions ...bool) []*entity.Task {
	tasks := make([]*entity.Task, 0, len(completions))
	for _, done := range completions {
		t := &entity.Task{
			ID:          uuid.New(),
			UserID:      &userID,
			ChallengeID: &challengeID,
			Title:       "challenge task",
			Points:      10,
			IsCompleted: done,
		}
		if done {
			now := time.Now()
			t.CompletedAt = &now
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func TestCreateChallenge(t *testing.T) {
	serv, deps := newChallengesService(t)
	creatorID := uuid.New()
	challengeID := uuid.New()
	ctx := context.Background()
	stored := &entity.Challenge{
		ID:           challengeID,
		Title:        "7 days of running",
		Description:  "run every day",
		DurationDays: 7,
		Category:     "Fitness & Health",
		CreatedBy:    creatorID,
	}
	t.Run("success with template tasks", func(t *testing.T) {
		deps.challengesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(challengeID, nil)
		deps.tasksRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *entity.Task) (uuid.UUID, error) {
				assert.Nil(t, task.UserID)
				assert.Equal(t, challengeID, *task.ChallengeID)
				return uuid.New(), nil
			}).Times(2)
		deps.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(stored, nil)
		challenge, err := serv.CreateChallenge(ctx, creatorID, &service.CreateChallengeRequest{
			Title:        "7 days of running",
			Description:  "run every day",
			DurationDays: 7,
			Category:     "Fitness & Health",
			Tasks: []service.TaskTemplate{
				{Title: "run 5km", Description: "any pace", Points: 15},
				{Title: "stretch", Description: "10 minutes", Points: 5},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, stored, challenge)
	})
	t.Run("defaults applied", func(t *testing.T) {
		deps.challengesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *entity.Challenge) (uuid.UUID, error) {
				assert.Equal(t, "Habits & Routines", c.Category)
				assert.Equal(t, 7, c.DurationDays)
				return challengeID, nil
			})
		deps.tasksRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *entity.Task) (uuid.UUID, error) {
				assert.Equal(t, 10, task.Points)
				return uuid.New(), nil
			})
		deps.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(stored, nil)
		_, err := serv.CreateChallenge(ctx, creatorID, &service.CreateChallengeRequest{
			Title: "7 days of running",
			Tasks: []service.TaskTemplate{
				{Title: "run 5km", Description: "any pace"},
			},
		})
		assert.NoError(t, err)
	})
	t.Run("unknown category", func(t *testing.T) {
		_, err := serv.CreateChallenge(ctx, creatorID, &service.CreateChallengeRequest{
			Title:    "7 days of running",
			Category: "Underwater Basket Weaving",
			Tasks: []service.TaskTemplate{
				{Title: "run 5km", Description: "any pace"},
			},
		})
		assert.ErrorIs(t, err, errorvalues.ErrUnknownCategory)
	})
	t.Run("validation error without tasks", func(t *testing.T) {
		_, err := serv.CreateChallenge(ctx, creatorID, &service.CreateChallengeRequest{
			Title: "7 days of running",
		})
		assert.Error(t, err)
	})
}

func TestDeleteChallenge(t *testing.T) {
	serv, deps := newChallengesService(t)
	creatorID := uuid.New()
	challengeID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		deps.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{
			ID:        challengeID,
			CreatedBy: creatorID,
		}, nil)
		deps.challengesRepo.EXPECT().Delete(gomock.Any(), challengeID).Return(nil)
		err := serv.DeleteChallenge(ctx, challengeID, creatorID)
		assert.NoError(t, err)
	})
	t.Run("wrong owner", func(t *testing.T) {
		deps.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(&entity.Challenge{
			ID:        challengeID,
			CreatedBy: uuid.New(),
		}, nil)
		err := serv.DeleteChallenge(ctx, challengeID, creatorID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("not found", func(t *testing.T) {
		deps.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(nil, errorvalues.ErrChallengeNotFound)
		err := serv.DeleteChallenge(ctx, challengeID, creatorID)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
}

func TestEnroll(t *testing.T) {
	serv, deps := newChallengesService(t)
	userID := uuid.New()
	challengeID := uuid.New()
	ctx := context.Background()
	challenge := &entity.Challenge{ID: challengeID, Title: "7 days of running"}
	templates := []*entity.Task{
		{ID: uuid.New(), ChallengeID: &challengeID, Title: "run 5km", Description: "any pace", Points: 15},
		{ID: uuid.New(), ChallengeID: &challengeID, Title: "stretch", Description: "10 minutes", Points: 5},
	}
	t.Run("success copies templates to the user", func(t *testing.T) {
		deps.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(challenge, nil)
		deps.challengesRepo.EXPECT().AddParticipant(gomock.Any(), challengeID, userID, gomock.Any()).Return(nil)
		deps.tasksRepo.EXPECT().GetTemplatesByChallenge(gomock.Any(), challengeID).Return(templates, nil)
		deps.tasksRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task *entity.Task) (uuid.UUID, error) {
				assert.Equal(t, userID, *task.UserID)
				assert.Equal(t, challengeID, *task.ChallengeID)
				return uuid.New(), nil
			}).Times(2)
		err := serv.Enroll(ctx, challengeID, userID)
		assert.NoError(t, err)
	})
	t.Run("duplicate enrollment", func(t *testing.T) {
		deps.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(challenge, nil)
		deps.challengesRepo.EXPECT().AddParticipant(gomock.Any(), challengeID, userID, gomock.Any()).
			Return(errorvalues.ErrDuplicateEnrollment)
		err := serv.Enroll(ctx, challengeID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrDuplicateEnrollment)
	})
	t.Run("challenge not found", func(t *testing.T) {
		deps.challengesRepo.EXPECT().GetByID(gomock.Any(), challengeID).Return(nil, errorvalues.ErrChallengeNotFound)
		err := serv.Enroll(ctx, challengeID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
	})
}

func TestSyncParticipantStatus(t *testing.T) {
	serv, deps := newChallengesService(t)
	userID := uuid.New()
	challengeID := uuid.New()
	ctx := context.Background()
	t.Run("last completion flips the participant to completed", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByUserAndChallenge(gomock.Any(), userID, challengeID).
			Return(challengeCopies(userID, challengeID, true, true, true), nil)
		deps.challengesRepo.EXPECT().GetParticipant(gomock.Any(), challengeID, userID).Return(&entity.Participant{
			ChallengeID: challengeID,
			UserID:      userID,
			Status:      entity.StatusInProgress,
		}, nil)
		deps.challengesRepo.EXPECT().
			UpdateParticipantStatus(gomock.Any(), challengeID, userID, entity.StatusCompleted, gomock.Not(gomock.Nil())).
			Return(nil)
		deps.usersRepo.EXPECT().AdjustCompletedChallenges(gomock.Any(), userID, 1).Return(nil)
		deps.progression.EXPECT().UpdateUserLevel(gomock.Any(), userID).Return(&entity.LevelInfo{}, nil)
		deps.progression.EXPECT().CheckAndAssignBadges(gomock.Any(), userID).Return(nil, nil)
		err := serv.SyncParticipantStatus(ctx, userID, challengeID)
		assert.NoError(t, err)
	})
	t.Run("reverting a copy moves the participant back", func(t *testing.T) {
		now := time.Now()
		deps.tasksRepo.EXPECT().GetByUserAndChallenge(gomock.Any(), userID, challengeID).
			Return(challengeCopies(userID, challengeID, true, false, true), nil)
		deps.challengesRepo.EXPECT().GetParticipant(gomock.Any(), challengeID, userID).Return(&entity.Participant{
			ChallengeID: challengeID,
			UserID:      userID,
			Status:      entity.StatusCompleted,
			CompletedAt: &now,
		}, nil)
		deps.challengesRepo.EXPECT().
			UpdateParticipantStatus(gomock.Any(), challengeID, userID, entity.StatusInProgress, gomock.Nil()).
			Return(nil)
		deps.usersRepo.EXPECT().AdjustCompletedChallenges(gomock.Any(), userID, -1).Return(nil)
		deps.progression.EXPECT().UpdateUserLevel(gomock.Any(), userID).Return(&entity.LevelInfo{}, nil)
		deps.progression.EXPECT().CheckAndAssignBadges(gomock.Any(), userID).Return(nil, nil)
		err := serv.SyncParticipantStatus(ctx, userID, challengeID)
		assert.NoError(t, err)
	})
	t.Run("unchanged completed status performs no writes", func(t *testing.T) {
		now := time.Now()
		deps.tasksRepo.EXPECT().GetByUserAndChallenge(gomock.Any(), userID, challengeID).
			Return(challengeCopies(userID, challengeID, true, true), nil)
		deps.challengesRepo.EXPECT().GetParticipant(gomock.Any(), challengeID, userID).Return(&entity.Participant{
			ChallengeID: challengeID,
			UserID:      userID,
			Status:      entity.StatusCompleted,
			CompletedAt: &now,
		}, nil)
		err := serv.SyncParticipantStatus(ctx, userID, challengeID)
		assert.NoError(t, err)
	})
	t.Run("unchanged in-progress status performs no writes", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByUserAndChallenge(gomock.Any(), userID, challengeID).
			Return(challengeCopies(userID, challengeID, true, false), nil)
		deps.challengesRepo.EXPECT().GetParticipant(gomock.Any(), challengeID, userID).Return(&entity.Participant{
			ChallengeID: challengeID,
			UserID:      userID,
			Status:      entity.StatusInProgress,
		}, nil)
		err := serv.SyncParticipantStatus(ctx, userID, challengeID)
		assert.NoError(t, err)
	})
	t.Run("no copies means nothing to sync", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByUserAndChallenge(gomock.Any(), userID, challengeID).Return(nil, nil)
		err := serv.SyncParticipantStatus(ctx, userID, challengeID)
		assert.NoError(t, err)
	})
	t.Run("participant not found", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByUserAndChallenge(gomock.Any(), userID, challengeID).
			Return(challengeCopies(userID, challengeID, true), nil)
		deps.challengesRepo.EXPECT().GetParticipant(gomock.Any(), challengeID, userID).
			Return(nil, errorvalues.ErrParticipantNotFound)
		err := serv.SyncParticipantStatus(ctx, userID, challengeID)
		assert.ErrorIs(t, err, errorvalues.ErrParticipantNotFound)
	})
	t.Run("pipeline failure does not fail the transition", func(t *testing.T) {
		deps.tasksRepo.EXPECT().GetByUserAndChallenge(gomock.Any(), userID, challengeID).
			Return(challengeCopies(userID, challengeID, true), nil)
		deps.challengesRepo.EXPECT().GetParticipant(gomock.Any(), challengeID, userID).Return(&entity.Participant{
			ChallengeID: challengeID,
			UserID:      userID,
			Status:      entity.StatusInProgress,
		}, nil)
		deps.challengesRepo.EXPECT().
			UpdateParticipantStatus(gomock.Any(), challengeID, userID, entity.StatusCompleted, gomock.Not(gomock.Nil())).
			Return(nil)
		deps.usersRepo.EXPECT().AdjustCompletedChallenges(gomock.Any(), userID, 1).Return(nil)
		deps.progression.EXPECT().UpdateUserLevel(gomock.Any(), userID).Return(nil, assert.AnError)
		deps.progression.EXPECT().CheckAndAssignBadges(gomock.Any(), userID).Return(nil, assert.AnError)
		err := serv.SyncParticipantStatus(ctx, userID, challengeID)
		assert.NoError(t, err)
	})
}

func TestCategories(t *testing.T) {
	serv, _ := newChallengesService(t)
	categories := serv.Categories()
	assert.Contains(t, categories, "Fitness & Health")
	assert.Contains(t, categories, "Habits & Routines")
	assert.Equal(t, 10, len(categories))
}
