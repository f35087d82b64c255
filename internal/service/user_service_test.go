package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/iAndrei22/DisciplineBuddy/internal/error_values"
	"github.com/iAndrei22/DisciplineBuddy/internal/repository/mocks"
	"github.com/iAndrei22/DisciplineBuddy/internal/service"
	svcmocks "github.com/iAndrei22/DisciplineBuddy/internal/service/mocks"
	"github.com/iAndrei22/DisciplineBuddy/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (*service.UserService, *mocks.MockUsersRepositoryI, *svcmocks.MockProgressionServiceI) {
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	progression := svcmocks.NewMockProgressionServiceI(ctrl)
	return service.NewUserService(usersRepo, progression), usersRepo, progression
}

func TestRegister(t *testing.T) {
	serv, usersRepo, _ := newUserService(t)
	uid := uuid.New()
	ctx := context.Background()
	req := &service.RegisterRequest{
		Name:     "test_user",
		Password: "test_password",
	}
	t.Run("success", func(t *testing.T) {
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		usersRepo.EXPECT().FindByName(gomock.Any(), req.Name).Return(&entity.User{
			ID:    uid,
			Name:  req.Name,
			Level: 1,
		}, nil)
		user, err := serv.Register(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, uid, user.ID)
	})
	t.Run("user exists", func(t *testing.T) {
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
		_, err := serv.Register(ctx, req)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("invalid name", func(t *testing.T) {
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     "1_starts_with_digit",
			Password: "test_password",
		})
		assert.Error(t, err)
	})
	t.Run("short password", func(t *testing.T) {
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     "test_user",
			Password: "short",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	serv, usersRepo, progression := newUserService(t)
	uid := uuid.New()
	password := "test_password"
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &entity.User{
		ID:           uid,
		Name:         "test_user",
		PasswordHash: string(passwordHash),
		Level:        2,
	}
	refreshed := &entity.User{
		ID:          uid,
		Name:        "test_user",
		Level:       3,
		LoginStreak: 5,
	}
	ctx := context.Background()
	t.Run("success runs tracking and level refresh", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), "test_user").Return(stored, nil)
		progression.EXPECT().UpdateLoginTracking(gomock.Any(), uid).Return(&entity.LoginStats{LoginStreak: 5, TotalLogins: 20}, nil)
		progression.EXPECT().UpdateUserLevel(gomock.Any(), uid).Return(&entity.LevelInfo{Level: 3}, nil)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(refreshed, nil)
		user, err := serv.Login(ctx, "test_user", password)
		assert.NoError(t, err)
		assert.Equal(t, refreshed, user)
	})
	t.Run("login survives a failing pipeline", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), "test_user").Return(stored, nil)
		progression.EXPECT().UpdateLoginTracking(gomock.Any(), uid).Return(nil, errors.New("db error"))
		progression.EXPECT().UpdateUserLevel(gomock.Any(), uid).Return(nil, errors.New("db error"))
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(stored, nil)
		user, err := serv.Login(ctx, "test_user", password)
		assert.NoError(t, err)
		assert.Equal(t, uid, user.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), "test_user").Return(stored, nil)
		_, err := serv.Login(ctx, "test_user", "not_the_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("user not found", func(t *testing.T) {
		usersRepo.EXPECT().FindByName(gomock.Any(), "ghost").Return(nil, errorvalues.ErrUserNotFound)
		_, err := serv.Login(ctx, "ghost", password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDeleteAccount(t *testing.T) {
	serv, usersRepo, _ := newUserService(t)
	uid := uuid.New()
	password := "test_password"
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := &entity.User{
		ID:           uid,
		Name:         "test_user",
		PasswordHash: string(passwordHash),
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(stored, nil)
		usersRepo.EXPECT().Delete(gomock.Any(), uid).Return(nil)
		err := serv.DeleteAccount(ctx, uid, password)
		assert.NoError(t, err)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(stored, nil)
		err := serv.DeleteAccount(ctx, uid, "not_the_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("user not found", func(t *testing.T) {
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		err := serv.DeleteAccount(ctx, uid, password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
