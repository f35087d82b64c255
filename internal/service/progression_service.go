package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/iAndrei22/DisciplineBuddy/internal/error_values"
	"github.com/iAndrei22/DisciplineBuddy/internal/repository"
	"github.com/iAndrei22/DisciplineBuddy/pkg/badges"
	"github.com/iAndrei22/DisciplineBuddy/pkg/entity"
)

// ProgressionService owns the derived gamification state: score
// reconciliation, xp aggregation with decay, level resolution, login
// tracking and badge assignment.
type ProgressionService struct {
	usersRepo repository.UsersRepositoryI
	tasksRepo repository.TasksRepositoryI
	catalog   []badges.Badge
	now       func() time.Time
}

func NewProgressionService(usersRepo repository.UsersRepositoryI, tasksRepo repository.TasksRepositoryI, catalog []badges.Badge) *ProgressionService {
	if usersRepo == nil || tasksRepo == nil {
		log.Fatal("on progression service provided nil repos")
	}
	return &ProgressionService{
		usersRepo: usersRepo,
		tasksRepo: tasksRepo,
		catalog:   catalog,
		now:       time.Now,
	}
}

func (serv *ProgressionService) RecalculateScore(ctx context.Context, userID uuid.UUID) (int, error) {
	score, err := serv.tasksRepo.SumCompletedPoints(ctx, userID)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	err = serv.usersRepo.UpdateScore(ctx, userID, score)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("repository error: " + err.Error())
	}
	if _, err = serv.UpdateUserLevel(ctx, userID); err != nil {
		return 0, err
	}
	return score, nil
}

func (serv *ProgressionService) CalculateUserLevel(ctx context.Context, userID uuid.UUID) (*entity.LevelInfo, error) {
	user, err := serv.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	streak, err := serv.completionStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	breakdown := entity.XPBreakdown{
		TaskXP:   user.Score * taskXPPerPoint,
		StreakXP: streak * streak * streakXPFactor,
		LoginXP:  user.TotalLogins * loginXPPerLogin,
	}
	breakdown.TotalBeforeDecay = breakdown.TaskXP + breakdown.StreakXP + breakdown.LoginXP
	breakdown.DecayXP = DecayXP(breakdown.TotalBeforeDecay, user.LastActivity, serv.now())

	xp := breakdown.TotalBeforeDecay - breakdown.DecayXP
	if xp < 0 {
		xp = 0
	}
	level := LevelFromXP(xp)
	return &entity.LevelInfo{
		XP:                xp,
		Level:             level,
		XPForCurrentLevel: XPForLevel(level),
		XPForNextLevel:    XPForLevel(level + 1),
		Breakdown:         breakdown,
	}, nil
}

func (serv *ProgressionService) UpdateUserLevel(ctx context.Context, userID uuid.UUID) (*entity.LevelInfo, error) {
	user, err := serv.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	previousLevel := user.Level
	info, err := serv.CalculateUserLevel(ctx, userID)
	if err != nil {
		return nil, err
	}
	err = serv.usersRepo.UpdateProgress(ctx, userID, info.XP, info.Level, serv.now())
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if info.Level != previousLevel {
		// Best-effort: a failed badge check never rolls back the level write
		if _, err := serv.CheckAndAssignBadges(ctx, userID); err != nil {
			slog.Error("badge check after level change failed",
				slog.String("uid", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}
	return info, nil
}

func (serv *ProgressionService) UpdateLoginTracking(ctx context.Context, userID uuid.UUID) (*entity.LoginStats, error) {
	user, err := serv.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	now := serv.now()
	stats := &entity.LoginStats{
		LoginStreak: user.LoginStreak,
		TotalLogins: user.TotalLogins,
	}
	if user.LastLogin != nil {
		last := user.LastLogin.UTC()
		// Same UTC calendar day: replay, nothing to count
		if last.Format(time.DateOnly) == now.UTC().Format(time.DateOnly) {
			return stats, nil
		}
		yesterday := now.UTC().AddDate(0, 0, -1)
		if last.Format(time.DateOnly) == yesterday.Format(time.DateOnly) {
			stats.LoginStreak = user.LoginStreak + 1
		} else {
			stats.LoginStreak = 1
		}
	} else {
		// First login ever
		stats.LoginStreak = 1
	}
	stats.TotalLogins = user.TotalLogins + 1
	err = serv.usersRepo.UpdateLoginStats(ctx, userID, now, stats.LoginStreak, stats.TotalLogins)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return stats, nil
}

func (serv *ProgressionService) CheckAndAssignBadges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	user, err := serv.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	totalPoints, err := serv.tasksRepo.SumCompletedPoints(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	completedCount, err := serv.tasksRepo.CountCompleted(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	hasEarly, err := serv.tasksRepo.HasEarlyCompletion(ctx, userID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	earned := evaluateBadges(serv.catalog, user.Badges, badgeStats{
		TotalPoints:         totalPoints,
		CompletedTasks:      completedCount,
		HasEarlyTask:        hasEarly,
		Level:               user.Level,
		CompletedChallenges: user.CompletedChallenges,
	})
	if len(earned) == 0 {
		return nil, nil
	}
	err = serv.usersRepo.AddBadges(ctx, userID, earned)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return earned, nil
}

func (serv *ProgressionService) ComputeCurrentStreak(ctx context.Context, userID uuid.UUID) (int, error) {
	return serv.completionStreak(ctx, userID)
}

func (serv *ProgressionService) UserStats(ctx context.Context, userID uuid.UUID) (*entity.UserStats, error) {
	user, err := serv.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	info, err := serv.CalculateUserLevel(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak, err := serv.completionStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &entity.UserStats{
		UserID:        user.ID,
		Name:          user.Name,
		Level:         info.Level,
		XP:            info.XP,
		Score:         user.Score,
		CurrentStreak: streak,
		LoginStreak:   user.LoginStreak,
		TotalLogins:   user.TotalLogins,
		LastLogin:     user.LastLogin,
		LastActivity:  user.LastActivity,
		Badges:        user.Badges,
	}, nil
}

func (serv *ProgressionService) DecayStatus(ctx context.Context, userID uuid.UUID) (*entity.DecayStatus, error) {
	user, err := serv.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	info, err := serv.CalculateUserLevel(ctx, userID)
	if err != nil {
		return nil, err
	}
	daysInactive := DaysInactive(user.LastActivity, serv.now())
	status := "active"
	switch {
	case daysInactive <= decayGraceDays:
	case daysInactive <= 7:
		status = "mild_decay"
	case daysInactive <= 14:
		status = "medium_decay"
	case daysInactive <= 30:
		status = "heavy_decay"
	default:
		status = "severe_decay"
	}
	return &entity.DecayStatus{
		Status:       status,
		DaysInactive: daysInactive,
		DecayXP:      info.Breakdown.DecayXP,
		CurrentXP:    info.XP,
		CurrentLevel: info.Level,
	}, nil
}

func (serv *ProgressionService) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	users, err := serv.usersRepo.TopByXP(ctx, limit)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	entries := make([]entity.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, entity.LeaderboardEntry{
			Rank:  i + 1,
			ID:    u.ID,
			Name:  u.Name,
			XP:    u.XP,
			Level: u.Level,
			Score: u.Score,
		})
	}
	return entries, nil
}

func (serv *ProgressionService) completionStreak(ctx context.Context, userID uuid.UUID) (int, error) {
	dates, err := serv.tasksRepo.GetCompletionDates(ctx, userID)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	return CurrentStreak(dates, serv.now()), nil
}
