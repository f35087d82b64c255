package service

import (
	"slices"

	"github.com/iAndrei22/DisciplineBuddy/pkg/badges"
)

type badgeStats struct {
	TotalPoints         int
	CompletedTasks      int
	HasEarlyTask        bool
	Level               int
	CompletedChallenges int
}

// evaluateBadges returns catalog ids newly satisfied by stats. Already
// owned badges are skipped, so re-running with unchanged stats yields nil.
func evaluateBadges(catalog []badges.Badge, owned []string, stats badgeStats) []string {
	var earned []string
	for _, b := range catalog {
		if slices.Contains(owned, b.ID) {
			continue
		}
		satisfied := false
		switch b.Type {
		case badges.TypePoints:
			satisfied = stats.TotalPoints >= b.Milestone
		case badges.TypeTasksCompleted:
			satisfied = stats.CompletedTasks >= b.Milestone
		case badges.TypeEarlyTask:
			satisfied = stats.HasEarlyTask
		case badges.TypeLevel:
			satisfied = stats.Level >= b.Milestone
		case badges.TypeChallengesCompleted:
			satisfied = stats.CompletedChallenges >= b.Milestone
		}
		if satisfied {
			earned = append(earned, b.ID)
		}
	}
	return earned
}
