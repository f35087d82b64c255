package service

import (
	"math"
	"time"
)

// XP weights: task score dominates, streaks reward consistency
// quadratically, logins add a small flat bonus.
const (
	taskXPPerPoint  = 10
	streakXPFactor  = 20
	loginXPPerLogin = 50

	decayGraceDays = 2
)

// XPForLevel returns XP required to reach level. Level 1 starts at 0,
// thresholds grow super-linearly so higher levels cost disproportionately more.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Floor(100 * math.Pow(float64(level-1), 1.5)))
}

// LevelFromXP returns the largest level whose threshold is within xp.
// Linear ascent is correct because XPForLevel is monotonic.
func LevelFromXP(xp int) int {
	level := 1
	for XPForLevel(level+1) <= xp {
		level++
	}
	return level
}

// DecayXP computes the inactivity penalty on totalXP. Inside the grace
// window the penalty is zero; beyond it the per-day rate rises with the
// inactivity tier, and past 30 days a flat 75% cut applies.
func DecayXP(totalXP int, lastActivity, now time.Time) int {
	daysInactive := int(math.Floor(now.Sub(lastActivity).Hours() / 24))
	if daysInactive <= decayGraceDays {
		return 0
	}
	daysAfterGrace := daysInactive - decayGraceDays
	total := float64(totalXP)
	var decay float64
	switch {
	case daysInactive <= 7:
		decay = total * 0.01 * float64(daysAfterGrace)
	case daysInactive <= 14:
		decay = total * 0.03 * float64(daysAfterGrace)
	case daysInactive <= 30:
		decay = total * 0.05 * float64(daysAfterGrace)
	default:
		decay = total * 0.75
	}
	if decay > total {
		decay = total
	}
	return int(math.Floor(decay))
}

// CurrentStreak counts consecutive UTC calendar days present in dates,
// walking backward from today. A day without completions, including today
// itself, ends the streak. No look-ahead, no gap-filling.
func CurrentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d.UTC().Format(time.DateOnly)] = struct{}{}
	}
	streak := 0
	cursor := today.UTC()
	for {
		if _, ok := set[cursor.Format(time.DateOnly)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// DaysInactive returns whole days elapsed since lastActivity.
func DaysInactive(lastActivity, now time.Time) int {
	days := int(math.Floor(now.Sub(lastActivity).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
