package service_test

import (
	"testing"
	"time"

	"github.com/iAndrei22/DisciplineBuddy/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestXPForLevel(t *testing.T) {
	t.Run("known thresholds", func(t *testing.T) {
		assert.Equal(t, 0, service.XPForLevel(1))
		assert.Equal(t, 100, service.XPForLevel(2))
		assert.Equal(t, 282, service.XPForLevel(3))
		assert.Equal(t, 800, service.XPForLevel(5))
		assert.Equal(t, 2700, service.XPForLevel(10))
	})
	t.Run("level below one costs nothing", func(t *testing.T) {
		assert.Equal(t, 0, service.XPForLevel(0))
		assert.Equal(t, 0, service.XPForLevel(-3))
	})
	t.Run("monotonic", func(t *testing.T) {
		for lvl := 1; lvl < 50; lvl++ {
			assert.Less(t, service.XPForLevel(lvl), service.XPForLevel(lvl+1))
		}
	})
}

func TestLevelFromXP(t *testing.T) {
	t.Run("zero xp is level one", func(t *testing.T) {
		assert.Equal(t, 1, service.LevelFromXP(0))
	})
	t.Run("below first threshold", func(t *testing.T) {
		assert.Equal(t, 1, service.LevelFromXP(99))
	})
	t.Run("exact threshold reaches the level", func(t *testing.T) {
		assert.Equal(t, 2, service.LevelFromXP(100))
		assert.Equal(t, 3, service.LevelFromXP(282))
		assert.Equal(t, 10, service.LevelFromXP(2700))
	})
	t.Run("one below threshold stays on previous level", func(t *testing.T) {
		assert.Equal(t, 9, service.LevelFromXP(2699))
	})
	t.Run("roundtrip with thresholds", func(t *testing.T) {
		for lvl := 1; lvl < 30; lvl++ {
			assert.Equal(t, lvl, service.LevelFromXP(service.XPForLevel(lvl)))
		}
	})
}

func TestDecayXP(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	total := 1000
	t.Run("no decay inside grace window", func(t *testing.T) {
		assert.Equal(t, 0, service.DecayXP(total, now, now))
		assert.Equal(t, 0, service.DecayXP(total, now.AddDate(0, 0, -1), now))
		assert.Equal(t, 0, service.DecayXP(total, now.AddDate(0, 0, -2), now))
	})
	t.Run("mild tier", func(t *testing.T) {
		// 5 days inactive, 3 past grace, 1% per day
		assert.Equal(t, 30, service.DecayXP(total, now.AddDate(0, 0, -5), now))
	})
	t.Run("medium tier", func(t *testing.T) {
		// 10 days inactive, 8 past grace, 3% per day
		assert.Equal(t, 240, service.DecayXP(total, now.AddDate(0, 0, -10), now))
	})
	t.Run("heavy tier", func(t *testing.T) {
		// 20 days inactive, 18 past grace, 5% per day
		assert.Equal(t, 900, service.DecayXP(total, now.AddDate(0, 0, -20), now))
	})
	t.Run("decay never exceeds total", func(t *testing.T) {
		// 28 days inactive would be 130% without the cap
		assert.Equal(t, total, service.DecayXP(total, now.AddDate(0, 0, -28), now))
	})
	t.Run("flat cut past thirty days", func(t *testing.T) {
		assert.Equal(t, 750, service.DecayXP(total, now.AddDate(0, 0, -31), now))
		assert.Equal(t, 750, service.DecayXP(total, now.AddDate(0, 0, -365), now))
	})
	t.Run("non decreasing over inactivity", func(t *testing.T) {
		prev := 0
		for days := 0; days <= 30; days++ {
			d := service.DecayXP(total, now.AddDate(0, 0, -days), now)
			assert.GreaterOrEqual(t, d, prev)
			prev = d
		}
	})
}

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return today.AddDate(0, 0, offset)
	}
	t.Run("no completions", func(t *testing.T) {
		assert.Equal(t, 0, service.CurrentStreak(nil, today))
	})
	t.Run("three consecutive days", func(t *testing.T) {
		dates := []time.Time{day(0), day(-1), day(-2)}
		assert.Equal(t, 3, service.CurrentStreak(dates, today))
	})
	t.Run("gap today breaks the streak", func(t *testing.T) {
		dates := []time.Time{day(-1), day(-2), day(-3)}
		assert.Equal(t, 0, service.CurrentStreak(dates, today))
	})
	t.Run("gap in the middle cuts earlier days off", func(t *testing.T) {
		dates := []time.Time{day(0), day(-1), day(-3), day(-4)}
		assert.Equal(t, 2, service.CurrentStreak(dates, today))
	})
	t.Run("duplicate completions on one day count once", func(t *testing.T) {
		dates := []time.Time{day(0), day(0).Add(3 * time.Hour), day(-1)}
		assert.Equal(t, 2, service.CurrentStreak(dates, today))
	})
	t.Run("only today", func(t *testing.T) {
		assert.Equal(t, 1, service.CurrentStreak([]time.Time{day(0)}, today))
	})
}

func TestDaysInactive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, service.DaysInactive(now, now))
	assert.Equal(t, 0, service.DaysInactive(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, service.DaysInactive(now.AddDate(0, 0, -1), now))
	assert.Equal(t, 7, service.DaysInactive(now.AddDate(0, 0, -7), now))
	t.Run("future activity clamps to zero", func(t *testing.T) {
		assert.Equal(t, 0, service.DaysInactive(now.Add(time.Hour), now))
	})
}
