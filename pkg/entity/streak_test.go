package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func day(base time.Time, n int) string {
	return base.AddDate(0, 0, n).Format("2006-01-02")
}

func touch(s *entity.Streak, base time.Time, n int) bool {
	return s.Touch(day(base, n), day(base, n-1))
}

func TestStreakTouch(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	uid := uuid.New()

	t.Run("same day is a no-op", func(t *testing.T) {
		s := entity.NewStreak(uid, day(base, 0))
		assert.False(t, touch(s, base, 0))
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, 1, s.HighestStreak)
		assert.Equal(t, day(base, 0), s.LastActiveDate)
	})
	t.Run("gap resets", func(t *testing.T) {
		s := entity.NewStreak(uid, day(base, 0))
		got := []int{s.CurrentStreak}
		touch(s, base, 1)
		got = append(got, s.CurrentStreak)
		touch(s, base, 3)
		got = append(got, s.CurrentStreak)
		assert.Equal(t, []int{1, 2, 1}, got)
		assert.Equal(t, 2, s.HighestStreak)
	})
	t.Run("seven consecutive days", func(t *testing.T) {
		s := entity.NewStreak(uid, day(base, 0))
		for i := 1; i < 7; i++ {
			assert.True(t, touch(s, base, i))
		}
		assert.Equal(t, 7, s.CurrentStreak)
		assert.Equal(t, 7, s.HighestStreak)
	})
	t.Run("future last active date resets", func(t *testing.T) {
		s := entity.NewStreak(uid, day(base, 5))
		s.CurrentStreak, s.HighestStreak = 3, 4
		assert.True(t, touch(s, base, 0))
		assert.Equal(t, 1, s.CurrentStreak)
		assert.Equal(t, 4, s.HighestStreak)
		assert.Equal(t, day(base, 0), s.LastActiveDate)
	})
	t.Run("highest never decreases", func(t *testing.T) {
		s := entity.NewStreak(uid, day(base, 0))
		days := []int{1, 2, 3, 3, 10, 11, 20, 21, 22, 23, 24, 30}
		prevHighest := s.HighestStreak
		for _, d := range days {
			touch(s, base, d)
			assert.GreaterOrEqual(t, s.HighestStreak, prevHighest)
			assert.GreaterOrEqual(t, s.HighestStreak, s.CurrentStreak)
			assert.GreaterOrEqual(t, s.CurrentStreak, 1)
			prevHighest = s.HighestStreak
		}
		assert.Equal(t, 5, s.HighestStreak)
		assert.Equal(t, 1, s.CurrentStreak)
	})
}

func TestReportValidWindow(t *testing.T) {
	now := time.Now()
	before := now.Add(-time.Hour)
	assert.True(t, (&entity.Report{}).ValidWindow())
	assert.True(t, (&entity.Report{StartDate: &before, EndDate: &now}).ValidWindow())
	assert.False(t, (&entity.Report{StartDate: &now, EndDate: &before}).ValidWindow())
}
