package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/internal/repository/mocks"
	"github.com/limbo/studyflow/internal/service"
	"github.com/limbo/studyflow/pkg/datebucket"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTouchToday(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)
	serv := service.NewStreakService(&txStub{repos: repository.Repos{Streaks: streaksRepo}}, streaksRepo, datebucket.UTC)
	serv.SetClock(func() time.Time { return fixedNow })
	userID := uuid.New()
	testCases := []struct {
		Desc            string
		ExpectedCurrent int
		ExpectedHighest int
		Error           bool
		MockPrepFunc    func()
	}{
		{
			Desc:            "first touch",
			ExpectedCurrent: 1,
			ExpectedHighest: 1,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().CreateIfAbsent(gomock.Any(), entity.NewStreak(userID, "2025-03-10")).Return(true, nil)
			},
		},
		{
			Desc:            "same day is no-op",
			ExpectedCurrent: 4,
			ExpectedHighest: 6,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
				streaksRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&entity.Streak{
					UserID:         userID,
					LastActiveDate: "2025-03-10",
					CurrentStreak:  4,
					HighestStreak:  6,
				}, nil)
			},
		},
		{
			Desc:            "consecutive day",
			ExpectedCurrent: 5,
			ExpectedHighest: 6,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
				streaksRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&entity.Streak{
					UserID:         userID,
					LastActiveDate: "2025-03-09",
					CurrentStreak:  4,
					HighestStreak:  6,
				}, nil)
				streaksRepo.EXPECT().Update(gomock.Any(), &entity.Streak{
					UserID:         userID,
					LastActiveDate: "2025-03-10",
					CurrentStreak:  5,
					HighestStreak:  6,
				}).Return(nil)
			},
		},
		{
			Desc:            "new highest",
			ExpectedCurrent: 7,
			ExpectedHighest: 7,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
				streaksRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&entity.Streak{
					UserID:         userID,
					LastActiveDate: "2025-03-09",
					CurrentStreak:  6,
					HighestStreak:  6,
				}, nil)
				streaksRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:            "missed day resets",
			ExpectedCurrent: 1,
			ExpectedHighest: 9,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, nil)
				streaksRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(&entity.Streak{
					UserID:         userID,
					LastActiveDate: "2025-03-07",
					CurrentStreak:  9,
					HighestStreak:  9,
				}, nil)
				streaksRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			Desc:  "repository error",
			Error: true,
			MockPrepFunc: func() {
				streaksRepo.EXPECT().CreateIfAbsent(gomock.Any(), gomock.Any()).Return(false, errors.New("conn reset"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			streak, err := serv.TouchToday(context.Background(), userID)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2025-03-10", streak.LastActiveDate)
			assert.Equal(t, tc.ExpectedCurrent, streak.CurrentStreak)
			assert.Equal(t, tc.ExpectedHighest, streak.HighestStreak)
		})
	}
}

func TestTouchTodayUsesOffset(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)
	offset, err := datebucket.ParseOffset("+05:30")
	require.NoError(t, err)
	serv := service.NewStreakService(&txStub{repos: repository.Repos{Streaks: streaksRepo}}, streaksRepo, offset)
	// 20:00 UTC is already next day at +05:30
	serv.SetClock(func() time.Time { return time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC) })
	userID := uuid.New()
	streaksRepo.EXPECT().CreateIfAbsent(gomock.Any(), entity.NewStreak(userID, "2025-03-11")).Return(true, nil)

	streak, err := serv.TouchToday(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", streak.LastActiveDate)
}

func TestGetStreak(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)
	serv := service.NewStreakService(&txStub{}, streaksRepo, datebucket.UTC)
	userID := uuid.New()
	ctx := context.Background()

	t.Run("no streak yet", func(t *testing.T) {
		streaksRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)
		summary, err := serv.GetStreak(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, &entity.StreakSummary{}, summary)
	})
	t.Run("existing streak", func(t *testing.T) {
		streaksRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&entity.Streak{
			UserID:         userID,
			LastActiveDate: "2025-03-10",
			CurrentStreak:  3,
			HighestStreak:  8,
		}, nil)
		summary, err := serv.GetStreak(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.CurrentStreak)
		assert.Equal(t, 8, summary.HighestStreak)
		require.NotNil(t, summary.LastActive)
		assert.Equal(t, "2025-03-10", *summary.LastActive)
	})
	t.Run("repository error", func(t *testing.T) {
		streaksRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, errors.New("conn reset"))
		_, err := serv.GetStreak(ctx, userID)
		assert.Error(t, err)
	})
}
