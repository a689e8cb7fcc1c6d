package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var streakCols = []string{"user_id", "last_active_date", "current_streak", "highest_streak", "created_at", "updated_at"}

func TestGetStreakByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStreaksRepo(conn)
	now := time.Now().UTC()
	streak := &entity.Streak{
		UserID:         uuid.New(),
		LastActiveDate: "2025-03-10",
		CurrentStreak:  3,
		HighestStreak:  5,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	query := regexp.QuoteMeta(`FROM streaks WHERE user_id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(streak.UserID).WillReturnRows(pgxmock.NewRows(streakCols).
			AddRow(streak.UserID, streak.LastActiveDate, streak.CurrentStreak, streak.HighestStreak, now, now))
		res, err := repo.GetByUserID(ctx, streak.UserID)
		require.NoError(t, err)
		assert.Equal(t, streak, res)
	})
	t.Run("absent is not an error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(streak.UserID).WillReturnError(pgx.ErrNoRows)
		res, err := repo.GetByUserID(ctx, streak.UserID)
		assert.NoError(t, err)
		assert.Nil(t, res)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(streak.UserID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, streak.UserID)
		assert.Error(t, err)
	})
}

func TestCreateStreakIfAbsent(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStreaksRepo(conn)
	streak := entity.NewStreak(uuid.New(), "2025-03-10")
	query := regexp.QuoteMeta(`ON CONFLICT (user_id) DO NOTHING;`)
	t.Run("inserted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(streak.UserID, "2025-03-10", 1, 1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		created, err := repo.CreateIfAbsent(ctx, streak)
		require.NoError(t, err)
		assert.True(t, created)
	})
	t.Run("already existed", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(streak.UserID, "2025-03-10", 1, 1).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		created, err := repo.CreateIfAbsent(ctx, streak)
		require.NoError(t, err)
		assert.False(t, created)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(streak.UserID, "2025-03-10", 1, 1).WillReturnError(errors.New("db error"))
		_, err := repo.CreateIfAbsent(ctx, streak)
		assert.Error(t, err)
	})
}

func TestLockAndUpdateStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStreaksRepo(conn)
	uid := uuid.New()
	now := time.Now().UTC()
	lockQuery := regexp.QuoteMeta(`FROM streaks WHERE user_id = $1 FOR UPDATE;`)
	updateQuery := regexp.QuoteMeta(`highest_streak = GREATEST(highest_streak, $3, $2)`)

	conn.ExpectQuery(lockQuery).WithArgs(uid).WillReturnRows(pgxmock.NewRows(streakCols).
		AddRow(uid, "2025-03-09", 2, 2, now, now))
	streak, err := repo.GetForUpdate(ctx, uid)
	require.NoError(t, err)
	require.True(t, streak.Touch("2025-03-10", "2025-03-09"))

	conn.ExpectExec(updateQuery).WithArgs("2025-03-10", 3, 3, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.Update(ctx, streak))

	conn.ExpectQuery(lockQuery).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
	_, err = repo.GetForUpdate(ctx, uid)
	assert.ErrorIs(t, err, errorvalues.ErrStreakNotFound)

	conn.ExpectExec(updateQuery).WithArgs("2025-03-10", 3, 3, uid).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.Update(ctx, streak), errorvalues.ErrStreakNotFound)

	assert.NoError(t, conn.ExpectationsWereMet())
}
