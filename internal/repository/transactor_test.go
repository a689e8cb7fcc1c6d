package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInTx(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	tx := repository.NewTransactor(conn)
	streak := entity.NewStreak(uuid.New(), "2025-03-10")
	insert := regexp.QuoteMeta(`INSERT INTO streaks`)

	t.Run("committed", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(insert).WithArgs(streak.UserID, "2025-03-10", 1, 1).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectCommit()
		err := tx.InTx(ctx, func(repos repository.Repos) error {
			_, err := repos.Streaks.CreateIfAbsent(ctx, streak)
			return err
		})
		assert.NoError(t, err)
	})
	t.Run("rolled back on fn error", func(t *testing.T) {
		fnErr := errors.New("fn failed")
		conn.ExpectBegin()
		conn.ExpectRollback()
		err := tx.InTx(ctx, func(repos repository.Repos) error {
			return fnErr
		})
		assert.ErrorIs(t, err, fnErr)
	})
	t.Run("begin error", func(t *testing.T) {
		conn.ExpectBegin().WillReturnError(errors.New("no conn"))
		called := false
		err := tx.InTx(ctx, func(repos repository.Repos) error {
			called = true
			return nil
		})
		assert.Error(t, err)
		assert.False(t, called)
	})
	t.Run("commit error", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectCommit().WillReturnError(errors.New("serialization failure"))
		err := tx.InTx(ctx, func(repos repository.Repos) error {
			return nil
		})
		assert.Error(t, err)
	})
	require.NoError(t, conn.ExpectationsWereMet())
}
