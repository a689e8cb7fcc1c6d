package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "name", "email", "password_hash", "created_at"}

func testUser() entity.User {
	return entity.User{
		ID:           uuid.New(),
		Name:         "test_user",
		Email:        "test@mail.com",
		PasswordHash: "test_password_hash",
		CreatedAt:    time.Now().UTC(),
	}
}

func userRows(u entity.User) *pgxmock.Rows {
	return pgxmock.NewRows(userCols).AddRow(u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt)
}

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	user := testUser()
	query := regexp.QuoteMeta(`INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id,`)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name, user.Email, user.PasswordHash).WillReturnRows(userRows(user))
		created, err := repo.Create(ctx, &entity.User{Name: user.Name, Email: user.Email, PasswordHash: user.PasswordHash})
		require.NoError(t, err)
		assert.Equal(t, user, *created)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name, user.Email, user.PasswordHash).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		_, err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(user.Name, user.Email, user.PasswordHash).WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &user)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("nil user", func(t *testing.T) {
		_, err := repo.Create(ctx, nil)
		assert.Error(t, err)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	user := testUser()
	byEmail := regexp.QuoteMeta(`FROM users WHERE email = $1;`)
	byID := regexp.QuoteMeta(`FROM users WHERE id = $1;`)

	t.Run("found by email", func(t *testing.T) {
		conn.ExpectQuery(byEmail).WithArgs(user.Email).WillReturnRows(userRows(user))
		result, err := repo.FindByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("found by id", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnRows(userRows(user))
		result, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(byEmail).WithArgs(user.Email).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)

		conn.ExpectQuery(byID).WithArgs(user.ID).WillReturnError(pgx.ErrNoRows)
		_, err = repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(byEmail).WithArgs(user.Email).WillReturnError(errors.New("db error"))
		_, err := repo.FindByEmail(ctx, user.Email)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	t.Run("deleted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, uid))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, uid), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, uid))
	})
}
