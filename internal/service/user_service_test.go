package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/internal/repository/mocks"
	"github.com/limbo/studyflow/internal/service"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	testCases := []struct {
		Desc string
		Req  service.RegisterRequest
	}{
		{"short name", service.RegisterRequest{Name: "ab", Email: "ab@mail.com", Password: "secret1"}},
		{"name starts with digit", service.RegisterRequest{Name: "1abc", Email: "abc@mail.com", Password: "secret1"}},
		{"invalid email", service.RegisterRequest{Name: "abc", Email: "not-an-email", Password: "secret1"}},
		{"short password", service.RegisterRequest{Name: "abc", Email: "abc@mail.com", Password: "12345"}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := us.Register(context.Background(), &tc.Req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	userID := uuid.New()
	var stored *entity.User

	t.Run("registered with normalized email", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *entity.User) (*entity.User, error) {
			stored = &entity.User{ID: userID, Name: user.Name, Email: user.Email, PasswordHash: user.PasswordHash}
			return stored, nil
		})
		user, err := us.Register(ctx, &service.RegisterRequest{
			Name:     "student",
			Email:    " Student@Mail.com ",
			Password: "secret1",
		})
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "student@mail.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
	})
	t.Run("existed user", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
		_, err := us.Register(ctx, &service.RegisterRequest{
			Name:     "student",
			Email:    "student@mail.com",
			Password: "secret1",
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("logged in", func(t *testing.T) {
		repo.EXPECT().FindByEmail(gomock.Any(), "student@mail.com").Return(stored, nil)
		user, err := us.Login(ctx, "STUDENT@mail.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindByEmail(gomock.Any(), "student@mail.com").Return(stored, nil)
		_, err := us.Login(ctx, "student@mail.com", "wrong_one")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unexist email answers like wrong password", func(t *testing.T) {
		repo.EXPECT().FindByEmail(gomock.Any(), "ghost@mail.com").Return(nil, errorvalues.ErrUserNotFound)
		_, err := us.Login(ctx, "ghost@mail.com", "secret1")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("repository error", func(t *testing.T) {
		repo.EXPECT().FindByEmail(gomock.Any(), "student@mail.com").Return(nil, errors.New("conn reset"))
		_, err := us.Login(ctx, "student@mail.com", "secret1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &entity.User{ID: userID, Name: "student", Email: "student@mail.com", PasswordHash: string(hash)}

	repo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
	assert.ErrorIs(t, us.DeleteAccount(context.Background(), userID, "nope"), errorvalues.ErrWrongCredentials)

	repo.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
	repo.EXPECT().Delete(gomock.Any(), userID).Return(nil)
	assert.NoError(t, us.DeleteAccount(context.Background(), userID, "secret1"))
}

func TestUserServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	pool := setupTestDB(t)
	us := service.NewUserService(repository.NewUsersRepo(pool))
	ctx := context.Background()
	var user *entity.User
	var err error
	t.Run("registered user", func(t *testing.T) {
		user, err = us.Register(ctx, &service.RegisterRequest{
			Name:     "test_user",
			Email:    "test@mail.com",
			Password: "test_password",
		})
		require.NoError(t, err)
		assert.Equal(t, "test_user", user.Name)
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		_, err = us.Register(ctx, &service.RegisterRequest{
			Name:     "other_user",
			Email:    "test@mail.com",
			Password: "test_password",
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, "test@mail.com", "test_password")
		require.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("found by id", func(t *testing.T) {
		res, err := us.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, *user, *res)
	})
	t.Run("deleted", func(t *testing.T) {
		require.NoError(t, us.DeleteAccount(ctx, user.ID, "test_password"))
		_, err := us.GetByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func setupTestDB(t *testing.T) *pgxpool.Pool {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("studyflow"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()

	pool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(pool.Close)
	return pool
}
