package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/studyflow/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repositories.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database, returns it with generated id
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	// Looks up user by email. Used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Used by authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type SessionsRepositoryI interface {
	// Inserts session in active state. Returns stored row with ID and timestamps
	Create(ctx context.Context, session *entity.StudySession) (*entity.StudySession, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StudySession, error)
	// Lists user's sessions, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.StudySession, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*entity.StudySession, error)
	// Moves an active session owned by uid to completed. Fails with
	// ErrSessionAlreadyEnded when the session isn't active anymore
	Complete(ctx context.Context, id, uid uuid.UUID, actualDuration int, endTime time.Time) (*entity.StudySession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Completed sessions of uid started within [from, to]
	GetCompletedInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.StudySession, error)
}

type StreaksRepositoryI interface {
	// Returns nil without error when user has no streak yet
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
	// Inserts streak unless user already has one. Reports if row was inserted
	CreateIfAbsent(ctx context.Context, streak *entity.Streak) (bool, error)
	// Loads and row-locks user's streak. Must run inside transaction
	GetForUpdate(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
	Update(ctx context.Context, streak *entity.Streak) error
}

type ReportsRepositoryI interface {
	Create(ctx context.Context, report *entity.Report) (*entity.Report, error)
	// Looks up report by id among reports of uid
	GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Report, error)
	// Lists user's reports, newest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Report, error)
	Delete(ctx context.Context, id, uid uuid.UUID) error
}

// Repos bound to a single transaction
type Repos struct {
	Sessions SessionsRepositoryI
	Streaks  StreaksRepositoryI
	Reports  ReportsRepositoryI
}

type TransactorI interface {
	// Runs fn in a transaction. Commits when fn returns nil, rolls back otherwise
	InTx(ctx context.Context, fn func(repos Repos) error) error
}

type DBConfig interface {
	ConnString() string
}

// Querier is implemented by both pool and transaction
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

type scanner interface {
	Scan(dest ...any) error
}
