package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/pkg/entity"
)

const streakColumns = `user_id, last_active_date, current_streak, highest_streak, created_at, updated_at`

type StreaksRepository struct {
	conn Querier
}

func NewStreaksRepo(conn PgConnection) *StreaksRepository {
	mustPing(conn, "streaksRepo")
	return &StreaksRepository{
		conn: conn,
	}
}

func scanStreak(row scanner) (*entity.Streak, error) {
	var s entity.Streak
	err := row.Scan(&s.UserID, &s.LastActiveDate, &s.CurrentStreak, &s.HighestStreak, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (sr *StreaksRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Streak, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+streakColumns+` FROM streaks WHERE user_id = $1;`, uid)
	s, err := scanStreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return s, nil
}

func (sr *StreaksRepository) CreateIfAbsent(ctx context.Context, streak *entity.Streak) (bool, error) {
	// Concurrent inserts for the same user wait on the unique index, so only one wins
	ct, err := sr.conn.Exec(ctx, `INSERT INTO streaks (user_id, last_active_date, current_streak, highest_streak)
		VALUES ($1, $2, $3, $4) ON CONFLICT (user_id) DO NOTHING;`,
		streak.UserID,
		streak.LastActiveDate,
		streak.CurrentStreak,
		streak.HighestStreak,
	)
	if err != nil {
		return false, errors.New("creating streak error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}

func (sr *StreaksRepository) GetForUpdate(ctx context.Context, uid uuid.UUID) (*entity.Streak, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+streakColumns+` FROM streaks WHERE user_id = $1 FOR UPDATE;`, uid)
	s, err := scanStreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStreakNotFound
		}
		return nil, errors.New("locking streak error: " + err.Error())
	}
	return s, nil
}

func (sr *StreaksRepository) Update(ctx context.Context, streak *entity.Streak) error {
	// GREATEST keeps highest_streak >= current_streak on every write
	ct, err := sr.conn.Exec(ctx, `UPDATE streaks SET last_active_date = $1, current_streak = $2,
		highest_streak = GREATEST(highest_streak, $3, $2), updated_at = NOW() WHERE user_id = $4;`,
		streak.LastActiveDate,
		streak.CurrentStreak,
		streak.HighestStreak,
		streak.UserID,
	)
	if err != nil {
		return errors.New("updating streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakNotFound
	}
	return nil
}
