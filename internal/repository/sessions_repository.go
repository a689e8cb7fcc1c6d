package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/pkg/entity"
)

const sessionColumns = `id, user_id, subject, topic, planned_duration, actual_duration, start_time, end_time, status, notes, created_at, updated_at`

type SessionsRepository struct {
	conn Querier
}

func NewSessionsRepo(conn PgConnection) *SessionsRepository {
	mustPing(conn, "sessionsRepo")
	return &SessionsRepository{
		conn: conn,
	}
}

func scanSession(row scanner) (*entity.StudySession, error) {
	var (
		s      entity.StudySession
		status string
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.Subject, &s.Topic,
		&s.PlannedDuration, &s.ActualDuration,
		&s.StartTime, &s.EndTime, &status, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = entity.SessionStatus(status)
	return &s, nil
}

func (sr *SessionsRepository) Create(ctx context.Context, session *entity.StudySession) (*entity.StudySession, error) {
	row := sr.conn.QueryRow(ctx, `INSERT INTO study_sessions (user_id, subject, topic, planned_duration, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+sessionColumns+`;`,
		session.UserID,
		session.Subject,
		session.Topic,
		session.PlannedDuration,
		string(entity.SessionActive),
	)
	s, err := scanSession(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("creating session db error: " + err.Error())
	}
	return s, nil
}

func (sr *SessionsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StudySession, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+sessionColumns+` FROM study_sessions WHERE id = $1;`, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("getting session by id error: " + err.Error())
	}
	return s, nil
}

func (sr *SessionsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.StudySession, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+sessionColumns+` FROM study_sessions
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting sessions by uid error: " + err.Error())
	}
	return collectSessions(rows)
}

func (sr *SessionsRepository) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*entity.StudySession, error) {
	row := sr.conn.QueryRow(ctx, `UPDATE study_sessions SET notes = $1, updated_at = NOW()
		WHERE id = $2 RETURNING `+sessionColumns+`;`, notes, id)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionNotFound
		}
		return nil, errors.New("updating session notes error: " + err.Error())
	}
	return s, nil
}

func (sr *SessionsRepository) Complete(ctx context.Context, id, uid uuid.UUID, actualDuration int, endTime time.Time) (*entity.StudySession, error) {
	// Status guard in WHERE makes the transition happen at most once
	row := sr.conn.QueryRow(ctx, `UPDATE study_sessions
		SET status = $1, actual_duration = $2, end_time = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5 AND status = $6 RETURNING `+sessionColumns+`;`,
		string(entity.SessionCompleted), actualDuration, endTime, id, uid, string(entity.SessionActive),
	)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSessionAlreadyEnded
		}
		return nil, errors.New("completing session error: " + err.Error())
	}
	return s, nil
}

func (sr *SessionsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM study_sessions WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting session: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSessionNotFound
	}
	return nil
}

func (sr *SessionsRepository) GetCompletedInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.StudySession, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+sessionColumns+` FROM study_sessions
		WHERE user_id = $1 AND status = $2 AND start_time >= $3 AND start_time <= $4
		ORDER BY start_time;`, uid, string(entity.SessionCompleted), from, to)
	if err != nil {
		return nil, errors.New("getting sessions for period error: " + err.Error())
	}
	return collectSessions(rows)
}

func collectSessions(rows pgx.Rows) ([]*entity.StudySession, error) {
	defer rows.Close()
	sessions := make([]*entity.StudySession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, errors.New("unmarshalling session error: " + err.Error())
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning sessions: " + err.Error())
	}
	return sessions, nil
}
