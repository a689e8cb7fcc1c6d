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

var sessionCols = []string{"id", "user_id", "subject", "topic", "planned_duration", "actual_duration",
	"start_time", "end_time", "status", "notes", "created_at", "updated_at"}

func sessionRow(rows *pgxmock.Rows, s *entity.StudySession) *pgxmock.Rows {
	return rows.AddRow(s.ID, s.UserID, s.Subject, s.Topic, s.PlannedDuration, s.ActualDuration,
		s.StartTime, s.EndTime, string(s.Status), s.Notes, s.CreatedAt, s.UpdatedAt)
}

func testSession(uid uuid.UUID) *entity.StudySession {
	now := time.Now().UTC().Truncate(time.Second)
	return &entity.StudySession{
		ID:              uuid.New(),
		UserID:          uid,
		Subject:         "Math",
		Topic:           "Algebra",
		PlannedDuration: 30,
		StartTime:       now,
		EndTime:         (*time.Time)(nil),
		Status:          entity.SessionActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestCreateSession(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSessionsRepo(conn)
	session := testSession(uuid.New())
	query := regexp.QuoteMeta(`INSERT INTO study_sessions (user_id, subject, topic, planned_duration, status)`)
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(session.UserID, session.Subject, session.Topic, session.PlannedDuration, "active").
			WillReturnRows(sessionRow(pgxmock.NewRows(sessionCols), session))
		created, err := repo.Create(ctx, session)
		require.NoError(t, err)
		assert.Equal(t, session, created)
	})
	t.Run("unexist user", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(session.UserID, session.Subject, session.Topic, session.PlannedDuration, "active").
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, session)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestGetSessionByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSessionsRepo(conn)
	session := testSession(uuid.New())
	end := session.StartTime.Add(30 * time.Minute)
	session.EndTime = &end
	session.Status = entity.SessionCompleted
	session.ActualDuration = 1800
	session.Notes = "done"
	query := regexp.QuoteMeta(`FROM study_sessions WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(session.ID).
			WillReturnRows(sessionRow(pgxmock.NewRows(sessionCols), session))
		res, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session, res)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(session.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, session.ID)
		assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
	})
}

func TestCompleteSession(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSessionsRepo(conn)
	session := testSession(uuid.New())
	endTime := session.StartTime.Add(time.Hour)
	completed := *session
	completed.Status = entity.SessionCompleted
	completed.ActualDuration = 1800
	completed.EndTime = &endTime
	query := regexp.QuoteMeta(`WHERE id = $4 AND user_id = $5 AND status = $6 RETURNING`)
	t.Run("completed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs("completed", 1800, endTime, session.ID, session.UserID, "active").
			WillReturnRows(sessionRow(pgxmock.NewRows(sessionCols), &completed))
		res, err := repo.Complete(ctx, session.ID, session.UserID, 1800, endTime)
		require.NoError(t, err)
		assert.Equal(t, entity.SessionCompleted, res.Status)
		assert.Equal(t, 1800, res.ActualDuration)
		assert.Equal(t, endTime, *res.EndTime)
	})
	t.Run("no active row left", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs("completed", 1800, endTime, session.ID, session.UserID, "active").
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Complete(ctx, session.ID, session.UserID, 1800, endTime)
		assert.ErrorIs(t, err, errorvalues.ErrSessionAlreadyEnded)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs("completed", 1800, endTime, session.ID, session.UserID, "active").
			WillReturnError(errors.New("db error"))
		_, err := repo.Complete(ctx, session.ID, session.UserID, 1800, endTime)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrSessionAlreadyEnded)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdateSessionNotes(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSessionsRepo(conn)
	session := testSession(uuid.New())
	session.Notes = "chapter 3"
	query := regexp.QuoteMeta(`UPDATE study_sessions SET notes = $1, updated_at = NOW()`)
	conn.ExpectQuery(query).WithArgs("chapter 3", session.ID).
		WillReturnRows(sessionRow(pgxmock.NewRows(sessionCols), session))
	res, err := repo.UpdateNotes(ctx, session.ID, "chapter 3")
	require.NoError(t, err)
	assert.Equal(t, "chapter 3", res.Notes)

	conn.ExpectQuery(query).WithArgs("chapter 3", session.ID).WillReturnError(pgx.ErrNoRows)
	_, err = repo.UpdateNotes(ctx, session.ID, "chapter 3")
	assert.ErrorIs(t, err, errorvalues.ErrSessionNotFound)
}

func TestListSessions(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewSessionsRepo(conn)
	uid := uuid.New()
	first, second := testSession(uid), testSession(uid)
	t.Run("by user", func(t *testing.T) {
		rows := pgxmock.NewRows(sessionCols)
		sessionRow(rows, first)
		sessionRow(rows, second)
		conn.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC LIMIT $2 OFFSET $3;`)).
			WithArgs(uid, 10, 20).WillReturnRows(rows)
		res, err := repo.GetByUserID(ctx, uid, 10, 20)
		require.NoError(t, err)
		assert.Equal(t, []*entity.StudySession{first, second}, res)
	})
	t.Run("completed in range", func(t *testing.T) {
		from := time.Now().AddDate(0, 0, -7)
		to := time.Now()
		conn.ExpectQuery(regexp.QuoteMeta(`AND start_time >= $3 AND start_time <= $4`)).
			WithArgs(uid, "completed", from, to).
			WillReturnRows(pgxmock.NewRows(sessionCols))
		res, err := repo.GetCompletedInRange(ctx, uid, from, to)
		require.NoError(t, err)
		assert.Empty(t, res)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`FROM study_sessions`)).
			WithArgs(uid, 10, 0).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, uid, 10, 0)
		assert.Error(t, err)
	})
}

func TestDeleteSession(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewSessionsRepo(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM study_sessions WHERE id = $1;`)
	conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.Delete(context.Background(), id))
	conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), id), errorvalues.ErrSessionNotFound)
}
