package service

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/pkg/datebucket"
	"github.com/limbo/studyflow/pkg/entity"
)

type StudySessionsService struct {
	tx       repository.TransactorI
	sessions repository.SessionsRepositoryI
	deriver  SessionReportDeriverI
	offset   datebucket.Offset
	now      func() time.Time
}

func NewStudySessionsService(
	tx repository.TransactorI,
	sessionsRepo repository.SessionsRepositoryI,
	deriver SessionReportDeriverI,
	offset datebucket.Offset,
) *StudySessionsService {
	if tx == nil || sessionsRepo == nil || deriver == nil {
		log.Fatal("on study sessions service provided nil dependencies")
	}
	return &StudySessionsService{
		tx:       tx,
		sessions: sessionsRepo,
		deriver:  deriver,
		offset:   offset,
		now:      time.Now,
	}
}

// SetClock replaces time source. Used by tests
func (ss *StudySessionsService) SetClock(now func() time.Time) {
	ss.now = now
}

func (ss *StudySessionsService) StartSession(ctx context.Context, uid uuid.UUID, req StartSessionRequest) (*entity.StudySession, error) {
	req.Subject = strings.TrimSpace(req.Subject)
	req.Topic = strings.TrimSpace(req.Topic)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	session, err := ss.sessions.Create(ctx, &entity.StudySession{
		UserID:          uid,
		Subject:         req.Subject,
		Topic:           req.Topic,
		PlannedDuration: req.PlannedDuration,
		Status:          entity.SessionActive,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}

// ownedSession loads session and checks that uid owns it
func (ss *StudySessionsService) ownedSession(ctx context.Context, sessionID, uid uuid.UUID) (*entity.StudySession, error) {
	session, err := ss.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	if session.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return session, nil
}

func (ss *StudySessionsService) EndSession(ctx context.Context, uid uuid.UUID, req EndSessionRequest) (*EndSessionResult, error) {
	elapsed := 0
	if req.ElapsedTime != nil {
		elapsed = *req.ElapsedTime
	}
	if elapsed < 0 || elapsed > math.MaxInt32 {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("elapsed time must be in [0, 2147483647] seconds"))
	}
	session, err := ss.ownedSession(ctx, req.SessionID, uid)
	if err != nil {
		return nil, err
	}
	if session.Status != entity.SessionActive {
		return nil, errorvalues.ErrSessionAlreadyEnded
	}

	now := ss.now()
	today := datebucket.Today(now, ss.offset)
	result := &EndSessionResult{}
	// Transition and streak commit together: only the caller whose
	// compare-and-swap succeeds gets to touch the streak
	err = ss.tx.InTx(ctx, func(repos repository.Repos) error {
		completed, err := repos.Sessions.Complete(ctx, session.ID, uid, elapsed, now)
		if err != nil {
			return err
		}
		streak, err := touchStreak(ctx, repos.Streaks, uid, today)
		if err != nil {
			return err
		}
		result.Session, result.Streak = completed, streak
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionAlreadyEnded) {
			return nil, errorvalues.ErrSessionAlreadyEnded
		}
		return nil, errors.New("ending session error: " + err.Error())
	}

	report, err := ss.deriver.DeriveFromSession(ctx, result.Session)
	if err != nil {
		result.ReportErr = err
	} else {
		result.Report = report
	}
	return result, nil
}

func (ss *StudySessionsService) SaveNotes(ctx context.Context, sessionID, uid uuid.UUID, notes string) (*entity.StudySession, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, errorvalues.ErrEmptyNotes
	}
	if _, err := ss.ownedSession(ctx, sessionID, uid); err != nil {
		return nil, err
	}
	session, err := ss.sessions.UpdateNotes(ctx, sessionID, notes)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return session, nil
}

func (ss *StudySessionsService) GetUserSessions(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.StudySession, error) {
	sessions, err := ss.sessions.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	return sessions, nil
}

func (ss *StudySessionsService) GetSession(ctx context.Context, sessionID, uid uuid.UUID) (*entity.StudySession, error) {
	return ss.ownedSession(ctx, sessionID, uid)
}

func (ss *StudySessionsService) DeleteSession(ctx context.Context, sessionID, uid uuid.UUID) error {
	if _, err := ss.ownedSession(ctx, sessionID, uid); err != nil {
		return err
	}
	err := ss.sessions.Delete(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return err
		}
		return errors.New("sessions repository error: " + err.Error())
	}
	return nil
}
