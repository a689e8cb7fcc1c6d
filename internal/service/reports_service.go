package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/internal/repository"
	"github.com/limbo/studyflow/pkg/datebucket"
	"github.com/limbo/studyflow/pkg/entity"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type ReportsService struct {
	sessions repository.SessionsRepositoryI
	streaks  repository.StreaksRepositoryI
	reports  repository.ReportsRepositoryI
	offset   datebucket.Offset
	now      func() time.Time
}

func NewReportsService(
	sessionsRepo repository.SessionsRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	reportsRepo repository.ReportsRepositoryI,
	offset datebucket.Offset,
) *ReportsService {
	if sessionsRepo == nil || streaksRepo == nil || reportsRepo == nil {
		log.Fatal("on reports service provided nil repos")
	}
	return &ReportsService{
		sessions: sessionsRepo,
		streaks:  streaksRepo,
		reports:  reportsRepo,
		offset:   offset,
		now:      time.Now,
	}
}

// SetClock replaces time source. Used by tests
func (rs *ReportsService) SetClock(now func() time.Time) {
	rs.now = now
}

func (rs *ReportsService) DeriveFromSession(ctx context.Context, session *entity.StudySession) (*entity.Report, error) {
	if session == nil || strings.TrimSpace(session.Notes) == "" {
		return nil, nil
	}
	sessionID := session.ID
	report, err := rs.reports.Create(ctx, &entity.Report{
		UserID:            session.UserID,
		SessionID:         &sessionID,
		ReportType:        entity.ReportSession,
		Title:             fmt.Sprintf("%s - %s", session.Subject, session.Topic),
		Content:           session.Notes,
		SubjectsBreakdown: map[string]int{},
		GeneratedAt:       rs.now(),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionReportExists) {
			return nil, err
		}
		return nil, errors.New("reports repository error: " + err.Error())
	}
	return report, nil
}

func (rs *ReportsService) GenerateReport(ctx context.Context, uid uuid.UUID, req GenerateReportRequest) (*GeneratedReport, error) {
	from, to, err := rs.window(req)
	if err != nil {
		return nil, err
	}
	sessions, err := rs.sessions.GetCompletedInRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("sessions repository error: " + err.Error())
	}
	if len(sessions) == 0 {
		return nil, errorvalues.ErrNoSessionsInPeriod
	}

	total := 0
	breakdown := make(map[string]int)
	for _, s := range sessions {
		total += s.ActualDuration
		breakdown[s.Subject] += s.ActualDuration
	}
	streakAt := 0
	streak, err := rs.streaks.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if streak != nil {
		streakAt = streak.CurrentStreak
	}

	report, err := rs.reports.Create(ctx, &entity.Report{
		UserID:             uid,
		ReportType:         req.Type,
		TotalStudyTime:     total,
		SessionsCompleted:  len(sessions),
		SubjectsBreakdown:  breakdown,
		StreakAtGeneration: streakAt,
		StartDate:          &from,
		EndDate:            &to,
		GeneratedAt:        rs.now(),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDateRange) {
			return nil, err
		}
		return nil, errors.New("reports repository error: " + err.Error())
	}
	return &GeneratedReport{
		Report: report,
		Stats:  buildStats(sessions, total, breakdown, from, to),
	}, nil
}

// window returns inclusive bounds of the report period
func (rs *ReportsService) window(req GenerateReportRequest) (time.Time, time.Time, error) {
	now := rs.now()
	switch req.Type {
	case entity.ReportWeekly:
		return now.AddDate(0, 0, -7), now, nil
	case entity.ReportMonthly:
		return now.AddDate(0, -1, 0), now, nil
	case entity.ReportCustom:
		if req.StartDate == "" || req.EndDate == "" {
			return time.Time{}, time.Time{}, errors.Join(errorvalues.ErrValidation, errors.New("custom report requires startDate and endDate"))
		}
		from, err := rs.parseBound(req.StartDate, false)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to, err := rs.parseBound(req.EndDate, true)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, errorvalues.ErrInvalidDateRange
		}
		return from, to, nil
	default:
		return time.Time{}, time.Time{}, errorvalues.ErrInvalidReportType
	}
}

// parseBound accepts RFC 3339 or a bare day. A bare end day covers the whole
// day in the configured offset.
func (rs *ReportsService) parseBound(value string, end bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	start, err := datebucket.Start(value, rs.offset)
	if err != nil {
		return time.Time{}, errors.Join(errorvalues.ErrValidation, fmt.Errorf("invalid date %q", value))
	}
	if end {
		return start.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return start, nil
}

func buildStats(sessions []*entity.StudySession, total int, breakdown map[string]int, from, to time.Time) ReportStats {
	durations := make([]float64, 0, len(sessions))
	for _, s := range sessions {
		durations = append(durations, float64(s.ActualDuration))
	}
	mean, _ := stats.Mean(durations)
	mean, _ = stats.Round(mean, 2)
	median, _ := stats.Median(durations)
	longest, _ := stats.Max(durations)
	return ReportStats{
		Hours:             decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(60)).StringFixed(2),
		Minutes:           total,
		SubjectsBreakdown: breakdown,
		Range: ReportRange{
			StartDate: from,
			EndDate:   to,
		},
		AverageSession: mean,
		MedianSession:  median,
		LongestSession: int(longest),
	}
}

func (rs *ReportsService) GetUserReports(ctx context.Context, uid uuid.UUID) ([]*entity.Report, error) {
	reports, err := rs.reports.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("reports repository error: " + err.Error())
	}
	return reports, nil
}

func (rs *ReportsService) GetReport(ctx context.Context, id, uid uuid.UUID) (*entity.Report, error) {
	report, err := rs.reports.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReportNotFound) {
			return nil, err
		}
		return nil, errors.New("reports repository error: " + err.Error())
	}
	return report, nil
}

func (rs *ReportsService) DeleteReport(ctx context.Context, id, uid uuid.UUID) error {
	err := rs.reports.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReportNotFound) {
			return err
		}
		return errors.New("reports repository error: " + err.Error())
	}
	return nil
}
