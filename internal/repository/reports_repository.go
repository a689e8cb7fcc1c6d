package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/studyflow/internal/error_values"
	"github.com/limbo/studyflow/pkg/entity"
)

const reportColumns = `id, user_id, session_id, report_type, title, content, total_study_time, sessions_completed,
	subjects_breakdown, streak_at_generation, start_date, end_date, generated_at, created_at`

type ReportsRepository struct {
	conn Querier
}

func NewReportsRepo(conn PgConnection) *ReportsRepository {
	mustPing(conn, "reportsRepo")
	return &ReportsRepository{
		conn: conn,
	}
}

func scanReport(row scanner) (*entity.Report, error) {
	var (
		r          entity.Report
		reportType string
		breakdown  []byte
	)
	err := row.Scan(
		&r.ID, &r.UserID, &r.SessionID, &reportType, &r.Title, &r.Content,
		&r.TotalStudyTime, &r.SessionsCompleted, &breakdown, &r.StreakAtGeneration,
		&r.StartDate, &r.EndDate, &r.GeneratedAt, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.ReportType = entity.ReportType(reportType)
	r.SubjectsBreakdown = make(map[string]int)
	if len(breakdown) > 0 {
		if err = sonic.Unmarshal(breakdown, &r.SubjectsBreakdown); err != nil {
			return nil, errors.New("unmarshalling subjects breakdown error: " + err.Error())
		}
	}
	return &r, nil
}

func (rr *ReportsRepository) Create(ctx context.Context, report *entity.Report) (*entity.Report, error) {
	if report == nil {
		return nil, errors.New("report is nil")
	}
	if !report.ValidWindow() {
		return nil, errorvalues.ErrInvalidDateRange
	}
	breakdown := report.SubjectsBreakdown
	if breakdown == nil {
		breakdown = map[string]int{}
	}
	rawBreakdown, err := sonic.ConfigStd.Marshal(breakdown)
	if err != nil {
		return nil, errors.New("marshalling subjects breakdown error: " + err.Error())
	}
	row := rr.conn.QueryRow(ctx, `INSERT INTO reports (user_id, session_id, report_type, title, content, total_study_time,
		sessions_completed, subjects_breakdown, streak_at_generation, start_date, end_date, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING `+reportColumns+`;`,
		report.UserID,
		report.SessionID,
		string(report.ReportType),
		report.Title,
		report.Content,
		report.TotalStudyTime,
		report.SessionsCompleted,
		rawBreakdown,
		report.StreakAtGeneration,
		report.StartDate,
		report.EndDate,
		report.GeneratedAt,
	)
	created, err := scanReport(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on session reports
			case "23505":
				return nil, errorvalues.ErrSessionReportExists
			// Check violation on date window
			case "23514":
				return nil, errorvalues.ErrInvalidDateRange
			}
		}
		return nil, errors.New("creating report db error: " + err.Error())
	}
	return created, nil
}

func (rr *ReportsRepository) GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Report, error) {
	row := rr.conn.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1 AND user_id = $2;`, id, uid)
	r, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReportNotFound
		}
		return nil, errors.New("getting report by id error: " + err.Error())
	}
	return r, nil
}

func (rr *ReportsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Report, error) {
	rows, err := rr.conn.Query(ctx, `SELECT `+reportColumns+` FROM reports WHERE user_id = $1 ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting reports by uid error: " + err.Error())
	}
	defer rows.Close()
	reports := make([]*entity.Report, 0)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, errors.New("unmarshalling report error: " + err.Error())
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning reports: " + err.Error())
	}
	return reports, nil
}

func (rr *ReportsRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM reports WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("error deleting report: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReportNotFound
	}
	return nil
}
