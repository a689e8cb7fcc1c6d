package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/studyflow/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=6,max=72"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type StartSessionRequest struct {
	Subject         string `validate:"notblank,max=200"`
	Topic           string `validate:"notblank,max=200"`
	PlannedDuration int    `validate:"gte=1,lte=2147483647"`
}

type EndSessionRequest struct {
	SessionID uuid.UUID
	// Seconds reported by client timer, nil means 0
	ElapsedTime *int
}

type EndSessionResult struct {
	Session *entity.StudySession
	Streak  *entity.Streak
	// Set when session had notes and report was stored
	Report *entity.Report
	// Report derivation failure. Session is completed anyway
	ReportErr error
}

type StudySessionsServiceI interface {
	// Creates active session owned by uid
	StartSession(ctx context.Context, uid uuid.UUID, req StartSessionRequest) (*entity.StudySession, error)
	// Completes session exactly once, touches streak and derives session report from notes
	EndSession(ctx context.Context, uid uuid.UUID, req EndSessionRequest) (*EndSessionResult, error)
	SaveNotes(ctx context.Context, sessionID, uid uuid.UUID, notes string) (*entity.StudySession, error)
	GetUserSessions(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.StudySession, error)
	GetSession(ctx context.Context, sessionID, uid uuid.UUID) (*entity.StudySession, error)
	DeleteSession(ctx context.Context, sessionID, uid uuid.UUID) error
}

type StreakServiceI interface {
	// Zero summary when user has no streak yet
	GetStreak(ctx context.Context, uid uuid.UUID) (*entity.StreakSummary, error)
	// Touches streak for current day
	TouchToday(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
}

type SessionReportDeriverI interface {
	// Stores session report when session has notes. Returns nil report otherwise
	DeriveFromSession(ctx context.Context, session *entity.StudySession) (*entity.Report, error)
}

type GenerateReportRequest struct {
	Type entity.ReportType
	// Bounds for custom reports: RFC 3339 timestamp or YYYY-MM-DD
	StartDate string
	EndDate   string
}

type ReportRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type ReportStats struct {
	// Total divided by 60 with two decimals, kept as the clients expect it
	Hours             string         `json:"hours"`
	Minutes           int            `json:"minutes"`
	SubjectsBreakdown map[string]int `json:"subjectsBreakdown"`
	Range             ReportRange    `json:"range"`
	AverageSession    float64        `json:"averageSession"`
	MedianSession     float64        `json:"medianSession"`
	LongestSession    int            `json:"longestSession"`
}

type GeneratedReport struct {
	Report *entity.Report `json:"report"`
	Stats  ReportStats    `json:"stats"`
}

type ReportsServiceI interface {
	// Aggregates completed sessions of the window into new report
	GenerateReport(ctx context.Context, uid uuid.UUID, req GenerateReportRequest) (*GeneratedReport, error)
	GetUserReports(ctx context.Context, uid uuid.UUID) ([]*entity.Report, error)
	GetReport(ctx context.Context, id, uid uuid.UUID) (*entity.Report, error)
	DeleteReport(ctx context.Context, id, uid uuid.UUID) error
}
