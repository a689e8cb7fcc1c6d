package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
)

// Validation
var (
	ErrValidation         = errors.New("validation error")
	ErrEmptyNotes         = errors.New("report text is required")
	ErrInvalidReportType  = errors.New("invalid report type")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrNoSessionsInPeriod = errors.New("no completed study sessions found for this period")
)

// Ownership and existence
var (
	ErrSessionNotFound = errors.New("study session not found")
	ErrReportNotFound  = errors.New("report not found")
	ErrStreakNotFound  = errors.New("streak not found")
	ErrWrongOwner      = errors.New("entity has different owner")
)

// State transitions
var (
	ErrSessionAlreadyEnded = errors.New("session already ended")
	ErrSessionReportExists = errors.New("session already has a report")
)
