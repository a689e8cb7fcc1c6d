package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	// Reserved, nothing transitions into it
	SessionPaused SessionStatus = "paused"
)

type StudySession struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"uid"`
	Subject         string        `json:"subject"`
	Topic           string        `json:"topic"`
	PlannedDuration int           `json:"plannedDuration"`
	ActualDuration  int           `json:"actualDuration"`
	StartTime       time.Time     `json:"startTime"`
	EndTime         *time.Time    `json:"endTime"`
	Status          SessionStatus `json:"status"`
	Notes           string        `json:"notes"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type ReportType string

const (
	ReportSession ReportType = "session"
	ReportWeekly  ReportType = "weekly"
	ReportMonthly ReportType = "monthly"
	ReportCustom  ReportType = "custom"
)

// Reports of these types are generated on client request
func (rt ReportType) IsAggregate() bool {
	switch rt {
	case ReportWeekly, ReportMonthly, ReportCustom:
		return true
	}
	return false
}

type Report struct {
	ID                 uuid.UUID      `json:"id"`
	UserID             uuid.UUID      `json:"uid"`
	SessionID          *uuid.UUID     `json:"sessionId"`
	ReportType         ReportType     `json:"reportType"`
	Title              string         `json:"title,omitempty"`
	Content            string         `json:"content,omitempty"`
	TotalStudyTime     int            `json:"totalStudyTime"`
	SessionsCompleted  int            `json:"sessionsCompleted"`
	SubjectsBreakdown  map[string]int `json:"subjectsBreakdown"`
	StreakAtGeneration int            `json:"streakAtGeneration"`
	StartDate          *time.Time     `json:"startDate"`
	EndDate            *time.Time     `json:"endDate"`
	GeneratedAt        time.Time      `json:"generatedAt"`
	CreatedAt          time.Time      `json:"created_at"`
}

// ValidWindow reports whether the end bound is not before the start bound.
func (r *Report) ValidWindow() bool {
	if r.StartDate == nil || r.EndDate == nil {
		return true
	}
	return !r.EndDate.Before(*r.StartDate)
}

type Streak struct {
	UserID         uuid.UUID `json:"uid"`
	LastActiveDate string    `json:"lastActiveDate"`
	CurrentStreak  int       `json:"currentStreak"`
	HighestStreak  int       `json:"highestStreak"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewStreak is the record created by the first ever touch.
func NewStreak(uid uuid.UUID, today string) *Streak {
	return &Streak{
		UserID:         uid,
		LastActiveDate: today,
		CurrentStreak:  1,
		HighestStreak:  1,
	}
}

// Touch advances the streak for activity on day today; yesterday must be the
// bucket right before it. Returns false when the record was already touched
// that day and nothing changed.
func (s *Streak) Touch(today, yesterday string) bool {
	if s.LastActiveDate == today {
		return false
	}
	if s.LastActiveDate == yesterday {
		s.CurrentStreak++
	} else {
		// Missed a day, or last active date is ahead of today
		s.CurrentStreak = 1
	}
	s.HighestStreak = max(s.HighestStreak, s.CurrentStreak)
	s.LastActiveDate = today
	return true
}

type StreakSummary struct {
	CurrentStreak int     `json:"currentStreak"`
	HighestStreak int     `json:"highestStreak"`
	LastActive    *string `json:"lastActiveDate"`
}

func (s *Streak) Summary() *StreakSummary {
	last := s.LastActiveDate
	return &StreakSummary{
		CurrentStreak: s.CurrentStreak,
		HighestStreak: s.HighestStreak,
		LastActive:    &last,
	}
}
