// Package datebucket maps instants to calendar-day labels ("YYYY-MM-DD") in a
// fixed UTC offset. Streak logic compares these labels as strings only.
package datebucket

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02"

var ErrInvalidOffset = errors.New("invalid utc offset")

type Offset struct {
	seconds int
	loc     *time.Location
}

// UTC is the zero offset.
var UTC = NewOffset(0)

func NewOffset(seconds int) Offset {
	return Offset{
		seconds: seconds,
		loc:     time.FixedZone(formatOffset(seconds), seconds),
	}
}

// ParseOffset accepts "+05:30", "-0800", "+3" or "Z".
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "Z" || s == "z" {
		return UTC, nil
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	body := strings.ReplaceAll(s[1:], ":", "")
	var hh, mm string
	switch len(body) {
	case 1, 2:
		hh = body
		mm = "0"
	case 4:
		hh, mm = body[:2], body[2:]
	default:
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h > 14 {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m > 59 {
		return Offset{}, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	return NewOffset(sign * (h*3600 + m*60)), nil
}

func (o Offset) Location() *time.Location {
	if o.loc == nil {
		return time.UTC
	}
	return o.loc
}

func (o Offset) Seconds() int {
	return o.seconds
}

func (o Offset) String() string {
	return formatOffset(o.seconds)
}

// Of returns the bucket containing t.
func Of(t time.Time, o Offset) string {
	return t.In(o.Location()).Format(Layout)
}

// Today returns the bucket for now.
func Today(now time.Time, o Offset) string {
	return Of(now, o)
}

// Yesterday returns the bucket preceding bucket.
func Yesterday(bucket string) (string, error) {
	d, err := time.Parse(Layout, bucket)
	if err != nil {
		return "", errors.New("parsing bucket error: " + err.Error())
	}
	return d.AddDate(0, 0, -1).Format(Layout), nil
}

// Start returns the first instant of bucket in the offset.
func Start(bucket string, o Offset) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, bucket, o.Location())
	if err != nil {
		return time.Time{}, errors.New("parsing bucket error: " + err.Error())
	}
	return t, nil
}

func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
