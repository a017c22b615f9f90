package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidClock is returned for times not in 24-hour "HH:MM" form.
var ErrInvalidClock = errors.New("time must be HH:MM")

// Hours is the shop's daily [open, close) window in shop-local time.
// A window with close before open spans midnight.
type Hours struct {
	// Open and Close are minutes since midnight.
	Open  int
	Close int
	Loc   *time.Location
}

// ParseHours builds Hours from "HH:MM" bounds.
func ParseHours(open, close string, loc *time.Location) (Hours, error) {
	o, err := ParseClock(open)
	if err != nil {
		return Hours{}, fmt.Errorf("opening time %q: %w", open, err)
	}
	c, err := ParseClock(close)
	if err != nil {
		return Hours{}, fmt.Errorf("closing time %q: %w", close, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return Hours{Open: o, Close: c, Loc: loc}, nil
}

// Contains reports whether the minute of day falls inside the window.
func (h Hours) Contains(minute int) bool {
	if h.Open <= h.Close {
		return minute >= h.Open && minute < h.Close
	}
	return minute >= h.Open || minute < h.Close
}

// OpenAt reports whether the shop is open at t.
func (h Hours) OpenAt(t time.Time) bool {
	return h.Contains(MinuteOfDay(h.Local(t)))
}

// Local converts t to shop-local time.
func (h Hours) Local(t time.Time) time.Time {
	if h.Loc == nil {
		return t.UTC()
	}
	return t.In(h.Loc)
}

// String renders the window as "08:00–22:00".
func (h Hours) String() string {
	return FormatClock(h.Open) + "–" + FormatClock(h.Close)
}

// ParseClock parses a strict 24-hour "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil || len(s) != 5 {
		return 0, ErrInvalidClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// MinuteOfDay returns t's minutes since midnight in t's own location.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
