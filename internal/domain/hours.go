package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BusinessHours is the operating schedule resolved for a single date,
// either from a per-date override (holidays) or the weekly default.
// Open and close times are "HH:MM" strings in the facility's local day.
type BusinessHours struct {
	OpenTime    string
	CloseTime   string
	Closed      bool
	Holiday     bool
	HolidayName string
}

// HasHours reports whether an open/close range is configured at all.
func (h BusinessHours) HasHours() bool {
	return h.OpenTime != "" && h.CloseTime != ""
}

// OpenAt anchors the open time onto the given date.
func (h BusinessHours) OpenAt(date time.Time) (time.Time, error) {
	return clockOn(date, h.OpenTime)
}

// CloseAt anchors the close time onto the given date.
func (h BusinessHours) CloseAt(date time.Time) (time.Time, error) {
	return clockOn(date, h.CloseTime)
}

// clockOn combines a calendar date with an "HH:MM" clock string.
func clockOn(date time.Time, clock string) (time.Time, error) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("parse clock %q: want HH:MM", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: hour: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: minute: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("parse clock %q: out of range", clock)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}
