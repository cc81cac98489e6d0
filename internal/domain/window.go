package domain

import (
	"strings"
	"time"
)

type WindowKind string

const (
	WindowOpen    WindowKind = "open"
	WindowBlocked WindowKind = "blocked"
)

// AvailabilityWindow overrides the default business-hours policy for an
// interval. Open windows form the admissible superset when any exist for a
// date; blocked windows always exclude. A recurring window matches by
// weekday instead of calendar date.
type AvailabilityWindow struct {
	ID        int64      `json:"id"`
	Kind      WindowKind `json:"kind"`
	StartTime time.Time  `json:"start_time"`
	EndTime   time.Time  `json:"end_time"`
	Recurring bool       `json:"recurring"`
	Weekdays  string     `json:"weekdays,omitempty"` // comma-separated, e.g. "wednesday,friday"
	Notes     string     `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time  `json:"created_at"`
}

// AppliesOn reports whether the window is in effect on the given weekday.
func (w *AvailabilityWindow) AppliesOn(day time.Weekday) bool {
	if !w.Recurring {
		return true
	}
	name := strings.ToLower(day.String())
	for _, d := range strings.Split(w.Weekdays, ",") {
		if strings.TrimSpace(strings.ToLower(d)) == name {
			return true
		}
	}
	return false
}
