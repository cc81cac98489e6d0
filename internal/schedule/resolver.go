package schedule

import (
	"time"

	"photosite/internal/domain"
)

// SlotStatus is a generated slot annotated with its current availability.
type SlotStatus struct {
	Slot
	Available bool `json:"available"`
}

// Resolve marks each canonical slot for the date available or not, given the
// existing bookings and any explicit availability windows. Identical inputs
// always produce identical output.
//
// A slot is unavailable when a booking's [start,end) overlaps it, when a
// blocked window covers it, or — if any open windows apply to the date —
// when no open window fully contains it.
func Resolve(ref time.Time, p Policy, bookings []domain.Booking, windows []domain.AvailabilityWindow) []SlotStatus {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	slots := Generate(ref, p)
	day := ref.In(loc)

	var blocked, open [][2]time.Time
	for i := range windows {
		w := &windows[i]
		start, end, ok := windowInterval(w, day, loc)
		if !ok {
			continue
		}
		switch w.Kind {
		case domain.WindowBlocked:
			blocked = append(blocked, [2]time.Time{start, end})
		case domain.WindowOpen:
			open = append(open, [2]time.Time{start, end})
		}
	}

	out := make([]SlotStatus, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotStatus{
			Slot:      s,
			Available: slotFree(s, bookings, blocked, open),
		})
	}
	return out
}

// CountAvailable returns how many of the resolved slots remain open.
func CountAvailable(slots []SlotStatus) int {
	n := 0
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}

func slotFree(s Slot, bookings []domain.Booking, blocked, open [][2]time.Time) bool {
	for i := range bookings {
		if Overlaps(s.Start, s.End, bookings[i].StartTime, bookings[i].EndTime) {
			return false
		}
	}
	for _, b := range blocked {
		if Overlaps(s.Start, s.End, b[0], b[1]) {
			return false
		}
	}
	if len(open) > 0 {
		for _, o := range open {
			if !s.Start.Before(o[0]) && !s.End.After(o[1]) {
				return true
			}
		}
		return false
	}
	return true
}

// windowInterval projects a window onto the given civil day. Recurring
// windows carry only a time-of-day pattern and match by weekday tag;
// one-off windows are absolute intervals and must touch the day at all.
func windowInterval(w *domain.AvailabilityWindow, day time.Time, loc *time.Location) (time.Time, time.Time, bool) {
	if w.Recurring {
		if !w.AppliesOn(day.Weekday()) {
			return time.Time{}, time.Time{}, false
		}
		ws := w.StartTime.In(loc)
		we := w.EndTime.In(loc)
		year, month, date := day.Date()
		start := time.Date(year, month, date, ws.Hour(), ws.Minute(), 0, 0, loc)
		end := time.Date(year, month, date, we.Hour(), we.Minute(), 0, 0, loc)
		if !end.After(start) {
			return time.Time{}, time.Time{}, false
		}
		return start.UTC(), end.UTC(), true
	}

	year, month, date := day.Date()
	dayStart := time.Date(year, month, date, 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)
	if !Overlaps(w.StartTime, w.EndTime, dayStart.UTC(), dayEnd.UTC()) {
		return time.Time{}, time.Time{}, false
	}
	return w.StartTime.UTC(), w.EndTime.UTC(), true
}
