package schedule

import "time"

// Slot is a derived, non-persisted candidate booking interval. Start and End
// are UTC instants built from civil time in the policy zone, never ambiguous
// local strings.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Generate produces the canonical ordered slot sequence for the civil date
// of ref in the policy zone. Pure and deterministic: no I/O, no clock reads.
// Dates that do not fall on the allowed weekday yield an empty sequence.
func Generate(ref time.Time, p Policy) []Slot {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}

	day := ref.In(loc)
	if day.Weekday() != p.Weekday {
		return []Slot{}
	}

	year, month, date := day.Date()
	open := time.Date(year, month, date, p.OpenHour, 0, 0, 0, loc)
	close := time.Date(year, month, date, p.CloseHour, 0, 0, 0, loc)

	slots := make([]Slot, 0, p.CloseHour-p.OpenHour)
	for cur := open; !cur.Add(p.SlotLen).After(close); cur = cur.Add(p.SlotLen) {
		end := cur.Add(p.SlotLen)
		// A DST transition can push a slot's end across midnight; such a
		// slot would leak into a disallowed weekday, so it is dropped
		// rather than shifted.
		if end.In(loc).Day() != cur.In(loc).Day() {
			continue
		}
		slots = append(slots, Slot{Start: cur.UTC(), End: end.UTC()})
	}
	return slots
}

// Overlaps is the half-open interval test shared by the resolver and the
// booking store: [aStart,aEnd) intersects [bStart,bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
