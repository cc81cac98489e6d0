package schedule

import "time"

// Policy describes the bookable business-hour grid. Consultations run on a
// single weekday only; that is a business constraint, not a placeholder.
type Policy struct {
	Weekday   time.Weekday
	OpenHour  int
	CloseHour int
	SlotLen   time.Duration
	Location  *time.Location
}

// DefaultPolicy returns the studio schedule: Wednesdays, 09:00-17:00,
// one-hour slots, anchored to the studio's timezone.
func DefaultPolicy(loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	return Policy{
		Weekday:   time.Wednesday,
		OpenHour:  9,
		CloseHour: 17,
		SlotLen:   time.Hour,
		Location:  loc,
	}
}
