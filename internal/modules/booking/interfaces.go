package booking

import (
	"context"
	"time"

	"photosite/internal/domain"
	"photosite/internal/provider/gcal"
	"photosite/internal/provider/zoom"
)

// BookingStore owns booking records. InsertIfFree is the single mutation
// path and must be atomic: insert unless an overlapping booking exists.
type BookingStore interface {
	InsertIfFree(ctx context.Context, b *domain.Booking) error
	IsSlotFree(ctx context.Context, start, end time.Time) (bool, error)
	All(ctx context.Context) ([]domain.Booking, error)
	Future(ctx context.Context, now time.Time) ([]domain.Booking, error)
	ForDate(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Booking, error)
}

// WindowStore supplies availability overrides for a civil day.
type WindowStore interface {
	ForDate(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.AvailabilityWindow, error)
}

// MeetingProvider creates the video meeting for an admitted booking.
type MeetingProvider interface {
	CreateMeeting(ctx context.Context, topic string, start time.Time, durationMin int) (*zoom.Meeting, error)
	DeleteMeeting(ctx context.Context, meetingID int64) error
}

// CalendarProvider creates the invite event; failures are non-fatal.
type CalendarProvider interface {
	CreateEvent(ctx context.Context, in gcal.EventInput) (*gcal.Event, error)
}

// EventPublisher pushes domain events to connected admin dashboards.
type EventPublisher interface {
	Publish(event string, payload any)
}
