package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"photosite/internal/domain"
	"photosite/internal/pkg/validator"
	"photosite/internal/schedule"
)

// Service is the single admission path for bookings. Every entry point —
// the public booking form and the admin create-booking flow — funnels
// through AdmitBooking, so the validation rules cannot drift apart.
type Service struct {
	store   BookingStore
	windows WindowStore
	orch    *Orchestrator
	policy  schedule.Policy

	now func() time.Time
}

func NewService(store BookingStore, windows WindowStore, orch *Orchestrator, policy schedule.Policy) *Service {
	return &Service{
		store:   store,
		windows: windows,
		orch:    orch,
		policy:  policy,
		now:     time.Now,
	}
}

// AdmitBooking validates the request against the slot policy and the
// current store state, then hands the admitted booking to the orchestrator
// for the external-effect chain. Each rejection carries a distinct sentinel.
func (s *Service) AdmitBooking(ctx context.Context, req AdmitBookingRequest) (*BookingResult, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	selected := strings.TrimSpace(req.SelectedTime)

	if name == "" || email == "" || selected == "" {
		return nil, ErrMissingFields
	}
	if !validator.IsEmail(email) {
		return nil, ErrInvalidEmail
	}

	start, err := time.Parse(time.RFC3339, selected)
	if err != nil {
		return nil, ErrInvalidTime
	}
	start = start.UTC()

	if !start.After(s.now()) {
		return nil, ErrPastTime
	}

	civil := start.In(s.policy.Location)
	if civil.Weekday() != s.policy.Weekday {
		return nil, ErrInvalidDay
	}
	if civil.Hour() < s.policy.OpenHour || civil.Hour() >= s.policy.CloseHour {
		return nil, ErrOutsideHours
	}

	// The selected instant must be an exact slot boundary; off-grid times
	// are rejected here rather than per endpoint.
	var slot *schedule.Slot
	for _, candidate := range schedule.Generate(start, s.policy) {
		if candidate.Start.Equal(start) {
			c := candidate
			slot = &c
			break
		}
	}
	if slot == nil {
		return nil, ErrOffGrid
	}

	// Advisory availability check; the authoritative one is the store's
	// conditional insert inside the orchestrator.
	statuses, err := s.resolve(ctx, civil)
	if err != nil {
		return nil, err
	}
	for _, st := range statuses {
		if st.Start.Equal(slot.Start) && !st.Available {
			return nil, ErrSlotTaken
		}
	}

	b := &domain.Booking{
		ID:         uuid.NewString(),
		GuestName:  name,
		GuestEmail: email,
		StartTime:  slot.Start,
		EndTime:    slot.End,
		Message:    strings.TrimSpace(req.Message),
		CreatedAt:  s.now().UTC(),
	}

	return s.orch.Finalize(ctx, b)
}

// GetSlots resolves the canonical slot grid for a civil date ("2006-01-02")
// against current bookings and availability windows.
func (s *Service) GetSlots(ctx context.Context, dateStr string) ([]schedule.SlotStatus, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, s.policy.Location)
	if err != nil {
		return nil, ErrInvalidTime
	}
	return s.resolve(ctx, day)
}

// CountAvailable reports how many slots remain open on the date.
func (s *Service) CountAvailable(ctx context.Context, dateStr string) (int, error) {
	statuses, err := s.GetSlots(ctx, dateStr)
	if err != nil {
		return 0, err
	}
	return schedule.CountAvailable(statuses), nil
}

// ListBookingsForDate returns bookings touching the civil date.
func (s *Service) ListBookingsForDate(ctx context.Context, dateStr string) ([]domain.Booking, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, s.policy.Location)
	if err != nil {
		return nil, ErrInvalidTime
	}
	dayStart, dayEnd := dayBounds(day)
	return s.store.ForDate(ctx, dayStart, dayEnd)
}

func (s *Service) ListBookings(ctx context.Context, futureOnly bool) ([]domain.Booking, error) {
	if futureOnly {
		return s.store.Future(ctx, s.now())
	}
	return s.store.All(ctx)
}

func (s *Service) resolve(ctx context.Context, day time.Time) ([]schedule.SlotStatus, error) {
	dayStart, dayEnd := dayBounds(day)

	bookings, err := s.store.ForDate(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	windows, err := s.windows.ForDate(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	return schedule.Resolve(day, s.policy, bookings, windows), nil
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	year, month, date := day.Date()
	start := time.Date(year, month, date, 0, 0, 0, 0, day.Location())
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}
