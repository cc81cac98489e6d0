package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"photosite/internal/domain"
)

var (
	ErrWindowInvalid  = errors.New("window must have a valid kind and start before end")
	ErrWindowWeekdays = errors.New("recurring window needs at least one valid weekday")
	ErrWindowNotFound = errors.New("availability window not found")
)

// WindowStore owns availability overrides.
type WindowStore interface {
	Create(ctx context.Context, w *domain.AvailabilityWindow) error
	All(ctx context.Context) ([]domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id int64) error
}

type WindowService struct {
	store WindowStore
	now   func() time.Time
}

func NewWindowService(store WindowStore) *WindowService {
	return &WindowService{store: store, now: time.Now}
}

var weekdayNames = map[string]bool{
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

func (s *WindowService) Create(ctx context.Context, req CreateWindowRequest) (*domain.AvailabilityWindow, error) {
	kind := domain.WindowKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if kind != domain.WindowOpen && kind != domain.WindowBlocked {
		return nil, ErrWindowInvalid
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrWindowInvalid
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrWindowInvalid
	}
	if !start.Before(end) {
		return nil, ErrWindowInvalid
	}

	weekdays := normalizeWeekdays(req.Weekdays)
	if req.Recurring && weekdays == "" {
		return nil, ErrWindowWeekdays
	}

	w := &domain.AvailabilityWindow{
		Kind:      kind,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		Recurring: req.Recurring,
		Weekdays:  weekdays,
		Notes:     strings.TrimSpace(req.Notes),
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WindowService) List(ctx context.Context) ([]domain.AvailabilityWindow, error) {
	return s.store.All(ctx)
}

func (s *WindowService) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrWindowNotFound
	}
	return err
}

func normalizeWeekdays(in []string) string {
	var out []string
	for _, d := range in {
		d = strings.ToLower(strings.TrimSpace(d))
		if weekdayNames[d] {
			out = append(out, d)
		}
	}
	return strings.Join(out, ",")
}
