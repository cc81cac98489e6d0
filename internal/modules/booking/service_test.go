package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"photosite/internal/domain"
	"photosite/internal/provider/gcal"
	"photosite/internal/provider/zoom"
	"photosite/internal/schedule"
)

// Mock stores and providers

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) InsertIfFree(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingStore) IsSlotFree(ctx context.Context, start, end time.Time) (bool, error) {
	args := m.Called(ctx, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingStore) All(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingStore) Future(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingStore) ForDate(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockWindowStore struct {
	mock.Mock
}

func (m *MockWindowStore) ForDate(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.AvailabilityWindow, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityWindow), args.Error(1)
}

type MockMeetingProvider struct {
	mock.Mock
}

func (m *MockMeetingProvider) CreateMeeting(ctx context.Context, topic string, start time.Time, durationMin int) (*zoom.Meeting, error) {
	args := m.Called(ctx, topic, start, durationMin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*zoom.Meeting), args.Error(1)
}

func (m *MockMeetingProvider) DeleteMeeting(ctx context.Context, meetingID int64) error {
	args := m.Called(ctx, meetingID)
	return args.Error(0)
}

type MockCalendarProvider struct {
	mock.Mock
}

func (m *MockCalendarProvider) CreateEvent(ctx context.Context, in gcal.EventInput) (*gcal.Event, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gcal.Event), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

// Fixtures. 2026-09-02 is a Wednesday; "now" is the Tuesday before.

var (
	testNow       = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	wednesdayTen  = time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)
	wednesdayStr  = "2026-09-02T10:00:00Z"
	testPolicy    = schedule.DefaultPolicy(time.UTC)
	orchestraConf = OrchestratorConfig{
		PhotographerEmail: "photographer@example.com",
		Location:          time.UTC,
	}
)

func newTestService(store *MockBookingStore, windows *MockWindowStore, meetings *MockMeetingProvider, calendar *MockCalendarProvider, mailer *MockSender) *Service {
	orch := NewOrchestrator(store, meetings, calendar, mailer, nil, zap.NewNop(), orchestraConf)
	svc := NewService(store, windows, orch, testPolicy)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestAdmitBooking_MissingFields(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	tests := []struct {
		name string
		req  AdmitBookingRequest
	}{
		{"no name", AdmitBookingRequest{Email: "a@b.com", SelectedTime: wednesdayStr}},
		{"no email", AdmitBookingRequest{Name: "Jane", SelectedTime: wednesdayStr}},
		{"no time", AdmitBookingRequest{Name: "Jane", Email: "a@b.com"}},
		{"whitespace only", AdmitBookingRequest{Name: "  ", Email: "a@b.com", SelectedTime: wednesdayStr}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AdmitBooking(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestAdmitBooking_InvalidEmail(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	_, err := svc.AdmitBooking(context.Background(), AdmitBookingRequest{
		Name: "Jane", Email: "not-an-email", SelectedTime: wednesdayStr,
	})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestAdmitBooking_InvalidTime(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	_, err := svc.AdmitBooking(context.Background(), AdmitBookingRequest{
		Name: "Jane", Email: "jane@example.com", SelectedTime: "next wednesday",
	})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestAdmitBooking_PastTime(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	// The Wednesday before "now".
	_, err := svc.AdmitBooking(context.Background(), AdmitBookingRequest{
		Name: "Jane", Email: "jane@example.com", SelectedTime: "2026-08-26T10:00:00Z",
	})
	assert.ErrorIs(t, err, ErrPastTime)
}

func TestAdmitBooking_WrongWeekday(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	// A future Thursday at a valid business hour.
	_, err := svc.AdmitBooking(context.Background(), AdmitBookingRequest{
		Name: "Jane", Email: "jane@example.com", SelectedTime: "2026-09-03T10:00:00Z",
	})
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestAdmitBooking_OutsideBusinessHours(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	for _, ts := range []string{"2026-09-02T08:00:00Z", "2026-09-02T17:00:00Z", "2026-09-02T21:00:00Z"} {
		_, err := svc.AdmitBooking(context.Background(), AdmitBookingRequest{
			Name: "Jane", Email: "jane@example.com", SelectedTime: ts,
		})
		assert.ErrorIs(t, err, ErrOutsideHours, "time %s", ts)
	}
}

func TestAdmitBooking_OffGridTime(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	_, err := svc.AdmitBooking(context.Background(), AdmitBookingRequest{
		Name: "Jane", Email: "jane@example.com", SelectedTime: "2026-09-02T10:30:00Z",
	})
	assert.ErrorIs(t, err, ErrOffGrid)
}

func TestAdmitBooking_SlotAlreadyBooked(t *testing.T) {
	store := new(MockBookingStore)
	windows := new(MockWindowStore)
	svc := newTestService(store, windows, new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	existing := []domain.Booking{{
		ID:        "existing",
		StartTime: wednesdayTen,
		EndTime:   wednesdayTen.Add(time.Hour),
	}}
	store.On("ForDate", mock.Anything, mock.Anything, mock.Anything).Return(existing, nil)
	windows.On("ForDate", mock.Anything, mock.Anything, mock.Anything).Return([]domain.AvailabilityWindow{}, nil)

	_, err := svc.AdmitBooking(context.Background(), AdmitBookingRequest{
		Name: "Jane", Email: "jane@example.com", SelectedTime: wednesdayStr,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestAdmitBooking_Success(t *testing.T) {
	store := new(MockBookingStore)
	windows := new(MockWindowStore)
	meetings := new(MockMeetingProvider)
	calendar := new(MockCalendarProvider)
	mailer := new(MockSender)
	svc := newTestService(store, windows, meetings, calendar, mailer)

	store.On("ForDate", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Booking{}, nil)
	windows.On("ForDate", mock.Anything, mock.Anything, mock.Anything).Return([]domain.AvailabilityWindow{}, nil)
	meetings.On("CreateMeeting", mock.Anything, "Photography Consultation - Jane Doe", wednesdayTen, 60).
		Return(&zoom.Meeting{ID: 555, JoinURL: "https://zoom.us/j/555", StartURL: "https://zoom.us/s/555", Password: "pw"}, nil)
	store.On("InsertIfFree", mock.Anything, mock.Anything).Return(nil)
	calendar.On("CreateEvent", mock.Anything, mock.Anything).
		Return(&gcal.Event{ID: "ev1", HTMLLink: "https://calendar.google.com/event?eid=ev1"}, nil)
	mailer.On("Send", "jane@example.com", mock.Anything, mock.Anything).Return(nil)
	mailer.On("Send", "photographer@example.com", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.AdmitBooking(context.Background(), AdmitBookingRequest{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		SelectedTime: wednesdayStr,
		Message:      "Maternity shoot",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, wednesdayTen, result.Booking.StartTime)
	assert.Equal(t, wednesdayTen.Add(time.Hour), result.Booking.EndTime)
	assert.Equal(t, "555", result.Booking.MeetingID)
	assert.NotEmpty(t, result.Booking.ID)
	assert.NotEmpty(t, result.Meeting.JoinURL)
	assert.Equal(t, "https://calendar.google.com/event?eid=ev1", result.CalendarLink)

	store.AssertExpectations(t)
	meetings.AssertExpectations(t)
	mailer.AssertNumberOfCalls(t, "Send", 2)
}

func TestGetSlots_MarksBookedSlots(t *testing.T) {
	store := new(MockBookingStore)
	windows := new(MockWindowStore)
	svc := newTestService(store, windows, new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	existing := []domain.Booking{{
		ID:        "b1",
		StartTime: time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC),
	}}
	store.On("ForDate", mock.Anything, mock.Anything, mock.Anything).Return(existing, nil)
	windows.On("ForDate", mock.Anything, mock.Anything, mock.Anything).Return([]domain.AvailabilityWindow{}, nil)

	slots, err := svc.GetSlots(context.Background(), "2026-09-02")
	require.NoError(t, err)
	require.Len(t, slots, 8)
	assert.Equal(t, 7, schedule.CountAvailable(slots))

	count, err := svc.CountAvailable(context.Background(), "2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestGetSlots_BadDate(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	_, err := svc.GetSlots(context.Background(), "02-09-2026")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestListBookings(t *testing.T) {
	store := new(MockBookingStore)
	svc := newTestService(store, new(MockWindowStore), new(MockMeetingProvider), new(MockCalendarProvider), new(MockSender))

	all := []domain.Booking{{ID: "a"}, {ID: "b"}}
	future := []domain.Booking{{ID: "b"}}
	store.On("All", mock.Anything).Return(all, nil)
	store.On("Future", mock.Anything, testNow).Return(future, nil)

	got, err := svc.ListBookings(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.ListBookings(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
