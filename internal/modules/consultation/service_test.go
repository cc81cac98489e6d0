package consultation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"photosite/internal/domain"
)

type MockConsultationStore struct {
	mock.Mock
}

func (m *MockConsultationStore) Create(ctx context.Context, cr *domain.ConsultationRequest) error {
	args := m.Called(ctx, cr)
	return args.Error(0)
}

func (m *MockConsultationStore) All(ctx context.Context) ([]domain.ConsultationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationStore) GetByID(ctx context.Context, id string) (*domain.ConsultationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationStore) UpdateStatus(ctx context.Context, id string, status domain.ConsultationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

func newTestService(store *MockConsultationStore, mailer *MockSender) *Service {
	svc := NewService(store, mailer, nil, zap.NewNop(), "photographer@example.com")
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestSubmit_Validation(t *testing.T) {
	svc := newTestService(new(MockConsultationStore), new(MockSender))

	_, err := svc.Submit(context.Background(), SubmitRequest{Email: "a@b.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Submit(context.Background(), SubmitRequest{Name: "Jane", Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Submit(context.Background(), SubmitRequest{Name: "Jane", Email: "nope", Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSubmit_Success(t *testing.T) {
	store := new(MockConsultationStore)
	mailer := new(MockSender)
	svc := newTestService(store, mailer)

	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("Send", "photographer@example.com", mock.Anything, mock.Anything).Return(nil)

	cr, err := svc.Submit(context.Background(), SubmitRequest{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		PreferredDate: "2026-09-16",
		PreferredTime: "morning",
		Message:       "Interested in a family session",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, cr.ID)
	assert.Equal(t, domain.ConsultationPending, cr.Status)
	store.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestSubmit_MailFailureDoesNotFailRequest(t *testing.T) {
	store := new(MockConsultationStore)
	mailer := new(MockSender)
	svc := newTestService(store, mailer)

	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	cr, err := svc.Submit(context.Background(), SubmitRequest{
		Name: "Jane", Email: "jane@example.com", Message: "hello",
	})
	require.NoError(t, err)
	assert.NotNil(t, cr)
}

func TestSetStatus(t *testing.T) {
	store := new(MockConsultationStore)
	svc := newTestService(store, new(MockSender))

	_, err := svc.SetStatus(context.Background(), "id-1", "maybe")
	assert.ErrorIs(t, err, ErrBadStatus)

	store.On("UpdateStatus", mock.Anything, "id-1", domain.ConsultationApproved).Return(nil)
	store.On("GetByID", mock.Anything, "id-1").
		Return(&domain.ConsultationRequest{ID: "id-1", Status: domain.ConsultationApproved}, nil)

	cr, err := svc.SetStatus(context.Background(), "id-1", "approved")
	require.NoError(t, err)
	assert.Equal(t, domain.ConsultationApproved, cr.Status)

	store.On("UpdateStatus", mock.Anything, "missing", domain.ConsultationRejected).
		Return(gorm.ErrRecordNotFound)
	_, err = svc.SetStatus(context.Background(), "missing", "rejected")
	assert.ErrorIs(t, err, ErrNotFound)
}
