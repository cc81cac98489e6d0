package consultation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"photosite/internal/domain"
	"photosite/internal/pkg/validator"
	"photosite/internal/provider/mail"
)

// ConsultationStore owns free-form consultation requests.
type ConsultationStore interface {
	Create(ctx context.Context, cr *domain.ConsultationRequest) error
	All(ctx context.Context) ([]domain.ConsultationRequest, error)
	GetByID(ctx context.Context, id string) (*domain.ConsultationRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.ConsultationStatus) error
}

// EventPublisher pushes domain events to connected admin dashboards.
type EventPublisher interface {
	Publish(event string, payload any)
}

type Service struct {
	store  ConsultationStore
	mailer mail.Sender
	events EventPublisher
	log    *zap.Logger

	photographerEmail string
	now               func() time.Time
}

func NewService(store ConsultationStore, mailer mail.Sender, events EventPublisher, log *zap.Logger, photographerEmail string) *Service {
	return &Service{
		store:             store,
		mailer:            mailer,
		events:            events,
		log:               log,
		photographerEmail: photographerEmail,
		now:               time.Now,
	}
}

// Submit records a free-form consultation request. Unlike slot bookings the
// preferred date and time are advisory text and never validated against the
// schedule. The admin notification mail is best effort.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.ConsultationRequest, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}
	if !validator.IsEmail(email) {
		return nil, ErrInvalidEmail
	}

	cr := &domain.ConsultationRequest{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		PreferredDate: strings.TrimSpace(req.PreferredDate),
		PreferredTime: strings.TrimSpace(req.PreferredTime),
		Message:       message,
		Status:        domain.ConsultationPending,
		CreatedAt:     s.now().UTC(),
		UpdatedAt:     s.now().UTC(),
	}

	if err := s.store.Create(ctx, cr); err != nil {
		return nil, err
	}

	if s.photographerEmail != "" {
		subject, body := mail.ConsultationNotice(cr)
		if err := s.mailer.Send(s.photographerEmail, subject, body); err != nil {
			s.log.Warn("consultation notice mail failed",
				zap.String("request_id", cr.ID),
				zap.Error(err))
		}
	}

	if s.events != nil {
		s.events.Publish("consultation.created", cr)
	}

	s.log.Info("consultation request received",
		zap.String("request_id", cr.ID),
		zap.String("email", cr.Email))
	return cr, nil
}

func (s *Service) List(ctx context.Context) ([]domain.ConsultationRequest, error) {
	return s.store.All(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.ConsultationRequest, error) {
	cr, err := s.store.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return cr, err
}

// SetStatus moves a pending request to approved or rejected.
func (s *Service) SetStatus(ctx context.Context, id string, status string) (*domain.ConsultationRequest, error) {
	st := domain.ConsultationStatus(strings.ToLower(strings.TrimSpace(status)))
	if st != domain.ConsultationApproved && st != domain.ConsultationRejected {
		return nil, ErrBadStatus
	}

	if err := s.store.UpdateStatus(ctx, id, st); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}
