package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"photosite/internal/domain"
)

// ErrConflict is returned by InsertIfFree when another booking already
// occupies the requested interval.
var ErrConflict = errors.New("booking slot already taken")

type BookingRepository struct {
	db *gorm.DB

	// Serializes the check-then-insert in InsertIfFree so two concurrent
	// admissions for the same slot cannot both pass the overlap check.
	// Postgres additionally enforces this with an exclusion constraint,
	// mapped below; the mutex keeps SQLite deployments correct too.
	mu sync.Mutex
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	GuestName  string    `gorm:"column:guest_name"`
	GuestEmail string    `gorm:"column:guest_email"`
	StartTime  time.Time `gorm:"column:start_time;index"`
	EndTime    time.Time `gorm:"column:end_time"`
	Message    string    `gorm:"column:message;type:text"`
	MeetingID  string    `gorm:"column:meeting_id"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		GuestName:  m.GuestName,
		GuestEmail: m.GuestEmail,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Message:    m.Message,
		MeetingID:  m.MeetingID,
		CreatedAt:  m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Message:    b.Message,
		MeetingID:  b.MeetingID,
		CreatedAt:  b.CreatedAt,
	}
}

// InsertIfFree atomically inserts the booking unless an existing booking
// overlaps [StartTime,EndTime); in that case it reports ErrConflict and
// writes nothing. This is the at-most-one-booking-per-slot boundary.
func (r *BookingRepository) InsertIfFree(ctx context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := toBookingModel(b)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&bookingModel{}).
			Where("start_time < ? AND end_time > ?", b.EndTime, b.StartTime).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrConflict
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return ErrConflict
		}
		return err
	}

	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) IsSlotFree(ctx context.Context, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

func (r *BookingRepository) All(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("start_time").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) Future(ctx context.Context, now time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("start_time > ?", now).
		Order("start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// ForDate returns bookings whose interval touches [dayStart,dayEnd).
func (r *BookingRepository) ForDate(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("start_time < ? AND end_time > ?", dayEnd, dayStart).
		Order("start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func toDomainBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
