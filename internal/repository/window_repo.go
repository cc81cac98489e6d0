package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"photosite/internal/domain"
)

type WindowRepository struct {
	db *gorm.DB
}

func NewWindowRepository(db *gorm.DB) *WindowRepository {
	return &WindowRepository{db: db}
}

type windowModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Kind      string    `gorm:"column:kind"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`
	Recurring bool      `gorm:"column:recurring"`
	Weekdays  string    `gorm:"column:weekdays"`
	Notes     string    `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (windowModel) TableName() string { return "availability_windows" }

func toDomainWindow(m windowModel) domain.AvailabilityWindow {
	return domain.AvailabilityWindow{
		ID:        m.ID,
		Kind:      domain.WindowKind(m.Kind),
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Recurring: m.Recurring,
		Weekdays:  m.Weekdays,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

func (r *WindowRepository) Create(ctx context.Context, w *domain.AvailabilityWindow) error {
	m := windowModel{
		Kind:      string(w.Kind),
		StartTime: w.StartTime,
		EndTime:   w.EndTime,
		Recurring: w.Recurring,
		Weekdays:  w.Weekdays,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	w.ID = m.ID
	return nil
}

func (r *WindowRepository) All(ctx context.Context) ([]domain.AvailabilityWindow, error) {
	var ms []windowModel
	tx := r.db.WithContext(ctx).Order("start_time").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.AvailabilityWindow, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainWindow(m))
	}
	return out, nil
}

// ForDate returns windows that can affect the given civil day: every
// recurring window plus one-off windows overlapping [dayStart,dayEnd).
func (r *WindowRepository) ForDate(ctx context.Context, dayStart, dayEnd time.Time) ([]domain.AvailabilityWindow, error) {
	var ms []windowModel
	tx := r.db.WithContext(ctx).
		Where("recurring = ? OR (start_time < ? AND end_time > ?)", true, dayEnd, dayStart).
		Order("start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.AvailabilityWindow, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainWindow(m))
	}
	return out, nil
}

func (r *WindowRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&windowModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
