package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"photosite/internal/domain"
)

type ConsultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

type consultationModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email"`
	PreferredDate string    `gorm:"column:preferred_date"`
	PreferredTime string    `gorm:"column:preferred_time"`
	Message       string    `gorm:"column:message;type:text"`
	Status        string    `gorm:"column:status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (consultationModel) TableName() string { return "consultation_requests" }

func toDomainConsultation(m consultationModel) *domain.ConsultationRequest {
	return &domain.ConsultationRequest{
		ID:            m.ID,
		Name:          m.Name,
		Email:         m.Email,
		PreferredDate: m.PreferredDate,
		PreferredTime: m.PreferredTime,
		Message:       m.Message,
		Status:        domain.ConsultationStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *ConsultationRepository) Create(ctx context.Context, cr *domain.ConsultationRequest) error {
	m := consultationModel{
		ID:            cr.ID,
		Name:          cr.Name,
		Email:         cr.Email,
		PreferredDate: cr.PreferredDate,
		PreferredTime: cr.PreferredTime,
		Message:       cr.Message,
		Status:        string(cr.Status),
		CreatedAt:     cr.CreatedAt,
		UpdatedAt:     cr.UpdatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *ConsultationRepository) All(ctx context.Context) ([]domain.ConsultationRequest, error) {
	var ms []consultationModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.ConsultationRequest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainConsultation(m))
	}
	return out, nil
}

func (r *ConsultationRepository) GetByID(ctx context.Context, id string) (*domain.ConsultationRequest, error) {
	var m consultationModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainConsultation(m), nil
}

func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id string, status domain.ConsultationStatus) error {
	tx := r.db.WithContext(ctx).Model(&consultationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
