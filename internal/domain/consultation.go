package domain

import "time"

type ConsultationStatus string

const (
	ConsultationPending  ConsultationStatus = "pending"
	ConsultationApproved ConsultationStatus = "approved"
	ConsultationRejected ConsultationStatus = "rejected"
)

// ConsultationRequest is the free-form alternative to a slot booking.
// PreferredDate/PreferredTime are advisory text, never validated against
// the slot grid.
type ConsultationRequest struct {
	ID            string             `json:"id" gorm:"primaryKey"`
	Name          string             `json:"name" validate:"required"`
	Email         string             `json:"email" validate:"required,email"`
	PreferredDate string             `json:"preferred_date,omitempty"`
	PreferredTime string             `json:"preferred_time,omitempty"`
	Message       string             `json:"message" gorm:"type:text" validate:"required"`
	Status        ConsultationStatus `json:"status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
