package domain

import "time"

// Booking is a confirmed consultation slot. Records are append-only:
// once admitted a booking is never mutated, the admin flow only reads them.
type Booking struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	GuestName  string    `json:"guest_name" validate:"required"`
	GuestEmail string    `json:"guest_email" validate:"required,email"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required"`
	Message    string    `json:"message,omitempty" gorm:"type:text"`
	MeetingID  string    `json:"meeting_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
