package admin

import "photosite/internal/domain"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	Admin *domain.AdminUser `json:"admin"`
}

type CreateWindowRequest struct {
	Kind      string   `json:"kind"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Recurring bool     `json:"recurring"`
	Weekdays  []string `json:"weekdays"`
	Notes     string   `json:"notes"`
}

type DashboardSummary struct {
	UpcomingBookings     int `json:"upcoming_bookings"`
	PendingConsultations int `json:"pending_consultations"`
}
