package booking

import "photosite/internal/domain"

type AdmitBookingRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	SelectedTime string `json:"selected_time"`
	Message      string `json:"message"`
}

type MeetingInfo struct {
	ID       int64  `json:"id"`
	JoinURL  string `json:"join_url"`
	StartURL string `json:"start_url"`
	Password string `json:"password,omitempty"`
}

// BookingResult always carries the booking and meeting; the calendar link
// is best-effort metadata and may be empty when event creation failed.
type BookingResult struct {
	Booking      *domain.Booking `json:"booking"`
	Meeting      MeetingInfo     `json:"meeting"`
	CalendarLink string          `json:"calendar_link,omitempty"`
}
