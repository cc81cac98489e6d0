package consultation

type SubmitRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Message       string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
