package consultation

import "errors"

var (
	ErrMissingFields = errors.New("name, email and message are required")
	ErrInvalidEmail  = errors.New("email address is not valid")
	ErrNotFound      = errors.New("consultation request not found")
	ErrBadStatus     = errors.New("status must be approved or rejected")
)
