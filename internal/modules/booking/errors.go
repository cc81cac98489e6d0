package booking

import "errors"

// Admission rejections. Each validation step has its own sentinel so the
// handler can return a precise reason code instead of a generic error.
var (
	ErrMissingFields = errors.New("name, email and selected time are required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidTime   = errors.New("selected time is not a valid timestamp")
	ErrPastTime      = errors.New("selected time must be in the future")
	ErrInvalidDay    = errors.New("selected day is not a consultation day")
	ErrOutsideHours  = errors.New("selected time is outside business hours")
	ErrOffGrid       = errors.New("selected time does not match a slot boundary")
	ErrSlotTaken     = errors.New("slot is no longer available")
)
