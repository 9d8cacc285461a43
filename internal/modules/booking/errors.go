package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrRoomNotFound            = errors.New("room not found")
	ErrRoomUnavailable         = errors.New("room is not available for the selected dates")
	ErrRateNotFound            = errors.New("room has no active base rate")
	ErrReferenceGeneration     = errors.New("could not generate a unique booking reference")
	ErrNotFound                = errors.New("booking not found")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrReasonRequired          = errors.New("cancellation reason is required")
)
