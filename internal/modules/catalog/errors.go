package catalog

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRateNotFound     = errors.New("rate not found")
	ErrLocationNotFound = errors.New("location not found")
)
