package repository

import "errors"

// ErrRoomConflict is returned by BookingRepository.Create when the in-transaction
// availability re-check finds an overlapping booking for the room.
var ErrRoomConflict = errors.New("room has a conflicting booking")
