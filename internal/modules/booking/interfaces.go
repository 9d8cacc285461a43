package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// BookingRepository defines the storage operations the booking service uses.
type BookingRepository interface {
	CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID *int64) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilters) ([]repository.BookingListRow, int64, error)
	GetUserBookings(ctx context.Context, userID int64, limit, offset int) ([]repository.BookingListRow, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	CancelWithReason(ctx context.Context, bookingID int64, reason string) error
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error
}

// RoomRepository resolves rooms and their owning location.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetLocationID(ctx context.Context, roomID int64) (int64, error)
}

// RateRepository resolves the active base nightly rate for a room.
type RateRepository interface {
	GetActiveBaseRateCents(ctx context.Context, roomID int64) (int64, error)
}

// UserRepository resolves a user's home location for cross-location pricing.
type UserRepository interface {
	GetLocationID(ctx context.Context, userID int64) (*int64, error)
}

// EventSink receives booking lifecycle events for the staff feed. Delivery
// is best effort; failures never affect the booking operation.
type EventSink interface {
	BookingCreated(b *domain.Booking)
	BookingStatusChanged(bookingID int64, reference string, from, to domain.BookingStatus)
}
