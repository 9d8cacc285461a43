package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

// DefaultCrossLocationFeeCents applies when a registered user books a room
// outside their home location and no fee is configured.
const DefaultCrossLocationFeeCents int64 = 2500

// downpaymentPercentages is fixed per booking channel, never user-supplied.
// Adding a channel is a row here, not a branch anywhere else.
var downpaymentPercentages = map[domain.BookingType]int{
	domain.BookingGuest:         50,
	domain.BookingRegistered:    20,
	domain.BookingStaffAssisted: 20,
	domain.BookingReserved:      0,
}

// Quote is the full pricing breakdown for a prospective booking.
// All monetary values are integer cents.
type Quote struct {
	Nights                int
	BaseRateCents         int64
	SubtotalCents         int64
	CrossLocationFeeCents int64
	TotalCents            int64
	DownpaymentCents      int64
	DownpaymentPercentage int
	BalanceCents          int64
}

// nightsBetween counts nights in the half-open range [checkIn, checkOut).
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// splitDownpayment divides the total by the channel percentage, rounding
// the downpayment half-up to the cent. The balance is the remainder, so
// downpayment + balance == total exactly.
func splitDownpayment(totalCents int64, percentage int) (downpayment, balance int64) {
	downpayment = (totalCents*int64(percentage) + 50) / 100
	balance = totalCents - downpayment
	return downpayment, balance
}

// priceBooking computes the quote for a room and date range. The caller has
// already validated checkOut > checkIn.
func (s *Service) priceBooking(ctx context.Context, roomID int64, checkIn, checkOut time.Time, bookingType domain.BookingType, userID *int64) (*Quote, error) {
	baseRate, err := s.rates.GetActiveBaseRateCents(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, err
	}

	q := &Quote{
		Nights:        nightsBetween(checkIn, checkOut),
		BaseRateCents: baseRate,
	}
	q.SubtotalCents = baseRate * int64(q.Nights)

	fee, err := s.crossLocationFee(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	q.CrossLocationFeeCents = fee
	q.TotalCents = q.SubtotalCents + fee

	q.DownpaymentPercentage = downpaymentPercentages[bookingType]
	q.DownpaymentCents, q.BalanceCents = splitDownpayment(q.TotalCents, q.DownpaymentPercentage)

	return q, nil
}

// crossLocationFee is zero for bookings with no associated user, and for
// users whose home location matches the room's location (or who have none).
func (s *Service) crossLocationFee(ctx context.Context, roomID int64, userID *int64) (int64, error) {
	if userID == nil {
		return 0, nil
	}

	userLoc, err := s.users.GetLocationID(ctx, *userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrValidation
		}
		return 0, err
	}
	if userLoc == nil {
		return 0, nil
	}

	roomLoc, err := s.rooms.GetLocationID(ctx, roomID)
	if err != nil {
		return 0, err
	}

	if *userLoc != roomLoc {
		return s.crossLocationFeeCents, nil
	}
	return 0, nil
}
