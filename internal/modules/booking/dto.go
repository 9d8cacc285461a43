package booking

import "time"

type GuestBookingRequest struct {
	RoomID          int64  `json:"roomId" validate:"required"`
	GuestName       string `json:"guestName" validate:"required"`
	GuestEmail      string `json:"guestEmail" validate:"required,email"`
	GuestPhone      string `json:"guestPhone" validate:"required"`
	CheckInDate     string `json:"checkInDate" validate:"required"`
	CheckOutDate    string `json:"checkOutDate" validate:"required"`
	NumGuests       int    `json:"numGuests" validate:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

type UserBookingRequest struct {
	RoomID          int64  `json:"roomId" validate:"required"`
	CheckInDate     string `json:"checkInDate" validate:"required"`
	CheckOutDate    string `json:"checkOutDate" validate:"required"`
	NumGuests       int    `json:"numGuests" validate:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// StaffBookingRequest carries either a userId (booking on behalf of a
// registered customer) or walk-in guest contact fields, or both.
type StaffBookingRequest struct {
	RoomID          int64  `json:"roomId" validate:"required"`
	UserID          *int64 `json:"userId"`
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail" validate:"omitempty,email"`
	GuestPhone      string `json:"guestPhone"`
	CheckInDate     string `json:"checkInDate" validate:"required"`
	CheckOutDate    string `json:"checkOutDate" validate:"required"`
	NumGuests       int    `json:"numGuests" validate:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

type ReserveRequest struct {
	RoomID          int64  `json:"roomId" validate:"required"`
	CheckInDate     string `json:"checkInDate" validate:"required"`
	CheckOutDate    string `json:"checkOutDate" validate:"required"`
	SpecialRequests string `json:"specialRequests"`
}

type UpdateStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	CancellationReason string `json:"cancellationReason"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// CreateBookingResult is the pricing breakdown returned to the caller on a
// successful create.
type CreateBookingResult struct {
	BookingID             int64  `json:"booking_id"`
	BookingReference      string `json:"booking_reference"`
	TotalCents            int64  `json:"total_cents"`
	DownpaymentCents      int64  `json:"downpayment_cents"`
	DownpaymentPercentage int    `json:"downpayment_percentage"`
	BalanceCents          int64  `json:"balance_cents"`
	CrossLocationFeeCents int64  `json:"cross_location_fee_cents"`
}

// parseDate parses an ISO calendar date (YYYY-MM-DD) at UTC midnight.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
