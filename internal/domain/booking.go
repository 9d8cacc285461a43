package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type BookingType string

const (
	BookingGuest         BookingType = "guest"
	BookingRegistered    BookingType = "registered"
	BookingStaffAssisted BookingType = "staff_assisted"
	BookingReserved      BookingType = "reserved"
)

// Booking is the central entity. Monetary fields are integer cents;
// DownpaymentCents + BalanceCents == TotalCents always.
// CheckOutDate is an exclusive upper bound.
type Booking struct {
	ID               int64      `json:"id"`
	BookingReference string     `json:"booking_reference" gorm:"uniqueIndex:uq_bookings_reference;size:50"`
	RoomID           int64      `json:"room_id" validate:"required"`
	UserID           *int64     `json:"user_id,omitempty"`
	GuestName        *string    `json:"guest_name,omitempty"`
	GuestEmail       *string    `json:"guest_email,omitempty"`
	GuestPhone       *string    `json:"guest_phone,omitempty"`
	CheckInDate      time.Time  `json:"check_in_date"`
	CheckOutDate     time.Time  `json:"check_out_date"`
	NumGuests        int        `json:"num_guests"`

	TotalCents            int64 `json:"total_cents"`
	DownpaymentCents      int64 `json:"downpayment_cents"`
	DownpaymentPercentage int   `json:"downpayment_percentage"`
	BalanceCents          int64 `json:"balance_cents"`
	CrossLocationFeeCents int64 `json:"cross_location_fee_cents"`

	Status        BookingStatus `json:"status" gorm:"size:20;default:pending"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"size:20;default:pending"`
	BookingType   BookingType   `json:"booking_type" gorm:"size:20"`

	CreatedBy          *int64     `json:"created_by,omitempty"`
	SpecialRequests    string     `json:"special_requests,omitempty" gorm:"type:text"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"type:text"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// BlocksRoom reports whether the booking still occupies its date range
// for availability purposes.
func (b *Booking) BlocksRoom() bool {
	return b.Status != BookingCancelled && b.Status != BookingCheckedOut
}
