package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/refcode"
	"hotelbooking/internal/repository"
)

const (
	referenceConstraint   = "uq_bookings_reference"
	overbookingConstraint = "idx_no_overbooking"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	rates    RateRepository
	users    UserRepository
	events   EventSink

	crossLocationFeeCents int64
	maxReferenceAttempts  int
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	rates RateRepository,
	users UserRepository,
	events EventSink,
	crossLocationFeeCents int64,
	maxReferenceAttempts int,
) *Service {
	if crossLocationFeeCents < 0 {
		crossLocationFeeCents = DefaultCrossLocationFeeCents
	}
	if maxReferenceAttempts < 1 {
		maxReferenceAttempts = 5
	}
	return &Service{
		bookings:              bookings,
		rooms:                 rooms,
		rates:                 rates,
		users:                 users,
		events:                events,
		crossLocationFeeCents: crossLocationFeeCents,
		maxReferenceAttempts:  maxReferenceAttempts,
	}
}

// CreateBookingInput is the channel-agnostic create request assembled by
// the handlers.
type CreateBookingInput struct {
	RoomID          int64
	UserID          *int64
	GuestName       *string
	GuestEmail      *string
	GuestPhone      *string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumGuests       int
	BookingType     domain.BookingType
	CreatedBy       *int64
	SpecialRequests string
}

// CreateBooking turns a booking request into a persisted booking row.
// On any failure path nothing is written.
func (s *Service) CreateBooking(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	if _, err := s.rooms.GetByID(ctx, in.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// Fast pre-check so obviously conflicting requests fail before pricing.
	// The authoritative check runs again under the room lock inside Create.
	available, err := s.bookings.CheckAvailability(ctx, in.RoomID, in.CheckInDate, in.CheckOutDate, nil)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrRoomUnavailable
	}

	quote, err := s.priceBooking(ctx, in.RoomID, in.CheckInDate, in.CheckOutDate, in.BookingType, in.UserID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < s.maxReferenceAttempts; attempt++ {
		b := &domain.Booking{
			BookingReference:      refcode.BookingReference(),
			RoomID:                in.RoomID,
			UserID:                in.UserID,
			GuestName:             in.GuestName,
			GuestEmail:            in.GuestEmail,
			GuestPhone:            in.GuestPhone,
			CheckInDate:           in.CheckInDate,
			CheckOutDate:          in.CheckOutDate,
			NumGuests:             in.NumGuests,
			TotalCents:            quote.TotalCents,
			DownpaymentCents:      quote.DownpaymentCents,
			DownpaymentPercentage: quote.DownpaymentPercentage,
			BalanceCents:          quote.BalanceCents,
			CrossLocationFeeCents: quote.CrossLocationFeeCents,
			Status:                domain.BookingPending,
			PaymentStatus:         domain.PaymentPending,
			BookingType:           in.BookingType,
			CreatedBy:             in.CreatedBy,
			SpecialRequests:       in.SpecialRequests,
		}

		err := s.bookings.Create(ctx, b)
		switch {
		case err == nil:
			if s.events != nil {
				s.events.BookingCreated(b)
			}
			return &CreateBookingResult{
				BookingID:             b.ID,
				BookingReference:      b.BookingReference,
				TotalCents:            b.TotalCents,
				DownpaymentCents:      b.DownpaymentCents,
				DownpaymentPercentage: b.DownpaymentPercentage,
				BalanceCents:          b.BalanceCents,
				CrossLocationFeeCents: b.CrossLocationFeeCents,
			}, nil

		case errors.Is(err, repository.ErrRoomConflict), isOverbookingViolation(err):
			// Another request won the room; not retryable with new input.
			return nil, ErrRoomUnavailable

		case isReferenceCollision(err):
			continue

		default:
			return nil, err
		}
	}

	return nil, ErrReferenceGeneration
}

func validateInput(in CreateBookingInput) error {
	if in.RoomID <= 0 {
		return ErrValidation
	}
	if !in.CheckOutDate.After(in.CheckInDate) {
		return ErrValidation
	}

	switch in.BookingType {
	case domain.BookingGuest:
		if in.UserID != nil {
			return ErrValidation
		}
		if !hasText(in.GuestName) || !hasText(in.GuestEmail) || !hasText(in.GuestPhone) {
			return ErrValidation
		}
		if in.NumGuests < 1 {
			return ErrValidation
		}
	case domain.BookingRegistered:
		if in.UserID == nil || in.NumGuests < 1 {
			return ErrValidation
		}
	case domain.BookingStaffAssisted:
		// Staff book on behalf of a registered customer or a walk-in guest.
		if in.UserID == nil && !hasText(in.GuestName) {
			return ErrValidation
		}
		if in.NumGuests < 1 {
			return ErrValidation
		}
	case domain.BookingReserved:
		if in.NumGuests != 0 {
			return ErrValidation
		}
	default:
		return ErrValidation
	}
	return nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func constraintViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	// 23505 unique_violation, 23P01 exclusion_violation
	if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func isReferenceCollision(err error) bool {
	if name, ok := constraintViolation(err); ok {
		return name == referenceConstraint
	}
	// sqlite reports constraint failures by column, not constraint name
	return err != nil && strings.Contains(err.Error(), "bookings.booking_reference")
}

func isOverbookingViolation(err error) bool {
	name, ok := constraintViolation(err)
	return ok && name == overbookingConstraint
}

// CheckAvailability answers the public availability endpoint. Malformed
// ranges are the caller's error, checked here before touching storage.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	if roomID <= 0 || !checkOut.After(checkIn) {
		return false, ErrValidation
	}
	return s.bookings.CheckAvailability(ctx, roomID, checkIn, checkOut, nil)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Actor identifies the caller for location-scoped listing.
type Actor struct {
	UserID int64
	Role   domain.Role
}

// ListBookings applies role scoping: staff and admin only see bookings for
// their home location, super admins see everything.
func (s *Service) ListBookings(ctx context.Context, actor Actor, f repository.BookingFilters) ([]repository.BookingListRow, int64, error) {
	if actor.Role == domain.RoleStaff || actor.Role == domain.RoleAdmin {
		loc, err := s.users.GetLocationID(ctx, actor.UserID)
		if err != nil {
			return nil, 0, err
		}
		if loc != nil {
			f.LocationID = *loc
		}
	}
	return s.bookings.List(ctx, f)
}

func (s *Service) GetUserBookings(ctx context.Context, userID int64, limit, offset int) ([]repository.BookingListRow, error) {
	return s.bookings.GetUserBookings(ctx, userID, limit, offset)
}

// allowedTransitions is the booking lifecycle state machine. Cancellation
// is handled separately: any state except checked_out (and cancelled
// itself) may cancel.
var allowedTransitions = map[domain.BookingStatus]domain.BookingStatus{
	domain.BookingPending:   domain.BookingConfirmed,
	domain.BookingConfirmed: domain.BookingCheckedIn,
	domain.BookingCheckedIn: domain.BookingCheckedOut,
}

// UpdateStatus moves a booking through its lifecycle. Cancelling requires
// a reason and stamps the cancellation time.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, newStatus domain.BookingStatus, reason string) (*domain.Booking, error) {
	b, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if newStatus == domain.BookingCancelled {
		// A booking can be cancelled exactly as long as it still holds
		// its room; released bookings are final.
		if !b.BlocksRoom() {
			return nil, ErrInvalidStatusTransition
		}
		if strings.TrimSpace(reason) == "" {
			return nil, ErrReasonRequired
		}
		if err := s.bookings.CancelWithReason(ctx, bookingID, reason); err != nil {
			return nil, err
		}
	} else {
		if allowedTransitions[b.Status] != newStatus {
			return nil, ErrInvalidStatusTransition
		}
		if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
			return nil, err
		}
	}

	if s.events != nil {
		s.events.BookingStatusChanged(b.ID, b.BookingReference, b.Status, newStatus)
	}
	return s.GetByID(ctx, bookingID)
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error) {
	switch status {
	case domain.PaymentPending, domain.PaymentPartial, domain.PaymentPaid, domain.PaymentRefunded:
	default:
		return nil, ErrValidation
	}

	if _, err := s.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}
	if err := s.bookings.UpdatePaymentStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, bookingID)
}
