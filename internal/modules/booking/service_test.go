package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID *int64) (bool, error) {
	args := m.Called(ctx, roomID, checkIn, checkOut, excludeBookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilters) ([]repository.BookingListRow, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]repository.BookingListRow), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingRepository) GetUserBookings(ctx context.Context, userID int64, limit, offset int) ([]repository.BookingListRow, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingListRow), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	args := m.Called(ctx, bookingID, reason)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) GetLocationID(ctx context.Context, roomID int64) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) GetActiveBaseRateCents(ctx context.Context, roomID int64) (int64, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetLocationID(ctx context.Context, userID int64) (*int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int64), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) BookingCreated(b *domain.Booking) {
	m.Called(b)
}

func (m *MockEventSink) BookingStatusChanged(bookingID int64, reference string, from, to domain.BookingStatus) {
	m.Called(bookingID, reference, from, to)
}

func newTestService(bookings *MockBookingRepository, rooms *MockRoomRepository, rates *MockRateRepository, users *MockUserRepository, events *MockEventSink) *Service {
	return NewService(bookings, rooms, rates, users, events, 2500, 5)
}

func strPtr(s string) *string { return &s }
func i64Ptr(v int64) *int64   { return &v }

func guestInput(checkIn, checkOut time.Time) CreateBookingInput {
	return CreateBookingInput{
		RoomID:       10,
		GuestName:    strPtr("John Walker"),
		GuestEmail:   strPtr("john@example.com"),
		GuestPhone:   strPtr("+1-555-0100"),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    2,
		BookingType:  domain.BookingGuest,
	}
}

func TestService_CreateBooking_GuestSuccess(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 1}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(true, nil)
	mockRates.On("GetActiveBaseRateCents", mock.Anything, int64(10)).Return(int64(10000), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("BookingCreated", mock.Anything).Return()

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	result, err := service.CreateBooking(context.Background(), guestInput(checkIn, checkOut))

	assert.NoError(t, err)
	assert.NotNil(t, result)
	// 3 nights at $100, guest channel pays 50% up front
	assert.Equal(t, int64(30000), result.TotalCents)
	assert.Equal(t, int64(15000), result.DownpaymentCents)
	assert.Equal(t, 50, result.DownpaymentPercentage)
	assert.Equal(t, int64(15000), result.BalanceCents)
	assert.Equal(t, int64(0), result.CrossLocationFeeCents)
	assert.NotEmpty(t, result.BookingReference)
	mockBookings.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestService_CreateBooking_RegisteredSameLocation(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 1}, nil)
	mockRooms.On("GetLocationID", mock.Anything, int64(10)).Return(int64(1), nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(true, nil)
	mockRates.On("GetActiveBaseRateCents", mock.Anything, int64(10)).Return(int64(10000), nil)
	mockUsers.On("GetLocationID", mock.Anything, int64(42)).Return(i64Ptr(1), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("BookingCreated", mock.Anything).Return()

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	result, err := service.CreateBooking(context.Background(), CreateBookingInput{
		RoomID:       10,
		UserID:       i64Ptr(42),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    2,
		BookingType:  domain.BookingRegistered,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(30000), result.TotalCents)
	assert.Equal(t, int64(0), result.CrossLocationFeeCents)
	assert.Equal(t, 20, result.DownpaymentPercentage)
	assert.Equal(t, int64(6000), result.DownpaymentCents)
	assert.Equal(t, int64(24000), result.BalanceCents)
}

func TestService_CreateBooking_CrossLocationFee(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 2}, nil)
	mockRooms.On("GetLocationID", mock.Anything, int64(10)).Return(int64(2), nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(true, nil)
	mockRates.On("GetActiveBaseRateCents", mock.Anything, int64(10)).Return(int64(10000), nil)
	// user's home location differs from the room's
	mockUsers.On("GetLocationID", mock.Anything, int64(42)).Return(i64Ptr(1), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("BookingCreated", mock.Anything).Return()

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	result, err := service.CreateBooking(context.Background(), CreateBookingInput{
		RoomID:       10,
		UserID:       i64Ptr(42),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    2,
		BookingType:  domain.BookingRegistered,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2500), result.CrossLocationFeeCents)
	assert.Equal(t, int64(32500), result.TotalCents)
	assert.Equal(t, int64(6500), result.DownpaymentCents)
	assert.Equal(t, int64(26000), result.BalanceCents)
}

func TestService_CreateBooking_ReservedNoDownpayment(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 2)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 1}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(true, nil)
	mockRates.On("GetActiveBaseRateCents", mock.Anything, int64(10)).Return(int64(10000), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockEvents.On("BookingCreated", mock.Anything).Return()

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	result, err := service.CreateBooking(context.Background(), CreateBookingInput{
		RoomID:       10,
		GuestName:    strPtr("Reserved"),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    0,
		BookingType:  domain.BookingReserved,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(20000), result.TotalCents)
	assert.Equal(t, 0, result.DownpaymentPercentage)
	assert.Equal(t, int64(0), result.DownpaymentCents)
	assert.Equal(t, int64(20000), result.BalanceCents)
}

func TestService_CreateBooking_RoomUnavailable(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 1}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(false, nil)

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	_, err := service.CreateBooking(context.Background(), guestInput(checkIn, checkOut))
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	mockRates.AssertNotCalled(t, "GetActiveBaseRateCents", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_RoomNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	_, err := service.CreateBooking(context.Background(), guestInput(checkIn, checkOut))
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_CreateBooking_NoActiveRate(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 1}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(true, nil)
	mockRates.On("GetActiveBaseRateCents", mock.Anything, int64(10)).Return(int64(0), gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	_, err := service.CreateBooking(context.Background(), guestInput(checkIn, checkOut))
	assert.ErrorIs(t, err, ErrRateNotFound)
	mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateBooking_ReferenceCollisionRetries(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 1}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(true, nil)
	mockRates.On("GetActiveBaseRateCents", mock.Anything, int64(10)).Return(int64(10000), nil)

	collision := errors.New("UNIQUE constraint failed: bookings.booking_reference")
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(collision).Twice()
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	mockEvents.On("BookingCreated", mock.Anything).Return()

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	result, err := service.CreateBooking(context.Background(), guestInput(checkIn, checkOut))

	assert.NoError(t, err)
	assert.NotNil(t, result)
	mockBookings.AssertNumberOfCalls(t, "Create", 3)
}

func TestService_CreateBooking_ReferenceRetriesExhausted(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 1}, nil)
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(true, nil)
	mockRates.On("GetActiveBaseRateCents", mock.Anything, int64(10)).Return(int64(10000), nil)

	collision := errors.New("UNIQUE constraint failed: bookings.booking_reference")
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(collision)

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	_, err := service.CreateBooking(context.Background(), guestInput(checkIn, checkOut))

	assert.ErrorIs(t, err, ErrReferenceGeneration)
	mockBookings.AssertNumberOfCalls(t, "Create", 5)
	mockEvents.AssertNotCalled(t, "BookingCreated", mock.Anything)
}

func TestService_CreateBooking_ConflictOnInsert(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockRooms := new(MockRoomRepository)
	mockRates := new(MockRateRepository)
	mockUsers := new(MockUserRepository)
	mockEvents := new(MockEventSink)

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	mockRooms.On("GetByID", mock.Anything, int64(10)).Return(&domain.Room{ID: 10, LocationID: 1}, nil)
	// pre-check says free, but another writer wins the room inside Create
	mockBookings.On("CheckAvailability", mock.Anything, int64(10), checkIn, checkOut, (*int64)(nil)).Return(true, nil)
	mockRates.On("GetActiveBaseRateCents", mock.Anything, int64(10)).Return(int64(10000), nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(repository.ErrRoomConflict)

	service := newTestService(mockBookings, mockRooms, mockRates, mockUsers, mockEvents)

	_, err := service.CreateBooking(context.Background(), guestInput(checkIn, checkOut))

	assert.ErrorIs(t, err, ErrRoomUnavailable)
	mockBookings.AssertNumberOfCalls(t, "Create", 1)
}

func TestService_CreateBooking_ValidationErrors(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), new(MockEventSink))

	checkIn := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	cases := []struct {
		name string
		in   CreateBookingInput
	}{
		{
			name: "checkout not after checkin",
			in: CreateBookingInput{
				RoomID: 10, GuestName: strPtr("A"), GuestEmail: strPtr("a@b.c"), GuestPhone: strPtr("1"),
				CheckInDate: checkIn, CheckOutDate: checkIn,
				NumGuests: 1, BookingType: domain.BookingGuest,
			},
		},
		{
			name: "guest booking with user id",
			in: CreateBookingInput{
				RoomID: 10, UserID: i64Ptr(1), GuestName: strPtr("A"), GuestEmail: strPtr("a@b.c"), GuestPhone: strPtr("1"),
				CheckInDate: checkIn, CheckOutDate: checkOut,
				NumGuests: 1, BookingType: domain.BookingGuest,
			},
		},
		{
			name: "guest booking missing contact",
			in: CreateBookingInput{
				RoomID: 10, GuestName: strPtr("A"),
				CheckInDate: checkIn, CheckOutDate: checkOut,
				NumGuests: 1, BookingType: domain.BookingGuest,
			},
		},
		{
			name: "registered booking without user",
			in: CreateBookingInput{
				RoomID:      10,
				CheckInDate: checkIn, CheckOutDate: checkOut,
				NumGuests: 1, BookingType: domain.BookingRegistered,
			},
		},
		{
			name: "staff assisted with neither user nor guest name",
			in: CreateBookingInput{
				RoomID:      10,
				CheckInDate: checkIn, CheckOutDate: checkOut,
				NumGuests: 1, BookingType: domain.BookingStaffAssisted,
			},
		},
		{
			name: "reserved with guests",
			in: CreateBookingInput{
				RoomID:      10,
				CheckInDate: checkIn, CheckOutDate: checkOut,
				NumGuests: 2, BookingType: domain.BookingReserved,
			},
		},
		{
			name: "unknown booking type",
			in: CreateBookingInput{
				RoomID:      10,
				CheckInDate: checkIn, CheckOutDate: checkOut,
				NumGuests: 1, BookingType: domain.BookingType("corporate"),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateBooking(context.Background(), tc.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_CheckAvailability_InvalidRange(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), new(MockEventSink))

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	_, err := service.CheckAvailability(context.Background(), 10, day, day)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CheckAvailability(context.Background(), 0, day, day.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateStatus_ConfirmPending(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventSink)

	bookingID := int64(123)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID: bookingID, BookingReference: "BK20260910-ABCD2345", Status: domain.BookingPending,
	}, nil).Once()
	mockBookings.On("UpdateStatus", mock.Anything, bookingID, domain.BookingConfirmed).Return(nil)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID: bookingID, BookingReference: "BK20260910-ABCD2345", Status: domain.BookingConfirmed,
	}, nil).Once()
	mockEvents.On("BookingStatusChanged", bookingID, "BK20260910-ABCD2345", domain.BookingPending, domain.BookingConfirmed).Return()

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), mockEvents)

	result, err := service.UpdateStatus(context.Background(), bookingID, domain.BookingConfirmed, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, result.Status)
	mockBookings.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestService_UpdateStatus_SkippingStatesRejected(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	bookingID := int64(123)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID: bookingID, Status: domain.BookingPending,
	}, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), new(MockEventSink))

	_, err := service.UpdateStatus(context.Background(), bookingID, domain.BookingCheckedIn, "")

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	mockBookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_CancelRequiresReason(t *testing.T) {
	mockBookings := new(MockBookingRepository)

	bookingID := int64(123)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID: bookingID, Status: domain.BookingConfirmed,
	}, nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), new(MockEventSink))

	_, err := service.UpdateStatus(context.Background(), bookingID, domain.BookingCancelled, "   ")

	assert.ErrorIs(t, err, ErrReasonRequired)
	mockBookings.AssertNotCalled(t, "CancelWithReason", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_CancelWithReason(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockEvents := new(MockEventSink)

	bookingID := int64(123)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID: bookingID, BookingReference: "BK20260910-ABCD2345", Status: domain.BookingConfirmed,
	}, nil).Once()
	mockBookings.On("CancelWithReason", mock.Anything, bookingID, "guest no-show").Return(nil)
	mockBookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID: bookingID, BookingReference: "BK20260910-ABCD2345", Status: domain.BookingCancelled,
		CancellationReason: "guest no-show",
	}, nil).Once()
	mockEvents.On("BookingStatusChanged", bookingID, "BK20260910-ABCD2345", domain.BookingConfirmed, domain.BookingCancelled).Return()

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), mockEvents)

	result, err := service.UpdateStatus(context.Background(), bookingID, domain.BookingCancelled, "guest no-show")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, result.Status)
	assert.Equal(t, "guest no-show", result.CancellationReason)
	mockBookings.AssertExpectations(t)
}

func TestService_UpdateStatus_CancelOnReleasedBooking(t *testing.T) {
	// checked_out and cancelled bookings no longer hold their room and
	// cannot be cancelled (again)
	for _, status := range []domain.BookingStatus{domain.BookingCheckedOut, domain.BookingCancelled} {
		t.Run(string(status), func(t *testing.T) {
			mockBookings := new(MockBookingRepository)

			bookingID := int64(123)
			mockBookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
				ID: bookingID, Status: status,
			}, nil)

			service := newTestService(mockBookings, new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), new(MockEventSink))

			_, err := service.UpdateStatus(context.Background(), bookingID, domain.BookingCancelled, "too late")

			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			mockBookings.AssertNotCalled(t, "CancelWithReason", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBookingBlocksRoom(t *testing.T) {
	blocking := []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed, domain.BookingCheckedIn}
	for _, status := range blocking {
		assert.True(t, (&domain.Booking{Status: status}).BlocksRoom(), string(status))
	}
	released := []domain.BookingStatus{domain.BookingCancelled, domain.BookingCheckedOut}
	for _, status := range released {
		assert.False(t, (&domain.Booking{Status: status}).BlocksRoom(), string(status))
	}
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), new(MockEventSink))

	_, err := service.UpdateStatus(context.Background(), 404, domain.BookingConfirmed, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdatePaymentStatus_InvalidValue(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockRoomRepository), new(MockRateRepository), new(MockUserRepository), new(MockEventSink))

	_, err := service.UpdatePaymentStatus(context.Background(), 1, domain.PaymentStatus("settled"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListBookings_StaffScopedToHomeLocation(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockUsers := new(MockUserRepository)

	mockUsers.On("GetLocationID", mock.Anything, int64(7)).Return(i64Ptr(3), nil)
	mockBookings.On("List", mock.Anything, mock.MatchedBy(func(f repository.BookingFilters) bool {
		return f.LocationID == 3
	})).Return([]repository.BookingListRow{}, int64(0), nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRateRepository), mockUsers, new(MockEventSink))

	_, _, err := service.ListBookings(context.Background(), Actor{UserID: 7, Role: domain.RoleStaff}, repository.BookingFilters{})

	assert.NoError(t, err)
	mockBookings.AssertExpectations(t)
}

func TestService_ListBookings_SuperAdminUnscoped(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockUsers := new(MockUserRepository)

	mockBookings.On("List", mock.Anything, mock.MatchedBy(func(f repository.BookingFilters) bool {
		return f.LocationID == 0
	})).Return([]repository.BookingListRow{}, int64(0), nil)

	service := newTestService(mockBookings, new(MockRoomRepository), new(MockRateRepository), mockUsers, new(MockEventSink))

	_, _, err := service.ListBookings(context.Background(), Actor{UserID: 1, Role: domain.RoleSuperAdmin}, repository.BookingFilters{})

	assert.NoError(t, err)
	mockUsers.AssertNotCalled(t, "GetLocationID", mock.Anything, mock.Anything)
}
