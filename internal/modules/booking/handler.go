package booking

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/response"
	"hotelbooking/internal/pkg/validator"
	"hotelbooking/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/guest", h.CreateGuestBooking)
	rg.GET("/bookings/check-availability", h.CheckAvailability)
	rg.GET("/bookings/reference/:reference", h.GetByReference)
}

func (h *Handler) RegisterUserRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/user", h.CreateUserBooking)
	rg.GET("/bookings/my-bookings", h.MyBookings)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetByID)
	rg.POST("/bookings/staff-assisted", h.CreateStaffAssistedBooking)
	rg.PATCH("/bookings/:id/status", h.UpdateStatus)
	rg.PATCH("/bookings/:id/payment-status", h.UpdatePaymentStatus)
}

func (h *Handler) RegisterSuperAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/reserve", h.CreateReservation)
}

func (h *Handler) CreateGuestBooking(c *gin.Context) {
	var req GuestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	checkIn, checkOut, err := parseDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Dates must be valid YYYY-MM-DD values")
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), CreateBookingInput{
		RoomID:          req.RoomID,
		GuestName:       &req.GuestName,
		GuestEmail:      &req.GuestEmail,
		GuestPhone:      &req.GuestPhone,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       req.NumGuests,
		BookingType:     domain.BookingGuest,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) CreateUserBooking(c *gin.Context) {
	var req UserBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	checkIn, checkOut, err := parseDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Dates must be valid YYYY-MM-DD values")
		return
	}

	userID := c.GetInt64("user_id")
	result, err := h.service.CreateBooking(c.Request.Context(), CreateBookingInput{
		RoomID:          req.RoomID,
		UserID:          &userID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       req.NumGuests,
		BookingType:     domain.BookingRegistered,
		CreatedBy:       &userID,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) CreateStaffAssistedBooking(c *gin.Context) {
	var req StaffBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	checkIn, checkOut, err := parseDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Dates must be valid YYYY-MM-DD values")
		return
	}

	createdBy := c.GetInt64("user_id")
	result, err := h.service.CreateBooking(c.Request.Context(), CreateBookingInput{
		RoomID:          req.RoomID,
		UserID:          req.UserID,
		GuestName:       optionalText(req.GuestName),
		GuestEmail:      optionalText(req.GuestEmail),
		GuestPhone:      optionalText(req.GuestPhone),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       req.NumGuests,
		BookingType:     domain.BookingStaffAssisted,
		CreatedBy:       &createdBy,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(c, errs)
		return
	}

	checkIn, checkOut, err := parseDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Dates must be valid YYYY-MM-DD values")
		return
	}

	createdBy := c.GetInt64("user_id")
	placeholder := "Reserved"
	result, err := h.service.CreateBooking(c.Request.Context(), CreateBookingInput{
		RoomID:          req.RoomID,
		GuestName:       &placeholder,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumGuests:       0,
		BookingType:     domain.BookingReserved,
		CreatedBy:       &createdBy,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("roomId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "roomId, checkInDate, and checkOutDate are required")
		return
	}
	checkIn, checkOut, err := parseDateRange(c.Query("checkInDate"), c.Query("checkOutDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "roomId, checkInDate, and checkOutDate are required")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"isAvailable": available})
}

func (h *Handler) GetByReference(c *gin.Context) {
	b, err := h.service.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListBookings(c *gin.Context) {
	f := repository.BookingFilters{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		BookingType:   c.Query("booking_type"),
	}
	if v, err := strconv.ParseInt(c.Query("room_id"), 10, 64); err == nil {
		f.RoomID = v
	}
	if v, err := strconv.ParseInt(c.Query("user_id"), 10, 64); err == nil {
		f.UserID = v
	}
	if v, err := parseDate(c.Query("check_in_date")); err == nil {
		f.CheckInFrom = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		f.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil {
		f.Offset = v
	}

	actor := Actor{
		UserID: c.GetInt64("user_id"),
		Role:   domain.Role(c.GetString("role")),
	}

	rows, total, err := h.service.ListBookings(c.Request.Context(), actor, f)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows, "total": total})
}

func (h *Handler) MyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.GetUserBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	status := domain.BookingStatus(req.Status)
	switch status {
	case domain.BookingPending, domain.BookingConfirmed, domain.BookingCheckedIn,
		domain.BookingCheckedOut, domain.BookingCancelled:
	default:
		response.Error(c, http.StatusBadRequest, "Invalid status")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, status, req.CancellationReason)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.UpdatePaymentStatus(c.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func parseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := parseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := parseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "Invalid booking request")
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrRoomUnavailable):
		response.Error(c, http.StatusConflict, "Room is not available for the selected dates")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrRateNotFound):
		response.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrReferenceGeneration):
		log.Println("booking reference generation exhausted:", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create booking")
	default:
		log.Println("booking request failed:", err)
		response.Error(c, http.StatusInternalServerError, "Failed to process booking request")
	}
}
