package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotelbooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// releasedStatuses are the lifecycle states that free a room's date range.
const releasedStatuses = "'cancelled', 'checked_out'"

func overlapQuery(db *gorm.DB, roomID int64, checkIn, checkOut time.Time, excludeBookingID *int64) *gorm.DB {
	// Half-open [check_in, check_out) overlap: a < d AND c < b.
	q := db.Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ("+releasedStatuses+")").
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeBookingID != nil {
		q = q.Where("id != ?", *excludeBookingID)
	}
	return q
}

// CheckAvailability reports whether the room is free for the requested
// range. Read-only; the authoritative check runs again inside Create's
// transaction.
func (r *BookingRepository) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeBookingID *int64) (bool, error) {
	var cnt int64
	err := overlapQuery(r.db.WithContext(ctx), roomID, checkIn, checkOut, excludeBookingID).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// Create persists a booking inside a single transaction: the room row is
// locked, availability is re-checked under the lock, then the row is
// inserted. Returns ErrRoomConflict when the re-check finds an overlap;
// constraint violations from the insert (reference uniqueness, the
// no-overbooking exclusion on PostgreSQL) come back untranslated for the
// service layer to inspect.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roomQ := tx
		if tx.Dialector.Name() == "postgres" {
			// SQLite is single-writer, the row lock only matters on Postgres.
			roomQ = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var room domain.Room
		if err := roomQ.First(&room, b.RoomID).Error; err != nil {
			return err
		}

		var cnt int64
		if err := overlapQuery(tx, b.RoomID, b.CheckInDate, b.CheckOutDate, nil).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRoomConflict
		}

		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Room.Location").
		Preload("User").
		First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Room.Location").
		Where("booking_reference = ?", reference).
		First(&b)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

type BookingFilters struct {
	Status        string
	PaymentStatus string
	RoomID        int64
	UserID        int64
	LocationID    int64
	BookingType   string
	CheckInFrom   time.Time
	Limit         int
	Offset        int
}

type BookingListRow struct {
	ID               int64     `json:"id"`
	BookingReference string    `json:"booking_reference"`
	RoomID           int64     `json:"room_id"`
	RoomNumber       string    `json:"room_number"`
	LocationID       int64     `json:"location_id"`
	LocationName     string    `json:"location_name"`
	UserName         *string   `json:"user_name,omitempty"`
	UserEmail        *string   `json:"user_email,omitempty"`
	GuestName        *string   `json:"guest_name,omitempty"`
	CheckInDate      time.Time `json:"check_in_date"`
	CheckOutDate     time.Time `json:"check_out_date"`
	NumGuests        int       `json:"num_guests"`
	TotalCents       int64     `json:"total_cents"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	BookingType      string    `json:"booking_type"`
	CreatedAt        time.Time `json:"created_at"`
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilters) ([]BookingListRow, int64, error) {
	query := r.db.WithContext(ctx).
		Table("bookings b").
		Select(`
			b.id,
			b.booking_reference,
			b.room_id,
			r.room_number,
			r.location_id,
			l.name AS location_name,
			u.name AS user_name,
			u.email AS user_email,
			b.guest_name,
			b.check_in_date,
			b.check_out_date,
			b.num_guests,
			b.total_cents,
			b.status,
			b.payment_status,
			b.booking_type,
			b.created_at
		`).
		Joins("JOIN rooms r ON r.id = b.room_id").
		Joins("JOIN locations l ON l.id = r.location_id").
		Joins("LEFT JOIN users u ON u.id = b.user_id")

	if f.LocationID > 0 {
		query = query.Where("r.location_id = ?", f.LocationID)
	}
	if f.Status != "" {
		query = query.Where("b.status = ?", f.Status)
	}
	if f.PaymentStatus != "" {
		query = query.Where("b.payment_status = ?", f.PaymentStatus)
	}
	if f.RoomID > 0 {
		query = query.Where("b.room_id = ?", f.RoomID)
	}
	if f.UserID > 0 {
		query = query.Where("b.user_id = ?", f.UserID)
	}
	if f.BookingType != "" {
		query = query.Where("b.booking_type = ?", f.BookingType)
	}
	if !f.CheckInFrom.IsZero() {
		query = query.Where("b.check_in_date >= ?", f.CheckInFrom)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var rows []BookingListRow
	if err := query.
		Order("b.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *BookingRepository) GetUserBookings(ctx context.Context, userID int64, limit, offset int) ([]BookingListRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []BookingListRow
	q := `
SELECT
  b.id,
  b.booking_reference,
  b.room_id,
  r.room_number,
  r.location_id,
  l.name AS location_name,
  b.check_in_date,
  b.check_out_date,
  b.num_guests,
  b.total_cents,
  b.status,
  b.payment_status,
  b.booking_type,
  b.created_at
FROM bookings b
JOIN rooms r ON r.id = b.room_id
JOIN locations l ON l.id = r.location_id
WHERE b.user_id = ?
ORDER BY b.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, userID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

// CancelWithReason marks the booking cancelled, storing the mandatory
// reason and the cancellation timestamp.
func (r *BookingRepository) CancelWithReason(ctx context.Context, bookingID int64, reason string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancellation_reason": reason,
			"cancelled_at":        &now,
			"updated_at":          now,
		}).Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"payment_status": string(status),
			"updated_at":     time.Now().UTC(),
		}).Error
}
