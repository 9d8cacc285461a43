package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).Preload("Location").First(&room, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

// GetLocationID resolves the room's owning location without loading the row.
func (r *RoomRepository) GetLocationID(ctx context.Context, roomID int64) (int64, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).Select("location_id").First(&room, roomID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return room.LocationID, nil
}

type RoomFilters struct {
	LocationID int64
	Status     string
	RoomType   string
	ActiveOnly bool
}

func (r *RoomRepository) List(ctx context.Context, f RoomFilters) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Preload("Location").Order("room_number")

	if f.LocationID > 0 {
		q = q.Where("location_id = ?", f.LocationID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RoomType != "" {
		q = q.Where("room_type = ?", f.RoomType)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []domain.Room
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("id = ?", roomID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		}).Error
}

// Deactivate soft-deletes a room and its rates. Bookings are never removed.
func (r *RoomRepository) Deactivate(ctx context.Context, roomID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Room{}).Where("id = ?", roomID).Update("is_active", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.RoomRate{}).Where("room_id = ?", roomID).Update("is_active", false).Error
	})
}
