package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type RateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) *RateRepository {
	return &RateRepository{db: db}
}

func (r *RateRepository) Create(ctx context.Context, rate *domain.RoomRate) error {
	return r.db.WithContext(ctx).Create(rate).Error
}

func (r *RateRepository) GetByID(ctx context.Context, id int64) (*domain.RoomRate, error) {
	var rate domain.RoomRate
	tx := r.db.WithContext(ctx).First(&rate, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rate, nil
}

func (r *RateRepository) Update(ctx context.Context, rate *domain.RoomRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

func (r *RateRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomRate, error) {
	var rows []domain.RoomRate
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("rate_type, created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetActiveBaseRateCents returns the nightly base price for a room.
// gorm.ErrRecordNotFound when the room has no active base rate.
func (r *RateRepository) GetActiveBaseRateCents(ctx context.Context, roomID int64) (int64, error) {
	var rate domain.RoomRate
	tx := r.db.WithContext(ctx).
		Where("room_id = ? AND rate_type = ? AND is_active = ?", roomID, domain.RateBase, true).
		Order("created_at DESC").
		First(&rate)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return rate.PriceCents, nil
}
