package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, l *domain.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var l domain.Location
	tx := r.db.WithContext(ctx).First(&l, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &l, nil
}

func (r *LocationRepository) List(ctx context.Context, activeOnly bool) ([]domain.Location, error) {
	q := r.db.WithContext(ctx).Order("name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []domain.Location
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
