package catalog

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Location, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, f repository.RoomFilters) ([]domain.Room, error)
	UpdateStatus(ctx context.Context, roomID int64, status domain.RoomStatus) error
	Deactivate(ctx context.Context, roomID int64) error
}

type RateRepository interface {
	Create(ctx context.Context, rate *domain.RoomRate) error
	GetByID(ctx context.Context, id int64) (*domain.RoomRate, error)
	Update(ctx context.Context, rate *domain.RoomRate) error
	ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomRate, error)
}
