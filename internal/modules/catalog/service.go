package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/refcode"
	"hotelbooking/internal/repository"
)

type Service struct {
	locations LocationRepository
	rooms     RoomRepository
	rates     RateRepository
}

func NewService(locations LocationRepository, rooms RoomRepository, rates RateRepository) *Service {
	return &Service{locations: locations, rooms: rooms, rates: rates}
}

func (s *Service) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return s.locations.List(ctx, true)
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	loc, err := s.locations.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	room := &domain.Room{
		RoomCode:    refcode.RoomCode(req.RoomNumber, loc.Code),
		LocationID:  loc.ID,
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		Description: req.Description,
		Capacity:    req.Capacity,
		Status:      domain.RoomAvailable,
		IsActive:    true,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, f repository.RoomFilters) ([]domain.Room, error) {
	return s.rooms.List(ctx, f)
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomType != "" {
		room.RoomType = req.RoomType
	}
	if req.Description != "" {
		room.Description = req.Description
	}
	if req.Capacity > 0 {
		room.Capacity = req.Capacity
	}
	if req.Status != "" {
		status := domain.RoomStatus(req.Status)
		switch status {
		case domain.RoomAvailable, domain.RoomOccupied, domain.RoomMaintenance,
			domain.RoomCleaning, domain.RoomReserved:
			room.Status = status
		default:
			return nil, ErrValidation
		}
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom deactivates the room and its rates; bookings stay untouched.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	err := s.rooms.Deactivate(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoomNotFound
	}
	return err
}

func (s *Service) CreateRate(ctx context.Context, roomID int64, req CreateRateRequest) (*domain.RoomRate, error) {
	rateType := domain.RateType(req.RateType)
	switch rateType {
	case domain.RateBase, domain.RateWeekend, domain.RateSeasonal, domain.RateSpecial:
	default:
		return nil, ErrValidation
	}

	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}

	// A new active base rate supersedes the previous one.
	if rateType == domain.RateBase {
		existing, err := s.rates.ListByRoom(ctx, roomID)
		if err != nil {
			return nil, err
		}
		for i := range existing {
			r := &existing[i]
			if r.RateType == domain.RateBase && r.IsActive {
				r.IsActive = false
				if err := s.rates.Update(ctx, r); err != nil {
					return nil, err
				}
			}
		}
	}

	rate := &domain.RoomRate{
		RoomID:     roomID,
		RateType:   rateType,
		PriceCents: req.PriceCents,
		ValidFrom:  req.ValidFrom,
		ValidTo:    req.ValidTo,
		IsActive:   true,
	}
	if err := s.rates.Create(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}

func (s *Service) ListRates(ctx context.Context, roomID int64) ([]domain.RoomRate, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return s.rates.ListByRoom(ctx, roomID)
}

func (s *Service) UpdateRate(ctx context.Context, id int64, req UpdateRateRequest) (*domain.RoomRate, error) {
	rate, err := s.rates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, err
	}

	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, ErrValidation
		}
		rate.PriceCents = *req.PriceCents
	}
	if req.IsActive != nil {
		rate.IsActive = *req.IsActive
	}

	if err := s.rates.Update(ctx, rate); err != nil {
		return nil, err
	}
	return rate, nil
}
