package catalog

import "time"

type CreateRoomRequest struct {
	LocationID  int64  `json:"location_id" binding:"required"`
	RoomNumber  string `json:"room_number" binding:"required"`
	RoomType    string `json:"room_type"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
}

type UpdateRoomRequest struct {
	RoomType    string `json:"room_type"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1"`
	Status      string `json:"status"`
}

type CreateRateRequest struct {
	RateType   string     `json:"rate_type" binding:"required"`
	PriceCents int64      `json:"price_cents" binding:"required,min=0"`
	ValidFrom  *time.Time `json:"valid_from"`
	ValidTo    *time.Time `json:"valid_to"`
}

type UpdateRateRequest struct {
	PriceCents *int64 `json:"price_cents" binding:"omitempty,min=0"`
	IsActive   *bool  `json:"is_active"`
}
