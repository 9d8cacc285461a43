package domain

import "time"

type RateType string

const (
	RateBase     RateType = "base"
	RateWeekend  RateType = "weekend"
	RateSeasonal RateType = "seasonal"
	RateSpecial  RateType = "special"
)

// RoomRate is a nightly price for a room. All prices are integer cents.
// Only the active base rate participates in booking pricing; the other
// rate types are stored for the rate management screens.
type RoomRate struct {
	ID         int64      `json:"id"`
	RoomID     int64      `json:"room_id" validate:"required"`
	RateType   RateType   `json:"rate_type" gorm:"size:20" validate:"required"`
	PriceCents int64      `json:"price_cents" validate:"required,gte=0"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidTo    *time.Time `json:"valid_to,omitempty"`
	IsActive   bool       `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
