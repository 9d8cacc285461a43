package domain

import "time"

type Location struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Code      string    `json:"code" gorm:"uniqueIndex;size:10"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city" validate:"required"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
