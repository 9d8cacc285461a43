package domain

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomCleaning    RoomStatus = "cleaning"
	RoomReserved    RoomStatus = "reserved"
)

type Room struct {
	ID          int64      `json:"id"`
	RoomCode    string     `json:"room_code" gorm:"uniqueIndex;size:30"`
	LocationID  int64      `json:"location_id" validate:"required"`
	RoomNumber  string     `json:"room_number" validate:"required"`
	RoomType    string     `json:"room_type,omitempty"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Capacity    int        `json:"capacity" validate:"required,gte=1"`
	Status      RoomStatus `json:"status" gorm:"size:20;default:available"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}
