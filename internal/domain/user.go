package domain

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleStaff      Role = "staff"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func IsStaffRole(r Role) bool {
	return r == RoleStaff || r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID           int64  `json:"id"`
	UserCode     string `json:"user_code" gorm:"uniqueIndex;size:20"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255" validate:"required,email"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role" gorm:"size:20"`

	// Home location: drives the cross-location fee for registered bookings.
	LocationID *int64    `json:"location_id,omitempty"`
	Location   *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
