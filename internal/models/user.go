package models

import "gorm.io/gorm"

// User roles. The canonical field is Role; seller and admin roles gate
// the management endpoints.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// User represents an account on the marketplace.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(20);default:customer" validate:"omitempty,oneof=customer seller admin"`
	StoreName  string `json:"store_name,omitempty" gorm:"type:varchar(100)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ValidRole reports whether r is one of the known user roles.
func ValidRole(r string) bool {
	return r == RoleCustomer || r == RoleSeller || r == RoleAdmin
}
