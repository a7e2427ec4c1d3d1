package models

import "gorm.io/gorm"

// User roles. A user is either a buyer or a seller, never both.
const (
	RoleBuyer  = "BUYER"
	RoleSeller = "SELLER"
)

// User represents a vending-machine account.
// Deposit is meaningful only for buyers; a seller's deposit stays 0 and is
// never touched by the wallet operations.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role       string `json:"role" gorm:"type:varchar(10)" validate:"omitempty,oneof=BUYER SELLER"`
	Deposit    int    `json:"deposit" gorm:"not null;default:0" validate:"gte=0"`
	Active     bool   `json:"active" gorm:"not null;default:true"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}

// IsBuyer reports whether the user holds the BUYER role.
func (u *User) IsBuyer() bool {
	return u.Role == RoleBuyer
}

// IsSeller reports whether the user holds the SELLER role.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
