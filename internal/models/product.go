package models

import "gorm.io/gorm"

// Product represents an item slot in the vending machine.
// Cost is a unit price in coin units and must stay compatible with the
// accepted denominations (a multiple of 5). Amount is the available stock
// and never goes negative.
type Product struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Cost       int    `json:"cost" validate:"gte=0"`
	Amount     int    `json:"amount" validate:"gte=0"`
	SellerID   string `json:"seller_id" gorm:"type:varchar(36);index" validate:"omitempty,uuid"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}
