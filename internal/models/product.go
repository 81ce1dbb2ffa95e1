package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Categories is the fixed set of product categories the marketplace sells.
var Categories = []string{
	"Dresses",
	"Shirts & Blouses",
	"Pants & Jeans",
	"Shoes",
	"Accessories",
	"Bags",
	"Jewelry",
	"Outerwear",
}

// StringList is an ordered list of strings stored as a JSON text column.
type StringList []string

// Value implements driver.Valuer so GORM can persist the list.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner so GORM can load the list.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return json.Unmarshal(data, l)
}

// Product represents a catalog listing owned by a seller.
type Product struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" validate:"required,min=3,max=100"`
	Category    string     `json:"category" validate:"required"`
	Price       float64    `json:"price" validate:"gte=0"`
	Image       string     `json:"image" validate:"omitempty,url"`
	Description string     `json:"description" validate:"omitempty,max=500"`
	Seller      string     `json:"seller"`
	SellerID    string     `json:"seller_id" gorm:"index;type:varchar(36)"`
	Sales       int        `json:"sales" validate:"gte=0"`
	Rating      float64    `json:"rating" validate:"gte=0,lte=5"`
	Reviews     int        `json:"reviews" validate:"gte=0"`
	Stock       int        `json:"stock" validate:"gte=0"`
	Sizes       StringList `json:"sizes" gorm:"type:text"`
	Colors      StringList `json:"colors" gorm:"type:text"`
	gorm.Model  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ValidCategory reports whether c belongs to the fixed category set.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
