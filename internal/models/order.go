package models

import "time"

// Order statuses. Transitions are forward-only:
// processing -> shipped -> delivered.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// OrderItem represents a single line within a placed order. Price and
// variant attributes are copied from the cart line at checkout so later
// catalog or cart changes cannot affect the order.
type OrderItem struct {
	ID            uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID       string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID     uint    `json:"product_id"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"` // Price at the time of order
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
}

// Order represents an immutable snapshot of a checked-out cart.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerID      string      `json:"customer_id" gorm:"index;type:varchar(36)"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total           float64     `json:"total"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// NextStatus returns the status that follows s, or "" when s is terminal
// or unknown.
func NextStatus(s string) string {
	switch s {
	case OrderStatusProcessing:
		return OrderStatusShipped
	case OrderStatusShipped:
		return OrderStatusDelivered
	default:
		return ""
	}
}

// ValidStatusTransition reports whether an order may move from to next.
func ValidStatusTransition(from, to string) bool {
	return NextStatus(from) == to && to != ""
}
