package repositories

import (
	"auramarket/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// PlaceOrder commits the order and clears the customer's cart as one
// unit: either both happen or neither does.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByCustomer(customerID string) ([]models.Order, error)
	PlaceOrder(order *models.Order) error
	UpdateStatus(id string, status string) error
}
