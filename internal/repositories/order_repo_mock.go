package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auramarket/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It holds a CartRepository so PlaceOrder can clear the cart with the
// same all-or-nothing behavior as the database-backed implementation.
type MockOrderRepository struct {
	orders   map[string]models.Order
	cartRepo CartRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
// cartRepo may be nil when checkout is not exercised.
func NewMockOrderRepository(cartRepo CartRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[string]models.Order),
		cartRepo: cartRepo,
	}
}

// GetAll returns all orders, most recent first.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	sort.SliceStable(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s not found", id)
	}
	return &order, nil
}

// GetByCustomer returns a customer's orders, most recent first.
func (r *MockOrderRepository) GetByCustomer(customerID string) ([]models.Order, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	for _, order := range all {
		if order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// PlaceOrder stores the order and clears the customer's cart.
func (r *MockOrderRepository) PlaceOrder(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt

	if r.cartRepo != nil {
		if err := r.cartRepo.Clear(order.CustomerID); err != nil {
			return fmt.Errorf("failed to clear cart for order %s: %w", order.ID, err)
		}
	}
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}
