package repositories

import (
	"fmt"
	"sync"
	"time"

	"auramarket/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
// Lines are kept in insertion order, matching the database-backed
// repository's created_at ordering.
type MockCartRepository struct {
	items []models.CartItem
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{}
}

// GetByUser returns all cart lines for a user in insertion order.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var lines []models.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			lines = append(lines, item)
		}
	}
	return lines, nil
}

// GetByKey returns a single cart line by its key.
func (r *MockCartRepository) GetByKey(cartKey string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.CartKey == cartKey {
			line := item
			return &line, nil
		}
	}
	return nil, fmt.Errorf("key %s: %w", cartKey, ErrCartLineNotFound)
}

// FindVariant looks up the cart line matching (user, product, size, color).
// Returns (nil, nil) when no such line exists.
func (r *MockCartRepository) FindVariant(userID string, productID uint, size, color string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.SameVariant(productID, size, color) {
			line := item
			return &line, nil
		}
	}
	return nil, nil
}

// Create appends a new cart line, assigning a key when unset.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.CartKey == "" {
		item.CartKey = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = item.CreatedAt
	r.items = append(r.items, *item)
	return nil
}

// UpdateQuantity sets the quantity on an existing cart line.
func (r *MockCartRepository) UpdateQuantity(cartKey string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].CartKey == cartKey {
			r.items[i].Quantity = quantity
			r.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("cart line with key %s not found for update", cartKey)
}

// Delete removes a cart line by its key. Deleting an absent line is not
// an error.
func (r *MockCartRepository) Delete(cartKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].CartKey == cartKey {
			r.items = append(r.items[:i], r.items[i+1:]...)
			break
		}
	}
	return nil
}

// Clear removes every cart line belonging to the user.
func (r *MockCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, item := range r.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return nil
}
