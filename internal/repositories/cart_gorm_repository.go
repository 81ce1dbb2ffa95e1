package repositories

import (
	"fmt"

	"auramarket/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves all cart lines for a user, oldest first.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Order("created_at ASC").Find(&items, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// GetByKey retrieves a single cart line by its key.
func (r *GORMCartRepository) GetByKey(cartKey string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "cart_key = ?", cartKey).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("key %s: %w", cartKey, ErrCartLineNotFound)
		}
		return nil, fmt.Errorf("failed to get cart line %s: %w", cartKey, err)
	}
	return &item, nil
}

// FindVariant looks up the cart line matching (user, product, size, color).
// Returns (nil, nil) when no such line exists.
func (r *GORMCartRepository) FindVariant(userID string, productID uint, size, color string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item,
		"user_id = ? AND product_id = ? AND selected_size = ? AND selected_color = ?",
		userID, productID, size, color).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up cart variant: %w", err)
	}
	return &item, nil
}

// Create appends a new cart line, assigning a key when unset.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if item.CartKey == "" {
		item.CartKey = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart line: %w", err)
	}
	return nil
}

// UpdateQuantity sets the quantity on an existing cart line.
func (r *GORMCartRepository) UpdateQuantity(cartKey string, quantity int) error {
	res := r.db.Model(&models.CartItem{}).Where("cart_key = ?", cartKey).Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart line %s: %w", cartKey, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart line with key %s not found for update", cartKey)
	}
	return nil
}

// Delete removes a cart line by its key. Deleting an absent line is not
// an error.
func (r *GORMCartRepository) Delete(cartKey string) error {
	if err := r.db.Delete(&models.CartItem{}, "cart_key = ?", cartKey).Error; err != nil {
		return fmt.Errorf("failed to delete cart line %s: %w", cartKey, err)
	}
	return nil
}

// Clear removes every cart line belonging to the user.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
