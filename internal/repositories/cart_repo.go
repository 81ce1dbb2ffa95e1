package repositories

import (
	"errors"

	"auramarket/internal/models"
)

// ErrCartLineNotFound marks a cart line lookup that missed, as opposed to
// a storage failure. Callers check it with errors.Is.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository defines the interface for cart line data access. Every
// mutation is written through immediately; the stored rows are the only
// cart state there is.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	GetByKey(cartKey string) (*models.CartItem, error)
	FindVariant(userID string, productID uint, size, color string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(cartKey string, quantity int) error
	Delete(cartKey string) error
	Clear(userID string) error
}

// FavoriteRepository defines the interface for favorite data access.
// Favorites have set semantics keyed by (user, product).
type FavoriteRepository interface {
	GetByUser(userID string) ([]models.Favorite, error)
	Exists(userID string, productID uint) (bool, error)
	Add(favorite *models.Favorite) error
	Remove(userID string, productID uint) error
}
