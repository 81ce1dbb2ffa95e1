package repositories

import (
	"sync"
	"time"

	"auramarket/internal/models"
)

// MockFavoriteRepository is an in-memory implementation of
// FavoriteRepository with the same set semantics as the database-backed
// one.
type MockFavoriteRepository struct {
	favorites []models.Favorite
	nextID    uint
	mu        sync.RWMutex
}

// NewMockFavoriteRepository creates a new instance of MockFavoriteRepository.
func NewMockFavoriteRepository() *MockFavoriteRepository {
	return &MockFavoriteRepository{nextID: 1}
}

// GetByUser returns a user's favorites in insertion order.
func (r *MockFavoriteRepository) GetByUser(userID string) ([]models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var favorites []models.Favorite
	for _, fav := range r.favorites {
		if fav.UserID == userID {
			favorites = append(favorites, fav)
		}
	}
	return favorites, nil
}

// Exists reports whether the user has favorited the product.
func (r *MockFavoriteRepository) Exists(userID string, productID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, fav := range r.favorites {
		if fav.UserID == userID && fav.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

// Add stores a favorite; adding an existing (user, product) pair is a
// no-op.
func (r *MockFavoriteRepository) Add(favorite *models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, fav := range r.favorites {
		if fav.UserID == favorite.UserID && fav.ProductID == favorite.ProductID {
			return nil
		}
	}
	favorite.ID = r.nextID
	r.nextID++
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}
	r.favorites = append(r.favorites, *favorite)
	return nil
}

// Remove deletes a favorite by (user, product); removing an absent
// favorite is not an error.
func (r *MockFavoriteRepository) Remove(userID string, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, fav := range r.favorites {
		if fav.UserID == userID && fav.ProductID == productID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			break
		}
	}
	return nil
}
