package repositories

import (
	"fmt"

	"auramarket/internal/models"

	"gorm.io/gorm"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{
		db: db,
	}
}

// GetByUser retrieves a user's favorites with product snapshots, oldest
// first.
func (r *GORMFavoriteRepository) GetByUser(userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Product").Order("created_at ASC").Find(&favorites, "user_id = ?", userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites for user %s: %w", userID, err)
	}
	return favorites, nil
}

// Exists reports whether the user has favorited the product.
func (r *GORMFavoriteRepository) Exists(userID string, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// Add stores a favorite. Adding an existing (user, product) pair is a
// no-op; the unique index backs the set semantics.
func (r *GORMFavoriteRepository) Add(favorite *models.Favorite) error {
	exists, err := r.Exists(favorite.UserID, favorite.ProductID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := r.db.Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes a favorite by (user, product). Removing an absent
// favorite is not an error.
func (r *GORMFavoriteRepository) Remove(userID string, productID uint) error {
	err := r.db.Delete(&models.Favorite{}, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}
