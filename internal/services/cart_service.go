package services

import (
	"errors"
	"fmt"

	"auramarket/internal/logger"
	"auramarket/internal/models"
	"auramarket/internal/repositories"

	"go.uber.org/zap"
)

// CartService handles business logic for carts and favorites. Cart state
// lives in the repository; every mutation is persisted before it is
// observable, so memory and durable storage cannot diverge.
type CartService struct {
	cartRepo     repositories.CartRepository
	favoriteRepo repositories.FavoriteRepository
	productRepo  repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, favoriteRepo repositories.FavoriteRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// GetCart returns the user's cart lines in insertion order.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.cartRepo.GetByUser(userID)
}

// AddToCart adds quantity units of a product variant to the user's cart.
// A line already holding the same (product, size, color) triple absorbs
// the quantity; otherwise a new line is appended. Stock is advisory and
// not enforced here.
func (s *CartService) AddToCart(userID string, productID uint, quantity int, size, color string) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindVariant(userID, productID, size, color)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		newQty := existing.Quantity + quantity
		if err := s.cartRepo.UpdateQuantity(existing.CartKey, newQty); err != nil {
			return nil, err
		}
		existing.Quantity = newQty
		return existing, nil
	}

	line := &models.CartItem{
		UserID:        userID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		UnitPrice:     product.Price,
		Image:         product.Image,
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
	}
	if err := s.cartRepo.Create(line); err != nil {
		return nil, err
	}
	logger.L().Debug("cart line added",
		zap.String("user_id", userID),
		zap.Uint("product_id", productID),
		zap.String("cart_key", line.CartKey))
	return line, nil
}

// RemoveFromCart deletes the line with the given key. Removing an absent
// line is a no-op; storage failures still surface.
func (s *CartService) RemoveFromCart(userID, cartKey string) error {
	line, err := s.cartRepo.GetByKey(cartKey)
	if err != nil {
		if errors.Is(err, repositories.ErrCartLineNotFound) {
			return nil // absent line, nothing to do
		}
		return err
	}
	if line.UserID != userID {
		return fmt.Errorf("cart line %s does not belong to user %s", cartKey, userID)
	}
	return s.cartRepo.Delete(cartKey)
}

// UpdateQuantity sets the quantity on a cart line. A quantity of zero or
// below removes the line, same as RemoveFromCart.
func (s *CartService) UpdateQuantity(userID, cartKey string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(userID, cartKey)
	}

	line, err := s.cartRepo.GetByKey(cartKey)
	if err != nil {
		return err
	}
	if line.UserID != userID {
		return fmt.Errorf("cart line %s does not belong to user %s", cartKey, userID)
	}
	return s.cartRepo.UpdateQuantity(cartKey, quantity)
}

// ClearCart empties the user's cart.
func (s *CartService) ClearCart(userID string) error {
	return s.cartRepo.Clear(userID)
}

// CartTotal sums unit price times quantity over all lines.
func (s *CartService) CartTotal(userID string) (float64, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total, nil
}

// CartItemsCount sums the quantities over all lines. This is the badge
// count, not the number of lines.
func (s *CartService) CartItemsCount(userID string) (int, error) {
	items, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// AddToFavorites saves a product reference for the user. Adding an
// already-favorited product is a no-op.
func (s *CartService) AddToFavorites(userID string, productID uint) error {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return err
	}
	return s.favoriteRepo.Add(&models.Favorite{
		UserID:    userID,
		ProductID: productID,
	})
}

// RemoveFromFavorites drops a product from the user's favorites.
func (s *CartService) RemoveFromFavorites(userID string, productID uint) error {
	return s.favoriteRepo.Remove(userID, productID)
}

// IsFavorite reports whether the user has favorited the product. Variant
// attributes play no part, membership is by product id only.
func (s *CartService) IsFavorite(userID string, productID uint) (bool, error) {
	return s.favoriteRepo.Exists(userID, productID)
}

// GetFavorites returns the user's favorites with product snapshots.
func (s *CartService) GetFavorites(userID string) ([]models.Favorite, error) {
	return s.favoriteRepo.GetByUser(userID)
}
