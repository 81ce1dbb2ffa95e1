package services_test

import (
	"fmt"
	"testing"

	"auramarket/internal/models"
	"auramarket/internal/repositories"
	"auramarket/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) *services.CartService {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	err := productRepo.Create(&models.Product{
		ID: 1, Name: "Elegant Summer Dress", Category: "Dresses", Price: 89.99, Stock: 15,
		Sizes: models.StringList{"S", "M", "L"}, Colors: models.StringList{"Blue", "Red"},
	})
	assert.NoError(t, err)
	err = productRepo.Create(&models.Product{
		ID: 2, Name: "Leather Crossbody Bag", Category: "Bags", Price: 159.99, Stock: 20,
	})
	assert.NoError(t, err)

	service := services.NewCartService(
		repositories.NewMockCartRepository(),
		repositories.NewMockFavoriteRepository(),
		productRepo,
	)
	return service
}

func TestCartService_AddToCartMergesIdenticalVariants(t *testing.T) {
	service := newCartFixture(t)

	_, err := service.AddToCart("user-1", 1, 1, "M", "Blue")
	assert.NoError(t, err)
	_, err = service.AddToCart("user-1", 1, 2, "M", "Blue")
	assert.NoError(t, err)
	_, err = service.AddToCart("user-1", 1, 3, "M", "Blue")
	assert.NoError(t, err)

	items, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1, "identical variants must collapse into one line")
	assert.Equal(t, 6, items[0].Quantity)
}

func TestCartService_AddToCartKeepsDistinctVariantsApart(t *testing.T) {
	service := newCartFixture(t)

	_, err := service.AddToCart("user-1", 1, 1, "M", "Blue")
	assert.NoError(t, err)
	_, err = service.AddToCart("user-1", 1, 1, "L", "Blue")
	assert.NoError(t, err)
	_, err = service.AddToCart("user-1", 1, 1, "M", "Red")
	assert.NoError(t, err)

	items, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 3, "a different size or color is a different line")
}

func TestCartService_AddToCartRejectsNonPositiveQuantity(t *testing.T) {
	service := newCartFixture(t)

	_, err := service.AddToCart("user-1", 1, 0, "M", "Blue")
	assert.Error(t, err)
	_, err = service.AddToCart("user-1", 1, -2, "M", "Blue")
	assert.Error(t, err)

	items, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items, "rejected adds must not mutate the cart")
}

func TestCartService_AddToCartUnknownProduct(t *testing.T) {
	service := newCartFixture(t)

	_, err := service.AddToCart("user-1", 99, 1, "", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCartService_TotalsAndCount(t *testing.T) {
	service := newCartFixture(t)

	_, err := service.AddToCart("user-1", 1, 2, "M", "Blue") // 2 x 89.99
	assert.NoError(t, err)
	_, err = service.AddToCart("user-1", 2, 1, "", "") // 1 x 159.99
	assert.NoError(t, err)

	total, err := service.CartTotal("user-1")
	assert.NoError(t, err)
	assert.InDelta(t, 2*89.99+159.99, total, 1e-9)

	count, err := service.CartItemsCount("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 3, count, "count sums quantities, not lines")
}

func TestCartService_UpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	service := newCartFixture(t)

	lineA, err := service.AddToCart("user-1", 1, 2, "M", "Blue")
	assert.NoError(t, err)
	lineB, err := service.AddToCart("user-1", 2, 2, "", "")
	assert.NoError(t, err)

	assert.NoError(t, service.UpdateQuantity("user-1", lineA.CartKey, 0))
	assert.NoError(t, service.UpdateQuantity("user-1", lineB.CartKey, -5))

	items, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)

	// Removing the same key again stays a no-op.
	assert.NoError(t, service.RemoveFromCart("user-1", lineA.CartKey))
}

func TestCartService_UpdateQuantitySetsInPlace(t *testing.T) {
	service := newCartFixture(t)

	line, err := service.AddToCart("user-1", 1, 1, "M", "Blue")
	assert.NoError(t, err)

	assert.NoError(t, service.UpdateQuantity("user-1", line.CartKey, 7))

	items, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
	assert.Equal(t, line.CartKey, items[0].CartKey, "line identity survives quantity changes")
}

func TestCartService_ClearCart(t *testing.T) {
	service := newCartFixture(t)

	_, err := service.AddToCart("user-1", 1, 1, "M", "Blue")
	assert.NoError(t, err)
	_, err = service.AddToCart("user-2", 2, 1, "", "")
	assert.NoError(t, err)

	assert.NoError(t, service.ClearCart("user-1"))

	items, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)

	other, err := service.GetCart("user-2")
	assert.NoError(t, err)
	assert.Len(t, other, 1, "clearing one user's cart must not touch another's")
}

func TestCartService_CartsAreScopedPerUser(t *testing.T) {
	service := newCartFixture(t)

	lineA, err := service.AddToCart("user-1", 1, 1, "M", "Blue")
	assert.NoError(t, err)

	// Another user cannot change user-1's line.
	err = service.UpdateQuantity("user-2", lineA.CartKey, 5)
	assert.Error(t, err)
}

func TestCartService_FavoritesAreIdempotent(t *testing.T) {
	service := newCartFixture(t)

	assert.NoError(t, service.AddToFavorites("user-1", 1))
	assert.NoError(t, service.AddToFavorites("user-1", 1))

	favorites, err := service.GetFavorites("user-1")
	assert.NoError(t, err)
	assert.Len(t, favorites, 1, "adding twice leaves exactly one entry")

	isFav, err := service.IsFavorite("user-1", 1)
	assert.NoError(t, err)
	assert.True(t, isFav)

	isFav, err = service.IsFavorite("user-1", 2)
	assert.NoError(t, err)
	assert.False(t, isFav)
}

func TestCartService_RemoveFavorite(t *testing.T) {
	service := newCartFixture(t)

	assert.NoError(t, service.AddToFavorites("user-1", 1))
	assert.NoError(t, service.RemoveFromFavorites("user-1", 1))

	isFav, err := service.IsFavorite("user-1", 1)
	assert.NoError(t, err)
	assert.False(t, isFav)

	// Removing an absent favorite stays a no-op.
	assert.NoError(t, service.RemoveFromFavorites("user-1", 1))
}

func TestCartService_FavoriteUnknownProduct(t *testing.T) {
	service := newCartFixture(t)

	err := service.AddToFavorites("user-1", 99)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// brokenCartRepo simulates a cart store whose lookups fail outright.
type brokenCartRepo struct {
	*repositories.MockCartRepository
}

func (r *brokenCartRepo) GetByKey(cartKey string) (*models.CartItem, error) {
	return nil, fmt.Errorf("connection refused")
}

func TestCartService_RemoveFromCartSurfacesStorageFailures(t *testing.T) {
	productRepo := repositories.NewMockProductRepository()
	assert.NoError(t, productRepo.Create(&models.Product{ID: 1, Name: "Elegant Summer Dress", Category: "Dresses", Price: 89.99}))
	cartRepo := &brokenCartRepo{MockCartRepository: repositories.NewMockCartRepository()}
	service := services.NewCartService(cartRepo, repositories.NewMockFavoriteRepository(), productRepo)

	// A lookup failure is not the same as an absent line.
	err := service.RemoveFromCart("user-1", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	err = service.UpdateQuantity("user-1", "some-key", 0)
	assert.Error(t, err)
}
