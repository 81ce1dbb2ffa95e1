package services_test

import (
	"testing"

	"auramarket/internal/models"
	"auramarket/internal/services"

	"github.com/stretchr/testify/assert"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Suede Ankle Boots", Category: "Shoes", Price: 50, Rating: 4, Sales: 120},
		{ID: 2, Name: "Leather Derby Shoes", Category: "Shoes", Price: 150, Rating: 3, Sales: 300},
		{ID: 3, Name: "Canvas Tote Bag", Category: "Bags", Price: 80, Rating: 5, Sales: 45},
	}
}

func ids(products []models.Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestProjectProducts_CategoryAndPriceRange(t *testing.T) {
	result := services.ProjectProducts(catalogFixture(), models.ProductFilter{
		Category:   "Shoes",
		PriceRange: &models.PriceRange{Min: 0, Max: 100},
	})

	assert.Equal(t, []uint{1}, ids(result))
}

func TestProjectProducts_RatingSortNoFilters(t *testing.T) {
	result := services.ProjectProducts(catalogFixture(), models.ProductFilter{
		SortBy: models.SortRating,
	})

	assert.Equal(t, []uint{3, 1, 2}, ids(result))
}

func TestProjectProducts_SortKeys(t *testing.T) {
	tests := []struct {
		sortBy string
		want   []uint
	}{
		{models.SortLatest, []uint{1, 2, 3}},
		{"", []uint{1, 2, 3}},
		{models.SortPopular, []uint{2, 1, 3}},
		{models.SortPriceLow, []uint{1, 3, 2}},
		{models.SortPriceHigh, []uint{2, 3, 1}},
	}
	for _, tt := range tests {
		result := services.ProjectProducts(catalogFixture(), models.ProductFilter{SortBy: tt.sortBy})
		assert.Equal(t, tt.want, ids(result), "sort %q", tt.sortBy)
	}
}

func TestProjectProducts_RatingFloor(t *testing.T) {
	result := services.ProjectProducts(catalogFixture(), models.ProductFilter{Rating: 4})
	assert.Equal(t, []uint{1, 3}, ids(result))

	// Rating 0 means unset and filters nothing.
	result = services.ProjectProducts(catalogFixture(), models.ProductFilter{Rating: 0})
	assert.Len(t, result, 3)
}

func TestProjectProducts_StableSortPreservesInsertionOrderOnTies(t *testing.T) {
	products := []models.Product{
		{ID: 10, Price: 20, Rating: 4},
		{ID: 11, Price: 20, Rating: 4},
		{ID: 12, Price: 20, Rating: 4},
	}
	result := services.ProjectProducts(products, models.ProductFilter{SortBy: models.SortPriceLow})
	assert.Equal(t, []uint{10, 11, 12}, ids(result))
}

func TestProjectProducts_EmptyResultVersusNoInput(t *testing.T) {
	// Filtering a real catalog down to nothing yields an empty, non-nil
	// slice.
	result := services.ProjectProducts(catalogFixture(), models.ProductFilter{Category: "Jewelry"})
	assert.NotNil(t, result)
	assert.Empty(t, result)

	// A catalog that was never loaded stays nil.
	assert.Nil(t, services.ProjectProducts(nil, models.ProductFilter{}))
}
