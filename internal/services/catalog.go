package services

import (
	"sort"

	"auramarket/internal/models"
)

// ProjectProducts applies the catalog filter pipeline and sort to a
// product list: category, price range, then minimum rating, each skipped
// when unset ("All" counts as no category), followed by a stable sort on
// the chosen key.
//
// A nil input stays nil so callers can tell "catalog not loaded" apart
// from "filters matched nothing": any non-nil input yields a non-nil
// (possibly empty) result.
func ProjectProducts(products []models.Product, filter models.ProductFilter) []models.Product {
	if products == nil {
		return nil
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && filter.Category != "All" && p.Category != filter.Category {
			continue
		}
		if filter.PriceRange != nil &&
			(p.Price < filter.PriceRange.Min || p.Price > filter.PriceRange.Max) {
			continue
		}
		if filter.Rating > 0 && p.Rating < filter.Rating {
			continue
		}
		filtered = append(filtered, p)
	}

	switch filter.SortBy {
	case models.SortPopular:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Sales > filtered[j].Sales
		})
	case models.SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case models.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	default:
		// "latest" keeps catalog insertion order.
	}

	return filtered
}
