package models

// Sort keys accepted by the catalog projection.
const (
	SortLatest    = "latest"
	SortPopular   = "popularity"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// PriceRange is an inclusive price interval.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductFilter is the input to the catalog projection. Zero values mean
// "unset": empty category and nil price range match everything, rating 0
// disables the rating floor, and an empty sort key behaves as "latest".
type ProductFilter struct {
	Category   string      `json:"category"`
	PriceRange *PriceRange `json:"price_range"`
	Rating     float64     `json:"rating"`
	SortBy     string      `json:"sort_by"`
}
