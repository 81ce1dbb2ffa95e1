package services

import (
	"fmt"

	"auramarket/internal/models"
	"auramarket/internal/repositories"
)

// SellerStats summarizes a seller's listings for their dashboard.
type SellerStats struct {
	ProductCount int     `json:"product_count"`
	TotalSales   int     `json:"total_sales"`
	Revenue      float64 `json:"revenue"`
}

// ProductService handles business logic related to products and the
// catalog projection.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts retrieves the catalog filtered and sorted by the given
// filter state.
func (s *ProductService) ListProducts(filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return ProjectProducts(products, filter), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetSellerProducts retrieves all products listed by a seller.
func (s *ProductService) GetSellerProducts(sellerID string) ([]models.Product, error) {
	return s.repo.GetBySeller(sellerID)
}

// CreateProduct creates a new listing owned by the given seller.
func (s *ProductService) CreateProduct(product *models.Product, sellerID, sellerName string) error {
	if !models.ValidCategory(product.Category) {
		return fmt.Errorf("unknown category: %s", product.Category)
	}
	product.SellerID = sellerID
	product.Seller = sellerName
	return s.repo.Create(product)
}

// UpdateProduct updates an existing listing. Only the owning seller may
// change it; sales and rating counters are kept from the stored record.
func (s *ProductService) UpdateProduct(product *models.Product, sellerID string) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return fmt.Errorf("product with ID %d does not belong to seller %s", product.ID, sellerID)
	}
	if !models.ValidCategory(product.Category) {
		return fmt.Errorf("unknown category: %s", product.Category)
	}
	product.SellerID = existing.SellerID
	product.Seller = existing.Seller
	product.Sales = existing.Sales
	product.Rating = existing.Rating
	product.Reviews = existing.Reviews
	product.CreatedAt = existing.CreatedAt
	return s.repo.Update(product)
}

// DeleteProduct deletes a listing after checking seller ownership.
func (s *ProductService) DeleteProduct(id uint, sellerID string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return fmt.Errorf("product with ID %d does not belong to seller %s", id, sellerID)
	}
	return s.repo.Delete(id)
}

// GetSellerStats aggregates sales and revenue over a seller's listings.
// Revenue counts recorded sales at the current listing price.
func (s *ProductService) GetSellerStats(sellerID string) (*SellerStats, error) {
	products, err := s.repo.GetBySeller(sellerID)
	if err != nil {
		return nil, err
	}

	stats := &SellerStats{ProductCount: len(products)}
	for _, p := range products {
		stats.TotalSales += p.Sales
		stats.Revenue += p.Price * float64(p.Sales)
	}
	return stats, nil
}
