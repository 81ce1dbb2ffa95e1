package services

import (
	"auramarket/internal/models"
	"auramarket/internal/repositories"
)

// PlatformStats is the admin overview: account, listing, and order totals
// across the whole marketplace.
type PlatformStats struct {
	Customers    int64   `json:"customers"`
	Sellers      int64   `json:"sellers"`
	Products     int     `json:"products"`
	Orders       int     `json:"orders"`
	GrossRevenue float64 `json:"gross_revenue"`
}

// AdminService aggregates platform-wide figures for the admin dashboard.
type AdminService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// GetPlatformStats computes the admin overview.
func (s *AdminService) GetPlatformStats() (*PlatformStats, error) {
	customers, err := s.userRepo.CountByRole(models.RoleCustomer)
	if err != nil {
		return nil, err
	}
	sellers, err := s.userRepo.CountByRole(models.RoleSeller)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{
		Customers: customers,
		Sellers:   sellers,
		Products:  len(products),
		Orders:    len(orders),
	}
	for _, order := range orders {
		stats.GrossRevenue += order.Total
	}
	return stats, nil
}
