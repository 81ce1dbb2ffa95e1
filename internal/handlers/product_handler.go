package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"auramarket/internal/middleware"
	"auramarket/internal/models"
	"auramarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog and seller
// listings.
type ProductHandler struct {
	service     *services.ProductService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, authService *services.AuthService) *ProductHandler {
	return &ProductHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/categories", h.HandleListCategories)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// RegisterSellerRoutes registers the seller management routes; the caller
// mounts them behind auth and the seller role gate.
func (h *ProductHandler) RegisterSellerRoutes(router fiber.Router) {
	sellerRoutes := router.Group("/seller")
	sellerRoutes.Get("/products", h.HandleSellerProducts)
	sellerRoutes.Post("/products", h.HandleCreateProduct)
	sellerRoutes.Put("/products/:id", h.HandleUpdateProduct)
	sellerRoutes.Delete("/products/:id", h.HandleDeleteProduct)
	sellerRoutes.Get("/stats", h.HandleSellerStats)
}

// parseFilter reads the catalog filter state from query parameters.
func parseFilter(c *fiber.Ctx) models.ProductFilter {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		SortBy:   c.Query("sort", models.SortLatest),
	}
	if rating, err := strconv.ParseFloat(c.Query("rating"), 64); err == nil {
		filter.Rating = rating
	}
	minStr, maxStr := c.Query("min_price"), c.Query("max_price")
	if minStr != "" || maxStr != "" {
		pr := &models.PriceRange{Min: 0, Max: 1<<53 - 1}
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			pr.Min = v
		}
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			pr.Max = v
		}
		filter.PriceRange = pr
	}
	return filter
}

// HandleListProducts returns the catalog projection for the requested
// filter state.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := parseFilter(c)
	products, err := h.service.ListProducts(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// HandleListCategories returns the fixed category set.
func (h *ProductHandler) HandleListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": models.Categories})
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be an integer",
		})
	}
	product, err := h.service.GetProductByID(uint(id))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleSellerProducts lists the authenticated seller's products.
func (h *ProductHandler) HandleSellerProducts(c *fiber.Ctx) error {
	products, err := h.service.GetSellerProducts(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve seller products",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

// HandleCreateProduct creates a new listing for the authenticated seller.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	sellerID := middleware.UserID(c)
	sellerName := h.sellerName(sellerID)
	if err := h.service.CreateProduct(&product, sellerID, sellerName); err != nil {
		if strings.Contains(err.Error(), "unknown category") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Product creation failed",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates one of the seller's own listings.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be an integer",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = uint(id)

	if err := h.service.UpdateProduct(&product, middleware.UserID(c)); err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		case strings.Contains(err.Error(), "does not belong"):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You can only modify your own products",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update product",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes one of the seller's own listings.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be an integer",
		})
	}

	if err := h.service.DeleteProduct(uint(id), middleware.UserID(c)); err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		case strings.Contains(err.Error(), "does not belong"):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You can only delete your own products",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not delete product",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %d deleted successfully", id),
	})
}

// HandleSellerStats returns the authenticated seller's dashboard figures.
func (h *ProductHandler) HandleSellerStats(c *fiber.Ctx) error {
	stats, err := h.service.GetSellerStats(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute seller stats",
			"error":   err.Error(),
		})
	}
	return c.JSON(stats)
}

// sellerName resolves the seller's display name; store name wins over
// username when set.
func (h *ProductHandler) sellerName(sellerID string) string {
	user, err := h.authService.GetUser(sellerID)
	if err != nil {
		return ""
	}
	if user.StoreName != "" {
		return user.StoreName
	}
	return user.Username
}
