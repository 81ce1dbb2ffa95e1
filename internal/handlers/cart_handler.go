package handlers

import (
	"strconv"
	"strings"

	"auramarket/internal/middleware"
	"auramarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the cart and favorites.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart and favorites routes with the Fiber
// app. All of them assume the auth middleware has run.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddToCart)
	cartRoutes.Patch("/items/:key", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:key", h.HandleRemoveFromCart)
	cartRoutes.Delete("/", h.HandleClearCart)

	favoriteRoutes := router.Group("/favorites")
	favoriteRoutes.Get("/", h.HandleGetFavorites)
	favoriteRoutes.Post("/", h.HandleAddToFavorites)
	favoriteRoutes.Delete("/:productId", h.HandleRemoveFromFavorites)
}

// HandleGetCart returns the user's cart lines with the derived total and
// badge count.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	items, err := h.service.GetCart(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	total, err := h.service.CartTotal(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute cart total",
			"error":   err.Error(),
		})
	}
	count, err := h.service.CartItemsCount(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute cart count",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"items":       items,
		"total":       total,
		"items_count": count,
	})
}

// AddToCartRequest represents the request body for adding to the cart.
type AddToCartRequest struct {
	ProductID     uint   `json:"product_id" validate:"required"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
}

// HandleAddToCart adds a product variant to the cart, merging into an
// existing line when the variant matches.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	line, err := h.service.AddToCart(middleware.UserID(c), req.ProductID, req.Quantity, req.SelectedSize, req.SelectedColor)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "quantity must be positive"):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Quantity must be positive",
				"error":   err.Error(),
			})
		case strings.Contains(err.Error(), "not found"):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not add to cart",
				"error":   err.Error(),
			})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(line)
}

// UpdateQuantityRequest represents the request body for a quantity change.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity sets a cart line's quantity; zero or below removes
// the line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	err := h.service.UpdateQuantity(middleware.UserID(c), c.Params("key"), req.Quantity)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart line not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart line",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Cart updated"})
}

// HandleRemoveFromCart deletes a cart line by its key.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	if err := h.service.RemoveFromCart(middleware.UserID(c), c.Params("key")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove cart line",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Cart line removed"})
}

// HandleClearCart empties the user's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.ClearCart(middleware.UserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

// FavoriteRequest represents the request body for adding a favorite.
type FavoriteRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
}

// HandleGetFavorites lists the user's favorites.
func (h *CartHandler) HandleGetFavorites(c *fiber.Ctx) error {
	favorites, err := h.service.GetFavorites(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve favorites",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"favorites": favorites, "count": len(favorites)})
}

// HandleAddToFavorites saves a product to the user's favorites.
func (h *CartHandler) HandleAddToFavorites(c *fiber.Ctx) error {
	var req FavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.AddToFavorites(middleware.UserID(c), req.ProductID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add favorite",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Added to favorites"})
}

// HandleRemoveFromFavorites drops a product from the user's favorites.
func (h *CartHandler) HandleRemoveFromFavorites(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("productId"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be an integer",
		})
	}
	if err := h.service.RemoveFromFavorites(middleware.UserID(c), uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove favorite",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Removed from favorites"})
}
