package handlers

import (
	"fmt"
	"strings"

	"auramarket/internal/middleware"
	"auramarket/internal/models"
	"auramarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All of
// them assume the auth middleware has run; status updates are further
// gated by role in the route setup.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	router.Post("/checkout", h.HandleCheckout)
}

// RegisterStatusRoute registers the status-advance route on a group the
// caller has gated to sellers and admins.
func (h *OrderHandler) RegisterStatusRoute(router fiber.Router) {
	router.Patch("/orders/:id/status", h.HandleAdvanceStatus)
}

// HandleGetOrders retrieves the authenticated customer's orders, most
// recent first. Admins see every order.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	var (
		orders []models.Order
		err    error
	)
	if middleware.Role(c) == models.RoleAdmin {
		orders, err = h.service.GetAllOrders()
	} else {
		orders, err = h.service.GetCustomerOrders(middleware.UserID(c))
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"orders": orders, "count": len(orders)})
}

// HandleGetOrderByID retrieves a single order. Customers may only read
// their own orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	if middleware.Role(c) != models.RoleAdmin && order.CustomerID != middleware.UserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "You can only view your own orders",
		})
	}
	return c.JSON(order)
}

// CheckoutRequest represents the request body for checkout.
type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
}

// HandleCheckout turns the user's cart into an order and clears the cart.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Shipping address is required",
			"error":   err.Error(),
		})
	}

	order, err := h.service.Checkout(middleware.UserID(c), req.ShippingAddress)
	if err != nil {
		if strings.Contains(err.Error(), "empty cart") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Cannot checkout an empty cart",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not place order",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// StatusUpdateRequest represents the request body for a status change.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=processing shipped delivered"`
}

// HandleAdvanceStatus moves an order forward through its status
// lifecycle.
func (h *OrderHandler) HandleAdvanceStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status must be one of processing, shipped, delivered",
			"error":   err.Error(),
		})
	}

	if err := h.service.AdvanceOrderStatus(orderID, req.Status); err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		case strings.Contains(err.Error(), "invalid order status transition"):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Invalid status transition",
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not update order status",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, req.Status),
	})
}
