package services

import (
	"fmt"

	"auramarket/internal/logger"
	"auramarket/internal/models"
	"auramarket/internal/repositories"
	"auramarket/pkg/rabbitmq"

	"go.uber.org/zap"
)

// OrderService handles business logic related to orders and checkout.
type OrderService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	publisher rabbitmq.Publisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case order events are not emitted.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, publisher rabbitmq.Publisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		publisher: publisher,
	}
}

// GetAllOrders retrieves all orders, most recent first.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetCustomerOrders retrieves a customer's orders, most recent first.
func (s *OrderService) GetCustomerOrders(customerID string) ([]models.Order, error) {
	return s.orderRepo.GetByCustomer(customerID)
}

// Checkout snapshots the customer's cart into a new order and clears the
// cart. The two commit together or not at all. An empty cart is rejected
// before any state changes. The order event publish happens after the
// commit and its failure never fails the checkout.
func (s *OrderService) Checkout(customerID, shippingAddress string) (*models.Order, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer ID is required for checkout")
	}

	lines, err := s.cartRepo.GetByUser(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for checkout: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("cannot checkout an empty cart")
	}

	// Deep-copy the cart lines: the order must be immune to any later
	// cart or catalog mutation.
	items := make([]models.OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			Price:         line.UnitPrice,
			SelectedSize:  line.SelectedSize,
			SelectedColor: line.SelectedColor,
		})
		total += line.UnitPrice * float64(line.Quantity)
	}

	order := &models.Order{
		CustomerID:      customerID,
		Items:           items,
		Total:           total,
		Status:          models.OrderStatusProcessing,
		ShippingAddress: shippingAddress,
	}

	if err := s.orderRepo.PlaceOrder(order); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	if s.publisher != nil {
		event := rabbitmq.OrderEvent{
			Event:      "order.created",
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			Status:     order.Status,
			Total:      order.Total,
		}
		if err := s.publisher.PublishOrderEvent(event); err != nil {
			logger.L().Warn("failed to publish order created event",
				zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	return order, nil
}

// AdvanceOrderStatus moves an order to the given status, allowing only
// the forward transitions processing -> shipped -> delivered.
func (s *OrderService) AdvanceOrderStatus(id, status string) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if !models.ValidStatusTransition(order.Status, status) {
		return fmt.Errorf("invalid order status transition: %s -> %s", order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	if s.publisher != nil {
		event := rabbitmq.OrderEvent{
			Event:      "order.status_changed",
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			Status:     status,
			Total:      order.Total,
		}
		if err := s.publisher.PublishOrderEvent(event); err != nil {
			logger.L().Warn("failed to publish order status event",
				zap.String("order_id", order.ID), zap.Error(err))
		}
	}
	return nil
}
