package handlers

import (
	"strings"

	"auramarket/internal/middleware"
	"auramarket/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles HTTP requests for buyer-seller messaging.
type ChatHandler struct {
	service  *services.ChatService
	validate *validator.Validate
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the messaging routes; they assume the auth
// middleware has run.
func (h *ChatHandler) RegisterRoutes(router fiber.Router) {
	chatRoutes := router.Group("/conversations")
	chatRoutes.Get("/", h.HandleListConversations)
	chatRoutes.Get("/unread", h.HandleUnreadCount)
	chatRoutes.Get("/:id", h.HandleGetConversation)
	chatRoutes.Post("/:id/messages", h.HandleSendMessage)
	chatRoutes.Post("/:id/read", h.HandleMarkAsRead)
}

// HandleListConversations lists the user's conversations, most recently
// active first.
func (h *ChatHandler) HandleListConversations(c *fiber.Ctx) error {
	convs, err := h.service.GetUserConversations(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve conversations",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"conversations": convs, "count": len(convs)})
}

// HandleUnreadCount returns the user's unread message count for the
// navbar badge.
func (h *ChatHandler) HandleUnreadCount(c *fiber.Ctx) error {
	count, err := h.service.UnreadCount(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not count unread messages",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"unread": count})
}

// HandleGetConversation returns a conversation the user takes part in.
func (h *ChatHandler) HandleGetConversation(c *fiber.Ctx) error {
	conv, err := h.service.GetConversation(c.Params("id"), middleware.UserID(c))
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Conversation not found",
			})
		case strings.Contains(err.Error(), "not part of"):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "You are not part of this conversation",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not retrieve conversation",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(conv)
}

// SendMessageRequest represents the request body for sending a message.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// HandleSendMessage appends a message to the conversation.
func (h *ChatHandler) HandleSendMessage(c *fiber.Ctx) error {
	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Message text is required",
			"error":   err.Error(),
		})
	}

	message, err := h.service.SendMessage(c.Params("id"), middleware.UserID(c), middleware.Role(c), req.Text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not send message",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}

// HandleMarkAsRead marks the conversation's messages from other senders
// as read.
func (h *ChatHandler) HandleMarkAsRead(c *fiber.Ctx) error {
	if err := h.service.MarkAsRead(c.Params("id"), middleware.UserID(c)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not mark conversation as read",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Conversation marked as read"})
}
