package repositories

import "auramarket/internal/models"

// MessageRepository defines the interface for conversation and message
// data access.
type MessageRepository interface {
	GetConversation(id string) (*models.Conversation, error)
	GetByParticipant(userID string) ([]models.Conversation, error)
	Append(conversationID string, participants []string, message *models.Message) error
	MarkRead(conversationID, readerID string) error
	UnreadCount(userID string) (int, error)
}
