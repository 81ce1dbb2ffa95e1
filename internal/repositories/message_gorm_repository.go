package repositories

import (
	"fmt"
	"time"

	"auramarket/internal/models"

	"gorm.io/gorm"
)

// GORMMessageRepository is a GORM implementation of MessageRepository.
type GORMMessageRepository struct {
	db *gorm.DB
}

// NewGORMMessageRepository creates a new instance of GORMMessageRepository.
func NewGORMMessageRepository(db *gorm.DB) *GORMMessageRepository {
	return &GORMMessageRepository{
		db: db,
	}
}

// GetConversation retrieves a conversation with its messages in send order.
func (r *GORMMessageRepository) GetConversation(id string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("messages.created_at ASC")
	}).First(&conv, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("conversation with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get conversation %s: %w", id, err)
	}
	return &conv, nil
}

// GetByParticipant retrieves the conversations a user takes part in, most
// recently active first. A user takes part when listed as a participant
// or when they have sent a message into the conversation. Participant
// lists are stored as JSON, so the membership check happens after loading.
func (r *GORMMessageRepository) GetByParticipant(userID string) ([]models.Conversation, error) {
	var all []models.Conversation
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("messages.created_at ASC")
	}).Order("last_message_at DESC").Find(&all).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations for user %s: %w", userID, err)
	}

	var convs []models.Conversation
	for _, conv := range all {
		if conv.Involves(userID) {
			convs = append(convs, conv)
		}
	}
	return convs, nil
}

// Append stores a message, creating the conversation first when it does
// not exist yet, and bumps the conversation's last-activity timestamp.
func (r *GORMMessageRepository) Append(conversationID string, participants []string, message *models.Message) error {
	now := time.Now()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var conv models.Conversation
		err := tx.First(&conv, "id = ?", conversationID).Error
		switch err {
		case nil:
			if err := tx.Model(&conv).Update("last_message_at", now).Error; err != nil {
				return fmt.Errorf("failed to touch conversation %s: %w", conversationID, err)
			}
		case gorm.ErrRecordNotFound:
			conv = models.Conversation{
				ID:            conversationID,
				Participants:  participants,
				LastMessageAt: now,
			}
			if err := tx.Create(&conv).Error; err != nil {
				return fmt.Errorf("failed to create conversation %s: %w", conversationID, err)
			}
		default:
			return fmt.Errorf("failed to load conversation %s: %w", conversationID, err)
		}

		message.ConversationID = conversationID
		if message.CreatedAt.IsZero() {
			message.CreatedAt = now
		}
		if err := tx.Create(message).Error; err != nil {
			return fmt.Errorf("failed to store message: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// MarkRead marks every message in the conversation not sent by the reader
// as read.
func (r *GORMMessageRepository) MarkRead(conversationID, readerID string) error {
	err := r.db.Model(&models.Message{}).
		Where("conversation_id = ? AND sender_id <> ?", conversationID, readerID).
		Update("read", true).Error
	if err != nil {
		return fmt.Errorf("failed to mark conversation %s read: %w", conversationID, err)
	}
	return nil
}

// UnreadCount counts unread messages addressed to the user across all of
// their conversations.
func (r *GORMMessageRepository) UnreadCount(userID string) (int, error) {
	convs, err := r.GetByParticipant(userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, conv := range convs {
		for _, msg := range conv.Messages {
			if !msg.Read && msg.SenderID != userID {
				count++
			}
		}
	}
	return count, nil
}
