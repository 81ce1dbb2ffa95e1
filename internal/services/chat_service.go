package services

import (
	"fmt"
	"strings"

	"auramarket/internal/models"
	"auramarket/internal/repositories"
)

// ChatService handles buyer-seller conversations. Messages are stored and
// read back; there is no delivery transport behind them.
type ChatService struct {
	messageRepo repositories.MessageRepository
}

// NewChatService creates a new ChatService.
func NewChatService(messageRepo repositories.MessageRepository) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
	}
}

// SendMessage appends a message to a conversation, creating the
// conversation when it does not exist yet.
func (s *ChatService) SendMessage(conversationID, senderID, senderRole, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("message text must not be empty")
	}
	if conversationID == "" || senderID == "" {
		return nil, fmt.Errorf("conversation ID and sender ID are required")
	}

	message := &models.Message{
		SenderID:   senderID,
		SenderRole: senderRole,
		Text:       text,
	}
	err := s.messageRepo.Append(conversationID, []string{senderID}, message)
	if err != nil {
		return nil, err
	}
	return message, nil
}

// GetConversation loads a conversation after checking the requester takes
// part in it.
func (s *ChatService) GetConversation(conversationID, userID string) (*models.Conversation, error) {
	conv, err := s.messageRepo.GetConversation(conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.Involves(userID) {
		return nil, fmt.Errorf("user %s is not part of conversation %s", userID, conversationID)
	}
	return conv, nil
}

// GetUserConversations lists the conversations a user takes part in.
func (s *ChatService) GetUserConversations(userID string) ([]models.Conversation, error) {
	return s.messageRepo.GetByParticipant(userID)
}

// MarkAsRead marks every message in the conversation not sent by the
// reader as read.
func (s *ChatService) MarkAsRead(conversationID, readerID string) error {
	return s.messageRepo.MarkRead(conversationID, readerID)
}

// UnreadCount counts unread messages addressed to the user.
func (s *ChatService) UnreadCount(userID string) (int, error) {
	return s.messageRepo.UnreadCount(userID)
}
