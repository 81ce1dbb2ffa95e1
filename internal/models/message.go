package models

import "time"

// Message is a single chat message inside a conversation.
type Message struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ConversationID string    `json:"conversation_id" gorm:"index;type:varchar(100)"`
	SenderID       string    `json:"sender_id" gorm:"type:varchar(36)"`
	SenderRole     string    `json:"sender_role" gorm:"type:varchar(20)"`
	Text           string    `json:"text"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// Conversation groups messages between marketplace participants. There is
// no delivery transport behind it; messages are stored and read back.
type Conversation struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(100)"`
	Participants  StringList `json:"participants" gorm:"type:text"`
	Messages      []Message  `json:"messages" gorm:"foreignKey:ConversationID"`
	LastMessageAt time.Time  `json:"last_message_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Involves reports whether the user takes part in the conversation,
// either as a listed participant or as the sender of one of its messages.
// Replying into a conversation is enough to join it.
func (c Conversation) Involves(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	for _, m := range c.Messages {
		if m.SenderID == userID {
			return true
		}
	}
	return false
}
