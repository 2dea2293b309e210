package entity

import (
	"github.com/google/uuid"
)

// Message belongs to a conversation. Timestamp is epoch milliseconds; the
// conversation's message stream is ordered by it, newest first.
type Message struct {
	ID             uuid.UUID `db:"id"`
	ConversationID uuid.UUID `db:"conversation_id"`
	Text           string    `db:"message"`
	SenderID       string    `db:"sender_id"`
	SenderName     string    `db:"sender_name"`
	SenderRole     string    `db:"sender_role"`
	Timestamp      int64     `db:"timestamp"`
}
