package repository

import (
	"context"
	"fmt"

	"yoga-booking/internal/data/entity"
	"yoga-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// FindByConversationID returns the full message list ordered by
	// timestamp descending, as the conversation stream delivers it.
	FindByConversationID(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (id, conversation_id, message, sender_id, sender_name, sender_role, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.ConversationID,
		message.Text,
		message.SenderID,
		message.SenderName,
		message.SenderRole,
		message.Timestamp,
	)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.String("conversation_id", message.ConversationID.String()),
		)
		return fmt.Errorf("create message in conversation %s: %w",
			message.ConversationID.String(), err)
	}

	return nil
}

func (r *messageRepository) FindByConversationID(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	query := `
		SELECT id, conversation_id, message, sender_id, sender_name, sender_role, timestamp
		FROM messages
		WHERE conversation_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		r.log.Error("Failed to find messages by conversation ID",
			zap.Error(err),
			zap.String("conversation_id", conversationID.String()),
		)
		return nil, fmt.Errorf("find messages in conversation %s: %w",
			conversationID.String(), err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		var message entity.Message
		err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.Text,
			&message.SenderID,
			&message.SenderName,
			&message.SenderRole,
			&message.Timestamp,
		)
		if err != nil {
			r.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}
