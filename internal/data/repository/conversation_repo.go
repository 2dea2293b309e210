package repository

import (
	"context"
	"fmt"

	"yoga-booking/internal/data/entity"
	"yoga-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	FindByParticipants(ctx context.Context, customerID, adminID uuid.UUID) (*entity.Conversation, error)
}

type conversationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConversationRepository(db database.PgxIface, log *zap.Logger) ConversationRepository {
	return &conversationRepository{
		db:  db,
		log: log.With(zap.String("repository", "conversation")),
	}
}

func (r *conversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	query := `
		INSERT INTO conversations (id, customer_id, admin_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		conversation.ID,
		conversation.CustomerID,
		conversation.AdminID,
		conversation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create conversation",
			zap.Error(err),
			zap.String("customer_id", conversation.CustomerID.String()),
			zap.String("admin_id", conversation.AdminID.String()),
		)
		return fmt.Errorf("create conversation: %w", err)
	}

	return nil
}

func (r *conversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	query := `
		SELECT id, customer_id, admin_id, created_at
		FROM conversations
		WHERE id = $1
	`

	var conversation entity.Conversation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&conversation.ID,
		&conversation.CustomerID,
		&conversation.AdminID,
		&conversation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find conversation by ID",
			zap.Error(err),
			zap.String("conversation_id", id.String()),
		)
		return nil, fmt.Errorf("find conversation by ID %s: %w", id.String(), err)
	}

	return &conversation, nil
}

func (r *conversationRepository) FindByParticipants(ctx context.Context, customerID, adminID uuid.UUID) (*entity.Conversation, error) {
	query := `
		SELECT id, customer_id, admin_id, created_at
		FROM conversations
		WHERE customer_id = $1 AND admin_id = $2
	`

	var conversation entity.Conversation
	err := r.db.QueryRow(ctx, query, customerID, adminID).Scan(
		&conversation.ID,
		&conversation.CustomerID,
		&conversation.AdminID,
		&conversation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find conversation by participants",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
			zap.String("admin_id", adminID.String()),
		)
		return nil, fmt.Errorf("find conversation for %s and %s: %w",
			customerID.String(), adminID.String(), err)
	}

	return &conversation, nil
}
