package usecase

import (
	"context"
	"fmt"
	"time"

	"yoga-booking/internal/chat"
	"yoga-booking/internal/data/entity"
	"yoga-booking/internal/data/repository"
	"yoga-booking/internal/dto/request"
	"yoga-booking/internal/dto/response"
	"yoga-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatService interface {
	GetAvailableAdmins(ctx context.Context) ([]response.AdminResponse, error)
	StartConversation(ctx context.Context, customerID uuid.UUID, req *request.StartConversationRequest) (*response.ConversationResponse, error)
	GetMessages(ctx context.Context, conversationID string) ([]response.MessageResponse, error)
	SendMessage(ctx context.Context, conversationID string, senderID uuid.UUID, req *request.SendMessageRequest) (*response.MessageResponse, error)
	Subscribe(ctx context.Context, conversationID string) (*chat.Subscription, error)
}

type chatService struct {
	repo  *repository.Repository // grouping userRepo, conversationRepo & messageRepo
	relay *chat.Relay
	log   *zap.Logger
}

func NewChatService(
	repo *repository.Repository,
	relay *chat.Relay,
	log *zap.Logger,
) ChatService {
	return &chatService{
		repo:  repo,
		relay: relay,
		log:   log,
	}
}

func (s *chatService) GetAvailableAdmins(ctx context.Context) ([]response.AdminResponse, error) {
	admins, err := s.repo.User.FindByRole(ctx, entity.RoleAdmin)
	if err != nil {
		s.log.Error("Failed to list admins", zap.Error(err))
		return nil, fmt.Errorf("failed to list admins")
	}

	result := make([]response.AdminResponse, len(admins))
	for i, admin := range admins {
		result[i] = response.AdminToResponse(admin)
	}
	return result, nil
}

// StartConversation returns the conversation between the customer and the
// chosen admin, creating it on first contact. One conversation exists per
// participant pair.
func (s *chatService) StartConversation(ctx context.Context, customerID uuid.UUID, req *request.StartConversationRequest) (*response.ConversationResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("StartConversation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	adminID, err := uuid.Parse(req.AdminID)
	if err != nil {
		return nil, fmt.Errorf("invalid admin ID")
	}

	// 2. Check admin exists and has the admin role
	admin, err := s.repo.User.FindByID(ctx, adminID)
	if err != nil {
		s.log.Error("Failed to find admin", zap.Error(err), zap.String("admin_id", req.AdminID))
		return nil, fmt.Errorf("failed to find admin")
	}
	if admin == nil || admin.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("admin not found")
	}

	// 3. Reuse the existing conversation if there is one
	conversation, err := s.repo.Conversation.FindByParticipants(ctx, customerID, adminID)
	if err != nil {
		s.log.Error("Failed to find conversation", zap.Error(err))
		return nil, fmt.Errorf("failed to find conversation")
	}

	// 4. Create on first contact
	if conversation == nil {
		conversation = &entity.Conversation{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: time.Now(),
			},
			CustomerID: customerID,
			AdminID:    adminID,
		}
		if err := s.repo.Conversation.Create(ctx, conversation); err != nil {
			s.log.Error("Failed to create conversation", zap.Error(err))
			return nil, fmt.Errorf("failed to create conversation")
		}

		s.log.Info("Conversation created",
			zap.String("conversation_id", conversation.ID.String()),
			zap.String("customer_id", customerID.String()),
			zap.String("admin_id", adminID.String()))
	}

	resp := response.ConversationToResponse(conversation, admin.Email)
	return &resp, nil
}

func (s *chatService) GetMessages(ctx context.Context, conversationID string) ([]response.MessageResponse, error) {
	id, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, fmt.Errorf("invalid conversation ID")
	}

	messages, err := s.repo.Message.FindByConversationID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list messages", zap.Error(err), zap.String("conversation_id", conversationID))
		return nil, fmt.Errorf("failed to list messages")
	}

	result := make([]response.MessageResponse, len(messages))
	for i, message := range messages {
		result[i] = response.MessageToResponse(message)
	}
	return result, nil
}

func (s *chatService) SendMessage(ctx context.Context, conversationID string, senderID uuid.UUID, req *request.SendMessageRequest) (*response.MessageResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("SendMessage validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	convID, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, fmt.Errorf("invalid conversation ID")
	}

	// 2. Check conversation exists
	conversation, err := s.repo.Conversation.FindByID(ctx, convID)
	if err != nil {
		s.log.Error("Failed to find conversation", zap.Error(err), zap.String("conversation_id", conversationID))
		return nil, fmt.Errorf("failed to find conversation")
	}
	if conversation == nil {
		return nil, fmt.Errorf("conversation not found")
	}

	// 3. Resolve the sender
	sender, err := s.repo.User.FindByID(ctx, senderID)
	if err != nil {
		s.log.Error("Failed to find sender", zap.Error(err), zap.String("sender_id", senderID.String()))
		return nil, fmt.Errorf("failed to find sender")
	}
	if sender == nil {
		return nil, fmt.Errorf("sender not found")
	}

	senderName := req.SenderName
	if senderName == "" {
		senderName = sender.Name
	}

	// 4. Persist the message
	message := &entity.Message{
		ID:             uuid.New(),
		ConversationID: convID,
		Text:           req.Text,
		SenderID:       sender.ID.String(),
		SenderName:     senderName,
		SenderRole:     string(sender.Role),
		Timestamp:      time.Now().UnixMilli(),
	}
	if err := s.repo.Message.Create(ctx, message); err != nil {
		s.log.Error("Failed to create message", zap.Error(err), zap.String("conversation_id", conversationID))
		return nil, fmt.Errorf("failed to send message")
	}

	// 5. Wake subscribers; they reload the full snapshot themselves
	s.relay.Notify(ctx, conversationID)

	resp := response.MessageToResponse(message)
	return &resp, nil
}

// Subscribe opens a snapshot stream for one conversation. The caller owns
// the subscription and must call Unsubscribe exactly once.
func (s *chatService) Subscribe(ctx context.Context, conversationID string) (*chat.Subscription, error) {
	id, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, fmt.Errorf("invalid conversation ID")
	}

	conversation, err := s.repo.Conversation.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find conversation", zap.Error(err), zap.String("conversation_id", conversationID))
		return nil, fmt.Errorf("failed to find conversation")
	}
	if conversation == nil {
		return nil, fmt.Errorf("conversation not found")
	}

	sub, err := s.relay.Subscribe(ctx, conversationID)
	if err != nil {
		s.log.Error("Failed to subscribe to conversation", zap.Error(err), zap.String("conversation_id", conversationID))
		return nil, fmt.Errorf("failed to subscribe")
	}
	return sub, nil
}

// MessageSource adapts the message repository to the relay's source
// interface so each notification is answered with a fresh full load.
type MessageSource struct {
	repo repository.MessageRepository
}

func NewMessageSource(repo repository.MessageRepository) *MessageSource {
	return &MessageSource{repo: repo}
}

func (m *MessageSource) Messages(ctx context.Context, conversationID string) ([]chat.Message, error) {
	id, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, fmt.Errorf("invalid conversation ID %q: %w", conversationID, err)
	}

	messages, err := m.repo.FindByConversationID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]chat.Message, len(messages))
	for i, message := range messages {
		result[i] = chat.Message{
			ID:         message.ID.String(),
			Text:       message.Text,
			SenderID:   message.SenderID,
			SenderName: message.SenderName,
			SenderRole: message.SenderRole,
			Timestamp:  message.Timestamp,
		}
	}
	return result, nil
}
