package usecase

import (
	"context"
	"sync/atomic"
	"testing"

	"yoga-booking/internal/chat"
	"yoga-booking/internal/data/entity"
	"yoga-booking/internal/data/repository"
	"yoga-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByRoleFunc  func(ctx context.Context, role entity.UserRole) ([]*entity.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(ctx, role)
	}
	return []*entity.User{}, nil
}

// MockConversationRepository is a mock implementation of ConversationRepository
type MockConversationRepository struct {
	CreateFunc             func(ctx context.Context, conversation *entity.Conversation) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)
	FindByParticipantsFunc func(ctx context.Context, customerID, adminID uuid.UUID) (*entity.Conversation, error)

	Created []*entity.Conversation
}

func (m *MockConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, conversation); err != nil {
			return err
		}
	}
	m.Created = append(m.Created, conversation)
	return nil
}

func (m *MockConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockConversationRepository) FindByParticipants(ctx context.Context, customerID, adminID uuid.UUID) (*entity.Conversation, error) {
	if m.FindByParticipantsFunc != nil {
		return m.FindByParticipantsFunc(ctx, customerID, adminID)
	}
	return nil, nil
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	CreateFunc               func(ctx context.Context, message *entity.Message) error
	FindByConversationIDFunc func(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)

	Created []*entity.Message
}

func (m *MockMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, message); err != nil {
			return err
		}
	}
	m.Created = append(m.Created, message)
	return nil
}

func (m *MockMessageRepository) FindByConversationID(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	if m.FindByConversationIDFunc != nil {
		return m.FindByConversationIDFunc(ctx, conversationID)
	}
	return []*entity.Message{}, nil
}

// countingBus records publishes; subscriptions are not exercised here.
type countingBus struct {
	published atomic.Int64
}

func (b *countingBus) Publish(ctx context.Context, channel string) error {
	b.published.Add(1)
	return nil
}

func (b *countingBus) Subscribe(ctx context.Context, channel string) (chat.BusSubscription, error) {
	return nil, context.Canceled
}

func newChatService(users *MockUserRepository, conversations *MockConversationRepository, messages *MockMessageRepository, bus chat.Bus) ChatService {
	repo := &repository.Repository{
		User:         users,
		Conversation: conversations,
		Message:      messages,
	}
	relay := chat.NewRelay(bus, NewMessageSource(messages), zap.NewNop())
	return NewChatService(repo, relay, zap.NewNop())
}

func admin(id uuid.UUID) *entity.User {
	return &entity.User{
		Base:  entity.Base{ID: id},
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
	}
}

func TestChatService_StartConversation_CreatesOnFirstContact(t *testing.T) {
	adminID := uuid.New()
	customerID := uuid.New()

	users := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return admin(adminID), nil
		},
	}
	conversations := &MockConversationRepository{}
	service := newChatService(users, conversations, &MockMessageRepository{}, &countingBus{})

	resp, err := service.StartConversation(context.Background(), customerID, &request.StartConversationRequest{
		AdminID: adminID.String(),
	})
	require.NoError(t, err)

	require.Len(t, conversations.Created, 1)
	assert.Equal(t, customerID, conversations.Created[0].CustomerID)
	assert.Equal(t, adminID, conversations.Created[0].AdminID)
	assert.Equal(t, "admin@example.com", resp.AdminEmail)
}

func TestChatService_StartConversation_ReusesExisting(t *testing.T) {
	adminID := uuid.New()
	customerID := uuid.New()
	existingID := uuid.New()

	users := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return admin(adminID), nil
		},
	}
	conversations := &MockConversationRepository{
		FindByParticipantsFunc: func(ctx context.Context, c, a uuid.UUID) (*entity.Conversation, error) {
			return &entity.Conversation{
				BaseSimple: entity.BaseSimple{ID: existingID},
				CustomerID: c,
				AdminID:    a,
			}, nil
		},
	}
	service := newChatService(users, conversations, &MockMessageRepository{}, &countingBus{})

	resp, err := service.StartConversation(context.Background(), customerID, &request.StartConversationRequest{
		AdminID: adminID.String(),
	})
	require.NoError(t, err)

	assert.Empty(t, conversations.Created)
	assert.Equal(t, existingID.String(), resp.ID)
}

func TestChatService_StartConversation_RejectsNonAdmin(t *testing.T) {
	targetID := uuid.New()
	users := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{Base: entity.Base{ID: targetID}, Role: entity.RoleCustomer}, nil
		},
	}
	service := newChatService(users, &MockConversationRepository{}, &MockMessageRepository{}, &countingBus{})

	_, err := service.StartConversation(context.Background(), uuid.New(), &request.StartConversationRequest{
		AdminID: targetID.String(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestChatService_SendMessage_PersistsAndNotifies(t *testing.T) {
	adminID := uuid.New()
	senderID := uuid.New()
	conversationID := uuid.New()

	users := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
			return &entity.User{
				Base: entity.Base{ID: senderID},
				Name: "Maya",
				Role: entity.RoleCustomer,
			}, nil
		},
	}
	conversations := &MockConversationRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
			return &entity.Conversation{
				BaseSimple: entity.BaseSimple{ID: id},
				CustomerID: senderID,
				AdminID:    adminID,
			}, nil
		},
	}
	messages := &MockMessageRepository{}
	bus := &countingBus{}
	service := newChatService(users, conversations, messages, bus)

	resp, err := service.SendMessage(context.Background(), conversationID.String(), senderID, &request.SendMessageRequest{
		Text: "see you at class",
	})
	require.NoError(t, err)

	require.Len(t, messages.Created, 1)
	created := messages.Created[0]
	assert.Equal(t, conversationID, created.ConversationID)
	assert.Equal(t, "see you at class", created.Text)
	assert.Equal(t, "Maya", created.SenderName)
	assert.Equal(t, "customer", created.SenderRole)
	assert.NotZero(t, created.Timestamp)

	assert.Equal(t, created.ID.String(), resp.ID)
	assert.Equal(t, int64(1), bus.published.Load())
}

func TestChatService_SendMessage_UnknownConversation(t *testing.T) {
	users := &MockUserRepository{}
	service := newChatService(users, &MockConversationRepository{}, &MockMessageRepository{}, &countingBus{})

	_, err := service.SendMessage(context.Background(), uuid.New().String(), uuid.New(), &request.SendMessageRequest{
		Text: "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestChatService_GetAvailableAdmins(t *testing.T) {
	users := &MockUserRepository{
		FindByRoleFunc: func(ctx context.Context, role entity.UserRole) ([]*entity.User, error) {
			require.Equal(t, entity.RoleAdmin, role)
			return []*entity.User{admin(uuid.New()), admin(uuid.New())}, nil
		},
	}
	service := newChatService(users, &MockConversationRepository{}, &MockMessageRepository{}, &countingBus{})

	admins, err := service.GetAvailableAdmins(context.Background())
	require.NoError(t, err)
	assert.Len(t, admins, 2)
}
