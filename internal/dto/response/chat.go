package response

import (
	"time"

	"yoga-booking/internal/data/entity"
)

type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type ConversationResponse struct {
	ID         string `json:"id"`
	AdminID    string `json:"admin_id"`
	AdminEmail string `json:"admin_email"`
	CreatedAt  string `json:"created_at"` // ISO-8601
}

type MessageResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	SenderRole string `json:"sender_role"`
	Timestamp  int64  `json:"timestamp"` // epoch milliseconds
}

// Helper converters
func AdminToResponse(user *entity.User) AdminResponse {
	return AdminResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}

func ConversationToResponse(conversation *entity.Conversation, adminEmail string) ConversationResponse {
	return ConversationResponse{
		ID:         conversation.ID.String(),
		AdminID:    conversation.AdminID.String(),
		AdminEmail: adminEmail,
		CreatedAt:  conversation.CreatedAt.Format(time.RFC3339),
	}
}

func MessageToResponse(message *entity.Message) MessageResponse {
	return MessageResponse{
		ID:         message.ID.String(),
		Text:       message.Text,
		SenderID:   message.SenderID,
		SenderName: message.SenderName,
		SenderRole: message.SenderRole,
		Timestamp:  message.Timestamp,
	}
}
