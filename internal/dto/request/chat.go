package request

type StartConversationRequest struct {
	AdminID string `json:"admin_id" validate:"required,uuid4"`
}

type SendMessageRequest struct {
	Text       string `json:"text" validate:"required,max=2000"`
	SenderName string `json:"sender_name"`
}
