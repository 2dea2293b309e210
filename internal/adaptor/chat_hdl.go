package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"yoga-booking/internal/dto/request"
	"yoga-booking/internal/usecase"
	"yoga-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChatHandler struct {
	service usecase.ChatService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log,
	}
}

// GetAdmins handles GET /api/chat/admins
func (h *ChatHandler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.GetAvailableAdmins(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list admins")
		return
	}

	utils.ResponseSuccess(w, "Admins retrieved successfully", admins)
}

// StartConversation handles POST /api/chat/conversations
func (h *ChatHandler) StartConversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.StartConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	conversation, err := h.service.StartConversation(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "start conversation")
		return
	}

	utils.ResponseSuccess(w, "Conversation ready", conversation)
}

// GetMessages handles GET /api/chat/conversations/{conversationID}/messages
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	if conversationID == "" {
		utils.ResponseBadRequest(w, "Missing conversation ID", nil)
		return
	}

	messages, err := h.service.GetMessages(r.Context(), conversationID)
	if err != nil {
		h.handleServiceError(w, err, "list messages")
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved successfully", messages)
}

// SendMessage handles POST /api/chat/conversations/{conversationID}/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	conversationID := chi.URLParam(r, "conversationID")
	if conversationID == "" {
		utils.ResponseBadRequest(w, "Missing conversation ID", nil)
		return
	}

	var req request.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.service.SendMessage(r.Context(), conversationID, userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "send message")
		return
	}

	utils.ResponseCreated(w, "Message sent", message)
}

// Stream handles GET /api/chat/conversations/{conversationID}/stream
//
// Server-sent events. Each event carries a complete snapshot of the
// conversation; the client replaces its state rather than appending. The
// stream stays open until the client disconnects.
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")
	if conversationID == "" {
		utils.ResponseBadRequest(w, "Missing conversation ID", nil)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming not supported")
		return
	}

	sub, err := h.service.Subscribe(r.Context(), conversationID)
	if err != nil {
		h.handleServiceError(w, err, "subscribe")
		return
	}
	defer sub.Unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.log.Info("Conversation stream opened", zap.String("conversation_id", conversationID))

	// Channel closes when the client disconnects or Unsubscribe runs.
	for snapshot := range sub.Snapshots() {
		payload, err := json.Marshal(snapshot)
		if err != nil {
			h.log.Error("Failed to encode snapshot", zap.Error(err))
			continue
		}

		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			h.log.Info("Conversation stream closed by client",
				zap.String("conversation_id", conversationID))
			return
		}
		flusher.Flush()
	}
}

// handleServiceError handles different types of errors
func (h *ChatHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
