package wire

import (
	"yoga-booking/internal/adaptor"
	"yoga-booking/internal/data/repository"
	"yoga-booking/pkg/middleware"
	"yoga-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireChat(
	r chi.Router,
	chatHandler *adaptor.ChatHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Chat requires a logged-in user on every route.
	r.Route("/api/chat", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/admins", chatHandler.GetAdmins)
		r.Post("/conversations", chatHandler.StartConversation)
		r.Get("/conversations/{conversationID}/messages", chatHandler.GetMessages)
		r.Post("/conversations/{conversationID}/messages", chatHandler.SendMessage)
		r.Get("/conversations/{conversationID}/stream", chatHandler.Stream)
	})
}
