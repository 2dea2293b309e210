package wire

import (
	"yoga-booking/internal/adaptor"
	"yoga-booking/internal/data/repository"
	"yoga-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The cart needs no account; the client identifies its cart with the
	// X-Cart-ID header.
	r.Get("/api/cart", cartHandler.GetCart)
	r.Delete("/api/cart", cartHandler.ClearCart)
	r.Post("/api/cart/items", cartHandler.AddToCart)
	r.Put("/api/cart/items/{classID}", cartHandler.UpdateQuantity)
	r.Delete("/api/cart/items/{classID}", cartHandler.RemoveFromCart)
	r.Put("/api/cart/email", cartHandler.SetEmail)
}
