// internal/wire/wire.go
package wire

import (
	"net/http"

	"yoga-booking/internal/adaptor"
	"yoga-booking/internal/cart"
	"yoga-booking/internal/chat"
	"yoga-booking/internal/data/repository"
	"yoga-booking/internal/usecase"
	"yoga-booking/pkg/middleware"
	"yoga-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	carts *cart.Store,
	relay *chat.Relay,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services and handlers
	service := usecase.NewService(repo, carts, relay, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireCatalog(r, handler.Catalog, repo, config, logger)
	wireCart(r, handler.Cart, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireChat(r, handler.Chat, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
