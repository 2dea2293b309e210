package wire

import (
	"yoga-booking/internal/adaptor"
	"yoga-booking/internal/data/repository"
	"yoga-booking/pkg/middleware"
	"yoga-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Checkout and history are keyed by contact email, no account needed.
	r.Post("/api/checkout", bookingHandler.Checkout)
	r.Get("/api/bookings", bookingHandler.GetBookings)

	// Local fallback when the booking store is unreachable.
	r.Get("/api/cart/bookings", bookingHandler.GetCachedBookings)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log)) // Must be authenticated
		r.Use(middleware.Admin(repo.User, log))          // Must be admin

		r.Get("/", bookingHandler.GetAllBookings)             // GET /api/admin/bookings
		r.Put("/{bookingID}/cancel", bookingHandler.CancelBooking) // PUT /api/admin/bookings/{bookingID}/cancel
	})
}
