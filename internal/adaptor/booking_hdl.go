package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"yoga-booking/internal/dto/request"
	"yoga-booking/internal/usecase"
	"yoga-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Checkout handles POST /api/checkout
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id := cartID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Missing "+CartIDHeader+" header", nil)
		return
	}

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Checkout(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", booking)
}

// GetBookings handles GET /api/bookings?email=
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Missing email parameter", nil)
		return
	}

	bookings, err := h.service.GetBookingsByEmail(r.Context(), email)
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

// GetCachedBookings handles GET /api/cart/bookings?email=
//
// Reads the local cache instead of the booking store; serves the history
// view when the store is unreachable.
func (h *BookingHandler) GetCachedBookings(w http.ResponseWriter, r *http.Request) {
	id := cartID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Missing "+CartIDHeader+" header", nil)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Missing email parameter", nil)
		return
	}

	bookings := h.service.GetCachedBookings(id, email)
	utils.ResponseSuccess(w, "Cached bookings retrieved successfully", bookings)
}

// GetAllBookings handles GET /api/admin/bookings?page=&per_page=
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 20),
	}

	bookings, err := h.service.GetAllBookings(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list all bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", bookings)
}

// CancelBooking handles PUT /api/admin/bookings/{bookingID}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Missing booking ID", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), bookingID); err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// handleServiceError handles different types of errors
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "cart is empty"),
		strings.Contains(errMsg, "already cancelled"):
		h.log.Warn(operation+" failed - invalid state", zap.Error(err))
		utils.ResponseUnprocessable(w, errMsg, err)

	case strings.Contains(errMsg, "invalid email"):
		h.log.Warn(operation+" failed - invalid email", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "failed to create booking"):
		h.log.Error(operation+" failed - booking store", zap.Error(err))
		utils.ResponseStoreError(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
