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

// CartIDHeader carries the client-generated cart identifier; every cart
// route requires it.
const CartIDHeader = "X-Cart-ID"

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

func cartID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(CartIDHeader))
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	id := cartID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Missing "+CartIDHeader+" header", nil)
		return
	}

	cart := h.service.GetCart(id)
	utils.ResponseSuccess(w, "Cart retrieved successfully", cart)
}

// AddToCart handles POST /api/cart/items
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id := cartID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Missing "+CartIDHeader+" header", nil)
		return
	}

	var req request.AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cart, err := h.service.AddToCart(id, &req)
	if err != nil {
		h.handleServiceError(w, err, "add to cart")
		return
	}

	utils.ResponseSuccess(w, "Class added to cart", cart)
}

// RemoveFromCart handles DELETE /api/cart/items/{classID}
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id := cartID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Missing "+CartIDHeader+" header", nil)
		return
	}

	classID := chi.URLParam(r, "classID")
	if classID == "" {
		utils.ResponseBadRequest(w, "Missing class ID", nil)
		return
	}

	cart, err := h.service.RemoveFromCart(id, classID)
	if err != nil {
		h.handleServiceError(w, err, "remove from cart")
		return
	}

	utils.ResponseSuccess(w, "Class removed from cart", cart)
}

// UpdateQuantity handles PUT /api/cart/items/{classID}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id := cartID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Missing "+CartIDHeader+" header", nil)
		return
	}

	classID := chi.URLParam(r, "classID")
	if classID == "" {
		utils.ResponseBadRequest(w, "Missing class ID", nil)
		return
	}

	var req request.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cart, err := h.service.UpdateQuantity(id, classID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update quantity")
		return
	}

	utils.ResponseSuccess(w, "Quantity updated", cart)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	id := cartID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Missing "+CartIDHeader+" header", nil)
		return
	}

	cart, err := h.service.ClearCart(id)
	if err != nil {
		h.handleServiceError(w, err, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "Cart cleared", cart)
}

// SetEmail handles PUT /api/cart/email
func (h *CartHandler) SetEmail(w http.ResponseWriter, r *http.Request) {
	id := cartID(r)
	if id == "" {
		utils.ResponseBadRequest(w, "Missing "+CartIDHeader+" header", nil)
		return
	}

	var req request.SetCartEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cart, err := h.service.SetEmail(id, &req)
	if err != nil {
		h.handleServiceError(w, err, "set cart email")
		return
	}

	utils.ResponseSuccess(w, "Contact email updated", cart)
}

// handleServiceError handles different types of errors
func (h *CartHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, err)

	case strings.Contains(errMsg, "failed to save cart"):
		h.log.Error(operation+" failed - persistence", zap.Error(err))
		utils.ResponseInternalError(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
