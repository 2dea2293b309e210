package usecase

import (
	"context"
	"fmt"
	"time"

	"yoga-booking/internal/cart"
	"yoga-booking/internal/data/entity"
	"yoga-booking/internal/data/repository"
	"yoga-booking/internal/dto/request"
	"yoga-booking/internal/dto/response"
	"yoga-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Checkout(ctx context.Context, cartID string, req *request.CheckoutRequest) (*response.BookingResponse, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]response.BookingResponse, error)
	GetCachedBookings(cartID, email string) []response.BookingResponse
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, bookingID string) error
}

type bookingService struct {
	repo  *repository.Repository // grouping bookingRepo
	carts *cart.Store
	log   *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	carts *cart.Store,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:  repo,
		carts: carts,
		log:   log,
	}
}

// Checkout submits the current cart as a booking. The cart is cleared only
// after the booking is confirmed durable; any failure before that leaves
// the cart exactly as it was.
func (s *bookingService) Checkout(ctx context.Context, cartID string, req *request.CheckoutRequest) (*response.BookingResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Checkout validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if !utils.IsValidContactEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}

	// 2. Reject an empty cart before touching the store
	agg := s.carts.Aggregate(cartID)
	items := agg.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	// 3. Build booking entity from a frozen copy of the cart
	booking := &entity.Booking{
		ID:          uuid.New(),
		Email:       req.Email,
		Items:       items,
		TotalPrice:  agg.TotalPrice(),
		BookingDate: time.Now(),
		Status:      entity.BookingStatusConfirmed,
	}

	// 4. Persist booking
	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("cart_id", cartID),
			zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create booking")
	}

	// 5. Booking is durable: cache it locally and clear the cart
	agg.AddBooking(cart.Booking{
		ID:          booking.ID.String(),
		Email:       booking.Email,
		Items:       booking.Items,
		TotalPrice:  booking.TotalPrice,
		BookingDate: booking.BookingDate,
		Status:      string(booking.Status),
		CreatedAt:   booking.CreatedAt,
	})
	agg.ClearCart()

	// The booking already succeeded remotely; a local persistence failure
	// is logged but does not fail the checkout.
	if err := s.carts.Save(agg); err != nil {
		s.log.Error("Failed to persist cart after checkout",
			zap.Error(err),
			zap.String("cart_id", cartID))
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("email", booking.Email),
		zap.Float64("total_price", booking.TotalPrice),
		zap.Int("items", len(booking.Items)))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingsByEmail(ctx context.Context, email string) ([]response.BookingResponse, error) {
	if !utils.IsValidContactEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	bookings, err := s.repo.Booking.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to list bookings")
	}

	result := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = response.BookingToResponse(booking)
	}
	return result, nil
}

// GetCachedBookings reads the locally cached bookings for the cart's
// owner, filtered to the given address. Serves the history view when the
// store is unreachable; may be stale.
func (s *bookingService) GetCachedBookings(cartID, email string) []response.BookingResponse {
	agg := s.carts.Aggregate(cartID)

	cached := agg.BookingsForUser(email)
	result := make([]response.BookingResponse, len(cached))
	for i, booking := range cached {
		result[i] = response.CachedBookingToResponse(booking)
	}
	return result
}

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list all bookings", zap.Error(err))
		return nil, fmt.Errorf("failed to list bookings")
	}

	result := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = response.BookingToResponse(booking)
	}
	return response.NewPaginatedResponse(result, req.Page, req.Limit()), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	// 1. Parse booking ID
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID")
	}

	// 2. Check booking exists
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return fmt.Errorf("booking not found")
	}
	if booking.Status == entity.BookingStatusCancelled {
		return fmt.Errorf("booking already cancelled")
	}

	// 3. Update status
	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("failed to cancel booking")
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}
