package response

import (
	"time"

	"yoga-booking/internal/cart"
	"yoga-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Items       []CartItemResponse `json:"items"`
	TotalPrice  float64            `json:"total_price"`
	BookingDate string             `json:"booking_date"` // ISO-8601
	Status      string             `json:"status"`
	CreatedAt   string             `json:"created_at"` // ISO-8601
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	items := make([]CartItemResponse, len(booking.Items))
	for i, item := range booking.Items {
		items[i] = CartItemToResponse(item)
	}

	return BookingResponse{
		ID:          booking.ID.String(),
		Email:       booking.Email,
		Items:       items,
		TotalPrice:  booking.TotalPrice,
		BookingDate: booking.BookingDate.Format(time.RFC3339),
		Status:      string(booking.Status),
		CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
	}
}

// CachedBookingToResponse renders a booking from the local cart cache.
func CachedBookingToResponse(booking cart.Booking) BookingResponse {
	items := make([]CartItemResponse, len(booking.Items))
	for i, item := range booking.Items {
		items[i] = CartItemToResponse(item)
	}

	return BookingResponse{
		ID:          booking.ID,
		Email:       booking.Email,
		Items:       items,
		TotalPrice:  booking.TotalPrice,
		BookingDate: booking.BookingDate.Format(time.RFC3339),
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
	}
}
