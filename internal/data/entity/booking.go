package entity

import (
	"time"

	"yoga-booking/internal/cart"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a confirmed purchase of classes tied to a contact address.
// Items is a frozen copy of the cart items at submission time; catalog
// changes after the fact must not alter it. Never mutated by the client
// after creation.
type Booking struct {
	ID          uuid.UUID     `db:"id"`
	Email       string        `db:"email"`
	Items       []cart.Item   `db:"items"` // stored as JSONB
	TotalPrice  float64       `db:"total_price"`
	BookingDate time.Time     `db:"booking_date"` // submission timestamp from the client
	Status      BookingStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"` // assigned at persistence time, authoritative for ordering
}
