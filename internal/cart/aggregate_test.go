package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v float64) *float64 {
	return &v
}

func snapshot(classID string, p *float64) ClassSnapshot {
	return ClassSnapshot{
		ID:          classID,
		Date:        classID,
		Teacher:     "Maya",
		Title:       "Vinyasa Flow",
		CoursePrice: p,
	}
}

func TestAggregate_AddToCart_NewItem(t *testing.T) {
	agg := New("cart-1")

	agg.AddToCart(snapshot("2026-09-01", price(15)))

	items := agg.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2026-09-01", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.False(t, items[0].AddedAt.IsZero())
}

func TestAggregate_AddToCart_SameClassIncrementsQuantity(t *testing.T) {
	agg := New("cart-1")

	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.AddToCart(snapshot("2026-09-01", price(15)))

	items := agg.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, agg.TotalItems())
}

func TestAggregate_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		wantItems    int
		wantQuantity int
	}{
		{name: "positive quantity sticks", quantity: 5, wantItems: 1, wantQuantity: 5},
		{name: "zero removes the item", quantity: 0, wantItems: 0},
		{name: "negative removes the item", quantity: -2, wantItems: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := New("cart-1")
			agg.AddToCart(snapshot("2026-09-01", price(15)))

			agg.UpdateQuantity("2026-09-01", tt.quantity)

			items := agg.Items()
			require.Len(t, items, tt.wantItems)
			if tt.wantItems > 0 {
				assert.Equal(t, tt.wantQuantity, items[0].Quantity)
			}
		})
	}
}

func TestAggregate_UpdateQuantity_UnknownClassIsNoop(t *testing.T) {
	agg := New("cart-1")
	agg.AddToCart(snapshot("2026-09-01", price(15)))

	agg.UpdateQuantity("2026-12-31", 4)

	items := agg.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAggregate_RemoveFromCart(t *testing.T) {
	agg := New("cart-1")
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.AddToCart(snapshot("2026-09-02", price(20)))

	agg.RemoveFromCart("2026-09-01")

	items := agg.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2026-09-02", items[0].ID)
	assert.False(t, agg.IsClassInCart("2026-09-01"))
	assert.True(t, agg.IsClassInCart("2026-09-02"))
}

func TestAggregate_ClearCart(t *testing.T) {
	agg := New("cart-1")
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.AddToCart(snapshot("2026-09-02", price(20)))
	agg.SetUserEmail("yogi@example.com")

	agg.ClearCart()

	assert.Empty(t, agg.Items())
	assert.Zero(t, agg.TotalPrice())
	assert.Zero(t, agg.TotalItems())
	// The contact address survives a cleared cart.
	assert.Equal(t, "yogi@example.com", agg.UserEmail())
}

func TestAggregate_TotalPrice(t *testing.T) {
	agg := New("cart-1")
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.AddToCart(snapshot("2026-09-02", price(20)))

	assert.InDelta(t, 50.0, agg.TotalPrice(), 1e-9)
}

func TestAggregate_TotalPrice_MissingPriceCountsAsZero(t *testing.T) {
	agg := New("cart-1")
	agg.AddToCart(snapshot("2026-09-01", nil))
	agg.AddToCart(snapshot("2026-09-02", price(20)))

	assert.InDelta(t, 20.0, agg.TotalPrice(), 1e-9)
}

func TestAggregate_Bookings_NewestFirstAndFilteredByEmail(t *testing.T) {
	agg := New("cart-1")

	agg.AddBooking(Booking{ID: "b1", Email: "a@example.com", BookingDate: time.Now()})
	agg.AddBooking(Booking{ID: "b2", Email: "b@example.com", BookingDate: time.Now()})
	agg.AddBooking(Booking{ID: "b3", Email: "a@example.com", BookingDate: time.Now()})

	mine := agg.BookingsForUser("a@example.com")
	require.Len(t, mine, 2)
	assert.Equal(t, "b3", mine[0].ID)
	assert.Equal(t, "b1", mine[1].ID)

	assert.Empty(t, agg.BookingsForUser("nobody@example.com"))
}

func TestAggregate_SnapshotRestore_RoundTrip(t *testing.T) {
	agg := New("cart-1")
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.SetUserEmail("yogi@example.com")
	agg.AddBooking(Booking{ID: "b1", Email: "yogi@example.com"})

	restored := Restore(agg.Snapshot())

	assert.Equal(t, agg.ID(), restored.ID())
	assert.Equal(t, agg.Items(), restored.Items())
	assert.Equal(t, agg.UserEmail(), restored.UserEmail())
	assert.Equal(t, agg.BookingsForUser("yogi@example.com"), restored.BookingsForUser("yogi@example.com"))
}

func TestAggregate_SnapshotIsDeepCopy(t *testing.T) {
	agg := New("cart-1")
	agg.AddToCart(snapshot("2026-09-01", price(15)))

	state := agg.Snapshot()
	state.Items[0].Quantity = 99

	items := agg.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}
