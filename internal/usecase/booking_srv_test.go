package usecase

import (
	"context"
	"errors"
	"testing"

	"yoga-booking/internal/cart"
	"yoga-booking/internal/data/entity"
	"yoga-booking/internal/data/repository"
	"yoga-booking/internal/dto/request"
	"yoga-booking/pkg/localstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	CreateFunc       func(ctx context.Context, booking *entity.Booking) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByEmailFunc  func(ctx context.Context, email string) ([]*entity.Booking, error)
	FindAllFunc      func(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
	UpdateStatusFunc func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	Created []*entity.Booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(ctx, booking); err != nil {
			return err
		}
	}
	m.Created = append(m.Created, booking)
	return nil
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return []*entity.Booking{}, nil
}

func (m *MockBookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return []*entity.Booking{}, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, bookingID, status)
	}
	return nil
}

func newTestCarts(t *testing.T) *cart.Store {
	t.Helper()

	db, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return cart.NewStore(db, zap.NewNop())
}

func newBookingService(bookings *MockBookingRepository, carts *cart.Store) BookingService {
	repo := &repository.Repository{Booking: bookings}
	return NewBookingService(repo, carts, zap.NewNop())
}

func fillCart(carts *cart.Store, cartID string) *cart.Aggregate {
	p := 15.0
	agg := carts.Aggregate(cartID)
	agg.AddToCart(cart.ClassSnapshot{ID: "2026-09-01", Date: "2026-09-01", CoursePrice: &p})
	agg.AddToCart(cart.ClassSnapshot{ID: "2026-09-01", Date: "2026-09-01", CoursePrice: &p})
	return agg
}

func TestBookingService_Checkout_Success(t *testing.T) {
	carts := newTestCarts(t)
	fillCart(carts, "cart-1")
	bookings := &MockBookingRepository{}
	service := newBookingService(bookings, carts)

	resp, err := service.Checkout(context.Background(), "cart-1", &request.CheckoutRequest{
		Email: "yogi@example.com",
	})
	require.NoError(t, err)

	// The stored booking freezes the cart at submission time.
	require.Len(t, bookings.Created, 1)
	created := bookings.Created[0]
	assert.Equal(t, "yogi@example.com", created.Email)
	assert.Equal(t, entity.BookingStatusConfirmed, created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, 2, created.Items[0].Quantity)
	assert.InDelta(t, 30.0, created.TotalPrice, 1e-9)

	assert.Equal(t, created.ID.String(), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)

	// The cart is cleared only after the store confirmed the write.
	agg := carts.Aggregate("cart-1")
	assert.Empty(t, agg.Items())

	// The booking lands in the local cache for the history fallback.
	cached := service.GetCachedBookings("cart-1", "yogi@example.com")
	require.Len(t, cached, 1)
	assert.Equal(t, created.ID.String(), cached[0].ID)
}

func TestBookingService_Checkout_MalformedEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{name: "no dot in domain", email: "foo@bar"},
		{name: "whitespace", email: "foo bar@baz.com"},
		{name: "two at signs", email: "foo@@bar.com"},
		{name: "empty local part", email: "@bar.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := newTestCarts(t)
			fillCart(carts, "cart-1")
			bookings := &MockBookingRepository{}
			service := newBookingService(bookings, carts)

			_, err := service.Checkout(context.Background(), "cart-1", &request.CheckoutRequest{
				Email: tt.email,
			})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid email")

			// Nothing was stored, the cart is untouched.
			assert.Empty(t, bookings.Created)
			assert.Len(t, carts.Aggregate("cart-1").Items(), 1)
		})
	}
}

func TestBookingService_Checkout_EmptyCart(t *testing.T) {
	carts := newTestCarts(t)
	bookings := &MockBookingRepository{}
	service := newBookingService(bookings, carts)

	_, err := service.Checkout(context.Background(), "cart-1", &request.CheckoutRequest{
		Email: "yogi@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cart is empty")
	assert.Empty(t, bookings.Created)
}

func TestBookingService_Checkout_StoreFailureLeavesCartIntact(t *testing.T) {
	carts := newTestCarts(t)
	fillCart(carts, "cart-1")
	bookings := &MockBookingRepository{
		CreateFunc: func(ctx context.Context, booking *entity.Booking) error {
			return errors.New("connection refused")
		},
	}
	service := newBookingService(bookings, carts)

	_, err := service.Checkout(context.Background(), "cart-1", &request.CheckoutRequest{
		Email: "yogi@example.com",
	})
	require.Error(t, err)

	// Failed submission must not clear the cart or fake a cached booking.
	agg := carts.Aggregate("cart-1")
	require.Len(t, agg.Items(), 1)
	assert.Equal(t, 2, agg.Items()[0].Quantity)
	assert.Empty(t, service.GetCachedBookings("cart-1", "yogi@example.com"))
}

func TestBookingService_GetBookingsByEmail_RejectsMalformedAddress(t *testing.T) {
	carts := newTestCarts(t)
	service := newBookingService(&MockBookingRepository{}, carts)

	_, err := service.GetBookingsByEmail(context.Background(), "not-an-address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")
}

func TestBookingService_CancelBooking(t *testing.T) {
	bookingID := uuid.New()
	var updated entity.BookingStatus

	bookings := &MockBookingRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{ID: id, Status: entity.BookingStatusConfirmed}, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
			updated = status
			return nil
		},
	}
	service := newBookingService(bookings, newTestCarts(t))

	require.NoError(t, service.CancelBooking(context.Background(), bookingID.String()))
	assert.Equal(t, entity.BookingStatusCancelled, updated)
}

func TestBookingService_CancelBooking_AlreadyCancelled(t *testing.T) {
	bookings := &MockBookingRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return &entity.Booking{ID: id, Status: entity.BookingStatusCancelled}, nil
		},
	}
	service := newBookingService(bookings, newTestCarts(t))

	err := service.CancelBooking(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already cancelled")
}
