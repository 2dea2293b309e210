package cart

import (
	"sync"
	"time"
)

// ClassSnapshot is the class data embedded in a cart item at the time of
// adding. The course_* fields are denormalized from the parent course; a
// class without a course price cannot be priced, so TotalPrice treats a
// nil price as zero.
type ClassSnapshot struct {
	ID              string   `json:"id"`
	Date            string   `json:"date"`
	Teacher         string   `json:"teacher"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	CourseID        string   `json:"course_id,omitempty"`
	CourseType      string   `json:"course_type,omitempty"`
	CourseDay       string   `json:"course_day,omitempty"`
	CourseTime      string   `json:"course_time,omitempty"`
	CourseDuration  int      `json:"course_duration,omitempty"`
	CoursePrice     *float64 `json:"course_price,omitempty"`
	CourseIntensity string   `json:"course_intensity,omitempty"`
}

// Item is one cart entry. ID equals the class ID; at most one Item per
// class ID exists in an aggregate.
type Item struct {
	ID        string        `json:"id"`
	ClassData ClassSnapshot `json:"class_data"`
	Quantity  int           `json:"quantity"`
	AddedAt   time.Time     `json:"added_at"`
}

// Booking is the locally cached copy of a confirmed booking, most recent
// first in the aggregate cache. The durable system of record lives in the
// external store; this cache is an eventually-stale read replica.
type Booking struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Items       []Item    `json:"items"`
	TotalPrice  float64   `json:"total_price"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// State is the serializable form of an aggregate: the single named blob
// persisted to the local store. Unknown fields in a stored blob are
// ignored on restore; missing fields default.
type State struct {
	ID        string    `json:"id"`
	Items     []Item    `json:"items"`
	UserEmail string    `json:"user_email"`
	Bookings  []Booking `json:"bookings"`
}

// Aggregate owns the cart items, the shared contact address and the local
// bookings cache for one client. All methods are safe for concurrent use;
// derived values are computed on demand from the items, never cached.
type Aggregate struct {
	mu    sync.Mutex
	id    string
	items []Item
	email string

	bookings []Booking
}

// New returns an empty aggregate.
func New(id string) *Aggregate {
	return &Aggregate{id: id}
}

// Restore rebuilds an aggregate from persisted state.
func Restore(state State) *Aggregate {
	return &Aggregate{
		id:       state.ID,
		items:    state.Items,
		email:    state.UserEmail,
		bookings: state.Bookings,
	}
}

func (a *Aggregate) ID() string {
	return a.id
}

// AddToCart inserts the class with quantity 1, or increments the quantity
// of the existing entry, leaving its embedded snapshot unchanged. Missing
// price is not an error here; that check belongs to the caller.
func (a *Aggregate) AddToCart(classData ClassSnapshot) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.items {
		if a.items[i].ID == classData.ID {
			a.items[i].Quantity++
			return
		}
	}

	a.items = append(a.items, Item{
		ID:        classData.ID,
		ClassData: classData,
		Quantity:  1,
		AddedAt:   time.Now(),
	})
}

// RemoveFromCart deletes the entry, no-op if absent.
func (a *Aggregate) RemoveFromCart(classID string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.removeLocked(classID)
}

func (a *Aggregate) removeLocked(classID string) {
	for i := range a.items {
		if a.items[i].ID == classID {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the absolute quantity. A quantity <= 0 removes the
// item; an absent ID is a no-op.
func (a *Aggregate) UpdateQuantity(classID string, quantity int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if quantity <= 0 {
		a.removeLocked(classID)
		return
	}

	for i := range a.items {
		if a.items[i].ID == classID {
			a.items[i].Quantity = quantity
			return
		}
	}
}

// ClearCart empties the items. Contact address and bookings cache survive.
func (a *Aggregate) ClearCart() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.items = nil
}

// TotalPrice sums course price times quantity over all items. A missing
// price counts as zero; an empty cart totals zero.
func (a *Aggregate) TotalPrice() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	var total float64
	for _, item := range a.items {
		if item.ClassData.CoursePrice != nil {
			total += *item.ClassData.CoursePrice * float64(item.Quantity)
		}
	}
	return total
}

// TotalItems sums quantities, not distinct entries.
func (a *Aggregate) TotalItems() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	var total int
	for _, item := range a.items {
		total += item.Quantity
	}
	return total
}

func (a *Aggregate) IsClassInCart(classID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, item := range a.items {
		if item.ID == classID {
			return true
		}
	}
	return false
}

func (a *Aggregate) Item(classID string) (Item, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, item := range a.items {
		if item.ID == classID {
			return item, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the ordered items.
func (a *Aggregate) Items() []Item {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]Item(nil), a.items...)
}

// SetUserEmail overwrites the shared contact address. No validation here;
// that is the caller's concern.
func (a *Aggregate) SetUserEmail(email string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.email = email
}

func (a *Aggregate) UserEmail() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.email
}

// AddBooking prepends to the local cache, most recent first.
func (a *Aggregate) AddBooking(booking Booking) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.bookings = append([]Booking{booking}, a.bookings...)
}

// BookingsForUser filters the local cache by exact contact-address match,
// case-sensitive as stored.
func (a *Aggregate) BookingsForUser(email string) []Booking {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []Booking
	for _, b := range a.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out
}

// Snapshot returns a consistent copy of the full aggregate state for
// persistence or read-only rendering.
func (a *Aggregate) Snapshot() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	return State{
		ID:        a.id,
		Items:     append([]Item(nil), a.items...),
		UserEmail: a.email,
		Bookings:  append([]Booking(nil), a.bookings...),
	}
}
