package cart

import (
	"encoding/json"
	"testing"

	"yoga-booking/pkg/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) (*Store, *localstore.DB) {
	t.Helper()

	db, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db, zap.NewNop()), db
}

func TestStore_SaveAndRestore(t *testing.T) {
	store, db := newTestStore(t)

	agg := store.Aggregate("cart-1")
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.AddToCart(snapshot("2026-09-01", price(15)))
	agg.SetUserEmail("yogi@example.com")
	require.NoError(t, store.Save(agg))

	// A fresh store over the same files must see the persisted state.
	reopened := NewStore(db, zap.NewNop())
	restored := reopened.Aggregate("cart-1")

	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "yogi@example.com", restored.UserEmail())
}

func TestStore_MissingBlobYieldsEmptyAggregate(t *testing.T) {
	store, _ := newTestStore(t)

	agg := store.Aggregate("never-seen")

	assert.Equal(t, "never-seen", agg.ID())
	assert.Empty(t, agg.Items())
	assert.Empty(t, agg.UserEmail())
}

func TestStore_CorruptBlobYieldsEmptyAggregate(t *testing.T) {
	store, db := newTestStore(t)

	require.NoError(t, db.Put("cart/broken", []byte("{not json")))

	agg := store.Aggregate("broken")
	assert.Empty(t, agg.Items())
}

func TestStore_UnknownFieldsInBlobAreIgnored(t *testing.T) {
	store, db := newTestStore(t)

	blob := []byte(`{
		"id": "cart-1",
		"items": [{"id": "2026-09-01", "class_data": {"id": "2026-09-01"}, "quantity": 2, "added_at": "2026-08-30T10:00:00Z"}],
		"user_email": "yogi@example.com",
		"some_future_field": {"nested": true}
	}`)
	require.NoError(t, db.Put("cart/cart-1", blob))

	agg := store.Aggregate("cart-1")

	items := agg.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "yogi@example.com", agg.UserEmail())
}

func TestStore_AggregateIsCachedPerCartID(t *testing.T) {
	store, _ := newTestStore(t)

	first := store.Aggregate("cart-1")
	second := store.Aggregate("cart-1")

	assert.Same(t, first, second)
}

func TestStore_FlushPersistsEveryLoadedAggregate(t *testing.T) {
	store, db := newTestStore(t)

	a := store.Aggregate("cart-a")
	a.AddToCart(snapshot("2026-09-01", price(15)))
	b := store.Aggregate("cart-b")
	b.SetUserEmail("b@example.com")

	require.NoError(t, store.Flush())

	var state State
	blob, err := db.Get("cart/cart-a")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(blob, &state))
	assert.Len(t, state.Items, 1)

	blob, err = db.Get("cart/cart-b")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(blob, &state))
	assert.Equal(t, "b@example.com", state.UserEmail)
}
