package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"yoga-booking/pkg/localstore"

	"go.uber.org/zap"
)

const keyPrefix = "cart/"

// Store manages cart aggregates keyed by client cart ID, backed by the
// embedded local store. Aggregates are restored lazily on first access and
// kept in memory afterwards; Save must be called after every mutation so
// the full state is durable before the operation completes.
type Store struct {
	db  *localstore.DB
	log *zap.Logger

	mu   sync.Mutex
	aggs map[string]*Aggregate
}

func NewStore(db *localstore.DB, log *zap.Logger) *Store {
	return &Store{
		db:   db,
		log:  log.With(zap.String("store", "cart")),
		aggs: make(map[string]*Aggregate),
	}
}

// Aggregate returns the aggregate for cartID, restoring it from the local
// store. A missing or undecodable blob yields an empty aggregate.
func (s *Store) Aggregate(cartID string) *Aggregate {
	s.mu.Lock()
	defer s.mu.Unlock()

	if agg, ok := s.aggs[cartID]; ok {
		return agg
	}

	agg := s.restore(cartID)
	s.aggs[cartID] = agg
	return agg
}

func (s *Store) restore(cartID string) *Aggregate {
	blob, err := s.db.Get(keyPrefix + cartID)
	if errors.Is(err, localstore.ErrNotFound) {
		return New(cartID)
	}
	if err != nil {
		s.log.Error("Failed to read cart blob, starting empty",
			zap.Error(err),
			zap.String("cart_id", cartID),
		)
		return New(cartID)
	}

	var state State
	if err := json.Unmarshal(blob, &state); err != nil {
		s.log.Warn("Undecodable cart blob, starting empty",
			zap.Error(err),
			zap.String("cart_id", cartID),
		)
		return New(cartID)
	}

	state.ID = cartID
	return Restore(state)
}

// Save persists the full aggregate state as one named blob.
func (s *Store) Save(agg *Aggregate) error {
	state := agg.Snapshot()

	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", state.ID, err)
	}

	if err := s.db.Put(keyPrefix+state.ID, blob); err != nil {
		s.log.Error("Failed to persist cart",
			zap.Error(err),
			zap.String("cart_id", state.ID),
		)
		return fmt.Errorf("persist cart %s: %w", state.ID, err)
	}

	return nil
}

// Flush persists every loaded aggregate; called once at shutdown.
func (s *Store) Flush() error {
	s.mu.Lock()
	aggs := make([]*Aggregate, 0, len(s.aggs))
	for _, agg := range s.aggs {
		aggs = append(aggs, agg)
	}
	s.mu.Unlock()

	var firstErr error
	for _, agg := range aggs {
		if err := s.Save(agg); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
