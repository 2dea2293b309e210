package chat

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Message is one chat message as delivered to subscribers, newest first
// within a snapshot.
type Message struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	SenderID   string `json:"sender_id"`
	SenderName string `json:"sender_name"`
	SenderRole string `json:"sender_role"`
	Timestamp  int64  `json:"timestamp"` // epoch milliseconds
}

// Source loads the full, ordered message list for a conversation.
type Source interface {
	Messages(ctx context.Context, conversationID string) ([]Message, error)
}

// Snapshot is one delivery to a subscriber: the complete message list,
// replacing whatever the subscriber held before. Reconnecting marks a
// transient failure; prior messages stay valid and the subscription keeps
// listening.
type Snapshot struct {
	Messages     []Message `json:"messages"`
	Reconnecting bool      `json:"reconnecting"`
	Error        string    `json:"error,omitempty"`
}

// Relay fans conversation changes out to subscribers. Each change
// notification triggers a full reload from the source; subscribers never
// receive deltas.
type Relay struct {
	bus    Bus
	source Source
	log    *zap.Logger

	// Pause between receive failures so a dead bus doesn't spin.
	retryDelay time.Duration
}

func NewRelay(bus Bus, source Source, log *zap.Logger) *Relay {
	return &Relay{
		bus:        bus,
		source:     source,
		log:        log.With(zap.String("component", "chat-relay")),
		retryDelay: time.Second,
	}
}

func channelFor(conversationID string) string {
	return "conv:" + conversationID
}

// Notify signals that the conversation changed. Fire-and-forget: the
// caller does not wait for subscribers to observe the change.
func (r *Relay) Notify(ctx context.Context, conversationID string) {
	if err := r.bus.Publish(ctx, channelFor(conversationID)); err != nil {
		r.log.Warn("Failed to publish conversation change",
			zap.Error(err),
			zap.String("conversation_id", conversationID),
		)
	}
}

// Subscribe opens a long-lived subscription for one conversation. Exactly
// one Unsubscribe call per Subscribe call is required; the snapshots
// channel closes after Unsubscribe or when ctx is done.
func (r *Relay) Subscribe(ctx context.Context, conversationID string) (*Subscription, error) {
	busSub, err := r.bus.Subscribe(ctx, channelFor(conversationID))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		conversationID: conversationID,
		snapshots:      make(chan Snapshot, 1),
		cancel:         cancel,
		busSub:         busSub,
	}

	go r.run(ctx, sub)

	return sub, nil
}

func (r *Relay) run(ctx context.Context, sub *Subscription) {
	defer close(sub.snapshots)

	// Initial snapshot before any notification.
	r.deliver(ctx, sub)

	for {
		if err := sub.busSub.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}

			r.log.Warn("Conversation listener error, keeping subscription",
				zap.Error(err),
				zap.String("conversation_id", sub.conversationID),
			)
			sub.push(Snapshot{Reconnecting: true, Error: "connection lost, reconnecting"})

			select {
			case <-time.After(r.retryDelay):
			case <-ctx.Done():
				return
			}
			continue
		}

		r.deliver(ctx, sub)
	}
}

func (r *Relay) deliver(ctx context.Context, sub *Subscription) {
	messages, err := r.source.Messages(ctx, sub.conversationID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.log.Warn("Failed to load conversation snapshot",
			zap.Error(err),
			zap.String("conversation_id", sub.conversationID),
		)
		sub.push(Snapshot{Reconnecting: true, Error: "failed to load messages"})
		return
	}

	sub.push(Snapshot{Messages: messages})
}

// Subscription is a cancellable handle on one conversation stream.
type Subscription struct {
	conversationID string
	snapshots      chan Snapshot
	cancel         context.CancelFunc
	busSub         BusSubscription
	once           sync.Once
}

// Snapshots yields full-snapshot updates. Only the latest snapshot is
// retained when the consumer lags; intermediate states are superseded,
// never merged.
func (s *Subscription) Snapshots() <-chan Snapshot {
	return s.snapshots
}

// Unsubscribe disposes the subscription. Safe to call once per Subscribe;
// further calls are no-ops.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.cancel()
		s.busSub.Close()
	})
}

// push keeps only the newest snapshot: replace, don't queue.
func (s *Subscription) push(snap Snapshot) {
	for {
		select {
		case s.snapshots <- snap:
			return
		default:
			select {
			case <-s.snapshots:
			default:
			}
		}
	}
}
