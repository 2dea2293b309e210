package chat

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Bus carries change notifications for conversation channels. The payload
// is irrelevant; a notification only means "reload the snapshot".
type Bus interface {
	Publish(ctx context.Context, channel string) error
	Subscribe(ctx context.Context, channel string) (BusSubscription, error)
}

// BusSubscription is a single channel listener. Wait blocks until the next
// notification arrives or the subscription fails.
type BusSubscription interface {
	Wait(ctx context.Context) error
	Close() error
}

type redisBus struct {
	client *redis.Client
}

// NewRedisBus builds a Bus over redis pub/sub.
func NewRedisBus(client *redis.Client) Bus {
	return &redisBus{client: client}
}

func (b *redisBus) Publish(ctx context.Context, channel string) error {
	if err := b.client.Publish(ctx, channel, "changed").Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channel, err)
	}
	return nil
}

func (b *redisBus) Subscribe(ctx context.Context, channel string) (BusSubscription, error) {
	pubsub := b.client.Subscribe(ctx, channel)

	// Force the subscription onto the wire before reporting success.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", channel, err)
	}

	return &redisBusSubscription{pubsub: pubsub}, nil
}

type redisBusSubscription struct {
	pubsub *redis.PubSub
}

func (s *redisBusSubscription) Wait(ctx context.Context) error {
	_, err := s.pubsub.ReceiveMessage(ctx)
	return err
}

func (s *redisBusSubscription) Close() error {
	return s.pubsub.Close()
}
