package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const channel = "forum:events"

// RedisBroker implements Broker over redis pub/sub.
type RedisBroker struct {
	client *redis.Client
	pubsub *redis.PubSub
	ctx    context.Context
}

func NewRedisBroker(redisURL string) (*RedisBroker, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisBroker{
		client: client,
		ctx:    ctx,
	}, nil
}

func (b *RedisBroker) Publish(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return b.client.Publish(b.ctx, channel, data).Err()
}

func (b *RedisBroker) Subscribe() (<-chan Event, error) {
	b.pubsub = b.client.Subscribe(b.ctx, channel)

	eventChan := make(chan Event, 100)

	go func() {
		defer close(eventChan)

		for msg := range b.pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			eventChan <- event
		}
	}()

	return eventChan, nil
}

func (b *RedisBroker) Close() error {
	if b.pubsub != nil {
		b.pubsub.Close()
	}
	return b.client.Close()
}

// Client exposes the underlying connection for components that share it,
// such as the rate limiter.
func (b *RedisBroker) Client() *redis.Client {
	return b.client
}
