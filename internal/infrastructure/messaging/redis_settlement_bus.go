package messaging

import (
	"context"
	"encoding/json"
	"log"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const SettlementsChannel = "pix_settlements"

// RedisSettlementBus fans settlement events out across instances, so a waiter
// on one node wakes up when the webhook lands on another.
type RedisSettlementBus struct {
	rdb     redis.UniversalClient
	channel string
}

var _ interfaces.ISettlementBus = (*RedisSettlementBus)(nil)

func NewRedisSettlementBus(rdb redis.UniversalClient) *RedisSettlementBus {
	return &RedisSettlementBus{rdb: rdb, channel: SettlementsChannel}
}

func (b *RedisSettlementBus) Publish(ctx context.Context, evt entities.SettlementEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, data).Err()
}

func (b *RedisSettlementBus) Subscribe(ctx context.Context) (<-chan entities.SettlementEvent, func(), error) {
	pubsub := b.rdb.Subscribe(ctx, b.channel)
	// Wait for the subscription to be confirmed so no event published after
	// Subscribe returns is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, err
	}

	out := make(chan entities.SettlementEvent, 8)
	done := make(chan struct{})
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var evt entities.SettlementEvent
			if err := json.Unmarshal([]byte(msg.Payload), &evt); err != nil {
				log.Printf("[payment][bus] invalid settlement payload err=%v", err)
				continue
			}
			select {
			case out <- evt:
			case <-done:
				return
			}
		}
	}()

	release := func() {
		close(done)
		_ = pubsub.Close()
	}
	return out, release, nil
}
