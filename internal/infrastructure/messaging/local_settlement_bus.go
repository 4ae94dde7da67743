package messaging

import (
	"context"
	"sync"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"
)

// LocalSettlementBus delivers events to subscribers of the same process. Slow
// subscribers drop events instead of blocking the publisher; waiters re-read
// the request on wake-up anyway.
type LocalSettlementBus struct {
	mu   sync.Mutex
	subs map[chan entities.SettlementEvent]struct{}
}

var _ interfaces.ISettlementBus = (*LocalSettlementBus)(nil)

func NewLocalSettlementBus() *LocalSettlementBus {
	return &LocalSettlementBus{subs: map[chan entities.SettlementEvent]struct{}{}}
}

func (b *LocalSettlementBus) Publish(_ context.Context, evt entities.SettlementEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
	return nil
}

func (b *LocalSettlementBus) Subscribe(_ context.Context) (<-chan entities.SettlementEvent, func(), error) {
	ch := make(chan entities.SettlementEvent, 8)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, release, nil
}
