package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portal_servicos/internal/domain/entities"
	mock_interfaces "portal_servicos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type chanBus struct {
	mu   sync.Mutex
	subs map[chan entities.SettlementEvent]struct{}
}

func newChanBus() *chanBus {
	return &chanBus{subs: map[chan entities.SettlementEvent]struct{}{}}
}

func (b *chanBus) Publish(_ context.Context, evt entities.SettlementEvent) error {
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

func (b *chanBus) Subscribe(_ context.Context) (<-chan entities.SettlementEvent, func(), error) {
	ch := make(chan entities.SettlementEvent, 4)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch, func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}, nil
}

func (b *chanBus) subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// chargedRequest creates a paid request holding a charge that expires after ttl
// of wall-clock time.
func chargedRequest(t *testing.T, env *testEnv, gateway *mock_interfaces.MockIPaymentGateway, bus *chanBus, ttl time.Duration) (entities.ServiceRequest, *PixChargeUseCase) {
	t.Helper()
	r := env.create(t, paidType.ID)
	var uc *PixChargeUseCase
	if bus != nil {
		uc = NewPixChargeUseCase(env.repo, gateway, nil, bus, nil, testPaymentConfig())
	} else {
		uc = NewPixChargeUseCase(env.repo, gateway, nil, nil, nil, testPaymentConfig())
	}
	gateway.EXPECT().Authenticate(gomock.Any()).Return("session", nil)
	gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ChargeResult{
		TxID:        "tx-1",
		PayloadCode: "000201",
		ExpiresAt:   time.Now().UTC().Add(ttl),
	}, nil)
	if _, err := uc.GenerateCharge(context.Background(), testClient, r.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r, uc
}

func TestSettlementWatcher_Await(t *testing.T) {
	ctx := context.Background()

	t.Run("returns at once when nothing is pending", func(t *testing.T) {
		env := newTestEnv(t)
		r := env.create(t, freeType.ID)
		w := NewSettlementWatcher(env.repo, nil, nil, time.Hour)

		got, err := w.Await(ctx, testClient, r.ID, nil)
		if err != nil || got.Status != entities.RequestStatusRequested {
			t.Fatalf("expected requested, got %s %v", got.Status, err)
		}
	})

	t.Run("needs a charge", func(t *testing.T) {
		env := newTestEnv(t)
		r := env.create(t, paidType.ID)
		w := NewSettlementWatcher(env.repo, nil, nil, time.Hour)

		if _, err := w.Await(ctx, testClient, r.ID, nil); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("other client is denied", func(t *testing.T) {
		env := newTestEnv(t)
		r := env.create(t, paidType.ID)
		w := NewSettlementWatcher(env.repo, nil, nil, time.Hour)

		if _, err := w.Await(ctx, otherClient, r.ID, nil); !errors.Is(err, ErrPermission) {
			t.Fatalf("expected ErrPermission, got %v", err)
		}
	})

	t.Run("wakes on a settlement event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		bus := newChanBus()
		r, pix := chargedRequest(t, env, mock_interfaces.NewMockIPaymentGateway(ctrl), bus, time.Hour)
		w := NewSettlementWatcher(env.repo, bus, nil, time.Hour)

		var updates atomic.Int32
		done := make(chan error, 1)
		var got entities.ServiceRequest
		go func() {
			var err error
			got, err = w.Await(ctx, testClient, r.ID, func(entities.ServiceRequest) { updates.Add(1) })
			done <- err
		}()

		deadline := time.Now().Add(2 * time.Second)
		for bus.subscribers() == 0 {
			if time.Now().After(deadline) {
				t.Fatalf("watcher never subscribed")
			}
			time.Sleep(5 * time.Millisecond)
		}
		if _, err := pix.ConfirmSettlement(ctx, "tx-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("watcher did not wake up")
		}
		if got.Status != entities.RequestStatusRequested || got.PaymentStatus != entities.PaymentStatusApproved {
			t.Fatalf("expected requested/approved, got %s/%s", got.Status, got.PaymentStatus)
		}
		if updates.Load() == 0 {
			t.Fatalf("expected at least one update callback")
		}
		if bus.subscribers() != 0 {
			t.Fatalf("expected subscription to be released")
		}
	})

	t.Run("polls the processor without events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		r, pix := chargedRequest(t, env, gateway, nil, time.Hour)
		w := NewSettlementWatcher(env.repo, nil, pix, 10*time.Millisecond)

		gateway.EXPECT().GetChargeStatus(gomock.Any(), "tx-1").Return(entities.ProviderStatusPending, nil).Times(1)
		gateway.EXPECT().GetChargeStatus(gomock.Any(), "tx-1").Return(entities.ProviderStatusApproved, nil).AnyTimes()

		got, err := w.Await(ctx, testClient, r.ID, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RequestStatusRequested {
			t.Fatalf("expected requested, got %s", got.Status)
		}
	})

	t.Run("stops when the charge expires", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		r, _ := chargedRequest(t, env, mock_interfaces.NewMockIPaymentGateway(ctrl), nil, 50*time.Millisecond)
		w := NewSettlementWatcher(env.repo, nil, nil, time.Hour)

		got, err := w.Await(ctx, testClient, r.ID, nil)
		if !errors.Is(err, ErrChargeExpired) {
			t.Fatalf("expected ErrChargeExpired, got %v", err)
		}
		if got.Status != entities.RequestStatusPendingPayment {
			t.Fatalf("expected pending_payment, got %s", got.Status)
		}
	})

	t.Run("stops when the caller goes away", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		r, _ := chargedRequest(t, env, mock_interfaces.NewMockIPaymentGateway(ctrl), nil, time.Hour)
		w := NewSettlementWatcher(env.repo, nil, nil, time.Hour)

		cctx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
		defer cancel()
		if _, err := w.Await(cctx, testClient, r.ID, nil); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected context.DeadlineExceeded, got %v", err)
		}
	})
}
