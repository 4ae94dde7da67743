package usecase

import (
	"context"
	"log"
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"
)

// settlementReconciler is the part of the payment use case the watcher needs to
// ask the processor directly when no webhook arrives.
type settlementReconciler interface {
	HandleGatewayNotification(ctx context.Context, txid string) (entities.ServiceRequest, error)
}

//go:generate mockgen -source=settlement_watcher.go -destination=../adapter/http/handlers/mocks/mock_settlement_watcher.go -package=mocks
type ISettlementWatcher interface {
	Await(ctx context.Context, actor entities.Actor, requestID string, onUpdate func(entities.ServiceRequest)) (entities.ServiceRequest, error)
}

// SettlementWatcher backs an open payment view. It wakes on settlement events
// and falls back to a fixed-cadence poll of the request, optionally asking the
// processor on each tick. It stops as soon as the request leaves
// pending_payment, the caller cancels, or the charge expires.
type SettlementWatcher struct {
	store      requestStore
	bus        interfaces.ISettlementBus
	reconciler settlementReconciler
	interval   time.Duration
	nowFn      func() time.Time
}

var _ ISettlementWatcher = (*SettlementWatcher)(nil)

// NewSettlementWatcher builds a watcher polling every interval. reconciler may
// be nil, in which case ticks only re-read the stored request.
func NewSettlementWatcher(repo interfaces.IServiceRequestRepository, bus interfaces.ISettlementBus, reconciler settlementReconciler, interval time.Duration) *SettlementWatcher {
	if interval <= 0 {
		interval = entities.DefaultPollInterval
	}
	return &SettlementWatcher{
		store:      requestStore{repo: repo},
		bus:        bus,
		reconciler: reconciler,
		interval:   interval,
		nowFn:      func() time.Time { return time.Now().UTC() },
	}
}

func (w *SettlementWatcher) Await(ctx context.Context, actor entities.Actor, requestID string, onUpdate func(entities.ServiceRequest)) (entities.ServiceRequest, error) {
	r, err := w.store.load(ctx, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := authorizeRead(actor, r); err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.Status != entities.RequestStatusPendingPayment {
		return r, nil
	}
	if r.Pix == nil {
		return r, validationError("request %s has no charge to wait for", r.ID)
	}
	if !r.Pix.Live(w.nowFn()) {
		return r, ErrChargeExpired
	}

	var events <-chan entities.SettlementEvent
	if w.bus != nil {
		ch, release, err := w.bus.Subscribe(ctx)
		if err != nil {
			log.Printf("[payment][watcher] subscribe failed, polling only request_id=%s err=%v", r.ID, err)
		} else {
			defer release()
			events = ch
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	txid := r.Pix.TxID
	expiry := time.NewTimer(r.Pix.ExpiresAt.Sub(w.nowFn()))
	defer func() { expiry.Stop() }()

	log.Printf("[payment][watcher] await start request_id=%s txid=%s interval=%s", r.ID, txid, w.interval)
	for {
		expired := false
		select {
		case <-ctx.Done():
			log.Printf("[payment][watcher] await cancelled request_id=%s", r.ID)
			return r, ctx.Err()
		case evt, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if evt.RequestID != r.ID {
				continue
			}
		case <-ticker.C:
			if w.reconciler != nil {
				if _, err := w.reconciler.HandleGatewayNotification(ctx, txid); err != nil {
					log.Printf("[payment][watcher] reconcile failed request_id=%s txid=%s err=%v", r.ID, txid, err)
				}
			}
		case <-expiry.C:
			expired = true
		}

		latest, err := w.store.load(ctx, r.ID)
		if err != nil {
			return r, err
		}
		r = latest
		if onUpdate != nil {
			onUpdate(r)
		}
		if r.Status != entities.RequestStatusPendingPayment {
			log.Printf("[payment][watcher] await done request_id=%s status=%s", r.ID, r.Status)
			return r, nil
		}
		if r.Pix != nil && r.Pix.TxID != txid {
			// A new charge was issued meanwhile; follow it.
			txid = r.Pix.TxID
			expiry.Stop()
			expiry = time.NewTimer(r.Pix.ExpiresAt.Sub(w.nowFn()))
			continue
		}
		if expired {
			log.Printf("[payment][watcher] charge expired request_id=%s txid=%s", r.ID, txid)
			return r, ErrChargeExpired
		}
	}
}
