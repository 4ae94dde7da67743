package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"portal_servicos/internal/domain/brcode"
	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/domain/workflow"
	"portal_servicos/internal/usecase/interfaces"
)

const settlementRetries = 3

// ChargeProgress receives the pipeline steps of GenerateCharge as they start.
type ChargeProgress func(step entities.ChargeStep)

// IPixChargeUseCase orchestrates the PIX payment sub-workflow of billable
// requests:
//   - GenerateCharge issues (or reuses) the charge code shown to the client
//   - ConfirmSettlement applies a processor settlement, idempotently
//   - HandleGatewayNotification reacts to processor webhooks by txid
//   - ValidatePayloadStructure checks a code locally, without the processor

//go:generate mockgen -source=pix_charge_usecase.go -destination=../adapter/http/handlers/mocks/mock_pix_charge_usecase.go -package=mocks
type IPixChargeUseCase interface {
	GenerateCharge(ctx context.Context, actor entities.Actor, requestID string, progress ChargeProgress) (entities.PixCharge, error)
	ConfirmSettlement(ctx context.Context, txid string) (entities.ServiceRequest, error)
	MarkUnderReview(ctx context.Context, txid string) (entities.ServiceRequest, error)
	HandleGatewayNotification(ctx context.Context, txid string) (entities.ServiceRequest, error)
	ValidatePayloadStructure(payloadCode string) error
}

type PixChargeUseCase struct {
	store     requestStore
	gateway   interfaces.IPaymentGateway
	directory interfaces.IDirectory
	bus       interfaces.ISettlementBus
	audience  audience
	cfg       entities.PaymentConfig
	nowFn     func() time.Time
}

var _ IPixChargeUseCase = (*PixChargeUseCase)(nil)

func NewPixChargeUseCase(
	repo interfaces.IServiceRequestRepository,
	gateway interfaces.IPaymentGateway,
	directory interfaces.IDirectory,
	bus interfaces.ISettlementBus,
	notifier interfaces.INotifier,
	cfg entities.PaymentConfig,
) *PixChargeUseCase {
	return &PixChargeUseCase{
		store:     requestStore{repo: repo},
		gateway:   gateway,
		directory: directory,
		bus:       bus,
		audience:  audience{notifier: notifier, directory: directory},
		cfg:       cfg.WithDefaults(),
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *PixChargeUseCase) GenerateCharge(ctx context.Context, actor entities.Actor, requestID string, progress ChargeProgress) (entities.PixCharge, error) {
	report := func(step entities.ChargeStep) {
		if progress != nil {
			progress(step)
		}
	}
	log.Printf("[payment][usecase] generate-charge start request_id=%s actor_id=%s", requestID, actor.ID)

	r, err := u.store.loadForWrite(ctx, actor, requestID)
	if err != nil {
		return entities.PixCharge{}, err
	}
	if !r.Billable() {
		return entities.PixCharge{}, validationError("request %s is free of charge", r.ID)
	}
	// A settled or disabled charge is never handed out again, live or not.
	if r.Status != entities.RequestStatusPendingPayment {
		return entities.PixCharge{}, fmt.Errorf("%w: a charge can only be generated while %s, request is %s", ErrInvalidTransition, entities.RequestStatusPendingPayment, r.Status)
	}
	if !u.cfg.EnableDirectTransferCharge {
		return entities.PixCharge{}, paymentConfigError("direct transfer charges are disabled")
	}
	now := u.nowFn()
	if r.Pix.Live(now) {
		log.Printf("[payment][usecase] reusing live charge request_id=%s txid=%s expires_at=%s", r.ID, r.Pix.TxID, r.Pix.ExpiresAt.Format(time.RFC3339))
		report(entities.ChargeStepDone)
		return *r.Pix, nil
	}
	if missing := u.cfg.MissingCredentials(); len(missing) > 0 {
		log.Printf("[payment][usecase] missing credentials request_id=%s missing=%v", r.ID, missing)
		return entities.PixCharge{}, paymentConfigError("missing %s", strings.Join(missing, ", "))
	}
	if u.gateway == nil {
		return entities.PixCharge{}, paymentConfigError("payment gateway not configured")
	}

	// Remote calls run to completion or timeout even if the caller goes away.
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.GatewayTimeout)
	defer cancel()

	report(entities.ChargeStepConnecting)
	token, err := u.gateway.Authenticate(callCtx)
	if err != nil {
		log.Printf("[payment][usecase] authenticate failed request_id=%s err=%v", r.ID, err)
		return entities.PixCharge{}, &GatewayError{Step: entities.ChargeStepConnecting, Err: err}
	}

	report(entities.ChargeStepCollectingPayer)
	payer, err := u.payer(callCtx, r)
	if err != nil {
		log.Printf("[payment][usecase] payer lookup failed request_id=%s err=%v", r.ID, err)
		return entities.PixCharge{}, &GatewayError{Step: entities.ChargeStepCollectingPayer, Err: err}
	}

	report(entities.ChargeStepGeneratingCode)
	expiresAt := now.Add(u.cfg.ChargeWindow)
	res, err := u.gateway.CreateCharge(callCtx, token, entities.ChargeRequest{
		Payer:             payer,
		Amount:            r.Price,
		PixKey:            u.cfg.PixKey,
		Description:       fmt.Sprintf("%s - %s", r.Protocol, r.Title),
		ExternalReference: r.ID,
		ExpiresAt:         expiresAt,
	})
	if err != nil {
		log.Printf("[payment][usecase] create charge failed request_id=%s err=%v", r.ID, err)
		return entities.PixCharge{}, &GatewayError{Step: entities.ChargeStepGeneratingCode, Err: err}
	}
	if strings.TrimSpace(res.TxID) == "" || strings.TrimSpace(res.PayloadCode) == "" {
		return entities.PixCharge{}, &GatewayError{Step: entities.ChargeStepGeneratingCode, Err: errors.New("processor returned an empty charge")}
	}
	if !res.ExpiresAt.IsZero() {
		expiresAt = res.ExpiresAt.UTC()
	}

	readVersion := r.Version
	previous := ""
	if r.Pix != nil {
		previous = r.Pix.TxID
	}
	r.Pix = &entities.PixCharge{TxID: res.TxID, PayloadCode: res.PayloadCode, ExpiresAt: expiresAt}
	detail := "txid " + res.TxID
	if previous != "" {
		detail += " replaces expired " + previous
	}
	r.AppendAudit(newAuditEntry(entities.AuditPixChargeGenerated, actor, detail, now))

	if _, err := u.store.save(ctx, r, readVersion); err != nil {
		log.Printf("[payment][usecase] save charge failed request_id=%s txid=%s err=%v", r.ID, res.TxID, err)
		return entities.PixCharge{}, err
	}
	report(entities.ChargeStepDone)
	log.Printf("[payment][usecase] generate-charge success request_id=%s txid=%s expires_at=%s", r.ID, res.TxID, expiresAt.Format(time.RFC3339))
	return *r.Pix, nil
}

func (u *PixChargeUseCase) payer(ctx context.Context, r entities.ServiceRequest) (entities.Payer, error) {
	if u.directory == nil {
		return entities.Payer{ID: r.ClientID}, nil
	}
	user, err := u.directory.GetUser(ctx, r.ClientID)
	if err != nil {
		return entities.Payer{}, err
	}
	return entities.Payer{ID: user.ID, Name: user.Name, Email: user.Email, Document: user.Document}, nil
}

// ConfirmSettlement applies a processor settlement to the request holding
// txid. Repeated confirmations for an approved request are no-ops; txids of
// superseded charges are unknown and return ErrChargeNotFound.
func (u *PixChargeUseCase) ConfirmSettlement(ctx context.Context, txid string) (entities.ServiceRequest, error) {
	log.Printf("[payment][usecase] confirm-settlement start txid=%s", txid)
	r, changed, err := u.applyProcessorStatus(ctx, txid, entities.RequestStatusRequested, entities.PaymentStatusApproved)
	if err != nil || !changed {
		return r, err
	}

	evt := entities.SettlementEvent{RequestID: r.ID, TxID: r.Pix.TxID, SettledAt: r.UpdatedAt}
	if u.bus != nil {
		if err := u.bus.Publish(ctx, evt); err != nil {
			log.Printf("[payment][usecase] settlement publish failed request_id=%s txid=%s err=%v", r.ID, evt.TxID, err)
		}
	}
	u.audience.toClient(ctx, r, "Payment confirmed for "+r.Protocol, "Your request is now in the queue.")
	u.audience.toStaff(ctx, r, "Paid request "+r.Protocol, r.Title)
	log.Printf("[payment][usecase] confirm-settlement success request_id=%s txid=%s", r.ID, evt.TxID)
	return r, nil
}

// MarkUnderReview records that the processor holds the payment for review.
func (u *PixChargeUseCase) MarkUnderReview(ctx context.Context, txid string) (entities.ServiceRequest, error) {
	r, _, err := u.applyProcessorStatus(ctx, txid, entities.RequestStatusPaymentUnderReview, entities.PaymentStatusUnderReview)
	return r, err
}

// HandleGatewayNotification asks the processor for the authoritative status of
// txid and applies it. Notifications carry no trusted state of their own.
func (u *PixChargeUseCase) HandleGatewayNotification(ctx context.Context, txid string) (entities.ServiceRequest, error) {
	txid = strings.TrimSpace(txid)
	if txid == "" {
		return entities.ServiceRequest{}, validationError("txid is required")
	}
	if u.gateway == nil {
		return entities.ServiceRequest{}, paymentConfigError("payment gateway not configured")
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.GatewayTimeout)
	defer cancel()
	status, err := u.gateway.GetChargeStatus(callCtx, txid)
	if err != nil {
		log.Printf("[payment][usecase] charge status lookup failed txid=%s err=%v", txid, err)
		return entities.ServiceRequest{}, &GatewayError{Step: entities.ChargeStepConfirming, Err: err}
	}
	log.Printf("[payment][usecase] gateway notification txid=%s provider_status=%s", txid, status)

	switch status {
	case entities.ProviderStatusApproved:
		return u.ConfirmSettlement(ctx, txid)
	case entities.ProviderStatusInProcess:
		return u.MarkUnderReview(ctx, txid)
	default:
		r, err := u.findByTxID(ctx, txid)
		return r, err
	}
}

func (u *PixChargeUseCase) ValidatePayloadStructure(payloadCode string) error {
	if strings.TrimSpace(payloadCode) == "" {
		return validationError("payload code is required")
	}
	if err := brcode.Validate(payloadCode); err != nil {
		return validationError("%v", err)
	}
	return nil
}

// applyProcessorStatus moves the request holding txid to the given state on
// behalf of the system actor. It reports changed=false when the request is
// already there (or past it), which makes duplicate deliveries harmless.
// Stale-version conflicts are retried because processor callbacks race with
// user actions on the same request.
func (u *PixChargeUseCase) applyProcessorStatus(ctx context.Context, txid string, to entities.RequestStatus, paymentStatus entities.PaymentStatus) (entities.ServiceRequest, bool, error) {
	var lastErr error
	for attempt := 0; attempt < settlementRetries; attempt++ {
		r, err := u.findByTxID(ctx, txid)
		if err != nil {
			return entities.ServiceRequest{}, false, err
		}
		if r.PaymentStatus == entities.PaymentStatusApproved || r.PaymentStatus == paymentStatus {
			log.Printf("[payment][usecase] processor status already applied request_id=%s txid=%s payment_status=%s", r.ID, txid, r.PaymentStatus)
			return r, false, nil
		}
		t, ok := workflow.Lookup(r.Status, to, entities.RoleSystem)
		if !ok {
			return entities.ServiceRequest{}, false, &TransitionError{From: r.Status, To: to, Role: entities.RoleSystem}
		}

		// Settlement also applies to requests in the trash: the money moved.
		readVersion := r.Version
		now := u.nowFn()
		r.Status = to
		r.PaymentStatus = paymentStatus
		r.AppendAudit(newAuditEntry(t.Action, entities.SystemActor, "txid "+txid, now))

		saved, err := u.store.save(ctx, r, readVersion)
		if err == nil {
			return saved, true, nil
		}
		if !errors.Is(err, ErrConcurrencyConflict) {
			return entities.ServiceRequest{}, false, err
		}
		log.Printf("[payment][usecase] processor status conflict, retrying request_id=%s attempt=%d", r.ID, attempt+1)
		lastErr = err
	}
	return entities.ServiceRequest{}, false, lastErr
}

func (u *PixChargeUseCase) findByTxID(ctx context.Context, txid string) (entities.ServiceRequest, error) {
	txid = strings.TrimSpace(txid)
	if txid == "" {
		return entities.ServiceRequest{}, validationError("txid is required")
	}
	if u.store.repo == nil {
		return entities.ServiceRequest{}, errors.New("service request repository not configured")
	}
	r, err := u.store.repo.GetByTxID(ctx, txid)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" || r.Pix == nil {
		return entities.ServiceRequest{}, ErrChargeNotFound
	}
	return r, nil
}
