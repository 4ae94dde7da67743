package payments

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"portal_servicos/internal/domain/brcode"
	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrUnknownCharge = errors.New("unknown charge")

const pixPaymentMethodID = "pix"

// MercadoPagoGateway creates PIX charges through Mercado Pago. The SDK signs
// every call with the access token and the HTTP transport presents the client
// certificate, so Authenticate only hands the token back to the caller.
type MercadoPagoGateway struct {
	client      payment.Client
	accessToken string
	cfg         entities.PaymentConfig

	mockMode bool
	mu       sync.Mutex
	charges  map[string]string
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg entities.PaymentConfig) (*MercadoPagoGateway, error) {
	cfg = cfg.WithDefaults()
	if cfg.MockMode || isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{cfg: cfg, mockMode: true, charges: map[string]string{}}, nil
	}

	if strings.TrimSpace(cfg.AccessToken) == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	httpClient, err := newTLSClient(cfg)
	if err != nil {
		log.Printf("[payment][gateway] failed loading client certificate err=%v", err)
		return nil, err
	}

	sdkCfg, err := config.New(cfg.AccessToken, config.WithHTTPClient(httpClient))
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized environment=%s", cfg.Environment)

	return &MercadoPagoGateway{
		client:      payment.NewClient(sdkCfg),
		accessToken: cfg.AccessToken,
		cfg:         cfg,
	}, nil
}

func newTLSClient(cfg entities.PaymentConfig) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.CertFile != "" && cfg.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}
	return &http.Client{Transport: transport, Timeout: cfg.GatewayTimeout}, nil
}

func (g *MercadoPagoGateway) Authenticate(ctx context.Context) (string, error) {
	if g == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	if g.mockMode {
		return "mock-session", nil
	}
	if g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return g.accessToken, nil
}

func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, token string, req entities.ChargeRequest) (entities.ChargeResult, error) {
	if g == nil {
		return entities.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	if token == "" {
		return entities.ChargeResult{}, errors.New("gateway session token is required")
	}

	if g.mockMode {
		txid := "mock" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		code := brcode.Build(brcode.Payload{
			Key:          req.PixKey,
			MerchantName: g.cfg.MerchantName,
			MerchantCity: g.cfg.MerchantCity,
			Amount:       req.Amount,
			TxID:         txid,
		})
		g.mu.Lock()
		g.charges[txid] = entities.ProviderStatusPending
		g.mu.Unlock()
		log.Printf("[payment][gateway] mock charge created txid=%s amount=%s", txid, req.Amount.StringFixed(2))
		return entities.ChargeResult{TxID: txid, PayloadCode: code, ExpiresAt: req.ExpiresAt}, nil
	}

	if g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.ChargeResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create start external_reference=%s amount=%s", req.ExternalReference, req.Amount.StringFixed(2))

	expiresAt := req.ExpiresAt
	resp, err := g.client.Create(ctx, toPaymentRequest(req, &expiresAt))
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return entities.ChargeResult{}, err
	}
	if resp == nil || resp.ID == 0 {
		return entities.ChargeResult{}, errors.New("processor returned no payment id")
	}

	code := resp.PointOfInteraction.TransactionData.QRCode
	if code == "" {
		return entities.ChargeResult{}, fmt.Errorf("processor returned no pix code for payment %d", resp.ID)
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	result := entities.ChargeResult{
		TxID:        strconv.Itoa(resp.ID),
		PayloadCode: code,
		ExpiresAt:   req.ExpiresAt,
	}
	if resp.DateOfExpiration != nil && !resp.DateOfExpiration.IsZero() {
		result.ExpiresAt = resp.DateOfExpiration.UTC()
	}
	return result, nil
}

func (g *MercadoPagoGateway) GetChargeStatus(ctx context.Context, txid string) (string, error) {
	if g == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	if g.mockMode {
		g.mu.Lock()
		defer g.mu.Unlock()
		status, ok := g.charges[txid]
		if !ok {
			return "", ErrUnknownCharge
		}
		return status, nil
	}

	if g.client == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	id, err := strconv.Atoi(txid)
	if err != nil {
		return "", fmt.Errorf("%w: txid=%s", ErrUnknownCharge, txid)
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed txid=%s err=%v", txid, err)
		return "", err
	}
	log.Printf("[payment][gateway] status txid=%s provider_status=%s", txid, resp.Status)
	return resp.Status, nil
}

// MarkSettled flips a mock charge to approved. It is a no-op against the real
// processor.
func (g *MercadoPagoGateway) MarkSettled(txid string) bool {
	if g == nil || !g.mockMode {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.charges[txid]; !ok {
		return false
	}
	g.charges[txid] = entities.ProviderStatusApproved
	return true
}

func (g *MercadoPagoGateway) MockMode() bool {
	return g != nil && g.mockMode
}

func toPaymentRequest(req entities.ChargeRequest, expiresAt *time.Time) payment.Request {
	amount, _ := req.Amount.Round(2).Float64()

	first, last := splitName(req.Payer.Name)
	payer := &payment.PayerRequest{
		Email:     req.Payer.Email,
		FirstName: first,
		LastName:  last,
	}
	if doc := onlyDigits(req.Payer.Document); doc != "" {
		docType := "CPF"
		if len(doc) == 14 {
			docType = "CNPJ"
		}
		payer.Identification = &payment.IdentificationRequest{Type: docType, Number: doc}
	}

	return payment.Request{
		TransactionAmount: amount,
		Description:       req.Description,
		PaymentMethodID:   pixPaymentMethodID,
		DateOfExpiration:  expiresAt,
		ExternalReference: req.ExternalReference,
		Payer:             payer,
		Metadata: map[string]any{
			"payer_id": req.Payer.ID,
		},
	}
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
