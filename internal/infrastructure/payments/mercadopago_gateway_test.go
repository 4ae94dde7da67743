package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"portal_servicos/internal/domain/brcode"
	"portal_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	_, err := NewMercadoPagoGateway(entities.PaymentConfig{})
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestNewMercadoPagoGateway_BadCertificate(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	_, err := NewMercadoPagoGateway(entities.PaymentConfig{
		AccessToken: "TEST-token",
		CertFile:    "/does/not/exist.crt",
		KeyFile:     "/does/not/exist.key",
	})
	if err == nil {
		t.Fatalf("expected certificate error")
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	ctx := context.Background()

	g, err := NewMercadoPagoGateway(entities.PaymentConfig{MerchantName: "Portal", MerchantCity: "Sao Paulo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.MockMode() {
		t.Fatalf("expected mock mode")
	}

	token, err := g.Authenticate(ctx)
	if err != nil || token == "" {
		t.Fatalf("expected a session token, got %q %v", token, err)
	}

	expires := time.Now().UTC().Add(time.Hour)
	res, err := g.CreateCharge(ctx, token, entities.ChargeRequest{
		Payer:             entities.Payer{ID: "client-1", Name: "Ana Souza"},
		Amount:            decimal.RequireFromString("150.00"),
		PixKey:            "pix@example.com",
		ExternalReference: "req-1",
		ExpiresAt:         expires,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TxID == "" || !res.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if err := brcode.Validate(res.PayloadCode); err != nil {
		t.Fatalf("expected a valid payload, got %v", err)
	}

	status, err := g.GetChargeStatus(ctx, res.TxID)
	if err != nil || status != entities.ProviderStatusPending {
		t.Fatalf("expected pending, got %q %v", status, err)
	}
	if !g.MarkSettled(res.TxID) {
		t.Fatalf("expected charge to be settled")
	}
	status, _ = g.GetChargeStatus(ctx, res.TxID)
	if status != entities.ProviderStatusApproved {
		t.Fatalf("expected approved, got %q", status)
	}

	if _, err := g.GetChargeStatus(ctx, "missing"); !errors.Is(err, ErrUnknownCharge) {
		t.Fatalf("expected ErrUnknownCharge, got %v", err)
	}
	if _, err := g.CreateCharge(ctx, "", entities.ChargeRequest{}); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestToPaymentRequest(t *testing.T) {
	expires := time.Date(2024, 3, 1, 13, 0, 0, 0, time.UTC)
	req := toPaymentRequest(entities.ChargeRequest{
		Payer: entities.Payer{
			ID:       "client-1",
			Name:     "Ana Maria Souza",
			Email:    "ana@example.com",
			Document: "123.456.789-09",
		},
		Amount:            decimal.RequireFromString("150.005"),
		Description:       "REQ-2024-001",
		ExternalReference: "req-1",
	}, &expires)

	if req.PaymentMethodID != "pix" {
		t.Fatalf("expected pix, got %q", req.PaymentMethodID)
	}
	if req.TransactionAmount != 150.01 {
		t.Fatalf("expected 150.01, got %v", req.TransactionAmount)
	}
	if req.ExternalReference != "req-1" || req.DateOfExpiration != &expires {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Payer.FirstName != "Ana" || req.Payer.LastName != "Maria Souza" {
		t.Fatalf("unexpected payer name: %q %q", req.Payer.FirstName, req.Payer.LastName)
	}
	if req.Payer.Identification == nil || req.Payer.Identification.Type != "CPF" || req.Payer.Identification.Number != "12345678909" {
		t.Fatalf("unexpected identification: %+v", req.Payer.Identification)
	}
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "on")
	if !isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock mode from MERCADOPAGO_MOCK")
	}
	t.Setenv("MERCADOPAGO_MOCK", "no")
	if isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock mode off")
	}
}
