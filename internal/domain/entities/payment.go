package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChargeStep names a stage of the charge generation pipeline. Callers receive
// them as progress events.
type ChargeStep string

const (
	ChargeStepConnecting      ChargeStep = "connecting"
	ChargeStepCollectingPayer ChargeStep = "collecting_payer_data"
	ChargeStepGeneratingCode  ChargeStep = "generating_code"
	ChargeStepDone            ChargeStep = "done"

	// ChargeStepConfirming is the status lookup behind settlement
	// notifications and reconciliation.
	ChargeStepConfirming ChargeStep = "confirming_settlement"
)

// Payer is the identity sent to the processor when requesting a charge.
type Payer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document,omitempty"`
}

type ChargeRequest struct {
	Payer             Payer
	Amount            decimal.Decimal
	PixKey            string
	Description       string
	ExternalReference string
	ExpiresAt         time.Time
}

type ChargeResult struct {
	TxID        string
	PayloadCode string
	ExpiresAt   time.Time
}

// Processor-side charge states the engine reacts to.
const (
	ProviderStatusApproved  = "approved"
	ProviderStatusInProcess = "in_process"
	ProviderStatusPending   = "pending"
)

// SettlementEvent is published when a charge is confirmed as paid.
type SettlementEvent struct {
	RequestID string    `json:"request_id"`
	TxID      string    `json:"txid"`
	SettledAt time.Time `json:"settled_at"`
}
