package interfaces

import (
	"context"

	"portal_servicos/internal/domain/entities"
)

// IPaymentGateway abstracts the instant-transfer payment processor.
//
// Authenticate opens a session with the process-wide transport credentials and
// returns the token CreateCharge must be called with. GetChargeStatus returns
// the processor status of a charge (see entities.ProviderStatus*).

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces
type IPaymentGateway interface {
	Authenticate(ctx context.Context) (token string, err error)
	CreateCharge(ctx context.Context, token string, req entities.ChargeRequest) (entities.ChargeResult, error)
	GetChargeStatus(ctx context.Context, txid string) (string, error)
}
