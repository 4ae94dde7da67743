package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestType is the catalog entry a client picks when opening a request.
// Price zero means a free service; anything above requires payment first.
type RequestType struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}
