package request

import "github.com/shopspring/decimal"

// CreateRequestTypeRequest accepts the price as a JSON number or string
// ("150.00"); decimal keeps it exact either way.
type CreateRequestTypeRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
}
