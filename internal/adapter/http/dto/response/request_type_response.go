package response

import (
	"time"

	"portal_servicos/internal/domain/entities"
)

type RequestTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Billable  bool      `json:"billable"`
	CreatedAt time.Time `json:"created_at"`
}

func FromRequestType(t entities.RequestType) RequestTypeResponse {
	return RequestTypeResponse{
		ID:        t.ID,
		Name:      t.Name,
		Price:     t.Price.StringFixed(2),
		Billable:  t.Price.IsPositive(),
		CreatedAt: t.CreatedAt,
	}
}

func FromRequestTypes(items []entities.RequestType) []RequestTypeResponse {
	out := make([]RequestTypeResponse, 0, len(items))
	for _, t := range items {
		out = append(out, FromRequestType(t))
	}
	return out
}
