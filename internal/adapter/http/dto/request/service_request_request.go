package request

import "strings"

type CreateServiceRequestRequest struct {
	Title       string `json:"title" binding:"required"`
	TypeID      string `json:"type_id" binding:"required"`
	Description string `json:"description"`
}

func (r CreateServiceRequestRequest) Normalize() CreateServiceRequestRequest {
	return CreateServiceRequestRequest{
		Title:       strings.TrimSpace(r.Title),
		TypeID:      strings.TrimSpace(r.TypeID),
		Description: strings.TrimSpace(r.Description),
	}
}

// ListServiceRequestsQuery is bound from the query string of the listing
// routes.
type ListServiceRequestsQuery struct {
	CompanyID string `form:"company_id"`
	ClientID  string `form:"client_id"`
	Query     string `form:"q"`
}

type ChatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
