package response

import (
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/domain/workflow"
)

type PixChargeResponse struct {
	TxID        string    `json:"txid"`
	PayloadCode string    `json:"payload_code"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AttachmentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type AuditEntryResponse struct {
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ServiceRequestResponse struct {
	ID              string                `json:"id"`
	Protocol        string                `json:"protocol"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	TypeID          string                `json:"type_id"`
	Price           string                `json:"price"`
	Status          string                `json:"status"`
	PaymentStatus   string                `json:"payment_status"`
	ClientID        string                `json:"client_id"`
	CompanyID       string                `json:"company_id"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	DeletedAt       *time.Time            `json:"deleted_at,omitempty"`
	DeletedBy       string                `json:"deleted_by,omitempty"`
	Pix             *PixChargeResponse    `json:"pix,omitempty"`
	Attachments     []AttachmentResponse  `json:"attachments"`
	Chat            []ChatMessageResponse `json:"chat"`
	AuditLog        []AuditEntryResponse  `json:"audit_log"`
	DocumentID      string                `json:"document_id,omitempty"`
	DocumentPending bool                  `json:"document_pending"`
	Version         int64                 `json:"version"`
	NextStatuses    []string              `json:"next_statuses,omitempty"`
}

// ForRole fills NextStatuses with the moves the transition table grants role
// from the current state. Requests in the trash have none.
func (r ServiceRequestResponse) ForRole(role entities.Role) ServiceRequestResponse {
	r.NextStatuses = []string{}
	if r.DeletedAt != nil {
		return r
	}
	for _, st := range workflow.Targets(entities.RequestStatus(r.Status), role) {
		r.NextStatuses = append(r.NextStatuses, string(st))
	}
	return r
}

// ServiceRequestSummary is the listing shape; threads and logs are left out.
type ServiceRequestSummary struct {
	ID            string     `json:"id"`
	Protocol      string     `json:"protocol"`
	Title         string     `json:"title"`
	Price         string     `json:"price"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	ClientID      string     `json:"client_id"`
	CompanyID     string     `json:"company_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	DeletedBy     string     `json:"deleted_by,omitempty"`
}

func FromPixCharge(p entities.PixCharge) PixChargeResponse {
	return PixChargeResponse{TxID: p.TxID, PayloadCode: p.PayloadCode, ExpiresAt: p.ExpiresAt}
}

func FromAttachment(a entities.Attachment) AttachmentResponse {
	return AttachmentResponse{ID: a.ID, Name: a.Name, URL: a.URL, UploadedBy: a.UploadedBy, CreatedAt: a.CreatedAt}
}

func FromChatMessage(m entities.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{ID: m.ID, Sender: m.Sender, Role: string(m.Role), Text: m.Text, Timestamp: m.Timestamp}
}

func FromServiceRequest(r entities.ServiceRequest) ServiceRequestResponse {
	out := ServiceRequestResponse{
		ID:              r.ID,
		Protocol:        r.Protocol,
		Title:           r.Title,
		Description:     r.Description,
		TypeID:          r.TypeID,
		Price:           r.Price.StringFixed(2),
		Status:          string(r.Status),
		PaymentStatus:   string(r.PaymentStatus),
		ClientID:        r.ClientID,
		CompanyID:       r.CompanyID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		DeletedAt:       r.DeletedAt,
		DeletedBy:       r.DeletedBy,
		Attachments:     make([]AttachmentResponse, 0, len(r.Attachments)),
		Chat:            make([]ChatMessageResponse, 0, len(r.Chat)),
		AuditLog:        make([]AuditEntryResponse, 0, len(r.AuditLog)),
		DocumentID:      r.DocumentID,
		DocumentPending: r.DocumentPending,
		Version:         r.Version,
	}
	if r.Pix != nil {
		p := FromPixCharge(*r.Pix)
		out.Pix = &p
	}
	for _, a := range r.Attachments {
		out.Attachments = append(out.Attachments, FromAttachment(a))
	}
	for _, m := range r.Chat {
		out.Chat = append(out.Chat, FromChatMessage(m))
	}
	for _, e := range r.AuditLog {
		out.AuditLog = append(out.AuditLog, AuditEntryResponse{Action: e.Action, Actor: e.Actor, Detail: e.Detail, Timestamp: e.Timestamp})
	}
	return out
}

func FromServiceRequestList(items []entities.ServiceRequest) []ServiceRequestSummary {
	out := make([]ServiceRequestSummary, 0, len(items))
	for _, r := range items {
		out = append(out, ServiceRequestSummary{
			ID:            r.ID,
			Protocol:      r.Protocol,
			Title:         r.Title,
			Price:         r.Price.StringFixed(2),
			Status:        string(r.Status),
			PaymentStatus: string(r.PaymentStatus),
			ClientID:      r.ClientID,
			CompanyID:     r.CompanyID,
			CreatedAt:     r.CreatedAt,
			UpdatedAt:     r.UpdatedAt,
			DeletedAt:     r.DeletedAt,
			DeletedBy:     r.DeletedBy,
		})
	}
	return out
}
