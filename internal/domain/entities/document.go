package entities

import "time"

const DocumentCategoryServiceRequest = "service_request"

// Document is the read-only artifact emitted when a request is resolved.
// It carries copies of the request history taken at resolution time.

type Document struct {
	ID            string        `json:"id"`
	RequestID     string        `json:"request_id"`
	Title         string        `json:"title"`
	Category      string        `json:"category"`
	ReferenceDate time.Time     `json:"reference_date"`
	CompanyID     string        `json:"company_id"`
	Chat          []ChatMessage `json:"chat"`
	Attachments   []Attachment  `json:"attachments"`
	AuditLog      []AuditEntry  `json:"audit_log"`
	CreatedAt     time.Time     `json:"created_at"`
}
