package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the workflow state of a service request.
//
// Soft delete is not a status: it is tracked by DeletedAt and is orthogonal
// to the workflow.

type RequestStatus string

const (
	RequestStatusPendingPayment     RequestStatus = "pending_payment"
	RequestStatusPaymentUnderReview RequestStatus = "payment_under_review"
	RequestStatusRequested          RequestStatus = "requested"
	RequestStatusViewed             RequestStatus = "viewed"
	RequestStatusInProgress         RequestStatus = "in_progress"
	RequestStatusInValidation       RequestStatus = "in_validation"
	RequestStatusResolved           RequestStatus = "resolved"
)

// AllRequestStatuses lists every workflow state in lifecycle order.
var AllRequestStatuses = []RequestStatus{
	RequestStatusPendingPayment,
	RequestStatusPaymentUnderReview,
	RequestStatusRequested,
	RequestStatusViewed,
	RequestStatusInProgress,
	RequestStatusInValidation,
	RequestStatusResolved,
}

func (s RequestStatus) Valid() bool {
	for _, st := range AllRequestStatuses {
		if st == s {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusNotApplicable PaymentStatus = "not_applicable"
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusUnderReview   PaymentStatus = "under_review"
	PaymentStatusApproved      PaymentStatus = "approved"
)

// PixCharge is the instant-transfer charge issued by the payment processor.
// It only exists after a successful charge generation.
type PixCharge struct {
	TxID        string    `json:"txid"`
	PayloadCode string    `json:"payload_code"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Live reports whether the charge can still be redeemed at now.
func (p *PixCharge) Live(now time.Time) bool {
	return p != nil && now.Before(p.ExpiresAt)
}

// ServiceRequest is the aggregate root of the request lifecycle.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI company_id-index, client_id-index, txid-index
//
// Attachments, chat and audit log are stored inside the item so that a
// transition and its audit entry are persisted by a single conditional write.
// Version is bumped on every write and guards against lost updates.

type ServiceRequest struct {
	ID            string          `json:"id"`
	Protocol      string          `json:"protocol"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	TypeID        string          `json:"type_id"`
	Price         decimal.Decimal `json:"price"`
	Status        RequestStatus   `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	ClientID      string          `json:"client_id"`
	CompanyID     string          `json:"company_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     *time.Time      `json:"deleted_at,omitempty"`
	DeletedBy     string          `json:"deleted_by,omitempty"`
	Pix           *PixCharge      `json:"pix,omitempty"`

	Attachments []Attachment  `json:"attachments"`
	Chat        []ChatMessage `json:"chat"`
	AuditLog    []AuditEntry  `json:"audit_log"`

	DocumentID      string `json:"document_id,omitempty"`
	DocumentPending bool   `json:"document_pending,omitempty"`
	Version         int64  `json:"version"`
}

func (r *ServiceRequest) IsDeleted() bool {
	return r.DeletedAt != nil
}

// Billable reports whether the request needs a payment before work starts.
func (r *ServiceRequest) Billable() bool {
	return r.Price.IsPositive()
}

// AppendAudit records a new immutable audit entry and touches UpdatedAt.
func (r *ServiceRequest) AppendAudit(e AuditEntry) {
	r.AuditLog = append(r.AuditLog, e)
	r.UpdatedAt = e.Timestamp
}

func (r *ServiceRequest) FindAttachment(id string) (Attachment, int, bool) {
	for i, a := range r.Attachments {
		if a.ID == id {
			return a, i, true
		}
	}
	return Attachment{}, -1, false
}

// Clone returns a deep copy. Sub-lists are copied so that the clone can evolve
// independently of the original (documents, in-memory storage).
func (r ServiceRequest) Clone() ServiceRequest {
	out := r
	if r.DeletedAt != nil {
		d := *r.DeletedAt
		out.DeletedAt = &d
	}
	if r.Pix != nil {
		p := *r.Pix
		out.Pix = &p
	}
	out.Attachments = append([]Attachment(nil), r.Attachments...)
	out.Chat = append([]ChatMessage(nil), r.Chat...)
	out.AuditLog = append([]AuditEntry(nil), r.AuditLog...)
	return out
}
