package entities

import "time"

// Audit actions. The set is closed: every mutating operation uses one of
// these. Actions ending in a space are prefixes completed with the attachment
// name or the actor.
const (
	AuditCreated            = "Created"
	AuditViewed             = "Viewed by staff"
	AuditResolutionStarted  = "Resolution started"
	AuditSentForValidation  = "Sent for validation"
	AuditApprovedAndClosed  = "Approved and closed"
	AuditReopened           = "Reopened"
	AuditPaymentConfirmed   = "Payment confirmed"
	AuditPaymentUnderReview = "Payment under review"
	AuditPixChargeGenerated = "PIX charge generated"
	AuditDocumentGenerated  = "Document generated"
	AuditAttachmentAdded    = "Attachment added: "
	AuditAttachmentRemoved  = "Attachment removed: "
	AuditMessagePosted      = "Message posted by "
	AuditMovedToTrash       = "Moved to trash by "
	AuditRestored           = "Restored by "
)

// AuditEntry is an append-only record of a change applied to a request.
// Entries are never edited or removed once appended.
type AuditEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
