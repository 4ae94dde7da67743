package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrDocumentStoreNotConfigured = errors.New("document store not configured")

var documentNamespace = uuid.MustParse("6f1c2a9e-4b8d-4c1e-9a55-3d2f7e0b8c41")

// DocumentEmitter materializes the read-only document of a resolved request.
type DocumentEmitter struct {
	store interfaces.IDocumentStore
}

func NewDocumentEmitter(store interfaces.IDocumentStore) *DocumentEmitter {
	return &DocumentEmitter{store: store}
}

// DocumentID names the document of the nth resolution of a request. It does
// not depend on the aggregate version, so re-emitting the same resolution after
// a lost write or a failed store call overwrites instead of duplicating.
func DocumentID(requestID string, resolution int) string {
	return uuid.NewSHA1(documentNamespace, []byte(requestID+":resolution:"+strconv.Itoa(resolution))).String()
}

// Resolutions counts the closing entries already in the audit log.
func Resolutions(r entities.ServiceRequest) int {
	n := 0
	for _, e := range r.AuditLog {
		if e.Action == entities.AuditApprovedAndClosed {
			n++
		}
	}
	return n
}

// Emit stores a snapshot of r as the document of its given resolution. Chat,
// attachments and audit log are copied so the document does not follow later
// changes to the request.
func (e *DocumentEmitter) Emit(ctx context.Context, r entities.ServiceRequest, resolution int, at time.Time) (string, error) {
	if e == nil || e.store == nil {
		return "", ErrDocumentStoreNotConfigured
	}
	snap := r.Clone()
	doc := entities.Document{
		ID:            DocumentID(r.ID, resolution),
		RequestID:     r.ID,
		Title:         fmt.Sprintf("%s - %s", r.Protocol, r.Title),
		Category:      entities.DocumentCategoryServiceRequest,
		ReferenceDate: at,
		CompanyID:     r.CompanyID,
		Chat:          snap.Chat,
		Attachments:   snap.Attachments,
		AuditLog:      snap.AuditLog,
		CreatedAt:     at,
	}
	id, err := e.store.Create(ctx, doc)
	if err != nil {
		log.Printf("[document][emitter] create failed request_id=%s document_id=%s err=%v", r.ID, doc.ID, err)
		return "", err
	}
	log.Printf("[document][emitter] created request_id=%s document_id=%s attachments=%d messages=%d", r.ID, id, len(doc.Attachments), len(doc.Chat))
	return id, nil
}
