package usecase

import (
	"context"
	"errors"
	"testing"

	"portal_servicos/internal/adapter/persistence/memory"
	"portal_servicos/internal/domain/entities"
)

func TestDocumentEmitter(t *testing.T) {
	ctx := context.Background()
	r := entities.ServiceRequest{
		ID:        "r-1",
		Protocol:  "REQ-2024-007",
		Title:     "Alvara",
		CompanyID: "company-1",
		Version:   4,
		Chat:      []entities.ChatMessage{{ID: "m-1", Text: "oi"}},
		AuditLog:  []entities.AuditEntry{{ID: "e-1", Action: entities.AuditCreated}},
	}

	t.Run("id is stable per resolution", func(t *testing.T) {
		if DocumentID(r.ID, 1) != DocumentID(r.ID, 1) {
			t.Fatalf("expected deterministic id")
		}
		if DocumentID(r.ID, 1) == DocumentID(r.ID, 2) {
			t.Fatalf("expected a new id for a new resolution")
		}
		if DocumentID(r.ID, 1) == DocumentID("r-2", 1) {
			t.Fatalf("expected ids to differ across requests")
		}
	})

	t.Run("counts closing entries", func(t *testing.T) {
		closed := r
		closed.AuditLog = []entities.AuditEntry{
			{Action: entities.AuditCreated},
			{Action: entities.AuditApprovedAndClosed},
			{Action: entities.AuditReopened},
			{Action: entities.AuditApprovedAndClosed},
		}
		if got := Resolutions(closed); got != 2 {
			t.Fatalf("expected 2 resolutions, got %d", got)
		}
		if got := Resolutions(r); got != 0 {
			t.Fatalf("expected no resolutions, got %d", got)
		}
	})

	t.Run("stores a detached snapshot", func(t *testing.T) {
		docs := memory.NewDocumentStore()
		id, err := NewDocumentEmitter(docs).Emit(ctx, r, 1, testNow)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r.Chat[0].Text = "changed"

		doc, ok := docs.Get(id)
		if !ok {
			t.Fatalf("document not stored")
		}
		if doc.Title != "REQ-2024-007 - Alvara" || doc.Category != entities.DocumentCategoryServiceRequest || !doc.ReferenceDate.Equal(testNow) {
			t.Fatalf("unexpected document %+v", doc)
		}
		if doc.Chat[0].Text != "oi" {
			t.Fatalf("expected snapshot to be detached from the request")
		}
	})

	t.Run("missing store", func(t *testing.T) {
		var e *DocumentEmitter
		if _, err := e.Emit(ctx, r, 1, testNow); !errors.Is(err, ErrDocumentStoreNotConfigured) {
			t.Fatalf("expected ErrDocumentStoreNotConfigured, got %v", err)
		}
	})
}
