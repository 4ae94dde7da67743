package response

import (
	"encoding/json"
	"testing"
	"time"

	"portal_servicos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromServiceRequest(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r := entities.ServiceRequest{
		ID:            "req-1",
		Protocol:      "REQ-2024-001",
		Price:         decimal.RequireFromString("150"),
		Status:        entities.RequestStatusPendingPayment,
		PaymentStatus: entities.PaymentStatusPending,
		Pix:           &entities.PixCharge{TxID: "tx-1", PayloadCode: "000201", ExpiresAt: now},
		Chat:          []entities.ChatMessage{{ID: "m1", Sender: "Ana", Role: entities.RoleClient, Text: "hi", Timestamp: now}},
		AuditLog:      []entities.AuditEntry{{Action: entities.AuditCreated, Actor: "Ana", Timestamp: now}},
		Version:       3,
	}

	got := FromServiceRequest(r)
	if got.Price != "150.00" || got.Status != "pending_payment" || got.PaymentStatus != "pending" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Pix == nil || got.Pix.TxID != "tx-1" {
		t.Fatalf("expected pix charge, got %+v", got.Pix)
	}
	if len(got.Chat) != 1 || got.Chat[0].Role != "client" || len(got.AuditLog) != 1 {
		t.Fatalf("unexpected sub-lists: %+v", got)
	}

	if got.NextStatuses != nil {
		t.Fatalf("next statuses are only set for a role, got %v", got.NextStatuses)
	}

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if atts, ok := body["attachments"].([]any); !ok || len(atts) != 0 {
		t.Fatalf("expected empty attachments array, got %v", body["attachments"])
	}
	if _, ok := body["deleted_at"]; ok {
		t.Fatalf("expected deleted_at omitted")
	}
}

func TestFromServiceRequestList(t *testing.T) {
	deleted := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	got := FromServiceRequestList([]entities.ServiceRequest{
		{ID: "a", Price: decimal.Zero},
		{ID: "b", Price: decimal.RequireFromString("9.9"), DeletedAt: &deleted, DeletedBy: "Carla"},
	})
	if len(got) != 2 || got[0].Price != "0.00" || got[1].Price != "9.90" || got[1].DeletedBy != "Carla" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if out := FromServiceRequestList(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFromRequestType(t *testing.T) {
	got := FromRequestType(entities.RequestType{ID: "t1", Name: "Repair", Price: decimal.RequireFromString("10.5")})
	if got.Price != "10.50" || !got.Billable {
		t.Fatalf("unexpected type: %+v", got)
	}
	if FromRequestType(entities.RequestType{Price: decimal.Zero}).Billable {
		t.Fatalf("expected free type not billable")
	}
}

func TestServiceRequestResponse_ForRole(t *testing.T) {
	r := FromServiceRequest(entities.ServiceRequest{ID: "req-1", Status: entities.RequestStatusRequested})

	staff := r.ForRole(entities.RoleStaff)
	if len(staff.NextStatuses) != 2 || staff.NextStatuses[0] != "viewed" || staff.NextStatuses[1] != "in_progress" {
		t.Fatalf("unexpected staff moves: %v", staff.NextStatuses)
	}
	if client := r.ForRole(entities.RoleClient); len(client.NextStatuses) != 0 {
		t.Fatalf("client has no moves from requested, got %v", client.NextStatuses)
	}

	deletedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	trashed := FromServiceRequest(entities.ServiceRequest{ID: "req-2", Status: entities.RequestStatusRequested, DeletedAt: &deletedAt})
	if got := trashed.ForRole(entities.RoleStaff); len(got.NextStatuses) != 0 {
		t.Fatalf("trashed request must have no moves, got %v", got.NextStatuses)
	}
}
