package usecase

import (
	"context"
	"testing"
	"time"

	"portal_servicos/internal/adapter/persistence/memory"
	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	testNow     = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	testClient  = entities.Actor{ID: "client-1", Name: "Ana", Role: entities.RoleClient, CompanyID: "company-1"}
	otherClient = entities.Actor{ID: "client-2", Name: "Bruno", Role: entities.RoleClient, CompanyID: "company-1"}
	testStaff   = entities.Actor{ID: "staff-1", Name: "Carla", Role: entities.RoleStaff, CompanyID: "company-1"}
	otherStaff  = entities.Actor{ID: "staff-2", Name: "Davi", Role: entities.RoleStaff, CompanyID: "company-2"}
	officeStaff = entities.Actor{ID: "staff-3", Name: "Elisa", Role: entities.RoleStaff}

	freeType = entities.RequestType{ID: "type-free", Name: "Consulta", Price: decimal.Zero}
	paidType = entities.RequestType{ID: "type-paid", Name: "Alvara", Price: decimal.RequireFromString("150.00")}
)

type testEnv struct {
	repo  *memory.ServiceRequestRepository
	types *memory.RequestTypeRepository
	docs  *memory.DocumentStore
	uc    *ServiceRequestUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		repo:  memory.NewServiceRequestRepository(),
		types: memory.NewRequestTypeRepository(freeType, paidType),
		docs:  memory.NewDocumentStore(),
	}
	env.uc = NewServiceRequestUseCase(env.repo, env.types, NewDocumentEmitter(env.docs), nil, nil)
	env.uc.nowFn = func() time.Time { return testNow }
	return env
}

func (e *testEnv) create(t *testing.T, typeID string) entities.ServiceRequest {
	t.Helper()
	r, err := e.uc.Create(context.Background(), testClient, CreateServiceRequestInput{Title: "Pedido", TypeID: typeID})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	return r
}

func (e *testEnv) stored(t *testing.T, id string) entities.ServiceRequest {
	t.Helper()
	r, err := e.repo.GetByID(context.Background(), id)
	if err != nil || r.ID == "" {
		t.Fatalf("request %s not stored: %v", id, err)
	}
	return r
}

func lastAudit(r entities.ServiceRequest) entities.AuditEntry {
	if len(r.AuditLog) == 0 {
		return entities.AuditEntry{}
	}
	return r.AuditLog[len(r.AuditLog)-1]
}

func directoryUser(id, companyID string) interfaces.DirectoryUser {
	return interfaces.DirectoryUser{ID: id, Name: "Ana", Email: "ana@example.com", Document: "12345678900", CompanyID: companyID}
}
