package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"portal_servicos/internal/adapter/http/handlers/mocks"
	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func serviceRequestRouter(h *ServiceRequestHandler) *gin.Engine {
	return newRouter(func(g *gin.RouterGroup) {
		g.POST("/requests", h.CreateServiceRequest)
		g.GET("/requests", h.ListServiceRequests)
		g.GET("/requests/trash", h.ListTrash)
		g.GET("/requests/:id", h.GetServiceRequest)
		g.PATCH("/requests/:id/start", h.StartResolution)
		g.PATCH("/requests/:id/approve", h.Approve)
		g.DELETE("/requests/:id", h.SoftDelete)
		g.POST("/requests/:id/document/retry", h.RetryDocument)
	})
}

func TestServiceRequestHandler_Create(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := serviceRequestRouter(NewServiceRequestHandler(mocks.NewMockIServiceRequestUseCase(ctrl)))

		w := serve(r, newRequest(http.MethodPost, "/v1/requests", jsonBody(`{"title":"Leak","type_id":"t1"}`), nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := serviceRequestRouter(NewServiceRequestHandler(mocks.NewMockIServiceRequestUseCase(ctrl)))

		w := serve(r, newRequest(http.MethodPost, "/v1/requests", jsonBody(`{"title":"Leak"}`), &testClient))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error keeps the rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Create(gomock.Any(), testClient, gomock.Any()).Return(entities.ServiceRequest{}, usecase.ErrRequestTypeNotFound)

		w := serve(r, newRequest(http.MethodPost, "/v1/requests", jsonBody(`{"title":"Leak","type_id":"missing"}`), &testClient))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Create(gomock.Any(), testClient, usecase.CreateServiceRequestInput{Title: "Leak", TypeID: "t1", Description: "kitchen"}).
			Return(sampleRequest(entities.RequestStatusPendingPayment), nil)

		w := serve(r, newRequest(http.MethodPost, "/v1/requests", jsonBody(`{"title":" Leak ","type_id":"t1","description":"kitchen"}`), &testClient))
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["protocol"] != "REQ-2024-001" || body["price"] != "150.00" || body["status"] != "pending_payment" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceRequestHandler_List(t *testing.T) {
	t.Run("passes the filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().List(gomock.Any(), testStaff, usecase.ListFilter{CompanyID: "company-1", Query: "leak"}).
			Return([]entities.ServiceRequest{sampleRequest(entities.RequestStatusRequested)}, nil)

		w := serve(r, newRequest(http.MethodGet, "/v1/requests?company_id=company-1&q=leak", nil, &testStaff))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "req-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body[0]["audit_log"]; ok {
			t.Fatalf("listing must not carry the audit log")
		}
	})

	t.Run("trash is staff only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().ListTrash(gomock.Any(), testClient, gomock.Any()).Return(nil, usecase.ErrPermission)

		w := serve(r, newRequest(http.MethodGet, "/v1/requests/trash", nil, &testClient))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_Actions(t *testing.T) {
	t.Run("open sets the version tag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Open(gomock.Any(), testStaff, "req-1").Return(sampleRequest(entities.RequestStatusViewed), nil)

		w := serve(r, newRequest(http.MethodGet, "/v1/requests/req-1", nil, &testStaff))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("ETag") != `"2"` {
			t.Fatalf("expected ETag \"2\", got %q", w.Header().Get("ETag"))
		}
	})

	t.Run("rejected transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), testStaff, "req-1").Return(entities.ServiceRequest{}, &usecase.TransitionError{
			From: entities.RequestStatusInValidation,
			To:   entities.RequestStatusResolved,
			Role: entities.RoleStaff,
		})

		w := serve(r, newRequest(http.MethodPatch, "/v1/requests/req-1/approve", nil, &testStaff))
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "in_validation -> resolved") {
			t.Fatalf("expected the rule in the message, got %s", w.Body.String())
		}
	})

	t.Run("stale If-Match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().StartResolution(gomock.Any(), testStaff, "req-1").Return(entities.ServiceRequest{}, usecase.ErrConcurrencyConflict)

		req := newRequest(http.MethodPatch, "/v1/requests/req-1/start", nil, &testStaff)
		req.Header.Set("If-Match", `"1"`)
		w := serve(r, req)
		if w.Code != http.StatusConflict || !strings.Contains(w.Body.String(), "CONCURRENCY_CONFLICT") {
			t.Fatalf("expected 409 conflict, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("soft delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		deleted := sampleRequest(entities.RequestStatusRequested)
		deleted.DeletedAt = &testNow
		deleted.DeletedBy = testStaff.Name
		uc.EXPECT().SoftDelete(gomock.Any(), testStaff, "req-1").Return(deleted, nil)

		w := serve(r, newRequest(http.MethodDelete, "/v1/requests/req-1", nil, &testStaff))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"deleted_by":"Carla"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("retry document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceRequestUseCase(ctrl)
		r := serviceRequestRouter(NewServiceRequestHandler(uc))

		resolved := sampleRequest(entities.RequestStatusResolved)
		resolved.DocumentID = "doc-1"
		uc.EXPECT().RetryDocument(gomock.Any(), testStaff, "req-1").Return(resolved, nil)

		w := serve(r, newRequest(http.MethodPost, "/v1/requests/req-1/document/retry", nil, &testStaff))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"document_id":"doc-1"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
