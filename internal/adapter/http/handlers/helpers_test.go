package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"portal_servicos/internal/adapter/http/middleware"
	"portal_servicos/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	testClient = entities.Actor{ID: "client-1", Name: "Ana", Role: entities.RoleClient, CompanyID: "company-1"}
	testStaff  = entities.Actor{ID: "staff-1", Name: "Carla", Role: entities.RoleStaff, CompanyID: "company-1"}
	testNow    = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
)

func newRouter(register func(g *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r.Group("/v1", middleware.Actor()))
	return r
}

func newRequest(method, path string, body io.Reader, actor *entities.Actor) *http.Request {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != nil {
		req.Header.Set(middleware.HeaderActorID, actor.ID)
		req.Header.Set(middleware.HeaderActorRole, string(actor.Role))
		req.Header.Set(middleware.HeaderActorName, actor.Name)
		req.Header.Set(middleware.HeaderCompanyID, actor.CompanyID)
	}
	return req
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleRequest(status entities.RequestStatus) entities.ServiceRequest {
	return entities.ServiceRequest{
		ID:            "req-1",
		Protocol:      "REQ-2024-001",
		Title:         "Leak",
		TypeID:        "type-paid",
		Price:         decimal.RequireFromString("150"),
		Status:        status,
		PaymentStatus: entities.PaymentStatusPending,
		ClientID:      testClient.ID,
		CompanyID:     testClient.CompanyID,
		CreatedAt:     testNow,
		UpdatedAt:     testNow,
		Version:       2,
	}
}
