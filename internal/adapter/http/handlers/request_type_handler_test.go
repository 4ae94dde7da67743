package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"portal_servicos/internal/adapter/http/handlers/mocks"
	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func requestTypeRouter(h *RequestTypeHandler) *gin.Engine {
	return newRouter(func(g *gin.RouterGroup) {
		g.POST("/request-types", h.CreateRequestType)
		g.GET("/request-types", h.ListRequestTypes)
		g.GET("/request-types/:type_id", h.GetRequestType)
	})
}

func TestRequestTypeHandler_Create(t *testing.T) {
	t.Run("price as string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestTypeUseCase(ctrl)
		r := requestTypeRouter(NewRequestTypeHandler(uc))

		uc.EXPECT().Create(gomock.Any(), testStaff, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Actor, in usecase.CreateRequestTypeInput) (entities.RequestType, error) {
				if in.Name != "Repair" || !in.Price.Equal(decimal.RequireFromString("150.00")) {
					t.Errorf("unexpected input: %+v", in)
				}
				return entities.RequestType{ID: "t1", Name: in.Name, Price: in.Price}, nil
			})

		w := serve(r, newRequest(http.MethodPost, "/v1/request-types", jsonBody(`{"name":"Repair","price":"150.00"}`), &testStaff))
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"price":"150.00"`) || !strings.Contains(w.Body.String(), `"billable":true`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("client is denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestTypeUseCase(ctrl)
		r := requestTypeRouter(NewRequestTypeHandler(uc))

		uc.EXPECT().Create(gomock.Any(), testClient, gomock.Any()).Return(entities.RequestType{}, usecase.ErrPermission)

		w := serve(r, newRequest(http.MethodPost, "/v1/request-types", jsonBody(`{"name":"Repair","price":10}`), &testClient))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("bad price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := requestTypeRouter(NewRequestTypeHandler(mocks.NewMockIRequestTypeUseCase(ctrl)))

		w := serve(r, newRequest(http.MethodPost, "/v1/request-types", jsonBody(`{"name":"Repair","price":"ten"}`), &testStaff))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRequestTypeHandler_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIRequestTypeUseCase(ctrl)
	r := requestTypeRouter(NewRequestTypeHandler(uc))

	uc.EXPECT().List(gomock.Any()).Return([]entities.RequestType{
		{ID: "t1", Name: "Consulting", Price: decimal.Zero},
		{ID: "t2", Name: "Repair", Price: decimal.RequireFromString("150")},
	}, nil)
	uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.RequestType{}, usecase.ErrRequestTypeNotFound)

	w := serve(r, newRequest(http.MethodGet, "/v1/request-types", nil, &testClient))
	if w.Code != http.StatusOK || strings.Count(w.Body.String(), `"id"`) != 2 {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if w := serve(r, newRequest(http.MethodGet, "/v1/request-types/nope", nil, &testClient)); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
