package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", fmt.Errorf("%w: title is required", usecase.ErrValidation), http.StatusBadRequest, "INVALID_REQUEST"},
		{"permission", fmt.Errorf("%w: clients cannot approve", usecase.ErrPermission), http.StatusForbidden, "PERMISSION_DENIED"},
		{"transition", &usecase.TransitionError{From: entities.RequestStatusRequested, To: entities.RequestStatusResolved, Role: entities.RoleStaff}, http.StatusConflict, "INVALID_TRANSITION"},
		{"deleted", usecase.ErrRequestDeleted, http.StatusConflict, "REQUEST_DELETED"},
		{"not deleted", usecase.ErrRequestNotDeleted, http.StatusConflict, "REQUEST_NOT_DELETED"},
		{"conflict", usecase.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
		{"expired", usecase.ErrChargeExpired, http.StatusConflict, "CHARGE_EXPIRED"},
		{"payment config", fmt.Errorf("%w: missing pix key", usecase.ErrPaymentConfig), http.StatusServiceUnavailable, "PAYMENT_NOT_CONFIGURED"},
		{"storage", usecase.ErrBlobStoreNotConfigured, http.StatusServiceUnavailable, "STORAGE_NOT_CONFIGURED"},
		{"gateway step", &usecase.GatewayError{Step: entities.ChargeStepGeneratingCode, Err: errors.New("boom")}, http.StatusBadGateway, "PAYMENT_GATEWAY_ERROR"},
		{"request not found", usecase.ErrServiceRequestNotFound, http.StatusNotFound, "REQUEST_NOT_FOUND"},
		{"type not found", usecase.ErrRequestTypeNotFound, http.StatusNotFound, "REQUEST_TYPE_NOT_FOUND"},
		{"attachment not found", usecase.ErrAttachmentNotFound, http.StatusNotFound, "ATTACHMENT_NOT_FOUND"},
		{"charge not found", usecase.ErrChargeNotFound, http.StatusNotFound, "CHARGE_NOT_FOUND"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, "TIMEOUT"},
		{"unknown", errors.New("dynamo down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}
}

func TestMapError_MessagesCarryTheRule(t *testing.T) {
	got := mapError(&usecase.TransitionError{From: entities.RequestStatusRequested, To: entities.RequestStatusResolved, Role: entities.RoleStaff})
	if got.Message != "invalid transition: requested -> resolved is not allowed for role staff" {
		t.Fatalf("unexpected message: %s", got.Message)
	}

	gw := mapError(&usecase.GatewayError{Step: entities.ChargeStepConnecting, Err: errors.New("tls")})
	if gw.Message != "Payment processor failed at step connecting; try again" {
		t.Fatalf("unexpected message: %s", gw.Message)
	}

	internal := mapError(errors.New("secret connection string"))
	if internal.ToHTTPError().Message != "An internal error occurred" {
		t.Fatalf("internal causes must not leak: %+v", internal.ToHTTPError())
	}
}
