package handlers

import (
	"context"
	"errors"
	"net/http"

	"portal_servicos/internal/usecase"
	"portal_servicos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// mapError translates use case errors into the HTTP error body. The message
// carries the violated rule; internal causes stay in the logs.
func mapError(err error) *pkg.AppError {
	var gwErr *usecase.GatewayError
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPermission):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestDeleted):
		return pkg.NewDomainErrorSimple("REQUEST_DELETED", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrRequestNotDeleted):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_DELETED", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrencyConflict):
		return pkg.NewDomainErrorSimple("CONCURRENCY_CONFLICT", "The request was changed by someone else; reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeExpired):
		return pkg.NewDomainErrorSimple("CHARGE_EXPIRED", "The PIX charge expired before payment; generate a new one", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentConfig):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_CONFIGURED", err.Error()+"; contact an administrator", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBlobStoreNotConfigured):
		return pkg.NewDomainErrorSimple("STORAGE_NOT_CONFIGURED", "Attachment storage is not configured; contact an administrator", http.StatusServiceUnavailable)
	case errors.As(err, &gwErr):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment processor failed at step "+string(gwErr.Step)+"; try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment processor failed; try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrServiceRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Service request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestTypeNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_TYPE_NOT_FOUND", "Request type not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttachmentNotFound):
		return pkg.NewDomainErrorSimple("ATTACHMENT_NOT_FOUND", "Attachment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "PIX charge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "The operation timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
