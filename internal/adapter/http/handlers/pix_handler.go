package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	request "portal_servicos/internal/adapter/http/dto/request"
	response "portal_servicos/internal/adapter/http/dto/response"
	"portal_servicos/internal/adapter/http/middleware"
	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase"
	"portal_servicos/pkg"

	"github.com/gin-gonic/gin"
)

var errMockOnly = pkg.NewDomainErrorSimple("NOT_FOUND", "Settlement simulation is only available in mock mode", http.StatusNotFound)

// MockSettler lets the settlement simulation route flip a fake charge to paid
// before confirming it, so pollers see the same status.
type MockSettler interface {
	MarkSettled(txid string) bool
}

type PixHandler struct {
	charges usecase.IPixChargeUseCase
	watcher usecase.ISettlementWatcher
	settler MockSettler
	mock    bool
}

// NewPixHandler builds the payment handler. settler is only used when mock is
// true and may be nil.
func NewPixHandler(charges usecase.IPixChargeUseCase, watcher usecase.ISettlementWatcher, mock bool, settler MockSettler) *PixHandler {
	return &PixHandler{charges: charges, watcher: watcher, mock: mock, settler: settler}
}

// GenerateCharge godoc
// @Summary      Generate or reuse the PIX charge of a request
// @Description  With Accept: text/event-stream the pipeline steps are streamed as "progress" events followed by a "charge" event.
// @Tags         pix
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} response.PixChargeResponse
// @Router       /requests/{id}/pix [post]
func (h *PixHandler) GenerateCharge(c *gin.Context) {
	id := c.Param("id")
	actor := middleware.ActorFrom(c)
	log.Printf("[payment][handler] generate-charge start request_id=%s actor_id=%s", id, actor.ID)

	if !wantsEventStream(c) {
		charge, err := h.charges.GenerateCharge(c.Request.Context(), actor, id, nil)
		if err != nil {
			log.Printf("[payment][handler] generate-charge failed request_id=%s err=%v", id, err)
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.FromPixCharge(charge))
		return
	}

	stream := &eventStream{c: c}
	charge, err := h.charges.GenerateCharge(c.Request.Context(), actor, id, func(step entities.ChargeStep) {
		stream.send("progress", gin.H{"step": step})
	})
	if err != nil {
		log.Printf("[payment][handler] generate-charge failed request_id=%s err=%v", id, err)
		stream.fail(err)
		return
	}
	stream.send("charge", response.FromPixCharge(charge))
}

// WaitSettlement godoc
// @Summary      Stream request updates until the charge is settled or expires
// @Description  Emits "update" events, then "done" or "error".
// @Tags         pix
// @Produce      text/event-stream
// @Param        id path string true "Request ID"
// @Router       /requests/{id}/pix/wait [get]
func (h *PixHandler) WaitSettlement(c *gin.Context) {
	id := c.Param("id")
	stream := &eventStream{c: c}

	r, err := h.watcher.Await(c.Request.Context(), middleware.ActorFrom(c), id, func(r entities.ServiceRequest) {
		stream.send("update", response.FromServiceRequest(r))
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		stream.fail(err)
		return
	}
	stream.send("done", response.FromServiceRequest(r))
}

// ValidatePayload godoc
// @Summary  Check the structure and checksum of a PIX payload
// @Tags     pix
// @Accept   json
// @Param    body body request.ValidatePixRequest true "Payload"
// @Success  204
// @Router   /pix/validate [post]
func (h *PixHandler) ValidatePayload(c *gin.Context) {
	var payload request.ValidatePixRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if err := h.charges.ValidatePayloadStructure(payload.PayloadCode); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PaymentWebhook godoc
// @Summary  Processor notification; the charge status is looked up, never trusted from the body
// @Tags     pix
// @Accept   json
// @Success  200
// @Router   /webhooks/payments [post]
func (h *PixHandler) PaymentWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
			return
		}
	}
	if !payload.IsPayment(c.Query("topic")) {
		c.Status(http.StatusOK)
		return
	}
	txid := payload.ResolveTxID(c.Query("data.id"), c.Query("id"))
	if txid == "" {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][webhook] notification txid=%s action=%s", txid, payload.Action)

	r, err := h.charges.HandleGatewayNotification(c.Request.Context(), txid)
	if err != nil {
		// Unknown txids belong to superseded charges; acknowledge so the
		// processor stops retrying.
		if errors.Is(err, usecase.ErrChargeNotFound) {
			c.Status(http.StatusOK)
			return
		}
		log.Printf("[payment][webhook] failed txid=%s err=%v", txid, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"request_id": r.ID, "status": r.Status, "payment_status": r.PaymentStatus})
}

// SimulateSettlement confirms a mock charge as paid. Not routed outside mock
// mode.
func (h *PixHandler) SimulateSettlement(c *gin.Context) {
	if !h.mock {
		c.JSON(errMockOnly.HTTPStatus, errMockOnly.ToHTTPError())
		return
	}
	var payload request.MockSettlementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	txid := strings.TrimSpace(payload.TxID)
	if h.settler != nil {
		h.settler.MarkSettled(txid)
	}

	r, err := h.charges.ConfirmSettlement(c.Request.Context(), txid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}

func wantsEventStream(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/event-stream")
}

// eventStream writes server-sent events. Until the first event goes out,
// failures are still answered with a plain JSON error and status code.
type eventStream struct {
	c       *gin.Context
	started bool
}

func (s *eventStream) send(event string, data any) {
	if !s.started {
		s.c.Header("Cache-Control", "no-cache")
		s.c.Header("Connection", "keep-alive")
		s.c.Header("X-Accel-Buffering", "no")
		s.started = true
	}
	s.c.SSEvent(event, data)
	s.c.Writer.Flush()
}

func (s *eventStream) fail(err error) {
	if !s.started {
		writeError(s.c, err)
		return
	}
	s.send("error", mapError(err).ToHTTPError())
}
