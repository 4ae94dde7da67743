package handlers

import (
	"context"
	"log"
	"net/http"

	request "portal_servicos/internal/adapter/http/dto/request"
	response "portal_servicos/internal/adapter/http/dto/response"
	"portal_servicos/internal/adapter/http/middleware"
	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ServiceRequestHandler exposes the request lifecycle. Every workflow move is
// its own route; there is no generic status update.
type ServiceRequestHandler struct {
	usecase usecase.IServiceRequestUseCase
}

func NewServiceRequestHandler(uc usecase.IServiceRequestUseCase) *ServiceRequestHandler {
	return &ServiceRequestHandler{usecase: uc}
}

// CreateServiceRequest godoc
// @Summary  Open a service request (client)
// @Tags     requests
// @Accept   json
// @Produce  json
// @Param    body body request.CreateServiceRequestRequest true "Request"
// @Success  201 {object} response.ServiceRequestResponse
// @Router   /requests [post]
func (h *ServiceRequestHandler) CreateServiceRequest(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	payload = payload.Normalize()
	actor := middleware.ActorFrom(c)
	log.Printf("[request][handler] create start actor_id=%s type_id=%s", actor.ID, payload.TypeID)

	created, err := h.usecase.Create(c.Request.Context(), actor, usecase.CreateServiceRequestInput{
		Title:       payload.Title,
		TypeID:      payload.TypeID,
		Description: payload.Description,
	})
	if err != nil {
		log.Printf("[request][handler] create failed actor_id=%s err=%v", actor.ID, err)
		writeError(c, err)
		return
	}
	log.Printf("[request][handler] create success request_id=%s protocol=%s", created.ID, created.Protocol)
	c.JSON(http.StatusCreated, response.FromServiceRequest(created).ForRole(actor.Role))
}

// ListServiceRequests godoc
// @Summary  List active requests
// @Tags     requests
// @Produce  json
// @Param    company_id query string false "Company"
// @Param    client_id  query string false "Client"
// @Param    q          query string false "Protocol or title"
// @Success  200 {array} response.ServiceRequestSummary
// @Router   /requests [get]
func (h *ServiceRequestHandler) ListServiceRequests(c *gin.Context) {
	h.list(c, h.usecase.List)
}

// ListTrash godoc
// @Summary  List soft-deleted requests (staff)
// @Tags     requests
// @Produce  json
// @Success  200 {array} response.ServiceRequestSummary
// @Router   /requests/trash [get]
func (h *ServiceRequestHandler) ListTrash(c *gin.Context) {
	h.list(c, h.usecase.ListTrash)
}

func (h *ServiceRequestHandler) list(
	c *gin.Context,
	lister func(ctx context.Context, actor entities.Actor, f usecase.ListFilter) ([]entities.ServiceRequest, error),
) {
	var q request.ListServiceRequestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	items, err := lister(c.Request.Context(), middleware.ActorFrom(c), usecase.ListFilter{
		CompanyID: q.CompanyID,
		ClientID:  q.ClientID,
		Query:     q.Query,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceRequestList(items))
}

// GetServiceRequest godoc
// @Summary  Open a request; staff opening a new request marks it viewed
// @Tags     requests
// @Produce  json
// @Param    id path string true "Request ID"
// @Success  200 {object} response.ServiceRequestResponse
// @Router   /requests/{id} [get]
func (h *ServiceRequestHandler) GetServiceRequest(c *gin.Context) {
	h.apply(c, "open", h.usecase.Open)
}

func (h *ServiceRequestHandler) StartResolution(c *gin.Context) {
	h.apply(c, "start", h.usecase.StartResolution)
}

func (h *ServiceRequestHandler) SendForValidation(c *gin.Context) {
	h.apply(c, "send-for-validation", h.usecase.SendForValidation)
}

func (h *ServiceRequestHandler) Approve(c *gin.Context) {
	h.apply(c, "approve", h.usecase.Approve)
}

func (h *ServiceRequestHandler) Reopen(c *gin.Context) {
	h.apply(c, "reopen", h.usecase.Reopen)
}

func (h *ServiceRequestHandler) SoftDelete(c *gin.Context) {
	h.apply(c, "soft-delete", h.usecase.SoftDelete)
}

func (h *ServiceRequestHandler) Restore(c *gin.Context) {
	h.apply(c, "restore", h.usecase.Restore)
}

func (h *ServiceRequestHandler) RetryDocument(c *gin.Context) {
	h.apply(c, "retry-document", h.usecase.RetryDocument)
}

func (h *ServiceRequestHandler) apply(
	c *gin.Context,
	op string,
	action func(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error),
) {
	id := c.Param("id")
	actor := middleware.ActorFrom(c)

	r, err := action(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[request][handler] %s failed request_id=%s actor_id=%s err=%v", op, id, actor.ID, err)
		writeError(c, err)
		return
	}
	c.Header("ETag", versionTag(r.Version))
	c.JSON(http.StatusOK, response.FromServiceRequest(r).ForRole(actor.Role))
}
