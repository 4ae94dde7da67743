package handlers

import (
	"log"
	"net/http"

	request "portal_servicos/internal/adapter/http/dto/request"
	response "portal_servicos/internal/adapter/http/dto/response"
	"portal_servicos/internal/adapter/http/middleware"
	"portal_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RequestTypeHandler struct {
	usecase usecase.IRequestTypeUseCase
}

func NewRequestTypeHandler(uc usecase.IRequestTypeUseCase) *RequestTypeHandler {
	return &RequestTypeHandler{usecase: uc}
}

// CreateRequestType godoc
// @Summary  Create a request type (staff)
// @Tags     request-types
// @Accept   json
// @Produce  json
// @Param    body body request.CreateRequestTypeRequest true "Request type"
// @Success  201 {object} response.RequestTypeResponse
// @Router   /request-types [post]
func (h *RequestTypeHandler) CreateRequestType(c *gin.Context) {
	var payload request.CreateRequestTypeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), usecase.CreateRequestTypeInput{
		Name:  payload.Name,
		Price: payload.Price,
	})
	if err != nil {
		log.Printf("[request-type][handler] create failed name=%q err=%v", payload.Name, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRequestType(created))
}

// ListRequestTypes godoc
// @Summary  List request types
// @Tags     request-types
// @Produce  json
// @Success  200 {array} response.RequestTypeResponse
// @Router   /request-types [get]
func (h *RequestTypeHandler) ListRequestTypes(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequestTypes(items))
}

func (h *RequestTypeHandler) GetRequestType(c *gin.Context) {
	t, err := h.usecase.GetByID(c.Request.Context(), c.Param("type_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequestType(t))
}
