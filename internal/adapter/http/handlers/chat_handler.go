package handlers

import (
	"net/http"
	"strconv"

	request "portal_servicos/internal/adapter/http/dto/request"
	response "portal_servicos/internal/adapter/http/dto/response"
	"portal_servicos/internal/adapter/http/middleware"
	"portal_servicos/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// PostMessage godoc
// @Summary  Post a chat message
// @Tags     chat
// @Accept   json
// @Produce  json
// @Param    id   path string                     true "Request ID"
// @Param    body body request.ChatMessageRequest true "Message"
// @Success  201 {object} response.ChatMessageResponse
// @Router   /requests/{id}/chat [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var payload request.ChatMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	r, msg, err := h.usecase.Post(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("ETag", versionTag(r.Version))
	c.JSON(http.StatusCreated, response.FromChatMessage(msg))
}

func versionTag(v int64) string {
	return strconv.Quote(strconv.FormatInt(v, 10))
}
