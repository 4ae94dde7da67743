package handlers

import (
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	response "portal_servicos/internal/adapter/http/dto/response"
	"portal_servicos/internal/adapter/http/middleware"
	"portal_servicos/internal/usecase"
	"portal_servicos/internal/usecase/interfaces"
	"portal_servicos/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingFile = pkg.NewDomainErrorSimple("INVALID_REQUEST", "multipart field \"file\" is required", http.StatusBadRequest)

type AttachmentHandler struct {
	usecase usecase.IAttachmentUseCase
}

func NewAttachmentHandler(uc usecase.IAttachmentUseCase) *AttachmentHandler {
	return &AttachmentHandler{usecase: uc}
}

// AddAttachment godoc
// @Summary  Upload an attachment
// @Tags     attachments
// @Accept   multipart/form-data
// @Produce  json
// @Param    id   path     string true "Request ID"
// @Param    file formData file   true "File"
// @Success  201 {object} response.AttachmentResponse
// @Router   /requests/{id}/attachments [post]
func (h *AttachmentHandler) AddAttachment(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingFile.HTTPStatus, errMissingFile.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer f.Close()

	id := c.Param("id")
	r, att, err := h.usecase.Add(c.Request.Context(), middleware.ActorFrom(c), id, interfaces.BlobFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	})
	if err != nil {
		log.Printf("[attachment][handler] add failed request_id=%s name=%q err=%v", id, fh.Filename, err)
		writeError(c, err)
		return
	}
	c.Header("ETag", versionTag(r.Version))
	c.JSON(http.StatusCreated, response.FromAttachment(att))
}

// DownloadAttachment godoc
// @Summary  Download an attachment
// @Tags     attachments
// @Produce  octet-stream
// @Param    id            path string true "Request ID"
// @Param    attachment_id path string true "Attachment ID"
// @Router   /requests/{id}/attachments/{attachment_id} [get]
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	att, content, err := h.usecase.Download(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), c.Param("attachment_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(att.Name))
	if contentType == "" {
		contentType = http.DetectContentType(content)
	}
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(att.Name))
	c.Data(http.StatusOK, contentType, content)
}

func (h *AttachmentHandler) RemoveAttachment(c *gin.Context) {
	id := c.Param("id")
	r, err := h.usecase.Remove(c.Request.Context(), middleware.ActorFrom(c), id, c.Param("attachment_id"))
	if err != nil {
		log.Printf("[attachment][handler] remove failed request_id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.Header("ETag", versionTag(r.Version))
	c.JSON(http.StatusOK, response.FromServiceRequest(r))
}
