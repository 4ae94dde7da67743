package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"portal_servicos/internal/adapter/http/handlers/mocks"
	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func attachmentRouter(h *AttachmentHandler) *gin.Engine {
	return newRouter(func(g *gin.RouterGroup) {
		g.POST("/requests/:id/attachments", h.AddAttachment)
		g.GET("/requests/:id/attachments/:attachment_id", h.DownloadAttachment)
		g.DELETE("/requests/:id/attachments/:attachment_id", h.RemoveAttachment)
	})
}

func multipartUpload(t *testing.T, field, name, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _ = io.WriteString(fw, content)
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestAttachmentHandler_Add(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := attachmentRouter(NewAttachmentHandler(mocks.NewMockIAttachmentUseCase(ctrl)))

		body, ct := multipartUpload(t, "other", "a.txt", "x")
		req := newRequest(http.MethodPost, "/v1/requests/req-1/attachments", body, &testClient)
		req.Header.Set("Content-Type", ct)
		if w := serve(r, req); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		r := attachmentRouter(NewAttachmentHandler(uc))

		uc.EXPECT().Add(gomock.Any(), testClient, "req-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Actor, _ string, f interfaces.BlobFile) (entities.ServiceRequest, entities.Attachment, error) {
				content, _ := io.ReadAll(f.Reader)
				if f.Name != "report.pdf" || string(content) != "%PDF" || f.Size != 4 {
					t.Errorf("unexpected file: %+v %q", f, content)
				}
				return sampleRequest(entities.RequestStatusRequested), entities.Attachment{ID: "att-1", Name: f.Name, URL: "http://minio/attachments/report.pdf"}, nil
			})

		body, ct := multipartUpload(t, "file", "report.pdf", "%PDF")
		req := newRequest(http.MethodPost, "/v1/requests/req-1/attachments", body, &testClient)
		req.Header.Set("Content-Type", ct)
		w := serve(r, req)
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"id":"att-1"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("storage not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAttachmentUseCase(ctrl)
		r := attachmentRouter(NewAttachmentHandler(uc))

		uc.EXPECT().Add(gomock.Any(), testClient, "req-1", gomock.Any()).
			Return(entities.ServiceRequest{}, entities.Attachment{}, usecase.ErrBlobStoreNotConfigured)

		body, ct := multipartUpload(t, "file", "a.txt", "x")
		req := newRequest(http.MethodPost, "/v1/requests/req-1/attachments", body, &testClient)
		req.Header.Set("Content-Type", ct)
		if w := serve(r, req); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestAttachmentHandler_Download(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAttachmentUseCase(ctrl)
	r := attachmentRouter(NewAttachmentHandler(uc))

	uc.EXPECT().Download(gomock.Any(), testStaff, "req-1", "att-1").
		Return(entities.Attachment{ID: "att-1", Name: "notes.txt"}, []byte("hello"), nil)
	uc.EXPECT().Download(gomock.Any(), testStaff, "req-1", "missing").
		Return(entities.Attachment{}, nil, usecase.ErrAttachmentNotFound)

	w := serve(r, newRequest(http.MethodGet, "/v1/requests/req-1/attachments/att-1", nil, &testStaff))
	if w.Code != http.StatusOK || w.Body.String() != "hello" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") {
		t.Fatalf("unexpected content type %q", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), `"notes.txt"`) {
		t.Fatalf("unexpected disposition %q", w.Header().Get("Content-Disposition"))
	}

	if w := serve(r, newRequest(http.MethodGet, "/v1/requests/req-1/attachments/missing", nil, &testStaff)); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAttachmentHandler_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAttachmentUseCase(ctrl)
	r := attachmentRouter(NewAttachmentHandler(uc))

	uc.EXPECT().Remove(gomock.Any(), testClient, "req-1", "att-1").Return(entities.ServiceRequest{}, usecase.ErrRequestDeleted)

	if w := serve(r, newRequest(http.MethodDelete, "/v1/requests/req-1/attachments/att-1", nil, &testClient)); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}
