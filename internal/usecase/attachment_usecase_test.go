package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"
	mock_interfaces "portal_servicos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newAttachmentUseCase(env *testEnv, blobs interfaces.IBlobStore) *AttachmentUseCase {
	uc := NewAttachmentUseCase(env.repo, blobs)
	uc.nowFn = func() time.Time { return testNow }
	return uc
}

func TestAttachmentUseCase(t *testing.T) {
	ctx := context.Background()
	file := func() interfaces.BlobFile {
		return interfaces.BlobFile{Name: "rg.pdf", ContentType: "application/pdf", Size: 3, Reader: bytes.NewReader([]byte("pdf"))}
	}

	t.Run("add, download and remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		r := env.create(t, freeType.ID)
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := newAttachmentUseCase(env, blobs)

		blobs.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f interfaces.BlobFile) (string, error) {
			b, _ := io.ReadAll(f.Reader)
			if f.Name != "rg.pdf" || string(b) != "pdf" {
				t.Fatalf("unexpected blob %q %q", f.Name, b)
			}
			return "http://blobs/attachments/rg.pdf", nil
		})
		saved, att, err := uc.Add(ctx, testClient, r.ID, file())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved.Attachments) != 1 || att.URL != "http://blobs/attachments/rg.pdf" || att.UploadedBy != testClient.ID {
			t.Fatalf("unexpected attachment %+v", att)
		}
		if lastAudit(saved).Action != entities.AuditAttachmentAdded+"rg.pdf" {
			t.Fatalf("unexpected audit entry %q", lastAudit(saved).Action)
		}

		blobs.EXPECT().Get(gomock.Any(), att.URL).Return([]byte("pdf"), nil)
		gotAtt, content, err := uc.Download(ctx, testClient, r.ID, att.ID)
		if err != nil || gotAtt.ID != att.ID || string(content) != "pdf" {
			t.Fatalf("unexpected download %+v %q %v", gotAtt, content, err)
		}

		if _, err := uc.Remove(ctx, testClient, r.ID, att.ID); !errors.Is(err, ErrPermission) {
			t.Fatalf("expected ErrPermission, got %v", err)
		}
		removed, err := uc.Remove(ctx, testStaff, r.ID, att.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(removed.Attachments) != 0 || lastAudit(removed).Action != entities.AuditAttachmentRemoved+"rg.pdf" {
			t.Fatalf("unexpected request after removal %+v", removed)
		}
		if _, err := uc.Remove(ctx, testStaff, r.ID, att.ID); !errors.Is(err, ErrAttachmentNotFound) {
			t.Fatalf("expected ErrAttachmentNotFound, got %v", err)
		}
	})

	t.Run("blob failure leaves the request untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		r := env.create(t, freeType.ID)
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := newAttachmentUseCase(env, blobs)

		blobs.EXPECT().Put(gomock.Any(), gomock.Any()).Return("", errors.New("minio down"))
		if _, _, err := uc.Add(ctx, testClient, r.ID, file()); err == nil {
			t.Fatalf("expected error")
		}
		if got := env.stored(t, r.ID); len(got.Attachments) != 0 || got.Version != r.Version {
			t.Fatalf("expected no change, got %+v", got)
		}
	})

	t.Run("trash is read-only but downloadable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		env := newTestEnv(t)
		r := env.create(t, freeType.ID)
		blobs := mock_interfaces.NewMockIBlobStore(ctrl)
		uc := newAttachmentUseCase(env, blobs)

		blobs.EXPECT().Put(gomock.Any(), gomock.Any()).Return("http://blobs/attachments/rg.pdf", nil)
		_, att, err := uc.Add(ctx, testClient, r.ID, file())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := env.uc.SoftDelete(ctx, testStaff, r.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, _, err := uc.Add(ctx, testClient, r.ID, file()); !errors.Is(err, ErrRequestDeleted) {
			t.Fatalf("expected ErrRequestDeleted, got %v", err)
		}
		if _, err := uc.Remove(ctx, testStaff, r.ID, att.ID); !errors.Is(err, ErrRequestDeleted) {
			t.Fatalf("expected ErrRequestDeleted, got %v", err)
		}
		blobs.EXPECT().Get(gomock.Any(), att.URL).Return([]byte("pdf"), nil)
		if _, _, err := uc.Download(ctx, testStaff, r.ID, att.ID); err != nil {
			t.Fatalf("expected download from the trash, got %v", err)
		}
	})

	t.Run("validations", func(t *testing.T) {
		env := newTestEnv(t)
		r := env.create(t, freeType.ID)
		uc := newAttachmentUseCase(env, nil)

		if _, _, err := uc.Add(ctx, testClient, r.ID, interfaces.BlobFile{Reader: bytes.NewReader(nil)}); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, _, err := uc.Add(ctx, otherClient, r.ID, file()); !errors.Is(err, ErrPermission) {
			t.Fatalf("expected ErrPermission, got %v", err)
		}
		if _, _, err := uc.Add(ctx, testClient, r.ID, file()); !errors.Is(err, ErrBlobStoreNotConfigured) {
			t.Fatalf("expected ErrBlobStoreNotConfigured, got %v", err)
		}
	})
}
