package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrBlobStoreNotConfigured = errors.New("blob store not configured")

//go:generate mockgen -source=attachment_usecase.go -destination=../adapter/http/handlers/mocks/mock_attachment_usecase.go -package=mocks
type IAttachmentUseCase interface {
	Add(ctx context.Context, actor entities.Actor, requestID string, file interfaces.BlobFile) (entities.ServiceRequest, entities.Attachment, error)
	Remove(ctx context.Context, actor entities.Actor, requestID, attachmentID string) (entities.ServiceRequest, error)
	Download(ctx context.Context, actor entities.Actor, requestID, attachmentID string) (entities.Attachment, []byte, error)
}

// AttachmentUseCase keeps the attachment metadata of a request. Bytes go to the
// blob store; the request only records the returned URL.
type AttachmentUseCase struct {
	store requestStore
	blobs interfaces.IBlobStore
	nowFn func() time.Time
}

var _ IAttachmentUseCase = (*AttachmentUseCase)(nil)

func NewAttachmentUseCase(repo interfaces.IServiceRequestRepository, blobs interfaces.IBlobStore) *AttachmentUseCase {
	return &AttachmentUseCase{
		store: requestStore{repo: repo},
		blobs: blobs,
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

func (u *AttachmentUseCase) Add(ctx context.Context, actor entities.Actor, requestID string, file interfaces.BlobFile) (entities.ServiceRequest, entities.Attachment, error) {
	name := strings.TrimSpace(file.Name)
	if name == "" {
		return entities.ServiceRequest{}, entities.Attachment{}, validationError("file name is required")
	}
	if file.Reader == nil {
		return entities.ServiceRequest{}, entities.Attachment{}, validationError("file content is required")
	}
	if actor.Role != entities.RoleClient && actor.Role != entities.RoleStaff {
		return entities.ServiceRequest{}, entities.Attachment{}, permissionError("role %q cannot upload attachments", actor.Role)
	}
	r, err := u.store.loadForWrite(ctx, actor, requestID)
	if err != nil {
		return entities.ServiceRequest{}, entities.Attachment{}, err
	}
	if u.blobs == nil {
		return entities.ServiceRequest{}, entities.Attachment{}, ErrBlobStoreNotConfigured
	}

	file.Name = name
	url, err := u.blobs.Put(ctx, file)
	if err != nil {
		log.Printf("[attachment][usecase] blob put failed request_id=%s name=%q err=%v", r.ID, name, err)
		return entities.ServiceRequest{}, entities.Attachment{}, err
	}

	readVersion := r.Version
	now := u.nowFn()
	att := entities.Attachment{
		ID:         uuid.NewString(),
		Name:       name,
		URL:        url,
		UploadedBy: actor.ID,
		CreatedAt:  now,
	}
	r.Attachments = append(r.Attachments, att)
	r.AppendAudit(newAuditEntry(entities.AuditAttachmentAdded+name, actor, att.ID, now))

	saved, err := u.store.save(ctx, r, readVersion)
	if err != nil {
		log.Printf("[attachment][usecase] save failed, blob left orphaned request_id=%s url=%s err=%v", r.ID, url, err)
		return entities.ServiceRequest{}, entities.Attachment{}, err
	}
	log.Printf("[attachment][usecase] add success request_id=%s attachment_id=%s", saved.ID, att.ID)
	return saved, att, nil
}

func (u *AttachmentUseCase) Remove(ctx context.Context, actor entities.Actor, requestID, attachmentID string) (entities.ServiceRequest, error) {
	if actor.Role != entities.RoleStaff {
		return entities.ServiceRequest{}, permissionError("only staff remove attachments")
	}
	r, err := u.store.loadForWrite(ctx, actor, requestID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	att, idx, ok := r.FindAttachment(strings.TrimSpace(attachmentID))
	if !ok {
		return entities.ServiceRequest{}, ErrAttachmentNotFound
	}

	readVersion := r.Version
	now := u.nowFn()
	r.Attachments = append(r.Attachments[:idx:idx], r.Attachments[idx+1:]...)
	r.AppendAudit(newAuditEntry(entities.AuditAttachmentRemoved+att.Name, actor, att.ID, now))

	saved, err := u.store.save(ctx, r, readVersion)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	log.Printf("[attachment][usecase] remove success request_id=%s attachment_id=%s", saved.ID, att.ID)
	return saved, nil
}

// Download is a read and stays available while the request is in the trash.
func (u *AttachmentUseCase) Download(ctx context.Context, actor entities.Actor, requestID, attachmentID string) (entities.Attachment, []byte, error) {
	r, err := u.store.load(ctx, requestID)
	if err != nil {
		return entities.Attachment{}, nil, err
	}
	if err := authorizeRead(actor, r); err != nil {
		return entities.Attachment{}, nil, err
	}
	att, _, ok := r.FindAttachment(strings.TrimSpace(attachmentID))
	if !ok {
		return entities.Attachment{}, nil, ErrAttachmentNotFound
	}
	if u.blobs == nil {
		return entities.Attachment{}, nil, ErrBlobStoreNotConfigured
	}
	content, err := u.blobs.Get(ctx, att.URL)
	if err != nil {
		return entities.Attachment{}, nil, err
	}
	return att, content, nil
}
