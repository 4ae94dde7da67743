package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/domain/workflow"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CreateServiceRequestInput is what a client supplies when opening a request.
type CreateServiceRequestInput struct {
	Title       string
	TypeID      string
	Description string
}

// ListFilter scopes a listing. Clients are always restricted to their own
// requests regardless of what they ask for.
type ListFilter struct {
	CompanyID string
	ClientID  string
	Query     string
}

// IServiceRequestUseCase exposes the request lifecycle.
//
// Every state change is a discrete action so that it can be authorized on its
// own:
//   - Open (staff, implicit requested -> viewed)
//   - StartResolution (staff, requested/viewed -> in_progress)
//   - SendForValidation (staff, in_progress -> in_validation)
//   - Approve (client, in_validation -> resolved, emits the document)
//   - Reopen (client, resolved -> requested)
//   - SoftDelete / Restore (staff, orthogonal to the workflow)

//go:generate mockgen -source=service_request_usecase.go -destination=../adapter/http/handlers/mocks/mock_service_request_usecase.go -package=mocks
type IServiceRequestUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateServiceRequestInput) (entities.ServiceRequest, error)
	Get(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	Open(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	StartResolution(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	SendForValidation(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	Approve(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	Reopen(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	SoftDelete(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	Restore(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	RetryDocument(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error)
	List(ctx context.Context, actor entities.Actor, f ListFilter) ([]entities.ServiceRequest, error)
	ListTrash(ctx context.Context, actor entities.Actor, f ListFilter) ([]entities.ServiceRequest, error)
}

type ServiceRequestUseCase struct {
	store     requestStore
	types     interfaces.IRequestTypeRepository
	emitter   *DocumentEmitter
	directory interfaces.IDirectory
	audience  audience
	nowFn     func() time.Time
}

var _ IServiceRequestUseCase = (*ServiceRequestUseCase)(nil)

func NewServiceRequestUseCase(
	repo interfaces.IServiceRequestRepository,
	types interfaces.IRequestTypeRepository,
	emitter *DocumentEmitter,
	directory interfaces.IDirectory,
	notifier interfaces.INotifier,
) *ServiceRequestUseCase {
	return &ServiceRequestUseCase{
		store:     requestStore{repo: repo},
		types:     types,
		emitter:   emitter,
		directory: directory,
		audience:  audience{notifier: notifier, directory: directory},
		nowFn:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *ServiceRequestUseCase) Create(ctx context.Context, actor entities.Actor, in CreateServiceRequestInput) (entities.ServiceRequest, error) {
	title := strings.TrimSpace(in.Title)
	typeID := strings.TrimSpace(in.TypeID)
	log.Printf("[request][usecase] create start actor_id=%s type_id=%q", actor.ID, typeID)
	if actor.Role != entities.RoleClient || strings.TrimSpace(actor.ID) == "" {
		return entities.ServiceRequest{}, permissionError("only clients open service requests")
	}
	if title == "" {
		return entities.ServiceRequest{}, validationError("title is required")
	}
	if typeID == "" {
		return entities.ServiceRequest{}, validationError("type_id is required")
	}
	if u.types == nil {
		return entities.ServiceRequest{}, errors.New("request type repository not configured")
	}
	if u.store.repo == nil {
		return entities.ServiceRequest{}, errors.New("service request repository not configured")
	}

	rt, err := u.types.GetByID(ctx, typeID)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if rt.ID == "" {
		return entities.ServiceRequest{}, ErrRequestTypeNotFound
	}

	companyID := strings.TrimSpace(actor.CompanyID)
	if u.directory != nil {
		if user, err := u.directory.GetUser(ctx, actor.ID); err != nil {
			log.Printf("[request][usecase] directory lookup failed actor_id=%s err=%v", actor.ID, err)
		} else if user.CompanyID != "" {
			companyID = user.CompanyID
		}
	}
	if companyID == "" {
		return entities.ServiceRequest{}, validationError("company_id is required")
	}

	now := u.nowFn()
	seq, err := u.store.repo.NextProtocolSequence(ctx, now.Year())
	if err != nil {
		log.Printf("[request][usecase] protocol sequence failed year=%d err=%v", now.Year(), err)
		return entities.ServiceRequest{}, err
	}

	status, paymentStatus := workflow.InitialState(rt.Price)
	r := entities.ServiceRequest{
		ID:            uuid.NewString(),
		Protocol:      FormatProtocol(now.Year(), seq),
		Title:         title,
		Description:   strings.TrimSpace(in.Description),
		TypeID:        rt.ID,
		Price:         rt.Price,
		Status:        status,
		PaymentStatus: paymentStatus,
		ClientID:      actor.ID,
		CompanyID:     companyID,
		CreatedAt:     now,
		Attachments:   []entities.Attachment{},
		Chat:          []entities.ChatMessage{},
		AuditLog:      []entities.AuditEntry{},
		Version:       1,
	}
	r.AppendAudit(newAuditEntry(entities.AuditCreated, actor, "", now))

	created, err := u.store.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] repository create failed protocol=%s err=%v", r.Protocol, err)
		return entities.ServiceRequest{}, err
	}
	log.Printf("[request][usecase] create success request_id=%s protocol=%s status=%s", created.ID, created.Protocol, created.Status)

	u.audience.toStaff(ctx, created, "New service request "+created.Protocol, created.Title)
	return created, nil
}

// FormatProtocol renders the human-readable request code, e.g. REQ-2024-137.
func FormatProtocol(year int, seq int64) string {
	return fmt.Sprintf("REQ-%d-%03d", year, seq)
}

func (u *ServiceRequestUseCase) Get(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	r, err := u.store.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := authorizeRead(actor, r); err != nil {
		return entities.ServiceRequest{}, err
	}
	return r, nil
}

// Open is the read staff and clients perform when they open a request. The
// first staff open of a requested request marks it as viewed.
func (u *ServiceRequestUseCase) Open(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	r, err := u.Get(ctx, actor, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if actor.Role != entities.RoleStaff || r.IsDeleted() || r.Status != entities.RequestStatusRequested {
		return r, nil
	}
	return u.transition(ctx, actor, id, entities.RequestStatusViewed)
}

func (u *ServiceRequestUseCase) StartResolution(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	return u.transition(ctx, actor, id, entities.RequestStatusInProgress)
}

func (u *ServiceRequestUseCase) SendForValidation(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	return u.transition(ctx, actor, id, entities.RequestStatusInValidation)
}

func (u *ServiceRequestUseCase) Approve(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	return u.transition(ctx, actor, id, entities.RequestStatusResolved)
}

func (u *ServiceRequestUseCase) Reopen(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	return u.transition(ctx, actor, id, entities.RequestStatusRequested)
}

// transition applies a table-approved move together with its side effects and
// its audit entry, and persists them in one conditional write.
func (u *ServiceRequestUseCase) transition(ctx context.Context, actor entities.Actor, id string, to entities.RequestStatus) (entities.ServiceRequest, error) {
	log.Printf("[request][usecase] transition start request_id=%s to=%s role=%s", id, to, actor.Role)
	r, err := u.store.loadForWrite(ctx, actor, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	t, ok := workflow.Lookup(r.Status, to, actor.Role)
	if !ok {
		log.Printf("[request][usecase] transition rejected request_id=%s from=%s to=%s role=%s", r.ID, r.Status, to, actor.Role)
		return entities.ServiceRequest{}, &TransitionError{From: r.Status, To: to, Role: actor.Role}
	}

	readVersion := r.Version
	now := u.nowFn()
	r.Status = to
	entry := newAuditEntry(t.Action, actor, "", now)

	if to == entities.RequestStatusResolved {
		// Emission failure does not block closing; the request is flagged and
		// RetryDocument reconciles it later. A retried approve after a lost
		// write targets the same document id.
		docID, err := u.emitter.Emit(ctx, r, Resolutions(r)+1, now)
		if err != nil {
			log.Printf("[request][usecase] document emission failed, closing with pending document request_id=%s err=%v", r.ID, err)
			r.DocumentPending = true
			entry.Detail = "Document generation failed; pending retry"
		} else {
			r.DocumentID = docID
			r.DocumentPending = false
			entry.Detail = "Document generated: " + docID
		}
	}
	r.AppendAudit(entry)

	saved, err := u.store.save(ctx, r, readVersion)
	if err != nil {
		log.Printf("[request][usecase] transition save failed request_id=%s err=%v", r.ID, err)
		return entities.ServiceRequest{}, err
	}
	log.Printf("[request][usecase] transition success request_id=%s from=%s to=%s version=%d", saved.ID, t.From, t.To, saved.Version)

	u.audience.afterTransition(ctx, actor, saved)
	return saved, nil
}

func (u *ServiceRequestUseCase) SoftDelete(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	if actor.Role != entities.RoleStaff {
		return entities.ServiceRequest{}, permissionError("only staff move requests to the trash")
	}
	r, err := u.store.loadForWrite(ctx, actor, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	readVersion := r.Version
	now := u.nowFn()
	r.DeletedAt = &now
	r.DeletedBy = actor.ID
	r.AppendAudit(newAuditEntry(entities.AuditMovedToTrash+actor.DisplayName(), actor, "", now))

	saved, err := u.store.save(ctx, r, readVersion)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	log.Printf("[request][usecase] soft-delete success request_id=%s actor_id=%s", saved.ID, actor.ID)
	return saved, nil
}

func (u *ServiceRequestUseCase) Restore(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	if actor.Role != entities.RoleStaff {
		return entities.ServiceRequest{}, permissionError("only staff restore requests from the trash")
	}
	r, err := u.store.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := authorizeRead(actor, r); err != nil {
		return entities.ServiceRequest{}, err
	}
	if v, ok := expectedVersion(ctx); ok && v != r.Version {
		return entities.ServiceRequest{}, fmt.Errorf("%w: request %s is at version %d, caller expected %d", ErrConcurrencyConflict, r.ID, r.Version, v)
	}
	if !r.IsDeleted() {
		return entities.ServiceRequest{}, ErrRequestNotDeleted
	}

	readVersion := r.Version
	now := u.nowFn()
	r.DeletedAt = nil
	r.DeletedBy = ""
	r.AppendAudit(newAuditEntry(entities.AuditRestored+actor.DisplayName(), actor, "", now))

	saved, err := u.store.save(ctx, r, readVersion)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	log.Printf("[request][usecase] restore success request_id=%s actor_id=%s", saved.ID, actor.ID)
	return saved, nil
}

// RetryDocument re-emits the document of a request that was closed while the
// document store was failing.
func (u *ServiceRequestUseCase) RetryDocument(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	if actor.Role != entities.RoleStaff {
		return entities.ServiceRequest{}, permissionError("only staff retry document generation")
	}
	r, err := u.store.loadForWrite(ctx, actor, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.Status != entities.RequestStatusResolved || !r.DocumentPending {
		return entities.ServiceRequest{}, validationError("request %s has no pending document", r.ID)
	}

	readVersion := r.Version
	now := u.nowFn()
	docID, err := u.emitter.Emit(ctx, r, Resolutions(r), now)
	if err != nil {
		return entities.ServiceRequest{}, fmt.Errorf("document generation failed: %w", err)
	}
	r.DocumentID = docID
	r.DocumentPending = false
	r.AppendAudit(newAuditEntry(entities.AuditDocumentGenerated, actor, docID, now))

	return u.store.save(ctx, r, readVersion)
}

func (u *ServiceRequestUseCase) List(ctx context.Context, actor entities.Actor, f ListFilter) ([]entities.ServiceRequest, error) {
	return u.list(ctx, actor, f, false)
}

// ListTrash returns soft-deleted requests. Only staff see the trash.
func (u *ServiceRequestUseCase) ListTrash(ctx context.Context, actor entities.Actor, f ListFilter) ([]entities.ServiceRequest, error) {
	if actor.Role != entities.RoleStaff {
		return nil, permissionError("only staff list the trash")
	}
	return u.list(ctx, actor, f, true)
}

func (u *ServiceRequestUseCase) list(ctx context.Context, actor entities.Actor, f ListFilter, deleted bool) ([]entities.ServiceRequest, error) {
	q := interfaces.ListQuery{
		CompanyID: strings.TrimSpace(f.CompanyID),
		ClientID:  strings.TrimSpace(f.ClientID),
		Text:      strings.TrimSpace(f.Query),
		Deleted:   deleted,
	}
	switch actor.Role {
	case entities.RoleClient:
		q.ClientID = actor.ID
		q.CompanyID = ""
	case entities.RoleStaff:
		if scope := strings.TrimSpace(actor.CompanyID); scope != "" {
			if q.CompanyID != "" && q.CompanyID != scope {
				return nil, permissionError("staff %s is scoped to company %s", actor.ID, scope)
			}
			q.CompanyID = scope
		}
		if q.CompanyID == "" && q.ClientID == "" {
			return nil, validationError("company_id or client_id is required")
		}
	default:
		return nil, permissionError("role %q cannot list requests", actor.Role)
	}

	items, err := u.store.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}
