package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type expectedVersionKey struct{}

// WithExpectedVersion attaches the aggregate version the caller last saw
// (e.g. an If-Match header). Mutations fail with ErrConcurrencyConflict when
// the stored version differs.
func WithExpectedVersion(ctx context.Context, version int64) context.Context {
	return context.WithValue(ctx, expectedVersionKey{}, version)
}

func expectedVersion(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(expectedVersionKey{}).(int64)
	return v, ok
}

// requestStore wraps the repository with the load/authorize/save sequence
// every mutating use case shares.
type requestStore struct {
	repo interfaces.IServiceRequestRepository
}

func (s requestStore) load(ctx context.Context, id string) (entities.ServiceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, validationError("request id is required")
	}
	if s.repo == nil {
		return entities.ServiceRequest{}, errors.New("service request repository not configured")
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if r.ID == "" {
		return entities.ServiceRequest{}, ErrServiceRequestNotFound
	}
	return r, nil
}

// loadForWrite loads the request, checks read access and the caller's
// expected version, and rejects requests in the trash.
func (s requestStore) loadForWrite(ctx context.Context, actor entities.Actor, id string) (entities.ServiceRequest, error) {
	r, err := s.load(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if err := authorizeRead(actor, r); err != nil {
		return entities.ServiceRequest{}, err
	}
	if v, ok := expectedVersion(ctx); ok && v != r.Version {
		return entities.ServiceRequest{}, fmt.Errorf("%w: request %s is at version %d, caller expected %d", ErrConcurrencyConflict, r.ID, r.Version, v)
	}
	if r.IsDeleted() {
		return entities.ServiceRequest{}, ErrRequestDeleted
	}
	return r, nil
}

func (s requestStore) save(ctx context.Context, r entities.ServiceRequest, readVersion int64) (entities.ServiceRequest, error) {
	saved, err := s.repo.Update(ctx, r, readVersion)
	if err != nil {
		if errors.Is(err, interfaces.ErrStaleVersion) {
			return entities.ServiceRequest{}, fmt.Errorf("%w: request %s changed since version %d", ErrConcurrencyConflict, r.ID, readVersion)
		}
		return entities.ServiceRequest{}, err
	}
	return saved, nil
}

// authorizeRead lets clients see their own requests. Staff bound to a company
// (X-Company-ID) see that company only; office-wide staff carry no company and
// see all of them.
func authorizeRead(actor entities.Actor, r entities.ServiceRequest) error {
	switch actor.Role {
	case entities.RoleSystem:
		return nil
	case entities.RoleStaff:
		if scope := strings.TrimSpace(actor.CompanyID); scope != "" && scope != r.CompanyID {
			return permissionError("staff %s is scoped to company %s, request %s belongs to %s", actor.ID, scope, r.ID, r.CompanyID)
		}
		return nil
	case entities.RoleClient:
		if actor.ID != "" && actor.ID == r.ClientID {
			return nil
		}
		return permissionError("client %s does not own request %s", actor.ID, r.ID)
	default:
		return permissionError("unknown role %q", actor.Role)
	}
}

func newAuditEntry(action string, actor entities.Actor, detail string, at time.Time) entities.AuditEntry {
	return entities.AuditEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Actor:     actor.DisplayName(),
		Detail:    detail,
		Timestamp: at,
	}
}
