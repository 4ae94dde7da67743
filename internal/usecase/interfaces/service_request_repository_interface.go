package interfaces

import (
	"context"
	"errors"
	"strings"

	"portal_servicos/internal/domain/entities"
)

// ErrStaleVersion is returned by Update when the stored version no longer
// matches the one the caller read.
var ErrStaleVersion = errors.New("stale service request version")

// ListQuery scopes a listing. CompanyID or ClientID selects the partition;
// Text filters by a case-insensitive match on protocol or title. Deleted
// switches between the default listing and the trash.
type ListQuery struct {
	CompanyID string
	ClientID  string
	Text      string
	Deleted   bool
}

// Matches reports whether r belongs in the listing described by q. Backends
// narrow by partition first and use Matches for the rest.
func (q ListQuery) Matches(r entities.ServiceRequest) bool {
	if r.IsDeleted() != q.Deleted {
		return false
	}
	if q.CompanyID != "" && r.CompanyID != q.CompanyID {
		return false
	}
	if q.ClientID != "" && r.ClientID != q.ClientID {
		return false
	}
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Protocol), text) ||
		strings.Contains(strings.ToLower(r.Title), text)
}

// IServiceRequestRepository persists the ServiceRequest aggregate.
//
// Lookups return a zero-value request (empty ID) when nothing matches.

//go:generate mockgen -source=service_request_repository_interface.go -destination=mocks/mock_service_request_repository.go -package=mock_interfaces
type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	GetByTxID(ctx context.Context, txid string) (entities.ServiceRequest, error)
	// Update stores r if the persisted version equals expectedVersion and
	// returns it with the bumped version.
	Update(ctx context.Context, r entities.ServiceRequest, expectedVersion int64) (entities.ServiceRequest, error)
	List(ctx context.Context, q ListQuery) ([]entities.ServiceRequest, error)
	// NextProtocolSequence atomically reserves the next protocol number of year.
	NextProtocolSequence(ctx context.Context, year int) (int64, error)
}
