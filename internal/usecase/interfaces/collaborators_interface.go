package interfaces

import (
	"context"
	"io"

	"portal_servicos/internal/domain/entities"
)

// IDocumentStore receives the artifacts emitted when requests are resolved.
// Create is idempotent on Document.ID.

//go:generate mockgen -source=collaborators_interface.go -destination=mocks/mock_collaborators.go -package=mock_interfaces
type IDocumentStore interface {
	Create(ctx context.Context, doc entities.Document) (string, error)
}

// BlobFile is an upload on its way to the blob store.
type BlobFile struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// IBlobStore keeps attachment bytes. Put returns the URL recorded on the
// attachment metadata; Get resolves it back to the content.
type IBlobStore interface {
	Put(ctx context.Context, f BlobFile) (string, error)
	Get(ctx context.Context, url string) ([]byte, error)
}

// INotifier dispatches user notifications. Delivery is fire-and-forget from
// the engine's point of view: failures are logged, never propagated.
type INotifier interface {
	Notify(ctx context.Context, userIDs []string, title, message string) error
}

// ISettlementBus carries settlement confirmations to whoever is waiting on a
// payment view. Subscribe returns the event channel and a function releasing
// the subscription.
type ISettlementBus interface {
	Publish(ctx context.Context, evt entities.SettlementEvent) error
	Subscribe(ctx context.Context) (<-chan entities.SettlementEvent, func(), error)
}

// DirectoryUser is the subset of the company/user directory the engine reads.
type DirectoryUser struct {
	ID        string
	Name      string
	Email     string
	Document  string
	CompanyID string
}

// IDirectory resolves users and staff scope. Read-only.
type IDirectory interface {
	GetUser(ctx context.Context, id string) (DirectoryUser, error)
	ListStaff(ctx context.Context, companyID string) ([]string, error)
}
