package interfaces

import (
	"context"

	"portal_servicos/internal/domain/entities"
)

// IRequestTypeRepository abstracts persistence for the request type catalog.
// GetByID returns a zero value when the type does not exist.

//go:generate mockgen -source=request_type_repository_interface.go -destination=mocks/mock_request_type_repository.go -package=mock_interfaces
type IRequestTypeRepository interface {
	Create(ctx context.Context, t entities.RequestType) (entities.RequestType, error)
	GetByID(ctx context.Context, id string) (entities.RequestType, error)
	List(ctx context.Context) ([]entities.RequestType, error)
}
