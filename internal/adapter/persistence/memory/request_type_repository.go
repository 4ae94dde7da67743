package memory

import (
	"context"
	"errors"
	"sync"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"
)

type RequestTypeRepository struct {
	mu    sync.RWMutex
	items map[string]entities.RequestType
}

var _ interfaces.IRequestTypeRepository = (*RequestTypeRepository)(nil)

func NewRequestTypeRepository(seed ...entities.RequestType) *RequestTypeRepository {
	r := &RequestTypeRepository{items: map[string]entities.RequestType{}}
	for _, t := range seed {
		r.items[t.ID] = t
	}
	return r
}

func (r *RequestTypeRepository) Create(_ context.Context, t entities.RequestType) (entities.RequestType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[t.ID]; ok {
		return entities.RequestType{}, errors.New("request type already exists")
	}
	r.items[t.ID] = t
	return t, nil
}

func (r *RequestTypeRepository) GetByID(_ context.Context, id string) (entities.RequestType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *RequestTypeRepository) List(_ context.Context) ([]entities.RequestType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.RequestType, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	return out, nil
}
