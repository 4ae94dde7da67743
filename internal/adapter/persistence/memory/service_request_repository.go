package memory

import (
	"context"
	"errors"
	"sync"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"
)

// ServiceRequestRepository keeps requests in process. It honours the same
// version contract as the DynamoDB repository and is used for local runs
// (PERSISTENCE=memory) and tests.
type ServiceRequestRepository struct {
	mu       sync.Mutex
	items    map[string]entities.ServiceRequest
	counters map[int]int64
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestRepository)(nil)

func NewServiceRequestRepository() *ServiceRequestRepository {
	return &ServiceRequestRepository{
		items:    map[string]entities.ServiceRequest{},
		counters: map[int]int64{},
	}
}

func (r *ServiceRequestRepository) Create(_ context.Context, sr entities.ServiceRequest) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[sr.ID]; ok {
		return entities.ServiceRequest{}, errors.New("service request already exists")
	}
	if sr.Version == 0 {
		sr.Version = 1
	}
	r.items[sr.ID] = sr.Clone()
	return sr.Clone(), nil
}

func (r *ServiceRequestRepository) GetByID(_ context.Context, id string) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sr, ok := r.items[id]
	if !ok {
		return entities.ServiceRequest{}, nil
	}
	return sr.Clone(), nil
}

func (r *ServiceRequestRepository) GetByTxID(_ context.Context, txid string) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sr := range r.items {
		if sr.Pix != nil && sr.Pix.TxID == txid {
			return sr.Clone(), nil
		}
	}
	return entities.ServiceRequest{}, nil
}

func (r *ServiceRequestRepository) Update(_ context.Context, sr entities.ServiceRequest, expectedVersion int64) (entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[sr.ID]
	if !ok || current.Version != expectedVersion {
		return entities.ServiceRequest{}, interfaces.ErrStaleVersion
	}
	sr.Version = expectedVersion + 1
	r.items[sr.ID] = sr.Clone()
	return sr.Clone(), nil
}

func (r *ServiceRequestRepository) List(_ context.Context, q interfaces.ListQuery) ([]entities.ServiceRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.ServiceRequest, 0)
	for _, sr := range r.items {
		if q.Matches(sr) {
			out = append(out, sr.Clone())
		}
	}
	return out, nil
}

func (r *ServiceRequestRepository) NextProtocolSequence(_ context.Context, year int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[year]++
	return r.counters[year], nil
}
