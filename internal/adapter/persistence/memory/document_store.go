package memory

import (
	"context"
	"sync"

	"portal_servicos/internal/domain/entities"
	"portal_servicos/internal/usecase/interfaces"
)

// DocumentStore keeps emitted documents by id. Create with a known id
// overwrites.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]entities.Document
}

var _ interfaces.IDocumentStore = (*DocumentStore)(nil)

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: map[string]entities.Document{}}
}

func (s *DocumentStore) Create(_ context.Context, doc entities.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = doc
	return doc.ID, nil
}

func (s *DocumentStore) Get(id string) (entities.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[id]
	return d, ok
}

// ByRequest returns the documents emitted for requestID.
func (s *DocumentStore) ByRequest(requestID string) []entities.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entities.Document
	for _, d := range s.docs {
		if d.RequestID == requestID {
			out = append(out, d)
		}
	}
	return out
}
