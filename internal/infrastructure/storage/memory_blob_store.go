package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"portal_servicos/internal/usecase/interfaces"
)

// MemoryBlobStore keeps attachments in process. Used when MinIO is not
// configured.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	seq   int
	blobs map[string][]byte
}

var _ interfaces.IBlobStore = (*MemoryBlobStore)(nil)

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: map[string][]byte{}}
}

func (s *MemoryBlobStore) Put(_ context.Context, f interfaces.BlobFile) (string, error) {
	b, err := io.ReadAll(f.Reader)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	url := fmt.Sprintf("mem://attachments/%d/%s", s.seq, f.Name)
	s.blobs[url] = b
	return url, nil
}

func (s *MemoryBlobStore) Get(_ context.Context, url string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[url]
	if !ok {
		return nil, ErrForeignURL
	}
	return append([]byte(nil), b...), nil
}
