package blobstore

import (
	"context"
	"fmt"
	"sync"

	"auction-platform/utils"
)

// MemoryStore keeps blobs in a map. It backs local development (no bucket
// configured) and tests.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Upload stores content under a generated key and returns a placeholder URL.
func (s *MemoryStore) Upload(_ context.Context, content []byte, contentType, folder string) (UploadResult, error) {
	key := folder + "/" + utils.GenerateID() + extensionFor(contentType)

	s.mu.Lock()
	s.blobs[key] = append([]byte(nil), content...)
	s.mu.Unlock()

	return UploadResult{
		PublicID: key,
		URL:      "memory://" + key,
	}, nil
}

// Delete removes a stored blob.
func (s *MemoryStore) Delete(_ context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blobs[publicID]; !ok {
		return fmt.Errorf("blobstore: blob %s not found", publicID)
	}
	delete(s.blobs, publicID)
	return nil
}

// Len reports the number of stored blobs. Intended for tests.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
