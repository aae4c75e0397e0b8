package repository

import (
	"context"
	"sync"
)

// DocumentStore es el almacenamiento clave/valor persistido donde vive el dataset serializado.
// Get devuelve found=false cuando la clave no existe; eso no es un error.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, body []byte) error
}

// MemoryDocumentStore implementa DocumentStore en memoria del proceso.
type MemoryDocumentStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{items: make(map[string][]byte)}
}

func (s *MemoryDocumentStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(body))
	copy(out, body)
	return out, true, nil
}

func (s *MemoryDocumentStore) Put(_ context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(body))
	copy(stored, body)
	s.items[key] = stored
	return nil
}
