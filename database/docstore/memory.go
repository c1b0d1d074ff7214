package docstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used for local runs and tests.
// Documents are listed in insertion order.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

// Seed inserts a document under a caller-chosen identifier.
func (s *MemoryStore) Seed(collection, id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], Document{ID: id, Fields: cloneFields(fields)})
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap("list", collection, "", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]Document, 0, len(s.collections[collection]))
	for _, doc := range s.collections[collection] {
		docs = append(docs, Document{ID: doc.ID, Fields: cloneFields(doc.Fields)})
	}
	return docs, nil
}

func (s *MemoryStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", wrap("create", collection, "", err)
	}
	id := uuid.New().String()
	s.Seed(collection, id, fields)
	return id, nil
}

func (s *MemoryStore) Patch(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return wrap("patch", collection, id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, doc := range s.collections[collection] {
		if doc.ID != id {
			continue
		}
		for key, value := range fields {
			s.collections[collection][i].Fields[key] = value
		}
		return nil
	}
	return wrap("patch", collection, id, ErrNotFound)
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return wrap("delete", collection, id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.collections[collection]
	for i, doc := range docs {
		if doc.ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close(context.Context) error {
	return nil
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		out[key] = value
	}
	return out
}
