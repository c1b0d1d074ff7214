package docstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_CRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Create(ctx, "rooms", map[string]any{"name": "Sea View", "price": "120"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	s.Seed("rooms", "r2", map[string]any{"name": "Garden"})

	docs, err := s.List(ctx, "rooms")
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(docs) != 2 || docs[0].ID != id || docs[1].ID != "r2" {
		t.Fatalf("List() = %+v, want insertion order", docs)
	}

	// List returns copies.
	docs[0].Fields["name"] = "mutated"

	if err := s.Patch(ctx, "rooms", id, map[string]any{"price": "150"}); err != nil {
		t.Fatalf("Patch() failed: %v", err)
	}
	docs, _ = s.List(ctx, "rooms")
	if docs[0].Fields["name"] != "Sea View" || docs[0].Fields["price"] != "150" {
		t.Errorf("unexpected fields after patch: %v", docs[0].Fields)
	}

	if err := s.Delete(ctx, "rooms", id); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := s.Delete(ctx, "rooms", id); err != nil {
		t.Errorf("Delete() of a missing document error = %v, want nil", err)
	}
	docs, _ = s.List(ctx, "rooms")
	if len(docs) != 1 || docs[0].ID != "r2" {
		t.Errorf("List() after delete = %+v", docs)
	}
}

func TestMemoryStore_PatchMissing(t *testing.T) {
	s := NewMemoryStore()

	err := s.Patch(context.Background(), "payments", "nope", map[string]any{"roomStatus": "Approved"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Patch() error = %v, want ErrNotFound", err)
	}
	var se *StoreError
	if !errors.As(err, &se) || se.Op != "patch" || se.Collection != "payments" || se.ID != "nope" {
		t.Errorf("Patch() error = %#v, want StoreError with context", err)
	}
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.List(ctx, "rooms"); !errors.Is(err, context.Canceled) {
		t.Errorf("List() error = %v, want context.Canceled", err)
	}
	if err := s.Ping(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Ping() error = %v, want context.Canceled", err)
	}
}
