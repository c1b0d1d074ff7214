// Package docstore is the client side of the hosted document database.
// Documents are addressed by collection name and document identifier.
package docstore

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Document is a stored document: its identifier plus a snapshot of its fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is the collection-scoped CRUD contract consumed by the managers.
type Store interface {
	// List returns every document of the collection, in store order.
	List(ctx context.Context, collection string) ([]Document, error)
	// Create inserts a document and returns its store-assigned identifier.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Patch merges fields into an existing document. Missing documents fail with ErrNotFound.
	Patch(ctx context.Context, collection, id string, fields map[string]any) error
	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, collection, id string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the underlying client.
	Close(ctx context.Context) error
}

// StoreError describes a failed store operation.
type StoreError struct {
	Op         string
	Collection string
	ID         string
	Err        error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("docstore: %s %s/%s: %v", e.Op, e.Collection, e.ID, e.Err)
	}
	return fmt.Sprintf("docstore: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func wrap(op, collection, id string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Collection: collection, ID: id, Err: err}
}
