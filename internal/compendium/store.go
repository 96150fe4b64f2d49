// Package compendium resolves content names against the custom store and
// the read-only reference stores.
package compendium

import (
	"context"

	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
)

//go:generate mockgen -destination=mock/mock_store.go -package=compendiummock github.com/KirkDiggler/ddb-importer/internal/compendium Store,WritableStore

// IndexEntry is one row of a store index
type IndexEntry struct {
	ID   string           `json:"_id"`
	Name string           `json:"name"`
	Type vtt.DocumentType `json:"type"`
}

// Store is a named, indexed collection of documents
type Store interface {
	ID() string
	Index(ctx context.Context) ([]IndexEntry, error)
	Document(ctx context.Context, id string) (*vtt.Document, error)
}

// WritableStore is a store that accepts new documents. Create assigns the id.
type WritableStore interface {
	Store
	Create(ctx context.Context, doc *vtt.Document) (*vtt.Document, error)
}
