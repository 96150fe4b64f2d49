// Package content persists the custom compendium store that synthesized
// documents are written back to. Redis and SQLite backends are provided;
// both satisfy compendium.WritableStore.
package content

import (
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// Custom store defaults
const (
	DefaultStoreID    = "ddb-imported-content"
	DefaultStoreLabel = "D&D Beyond Imports"
)

const (
	errDocumentNil  = "document cannot be nil"
	errDocumentName = "document name cannot be empty"
	errIDEmpty      = "document ID cannot be empty"
)

var (
	_ compendium.WritableStore = (*redisStore)(nil)
	_ compendium.WritableStore = (*SQLiteStore)(nil)
)

func validateDocument(doc *vtt.Document) error {
	if doc == nil {
		return errors.InvalidArgument(errDocumentNil)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return errors.InvalidArgument(errDocumentName)
	}
	return nil
}

func storeIDOrDefault(id string) string {
	if id == "" {
		return DefaultStoreID
	}
	return id
}

func labelOrDefault(label string) string {
	if label == "" {
		return DefaultStoreLabel
	}
	return label
}
