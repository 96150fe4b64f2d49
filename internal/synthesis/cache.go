package synthesis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
)

// Cache writes synthesized documents back to the custom store
type Cache struct {
	custom compendium.WritableStore
}

// NewCache creates a cache over the custom store. A nil store disables
// write-back.
func NewCache(custom compendium.WritableStore) *Cache {
	return &Cache{custom: custom}
}

// PersistOutput reports what happened to a synthesized document
type PersistOutput struct {
	// Document is the stored copy, or the input when nothing was stored
	Document *vtt.Document
	// Cached is true when the custom store holds a document of this name
	Cached bool
	// Existing is true when a same-named document was already there
	Existing bool
}

// Persist stores doc unless a document with the same name (any type) is
// already in the custom store. Nameless documents are never stored.
// Failures are logged and never returned.
func (c *Cache) Persist(ctx context.Context, doc *vtt.Document) *PersistOutput {
	out := &PersistOutput{Document: doc}
	if doc == nil || c == nil || c.custom == nil || strings.TrimSpace(doc.Name) == "" {
		return out
	}

	entry, err := compendium.FindByName(ctx, c.custom, doc.Name, nil)
	if err != nil {
		slog.WarnContext(ctx, "custom store index unavailable, not caching",
			"name", doc.Name,
			"store", c.custom.ID(),
			"error", err.Error())
		return out
	}

	if entry != nil {
		existing, err := c.custom.Document(ctx, entry.ID)
		if err != nil || existing == nil {
			slog.WarnContext(ctx, "failed to load cached document",
				"name", doc.Name,
				"id", entry.ID,
				"error", errString(err))
			return out
		}
		return &PersistOutput{Document: existing, Cached: true, Existing: true}
	}

	created, err := c.custom.Create(ctx, doc.Clone())
	if err != nil {
		slog.WarnContext(ctx, "failed to cache synthesized document",
			"name", doc.Name,
			"type", doc.Type,
			"store", c.custom.ID(),
			"error", err.Error())
		return out
	}

	slog.DebugContext(ctx, "cached synthesized document",
		"name", created.Name,
		"id", created.ID,
		"store", c.custom.ID())
	return &PersistOutput{Document: created, Cached: true}
}

func errString(err error) string {
	if err == nil {
		return "document missing"
	}
	return err.Error()
}
