package srd

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// store adapts one SRD list/get pair. The index is fetched once and kept
// for the life of the process; a failed fetch is retried on the next call.
type store struct {
	id string
	// docType of index entries; empty for equipment, whose type is only
	// known once the document is loaded
	docType vtt.DocumentType
	list    func() ([]*entities.ReferenceItem, error)
	get     func(key string) (*vtt.Document, error)

	mu    sync.Mutex
	index []compendium.IndexEntry
}

func (s *store) ID() string {
	return s.id
}

func (s *store) Index(ctx context.Context) ([]compendium.IndexEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "index canceled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index != nil {
		return s.index, nil
	}

	refs, err := s.list()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to list %s", s.id)
	}

	index := make([]compendium.IndexEntry, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		index = append(index, compendium.IndexEntry{ID: ref.Key, Name: ref.Name, Type: s.docType})
	}

	slog.DebugContext(ctx, "loaded reference index", "store", s.id, "entries", len(index))
	s.index = index
	return index, nil
}

func (s *store) Document(ctx context.Context, id string) (*vtt.Document, error) {
	if id == "" {
		return nil, errors.InvalidArgument("document ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "document load canceled")
	}

	doc, err := s.get(id)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get %s from %s", id, s.id)
	}
	if doc == nil {
		return nil, errors.NotFoundf("%s not found in %s", id, s.id)
	}
	doc.ID = id
	return doc, nil
}
