package bundle

import (
	"context"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// store is an immutable in-memory store
type store struct {
	id      string
	entries []compendium.IndexEntry
	docs    map[string]*vtt.Document
}

func newStore(id string) *store {
	return &store{id: id, docs: map[string]*vtt.Document{}}
}

func (s *store) add(id string, doc *vtt.Document) {
	if !hasName(doc) {
		return
	}
	if _, dup := s.docs[id]; dup {
		return
	}
	doc.ID = id
	s.docs[id] = doc
	s.entries = append(s.entries, compendium.IndexEntry{ID: id, Name: doc.Name, Type: doc.Type})
}

func (s *store) ID() string {
	return s.id
}

func (s *store) Index(_ context.Context) ([]compendium.IndexEntry, error) {
	out := make([]compendium.IndexEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *store) Document(_ context.Context, id string) (*vtt.Document, error) {
	doc, ok := s.docs[id]
	if !ok {
		return nil, errors.NotFoundf("%s not found in %s", id, s.id)
	}
	return doc.Clone(), nil
}
