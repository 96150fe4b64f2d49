// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"fmt"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	compendiummock "github.com/KirkDiggler/ddb-importer/internal/compendium/mock"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	actorrepo "github.com/KirkDiggler/ddb-importer/internal/repositories/actor"
	actormock "github.com/KirkDiggler/ddb-importer/internal/repositories/actor/mock"
)

// ExpectNewActor sets up an import that finds no same-named character:
// the lookup misses and the actor is created with actorID.
func ExpectNewActor(ctx context.Context, repo *actormock.MockRepository, actorID string) {
	repo.EXPECT().
		FindByNameAndType(ctx, gomock.Any()).
		Return(&actorrepo.FindByNameAndTypeOutput{}, nil)

	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input actorrepo.CreateInput) (*actorrepo.CreateOutput, error) {
			actor := *input.Actor
			actor.ID = actorID
			return &actorrepo.CreateOutput{Actor: &actor}, nil
		})
}

// ExpectAttach echoes attached documents back with sequential IDs
func ExpectAttach(ctx context.Context, repo *actormock.MockRepository, actorID string) {
	repo.EXPECT().
		CreateEmbedded(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input actorrepo.CreateEmbeddedInput) (*actorrepo.CreateEmbeddedOutput, error) {
			if input.ActorID != actorID {
				return nil, fmt.Errorf("attached to %s, want %s", input.ActorID, actorID)
			}
			out := make([]*vtt.Document, len(input.Documents))
			for i, doc := range input.Documents {
				cp := doc.Clone()
				cp.ID = fmt.Sprintf("item_%d", i+1)
				out[i] = cp
			}
			return &actorrepo.CreateEmbeddedOutput{Documents: out}, nil
		})
}

// ExpectEmptyStore makes a reference store report an empty index
func ExpectEmptyStore(store *compendiummock.MockStore, id string) {
	store.EXPECT().ID().Return(id).AnyTimes()
	store.EXPECT().Index(gomock.Any()).Return([]compendium.IndexEntry{}, nil).AnyTimes()
}

// ExpectStoreEntries serves docs from a reference store mock by name
func ExpectStoreEntries(store *compendiummock.MockStore, id string, docs ...*vtt.Document) {
	index := make([]compendium.IndexEntry, 0, len(docs))
	byID := make(map[string]*vtt.Document, len(docs))
	for _, doc := range docs {
		index = append(index, compendium.IndexEntry{ID: doc.ID, Name: doc.Name, Type: doc.Type})
		byID[doc.ID] = doc
	}

	store.EXPECT().ID().Return(id).AnyTimes()
	store.EXPECT().Index(gomock.Any()).Return(index, nil).AnyTimes()
	store.EXPECT().
		Document(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, docID string) (*vtt.Document, error) {
			return byID[docID], nil
		}).
		AnyTimes()
}
