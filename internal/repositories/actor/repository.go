// Package actor provides the interface for character actor persistence,
// including the documents embedded in an actor.
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/ddb-importer/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the actor doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// FindByNameAndType returns the first actor created with the name
	// (compared ignoring case) and type. A miss returns a nil Actor, not an
	// error.
	FindByNameAndType(ctx context.Context, input FindByNameAndTypeInput) (*FindByNameAndTypeOutput, error)

	// Create stores a new actor, assigning an ID when none is set
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing actor
	// Returns errors.NotFound if the actor doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListEmbedded lists the actor's embedded documents in attach order
	ListEmbedded(ctx context.Context, input ListEmbeddedInput) (*ListEmbeddedOutput, error)

	// DeleteEmbedded removes embedded documents by ID; unknown IDs are ignored
	DeleteEmbedded(ctx context.Context, input DeleteEmbeddedInput) (*DeleteEmbeddedOutput, error)

	// CreateEmbedded attaches copies of the documents in one batch. Each copy
	// gets a new ID.
	CreateEmbedded(ctx context.Context, input CreateEmbeddedInput) (*CreateEmbeddedOutput, error)
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *vtt.Actor
}

// FindByNameAndTypeInput defines the input for finding an actor
type FindByNameAndTypeInput struct {
	Name string
	Type vtt.ActorType
}

// FindByNameAndTypeOutput defines the output for finding an actor
type FindByNameAndTypeOutput struct {
	Actor *vtt.Actor
}

// CreateInput defines the input for creating an actor
type CreateInput struct {
	Actor *vtt.Actor
}

// CreateOutput defines the output for creating an actor
type CreateOutput struct {
	Actor *vtt.Actor
}

// UpdateInput defines the input for updating an actor
type UpdateInput struct {
	Actor *vtt.Actor
}

// UpdateOutput defines the output for updating an actor
type UpdateOutput struct {
	Actor *vtt.Actor
}

// ListEmbeddedInput defines the input for listing embedded documents
type ListEmbeddedInput struct {
	ActorID string
}

// ListEmbeddedOutput defines the output for listing embedded documents
type ListEmbeddedOutput struct {
	Documents []*vtt.Document
}

// DeleteEmbeddedInput defines the input for deleting embedded documents
type DeleteEmbeddedInput struct {
	ActorID string
	IDs     []string
}

// DeleteEmbeddedOutput defines the output for deleting embedded documents
type DeleteEmbeddedOutput struct {
	Deleted int
}

// CreateEmbeddedInput defines the input for attaching documents
type CreateEmbeddedInput struct {
	ActorID   string
	Documents []*vtt.Document
}

// CreateEmbeddedOutput defines the output for attaching documents
type CreateEmbeddedOutput struct {
	Documents []*vtt.Document
}
