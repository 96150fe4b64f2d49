// Package importer defines the interface for importing characters
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/KirkDiggler/ddb-importer/internal/services/importer Service

import (
	"context"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
)

// SourceSynthesized marks an attachment built from the sheet itself
const SourceSynthesized = "synthesized"

// Service defines the interface for character imports
type Service interface {
	// ImportCharacter turns a pasted export into an actor with its
	// classes, race, items, spells and features attached.
	// Returns errors.InvalidArgument for a payload without characterData.
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
}

// ImportCharacterInput defines the request for an import
type ImportCharacterInput struct {
	// Payload is the clipboard export: {characterData, characterUrl,
	// characterId, cobaltCookie, timestamp, compendiumData}
	Payload []byte
	// TargetActorID updates that actor instead of matching by name
	TargetActorID string
}

// ImportCharacterOutput defines the response for an import
type ImportCharacterOutput struct {
	Actor       *vtt.Actor
	Created     bool
	Attachments []*Attachment
	Messages    []Notification
}

// Attachment is one document attached to the actor and where it came from
type Attachment struct {
	Document *vtt.Document
	Category compendium.Category
	// Source is the store the canonical entry came from, or
	// SourceSynthesized
	Source string
	// Cached is true when a synthesized document is held by the custom store
	Cached bool
}

// Level is the severity of a notification
type Level string

// Notification levels
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a user-facing status message
type Notification struct {
	Level   Level
	Message string
}
