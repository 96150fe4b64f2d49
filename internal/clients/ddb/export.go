package ddb

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// CharacterPageURL is the public sheet url for a character id
const CharacterPageURL = "https://www.dndbeyond.com/characters/"

// Payload is the clipboard export the importer consumes. The session cookie
// is never part of it.
type Payload struct {
	CharacterURL   string          `json:"characterUrl"`
	CharacterID    string          `json:"characterId"`
	CharacterData  json.RawMessage `json:"characterData"`
	CompendiumData json.RawMessage `json:"compendiumData,omitempty"`
	Timestamp      int64           `json:"timestamp"`
}

// ExportInput selects the character to export
type ExportInput struct {
	// URLOrID is a character page url or a bare id
	URLOrID    string
	Session    string
	Compendium bool
	// Now stamps the payload; zero means time.Now
	Now time.Time
}

// ExportOutput is the encoded payload
type ExportOutput struct {
	Payload []byte
	Name    string
}

// Export fetches a character, and optionally the compendium bundle, and
// encodes them as an import payload.
func (c *Client) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	id, err := ParseCharacterID(input.URLOrID)
	if err != nil {
		return nil, err
	}

	character, err := c.GetCharacter(ctx, &GetCharacterInput{CharacterID: id, Session: input.Session})
	if err != nil {
		return nil, err
	}

	characterURL := strings.TrimSpace(input.URLOrID)
	if !strings.Contains(characterURL, "/characters/") {
		characterURL = CharacterPageURL + id
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	p := Payload{
		CharacterURL:  characterURL,
		CharacterID:   id,
		CharacterData: character.Data,
		Timestamp:     now.UnixMilli(),
	}

	if input.Compendium {
		bundle, err := c.GetCompendium(ctx, &GetCompendiumInput{Session: input.Session})
		if err != nil {
			return nil, err
		}
		p.CompendiumData = bundle.Bundle
	}

	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode payload")
	}
	return &ExportOutput{Payload: raw, Name: character.Name}, nil
}
