package importer

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

const errInvalidDataFormat = "invalid data format"

// payload is a parsed clipboard export. The session cookie is never kept.
type payload struct {
	character    *ddb.Character
	characterURL string
	characterID  string
	compendium   []byte
}

func parsePayload(raw []byte) (*payload, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.InvalidArgument(errInvalidDataFormat)
	}
	root := gjson.ParseBytes(raw)
	data := root.Get("characterData")
	if !root.IsObject() || !data.IsObject() {
		return nil, errors.InvalidArgument(errInvalidDataFormat)
	}

	var resp ddb.Response
	if err := json.Unmarshal([]byte(data.Raw), &resp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, errInvalidDataFormat)
	}
	if resp.Data == nil {
		resp.Data = &ddb.Character{}
	}

	p := &payload{
		character:    resp.Data,
		characterURL: root.Get("characterUrl").String(),
		characterID:  root.Get("characterId").String(),
	}
	if p.characterID == "" && resp.Data.ID != 0 {
		p.characterID = strconv.FormatInt(resp.Data.ID, 10)
	}
	if bundle := root.Get("compendiumData"); bundle.IsObject() {
		p.compendium = []byte(bundle.Raw)
	}
	return p, nil
}
