package ddb

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// Rarity is an item rarity that arrives either as a numeric id or as a
// display name ("Very Rare") depending on the endpoint.
type Rarity struct {
	ID   int
	Name string
}

// UnmarshalJSON accepts a number, a string, or null
func (r *Rarity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		if id, err := strconv.Atoi(strings.TrimSpace(name)); err == nil {
			r.ID = id
			return nil
		}
		r.Name = name
		return nil
	}

	var id float64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	r.ID = int(id)
	return nil
}

// MarshalJSON writes the name when known, else the id
func (r Rarity) MarshalJSON() ([]byte, error) {
	if r.Name != "" {
		return json.Marshal(r.Name)
	}
	if r.ID == 0 {
		return jsonNull, nil
	}
	return json.Marshal(r.ID)
}

// LimitedUse is a feature's use budget. Class features sometimes carry a
// per-level list instead of a single object; the entry with the most uses
// is kept.
type LimitedUse struct {
	MaxUses   int `json:"maxUses"`
	ResetType int `json:"resetType"`
}

type limitedUseFields LimitedUse

// UnmarshalJSON accepts an object, a list of objects, or null
func (l *LimitedUse) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil
	}

	if data[0] == '[' {
		var entries []limitedUseFields
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		for _, e := range entries {
			if e.MaxUses >= l.MaxUses {
				*l = LimitedUse(e)
			}
		}
		return nil
	}

	var fields limitedUseFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*l = LimitedUse(fields)
	return nil
}
