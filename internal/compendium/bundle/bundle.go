// Package bundle turns a compendium export from the character service into
// read-only reference stores: ddb.items, ddb.classes and ddb.feats.
package bundle

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/synthesis"
)

// Bundle sections
const (
	SectionItems   = "items"
	SectionClasses = "classes"
	SectionFeats   = "feats"
)

// Parse reads a bundle of the form {"items": ..., "classes": ..., "feats": ...}.
// Each section may be a bare array or an API response wrapping the array in
// "data" or "results". Missing sections yield empty stores; entries that do
// not decode are skipped.
func Parse(raw []byte) ([]compendium.Store, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.InvalidArgument("compendium bundle is not valid JSON")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, errors.InvalidArgument("compendium bundle must be an object")
	}

	items := newStore(compendium.StoreBundleItems)
	eachEntry(root.Get(SectionItems), func(i int, entry gjson.Result) {
		var def ddb.ItemDefinition
		if !decode(entry, &def, SectionItems, i) {
			return
		}
		items.add(entryID(entry, i), synthesis.Item(ddb.InventoryItem{Definition: &def}))
	})

	classes := newStore(compendium.StoreBundleClasses)
	eachEntry(root.Get(SectionClasses), func(i int, entry gjson.Result) {
		var def ddb.ClassDefinition
		if !decode(entry, &def, SectionClasses, i) {
			return
		}
		classes.add(entryID(entry, i), synthesis.Class(ddb.Class{Definition: &def}))
	})

	feats := newStore(compendium.StoreBundleFeats)
	eachEntry(root.Get(SectionFeats), func(i int, entry gjson.Result) {
		var def ddb.FeatureDefinition
		if !decode(entry, &def, SectionFeats, i) {
			return
		}
		feats.add(entryID(entry, i), synthesis.Feat(&def))
	})

	slog.Debug("parsed compendium bundle",
		"items", len(items.entries),
		"classes", len(classes.entries),
		"feats", len(feats.entries))

	return []compendium.Store{items, classes, feats}, nil
}

func eachEntry(section gjson.Result, fn func(i int, entry gjson.Result)) {
	list := section
	if section.IsObject() {
		list = section.Get("data")
		if !list.IsArray() {
			list = section.Get("results")
		}
	}
	if !list.IsArray() {
		return
	}

	i := 0
	list.ForEach(func(_, entry gjson.Result) bool {
		if entry.IsObject() {
			fn(i, entry)
		}
		i++
		return true
	})
}

func decode(entry gjson.Result, target interface{}, section string, i int) bool {
	if err := json.Unmarshal([]byte(entry.Raw), target); err != nil {
		slog.Warn("skipping compendium bundle entry",
			"section", section,
			"index", i,
			"error", err.Error())
		return false
	}
	return true
}

func entryID(entry gjson.Result, i int) string {
	if id := entry.Get("id"); id.Exists() && id.String() != "" {
		return id.String()
	}
	return fmt.Sprintf("entry-%d", i)
}

var _ compendium.Store = (*store)(nil)

// hasName reports whether a bundle entry decoded to a named document
func hasName(doc *vtt.Document) bool {
	return doc != nil && doc.Name != ""
}
