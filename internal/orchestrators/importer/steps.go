package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/ddb"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
	"github.com/KirkDiggler/ddb-importer/internal/synthesis"
)

// Classes and the race are synthesized when missing but never cached.

func (r *run) importClasses(ctx context.Context, classes []ddb.Class) error {
	count := 0
	for _, cls := range classes {
		if cls.Definition == nil || blank(cls.Definition.Name) {
			continue
		}

		res, err := r.resolve(ctx, cls.Definition.Name, compendium.CategoryClass)
		if err != nil {
			return err
		}
		if res.Found {
			r.add(synthesis.OverlayClass(res.Document, cls), compendium.CategoryClass, res.StoreID, false)
			count++
			continue
		}

		if doc := synthesis.Class(cls); doc != nil {
			r.add(doc, compendium.CategoryClass, importer.SourceSynthesized, false)
			count++
		}
	}

	if count > 0 {
		r.notify(ctx, importer.LevelInfo, fmt.Sprintf("Imported %d class(es)", count))
	}
	return nil
}

func (r *run) importRace(ctx context.Context, race *ddb.Race) error {
	if race == nil || race.DisplayName() == "" {
		return nil
	}

	res, err := r.resolve(ctx, race.LookupName(), compendium.CategoryRace)
	if err != nil {
		return err
	}
	if res.Found {
		r.add(res.Document, compendium.CategoryRace, res.StoreID, false)
	} else {
		r.add(synthesis.Race(race), compendium.CategoryRace, importer.SourceSynthesized, false)
	}

	r.notify(ctx, importer.LevelInfo, "Imported race: "+race.DisplayName())
	return nil
}

func (r *run) importItems(ctx context.Context, inventory []ddb.InventoryItem) error {
	count := 0
	for _, inv := range inventory {
		if inv.Definition == nil || blank(inv.Definition.Name) {
			continue
		}

		res, err := r.resolve(ctx, inv.Definition.Name, compendium.CategoryItem)
		if err != nil {
			return err
		}
		if res.Found {
			r.add(synthesis.OverlayItem(res.Document, inv), compendium.CategoryItem, res.StoreID, false)
			count++
			continue
		}

		persisted := r.persist(ctx, synthesis.Item(inv), compendium.CategoryItem)
		doc := persisted.Document
		if persisted.Existing {
			doc = synthesis.OverlayItem(doc, inv)
		}
		r.add(doc, compendium.CategoryItem, importer.SourceSynthesized, persisted.Cached)
		count++
	}

	if count > 0 {
		r.notify(ctx, importer.LevelInfo, fmt.Sprintf("Imported %d items", count))
	}
	return nil
}

func (r *run) importSpells(ctx context.Context, lists []ddb.ClassSpellList) error {
	count := 0
	for _, list := range lists {
		for _, spell := range list.Spells {
			if spell.Definition == nil || blank(spell.Definition.Name) {
				continue
			}

			res, err := r.resolve(ctx, spell.Definition.Name, compendium.CategorySpell)
			if err != nil {
				return err
			}
			if res.Found {
				r.add(synthesis.OverlaySpell(res.Document, spell), compendium.CategorySpell, res.StoreID, false)
				count++
				continue
			}

			persisted := r.persist(ctx, synthesis.Spell(spell), compendium.CategorySpell)
			doc := persisted.Document
			if persisted.Existing {
				doc = synthesis.OverlaySpell(doc, spell)
			}
			r.add(doc, compendium.CategorySpell, importer.SourceSynthesized, persisted.Cached)
			count++
		}
	}

	if count > 0 {
		r.notify(ctx, importer.LevelInfo, fmt.Sprintf("Imported %d spells", count))
	}
	return nil
}

// importFeatures covers class features, racial traits and feats, in that
// order
func (r *run) importFeatures(ctx context.Context, char *ddb.Character) error {
	count := 0
	feature := func(def *ddb.FeatureDefinition, build func() *vtt.Document) error {
		if def == nil || blank(def.Name) {
			return nil
		}

		res, err := r.resolve(ctx, def.Name, compendium.CategoryFeat)
		if err != nil {
			return err
		}
		if res.Found {
			r.add(res.Document, compendium.CategoryFeat, res.StoreID, false)
			count++
			return nil
		}

		doc := build()
		if doc == nil {
			return nil
		}
		persisted := r.persist(ctx, doc, compendium.CategoryFeat)
		r.add(persisted.Document, compendium.CategoryFeat, importer.SourceSynthesized, persisted.Cached)
		count++
		return nil
	}

	for _, cls := range char.Classes {
		className := cls.ClassName()
		for _, f := range cls.ClassFeatures {
			def := f.Definition
			if err := feature(def, func() *vtt.Document { return synthesis.ClassFeature(def, className) }); err != nil {
				return err
			}
		}
	}

	if char.Race != nil {
		raceName := char.Race.DisplayName()
		for _, t := range char.Race.RacialTraits {
			def := t.Definition
			if err := feature(def, func() *vtt.Document { return synthesis.RacialTrait(def, raceName) }); err != nil {
				return err
			}
		}
	}

	for _, f := range char.Feats {
		def := f.Definition
		if err := feature(def, func() *vtt.Document { return synthesis.Feat(def) }); err != nil {
			return err
		}
	}

	if count > 0 {
		r.notify(ctx, importer.LevelInfo, fmt.Sprintf("Imported %d features and traits", count))
	}
	return nil
}

// persist caches doc unless an entry with the same name exists. An existing
// entry of another kind, such as the spell Shield met while importing the
// armor Shield, is left alone and the synthesized document is attached
// uncached.
func (r *run) persist(ctx context.Context, doc *vtt.Document, category compendium.Category) *synthesis.PersistOutput {
	persisted := r.cache.Persist(ctx, doc)
	if !persisted.Existing || category.Matches(persisted.Document.Type) {
		return persisted
	}

	slog.DebugContext(ctx, "cached entry of another kind, attaching synthesized document",
		"name", doc.Name,
		"category", string(category),
		"cached_type", string(persisted.Document.Type))
	return &synthesis.PersistOutput{Document: doc}
}

func blank(name string) bool {
	return strings.TrimSpace(name) == ""
}
