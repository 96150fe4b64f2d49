package compendium

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
)

// ResolverConfig wires the stores searched by a Resolver
type ResolverConfig struct {
	// Custom is searched first. Nil means the custom store is unavailable.
	Custom   WritableStore
	Registry *Registry
	Order    Order
}

// Validate validates the config
func (c *ResolverConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Order == nil {
		vb.RequiredField("Order")
	}
	for category := range c.Order {
		if !category.Valid() {
			vb.InvalidField("Order", "unknown category "+string(category))
		}
	}
	return vb.Build()
}

// Resolver finds canonical documents by name. Matching is case-insensitive
// and first-match: the custom store wins over reference stores, and
// reference stores are tried in their declared order.
type Resolver struct {
	custom   WritableStore
	registry *Registry
	order    Order
}

// NewResolver creates a resolver
func NewResolver(cfg *ResolverConfig) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{
		custom:   cfg.Custom,
		registry: cfg.Registry,
		order:    cfg.Order,
	}, nil
}

// Custom returns the custom store, or nil when unavailable
func (r *Resolver) Custom() WritableStore {
	return r.custom
}

// ResolveInput names what to look for
type ResolveInput struct {
	Name     string
	Category Category
}

// ResolveOutput is the lookup result. Found is false on a miss, which is not
// an error.
type ResolveOutput struct {
	Found    bool
	Document *vtt.Document
	StoreID  string
}

// Resolve searches the custom store, then the category's reference stores.
// A store that fails is logged and skipped. The returned document is a copy
// the caller may modify.
func (r *Resolver) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Category.Valid() {
		return nil, errors.InvalidArgumentf("unknown category %q", input.Category)
	}
	if strings.TrimSpace(input.Name) == "" {
		return &ResolveOutput{}, nil
	}

	if r.custom != nil {
		doc, err := r.search(ctx, r.custom, input.Name, input.Category.Matches)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			slog.DebugContext(ctx, "resolved from custom store",
				"name", input.Name,
				"category", input.Category,
				"store", r.custom.ID())
			return &ResolveOutput{Found: true, Document: doc, StoreID: r.custom.ID()}, nil
		}
	}

	for _, storeID := range r.order[input.Category] {
		store, ok := r.registry.Lookup(storeID)
		if !ok {
			continue
		}

		doc, err := r.search(ctx, store, input.Name, nil)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			slog.DebugContext(ctx, "resolved from reference store",
				"name", input.Name,
				"category", input.Category,
				"store", storeID)
			return &ResolveOutput{Found: true, Document: doc, StoreID: storeID}, nil
		}
	}

	return &ResolveOutput{}, nil
}

// search returns the first matching document, nil on a miss. Only context
// cancellation is returned as an error; store failures degrade to a miss.
func (r *Resolver) search(ctx context.Context, store Store, name string, match func(vtt.DocumentType) bool) (*vtt.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "resolve canceled")
	}

	entry, err := FindByName(ctx, store, name, match)
	if err != nil {
		slog.WarnContext(ctx, "content store lookup failed, skipping",
			"store", store.ID(),
			"name", name,
			"error", err.Error())
		return nil, nil
	}
	if entry == nil {
		return nil, nil
	}

	doc, err := store.Document(ctx, entry.ID)
	if err != nil {
		slog.WarnContext(ctx, "content store document load failed, skipping",
			"store", store.ID(),
			"id", entry.ID,
			"error", err.Error())
		return nil, nil
	}
	if doc == nil {
		return nil, nil
	}

	out := doc.Clone()
	out.ID = entry.ID
	out.Flags.SourceStore = store.ID()
	out.Flags.SourceID = entry.ID
	return out, nil
}

// FindByName returns the first index entry whose name equals name ignoring
// case and whose type passes match (nil matches everything).
func FindByName(ctx context.Context, store Store, name string, match func(vtt.DocumentType) bool) (*IndexEntry, error) {
	index, err := store.Index(ctx)
	if err != nil {
		return nil, err
	}
	for i := range index {
		if !strings.EqualFold(index[i].Name, name) {
			continue
		}
		if match != nil && !match(index[i].Type) {
			continue
		}
		return &index[i], nil
	}
	return nil, nil
}
