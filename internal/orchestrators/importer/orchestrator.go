// Package importer implements the character import orchestrator
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/compendium/bundle"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/extract"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	actorrepo "github.com/KirkDiggler/ddb-importer/internal/repositories/actor"
	"github.com/KirkDiggler/ddb-importer/internal/services/importer"
	"github.com/KirkDiggler/ddb-importer/internal/synthesis"
)

// Config holds the dependencies for the import orchestrator
type Config struct {
	ActorRepo actorrepo.Repository
	Registry  *compendium.Registry
	// Order defaults to compendium.DefaultOrder
	Order compendium.Order
	// CustomStore is optional; without it nothing is cached
	CustomStore compendium.WritableStore
	Clock       clock.Clock
	Notifier    Notifier
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}

	return vb.Build()
}

// Orchestrator implements the importer.Service interface
type Orchestrator struct {
	actorRepo   actorrepo.Repository
	registry    *compendium.Registry
	order       compendium.Order
	customStore compendium.WritableStore
	cache       *synthesis.Cache
	resolver    *compendium.Resolver
	clock       clock.Clock
	notifier    Notifier
}

// New creates a new import orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		actorRepo:   cfg.ActorRepo,
		registry:    cfg.Registry,
		order:       cfg.Order,
		customStore: cfg.CustomStore,
		cache:       synthesis.NewCache(cfg.CustomStore),
		clock:       cfg.Clock,
		notifier:    cfg.Notifier,
	}
	if o.order == nil {
		o.order = compendium.DefaultOrder()
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.notifier == nil {
		o.notifier = SlogNotifier{}
	}

	resolver, err := o.newResolver(o.registry)
	if err != nil {
		return nil, err
	}
	o.resolver = resolver

	return o, nil
}

// Ensure Orchestrator implements the Service interface
var _ importer.Service = (*Orchestrator)(nil)

// ImportCharacter runs the import pipeline. Steps run in order and a failed
// step ends the import; work already written is not rolled back.
func (o *Orchestrator) ImportCharacter(ctx context.Context, input *importer.ImportCharacterInput) (*importer.ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r := &run{Orchestrator: o}

	p, err := parsePayload(input.Payload)
	if err != nil {
		r.fail(ctx, err)
		return nil, err
	}

	r.notify(ctx, importer.LevelInfo, "Importing character...")

	output, err := r.execute(ctx, p, input.TargetActorID)
	if err != nil {
		r.fail(ctx, err)
		return nil, err
	}

	r.notify(ctx, importer.LevelSuccess, fmt.Sprintf("Character %q imported successfully!", output.Actor.Name))
	output.Messages = r.messages
	return output, nil
}

func (o *Orchestrator) newResolver(registry *compendium.Registry) (*compendium.Resolver, error) {
	return compendium.NewResolver(&compendium.ResolverConfig{
		Custom:   o.customStore,
		Registry: registry,
		Order:    o.order,
	})
}

// run is the state of one import
type run struct {
	*Orchestrator
	resolver    *compendium.Resolver
	messages    []importer.Notification
	attachments []*importer.Attachment
}

func (r *run) notify(ctx context.Context, level importer.Level, message string) {
	n := importer.Notification{Level: level, Message: message}
	r.messages = append(r.messages, n)
	r.notifier.Notify(ctx, n)
}

func (r *run) fail(ctx context.Context, err error) {
	r.notify(ctx, importer.LevelError, "Import failed: "+describe(err))
}

// describe renders an error chain without codes
func describe(err error) string {
	var coded *errors.Error
	if !errors.As(err, &coded) {
		return err.Error()
	}
	if coded.Cause == nil {
		return coded.Message
	}
	return coded.Message + ": " + describe(coded.Cause)
}

func (r *run) execute(ctx context.Context, p *payload, targetID string) (*importer.ImportCharacterOutput, error) {
	char := p.character
	r.resolver = r.resolverFor(ctx, p)

	actor, err := r.findTarget(ctx, targetID, char.DisplayName())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find target actor")
	}
	created := actor == nil

	if !created {
		if err := r.clearAttachments(ctx, actor.ID); err != nil {
			return nil, errors.Wrap(err, "failed to clear existing items")
		}
	}

	if err := r.importClasses(ctx, char.Classes); err != nil {
		return nil, errors.Wrap(err, "failed to import classes")
	}
	if err := r.importRace(ctx, char.Race); err != nil {
		return nil, errors.Wrap(err, "failed to import race")
	}

	system := extract.Sheet(char)
	flags := vtt.ImportFlags{
		CharacterURL: p.characterURL,
		CharacterID:  p.characterID,
		LastSync:     r.clock.Now().UTC().Format(time.RFC3339),
	}

	if err := r.importItems(ctx, char.Inventory); err != nil {
		return nil, errors.Wrap(err, "failed to import items")
	}
	if err := r.importSpells(ctx, char.ClassSpells); err != nil {
		return nil, errors.Wrap(err, "failed to import spells")
	}
	if err := r.importFeatures(ctx, char); err != nil {
		return nil, errors.Wrap(err, "failed to import features")
	}

	if created {
		actor = &vtt.Actor{Name: char.DisplayName(), Type: vtt.ActorTypeCharacter}
	}
	actor.System = system
	actor.Flags = flags

	saved, err := r.saveActor(ctx, actor, created)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save actor")
	}

	if err := r.attach(ctx, saved.ID); err != nil {
		return nil, errors.Wrap(err, "failed to attach items")
	}

	slog.InfoContext(ctx, "imported character",
		"actor_id", saved.ID,
		"name", saved.Name,
		"created", created,
		"attachments", len(r.attachments))

	return &importer.ImportCharacterOutput{
		Actor:       saved,
		Created:     created,
		Attachments: r.attachments,
	}, nil
}

// resolverFor adds the payload's compendium bundle, if any, as reference
// stores for this import only. A malformed bundle is ignored.
func (r *run) resolverFor(ctx context.Context, p *payload) *compendium.Resolver {
	if len(p.compendium) == 0 {
		return r.Orchestrator.resolver
	}

	stores, err := bundle.Parse(p.compendium)
	if err != nil {
		slog.WarnContext(ctx, "ignoring compendium bundle", "error", err.Error())
		return r.Orchestrator.resolver
	}

	resolver, err := r.newResolver(r.registry.With(stores...))
	if err != nil {
		slog.WarnContext(ctx, "ignoring compendium bundle", "error", err.Error())
		return r.Orchestrator.resolver
	}
	return resolver
}

// findTarget returns the explicit target, else the first character with the
// same name, else nil
func (r *run) findTarget(ctx context.Context, targetID, name string) (*vtt.Actor, error) {
	if targetID != "" {
		out, err := r.actorRepo.Get(ctx, actorrepo.GetInput{ID: targetID})
		if err != nil {
			return nil, err
		}
		return out.Actor, nil
	}

	out, err := r.actorRepo.FindByNameAndType(ctx, actorrepo.FindByNameAndTypeInput{
		Name: name,
		Type: vtt.ActorTypeCharacter,
	})
	if err != nil {
		return nil, err
	}
	return out.Actor, nil
}

func (r *run) clearAttachments(ctx context.Context, actorID string) error {
	existing, err := r.actorRepo.ListEmbedded(ctx, actorrepo.ListEmbeddedInput{ActorID: actorID})
	if err != nil {
		return err
	}
	if len(existing.Documents) == 0 {
		return nil
	}

	ids := make([]string, 0, len(existing.Documents))
	for _, doc := range existing.Documents {
		ids = append(ids, doc.ID)
	}

	out, err := r.actorRepo.DeleteEmbedded(ctx, actorrepo.DeleteEmbeddedInput{ActorID: actorID, IDs: ids})
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "cleared embedded documents", "actor_id", actorID, "deleted", out.Deleted)
	return nil
}

func (r *run) saveActor(ctx context.Context, actor *vtt.Actor, create bool) (*vtt.Actor, error) {
	if create {
		out, err := r.actorRepo.Create(ctx, actorrepo.CreateInput{Actor: actor})
		if err != nil {
			return nil, err
		}
		return out.Actor, nil
	}

	out, err := r.actorRepo.Update(ctx, actorrepo.UpdateInput{Actor: actor})
	if err != nil {
		return nil, err
	}
	return out.Actor, nil
}

// attach writes every collected document in one batch and replaces each
// attachment's document with the embedded copy
func (r *run) attach(ctx context.Context, actorID string) error {
	if len(r.attachments) == 0 {
		return nil
	}

	docs := make([]*vtt.Document, len(r.attachments))
	for i, a := range r.attachments {
		docs[i] = a.Document
	}

	out, err := r.actorRepo.CreateEmbedded(ctx, actorrepo.CreateEmbeddedInput{ActorID: actorID, Documents: docs})
	if err != nil {
		return err
	}
	if len(out.Documents) == len(r.attachments) {
		for i, doc := range out.Documents {
			r.attachments[i].Document = doc
		}
	}
	return nil
}

func (r *run) add(doc *vtt.Document, category compendium.Category, source string, cached bool) {
	r.attachments = append(r.attachments, &importer.Attachment{
		Document: doc,
		Category: category,
		Source:   source,
		Cached:   cached,
	})
}

func (r *run) resolve(ctx context.Context, name string, category compendium.Category) (*compendium.ResolveOutput, error) {
	return r.resolver.Resolve(ctx, &compendium.ResolveInput{Name: name, Category: category})
}
