package actor

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/ddb-importer/internal/redis"
)

const (
	actorKeyPrefix     = "actor:"
	nameIndexPrefix    = "actor:name:"
	embeddedKeySuffix  = ":items"
	embeddedListSuffix = ":items:order"

	// Error messages
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
	errActorName    = "actor name cannot be empty"
)

type redisRepository struct {
	client   redisclient.Client
	clock    clock.Clock
	actorIDs idgen.Generator
	itemIDs  idgen.Generator
}

// RedisConfig contains configuration for the Redis actor repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// ActorIDs generates actor IDs. Defaults to prefixed UUIDs.
	ActorIDs idgen.Generator
	// ItemIDs generates embedded document IDs. Defaults to prefixed UUIDs.
	ItemIDs idgen.Generator
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &redisRepository{
		client:   cfg.Client,
		clock:    cfg.Clock,
		actorIDs: cfg.ActorIDs,
		itemIDs:  cfg.ItemIDs,
	}
	if r.clock == nil {
		r.clock = clock.New()
	}
	if r.actorIDs == nil {
		r.actorIDs = idgen.NewUUID("actor")
	}
	if r.itemIDs == nil {
		r.itemIDs = idgen.NewUUID("item")
	}
	return r, nil
}

// ActorKey returns the Redis key of an actor
func ActorKey(id string) string {
	return actorKeyPrefix + id
}

// NameIndexKey returns the hash mapping lowercased names to actor IDs
func NameIndexKey(actorType vtt.ActorType) string {
	return nameIndexPrefix + string(actorType)
}

// EmbeddedKey returns the hash of an actor's embedded documents
func EmbeddedKey(actorID string) string {
	return actorKeyPrefix + actorID + embeddedKeySuffix
}

// EmbeddedOrderKey returns the list holding embedded IDs in attach order
func EmbeddedOrderKey(actorID string) string {
	return actorKeyPrefix + actorID + embeddedListSuffix
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// entityError codes a toolkit entity error, so callers can match on the
// code or on the core sentinel
func entityError(code errors.Code, op string, e core.Entity, cause error) error {
	return errors.WrapWithCodef(core.NewEntityError(op, e.GetType(), e.GetID(), cause), code,
		"%s with ID %s: %s", e.GetType(), e.GetID(), cause.Error()).
		WithMeta("entity_type", e.GetType()).
		WithMeta("entity_id", e.GetID())
}

func storedActor(id string) core.Entity {
	return &vtt.Actor{ID: id, Type: vtt.ActorTypeCharacter}
}

func validateActor(a *vtt.Actor) error {
	if a == nil {
		return errors.WrapWithCode(core.ErrNilEntity, errors.CodeInvalidArgument, errActorNil)
	}
	if strings.TrimSpace(a.Name) == "" {
		return errors.InvalidArgument(errActorName)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	a, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Actor: a}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*vtt.Actor, error) {
	result, err := r.client.Get(ctx, ActorKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, entityError(errors.CodeNotFound, "get", storedActor(id), core.ErrEntityNotFound)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var a vtt.Actor
	if err := json.Unmarshal([]byte(result), &a); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor data")
	}
	return &a, nil
}

func (r *redisRepository) FindByNameAndType(ctx context.Context, input FindByNameAndTypeInput) (*FindByNameAndTypeOutput, error) {
	if nameKey(input.Name) == "" {
		return nil, errors.InvalidArgument(errActorName)
	}

	id, err := r.client.HGet(ctx, NameIndexKey(input.Type), nameKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return &FindByNameAndTypeOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to search actors")
	}

	a, err := r.load(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			// stale index entry
			return &FindByNameAndTypeOutput{}, nil
		}
		return nil, err
	}
	return &FindByNameAndTypeOutput{Actor: a}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	a := *input.Actor
	if a.ID == "" {
		a.ID = r.actorIDs.Generate()
	}
	if a.Type == "" {
		a.Type = vtt.ActorTypeCharacter
	}
	now := r.clock.Now().Unix()
	a.CreatedAt = now
	a.UpdatedAt = now

	key := ActorKey(a.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, entityError(errors.CodeAlreadyExists, "create", &a, core.ErrDuplicateEntity)
	}

	data, err := json.Marshal(&a)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	// the first actor with a name keeps the index entry
	pipe.HSetNX(ctx, NameIndexKey(a.Type), nameKey(a.Name), a.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	return &CreateOutput{Actor: &a}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	existing, err := r.load(ctx, input.Actor.ID)
	if err != nil {
		return nil, err
	}

	a := *input.Actor
	if a.Type == "" {
		a.Type = existing.Type
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(&a)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, ActorKey(a.ID), data, 0)

	if nameKey(existing.Name) != nameKey(a.Name) || existing.Type != a.Type {
		oldIndex := NameIndexKey(existing.Type)
		owner, err := r.client.HGet(ctx, oldIndex, nameKey(existing.Name)).Result()
		if err != nil && err != redis.Nil {
			return nil, errors.Wrapf(err, "failed to read name index")
		}
		if owner == a.ID {
			pipe.HDel(ctx, oldIndex, nameKey(existing.Name))
		}
		pipe.HSetNX(ctx, NameIndexKey(a.Type), nameKey(a.Name), a.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update actor")
	}

	return &UpdateOutput{Actor: &a}, nil
}

func (r *redisRepository) ListEmbedded(ctx context.Context, input ListEmbeddedInput) (*ListEmbeddedOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	ids, err := r.client.LRange(ctx, EmbeddedOrderKey(input.ActorID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list embedded documents")
	}
	if len(ids) == 0 {
		return &ListEmbeddedOutput{Documents: []*vtt.Document{}}, nil
	}

	values, err := r.client.HMGet(ctx, EmbeddedKey(input.ActorID), ids...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load embedded documents")
	}

	docs := make([]*vtt.Document, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var doc vtt.Document
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal embedded document %s", ids[i])
		}
		docs = append(docs, &doc)
	}
	return &ListEmbeddedOutput{Documents: docs}, nil
}

func (r *redisRepository) DeleteEmbedded(ctx context.Context, input DeleteEmbeddedInput) (*DeleteEmbeddedOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if len(input.IDs) == 0 {
		return &DeleteEmbeddedOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	del := pipe.HDel(ctx, EmbeddedKey(input.ActorID), input.IDs...)
	for _, id := range input.IDs {
		pipe.LRem(ctx, EmbeddedOrderKey(input.ActorID), 0, id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete embedded documents")
	}

	return &DeleteEmbeddedOutput{Deleted: int(del.Val())}, nil
}

func (r *redisRepository) CreateEmbedded(ctx context.Context, input CreateEmbeddedInput) (*CreateEmbeddedOutput, error) {
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	exists, err := r.client.Exists(ctx, ActorKey(input.ActorID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, entityError(errors.CodeNotFound, "attach", storedActor(input.ActorID), core.ErrEntityNotFound)
	}

	created := make([]*vtt.Document, 0, len(input.Documents))
	fields := make([]interface{}, 0, 2*len(input.Documents))
	ids := make([]interface{}, 0, len(input.Documents))
	for _, doc := range input.Documents {
		if doc == nil {
			continue
		}
		embedded := doc.Clone()
		embedded.ID = r.itemIDs.Generate()

		data, err := json.Marshal(embedded)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal embedded document %s", doc.Name)
		}
		fields = append(fields, embedded.ID, data)
		ids = append(ids, embedded.ID)
		created = append(created, embedded)
	}
	if len(created) == 0 {
		return &CreateEmbeddedOutput{Documents: created}, nil
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, EmbeddedKey(input.ActorID), fields...)
	pipe.RPush(ctx, EmbeddedOrderKey(input.ActorID), ids...)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to attach documents")
	}

	return &CreateEmbeddedOutput{Documents: created}, nil
}
