package content

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/ddb-importer/internal/redis"
)

const (
	keyPrefix = "compendium:"

	idPrefix = "doc"
)

type redisStore struct {
	client redisclient.Client
	id     string
	label  string
	ids    idgen.Generator
}

// RedisConfig contains configuration for the Redis custom store
type RedisConfig struct {
	Client redisclient.Client
	// StoreID defaults to DefaultStoreID
	StoreID string
	// Label defaults to DefaultStoreLabel
	Label       string
	IDGenerator idgen.Generator
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

// NewRedis creates a Redis-backed custom store. The store's metadata is
// written on first Create.
func NewRedis(cfg *RedisConfig) (compendium.WritableStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewUUID(idPrefix)
	}

	return &redisStore{
		client: cfg.Client,
		id:     storeIDOrDefault(cfg.StoreID),
		label:  labelOrDefault(cfg.Label),
		ids:    ids,
	}, nil
}

// MetaKey returns the key of a store's metadata hash
func MetaKey(storeID string) string {
	return fmt.Sprintf("%s%s:meta", keyPrefix, storeID)
}

// IndexKey returns the key of a store's index hash (id -> entry)
func IndexKey(storeID string) string {
	return fmt.Sprintf("%s%s:index", keyPrefix, storeID)
}

// OrderKey returns the key of the list holding ids in insertion order
func OrderKey(storeID string) string {
	return fmt.Sprintf("%s%s:order", keyPrefix, storeID)
}

// DocumentKey returns the key of one stored document
func DocumentKey(storeID, id string) string {
	return fmt.Sprintf("%s%s:doc:%s", keyPrefix, storeID, id)
}

func (r *redisStore) ID() string {
	return r.id
}

func (r *redisStore) Index(ctx context.Context) ([]compendium.IndexEntry, error) {
	ids, err := r.client.LRange(ctx, OrderKey(r.id), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list store %s", r.id)
	}
	if len(ids) == 0 {
		return []compendium.IndexEntry{}, nil
	}

	values, err := r.client.HMGet(ctx, IndexKey(r.id), ids...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index of store %s", r.id)
	}

	entries := make([]compendium.IndexEntry, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// order and index drifted; the document is unreachable
			continue
		}
		var entry compendium.IndexEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal index entry %s", ids[i])
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *redisStore) Document(ctx context.Context, id string) (*vtt.Document, error) {
	if id == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result, err := r.client.Get(ctx, DocumentKey(r.id, id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("document %s not found in store %s", id, r.id)
		}
		return nil, errors.Wrapf(err, "failed to get document %s", id)
	}

	var doc vtt.Document
	if err := json.Unmarshal([]byte(result), &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal document %s", id)
	}
	return &doc, nil
}

func (r *redisStore) Create(ctx context.Context, doc *vtt.Document) (*vtt.Document, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	stored := doc.Clone()
	stored.ID = r.ids.Generate()
	stored.Flags = vtt.DocumentFlags{}

	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal document")
	}
	entry, err := json.Marshal(compendium.IndexEntry{ID: stored.ID, Name: stored.Name, Type: stored.Type})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal index entry")
	}

	pipe := r.client.TxPipeline()
	pipe.HSetNX(ctx, MetaKey(r.id), "label", r.label)
	pipe.Set(ctx, DocumentKey(r.id, stored.ID), data, 0)
	pipe.HSet(ctx, IndexKey(r.id), stored.ID, entry)
	pipe.RPush(ctx, OrderKey(r.id), stored.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create document %s", stored.Name)
	}

	return stored, nil
}
