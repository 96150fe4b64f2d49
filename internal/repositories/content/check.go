package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	redisclient "github.com/KirkDiggler/ddb-importer/internal/redis"
)

// CheckReport lists the problems found in a Redis custom store
type CheckReport struct {
	StoreID string
	// Checked is the number of stored documents examined
	Checked int
	// Corrupted holds ids whose document does not decode
	Corrupted []string
	// Dangling holds ids listed in the store order without a document or
	// an index entry
	Dangling []string
	// Repaired is true when the problems were removed
	Repaired bool
}

// Clean reports whether nothing was found
func (r *CheckReport) Clean() bool {
	return len(r.Corrupted) == 0 && len(r.Dangling) == 0
}

// CheckRedis scans a Redis custom store for undecodable documents and for
// ids that Index would skip. With fix set, those ids are removed from the
// store so the importer synthesizes them again.
func CheckRedis(ctx context.Context, client redisclient.Client, storeID string, fix bool) (*CheckReport, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}
	storeID = storeIDOrDefault(storeID)
	report := &CheckReport{StoreID: storeID}

	prefix := DocumentKey(storeID, "")
	stored := make(map[string]bool)

	iter := client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := strings.TrimPrefix(key, prefix)
		report.Checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var doc vtt.Document
		if err := json.Unmarshal([]byte(data), &doc); err != nil || doc.Name == "" {
			slog.WarnContext(ctx, "corrupted document in custom store", "store", storeID, "id", id)
			report.Corrupted = append(report.Corrupted, id)
			continue
		}
		stored[id] = true
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan store %s", storeID)
	}

	ids, err := client.LRange(ctx, OrderKey(storeID), 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list store %s", storeID)
	}
	indexed, err := client.HKeys(ctx, IndexKey(storeID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read index of store %s", storeID)
	}
	inIndex := make(map[string]bool, len(indexed))
	for _, id := range indexed {
		inIndex[id] = true
	}

	corrupted := make(map[string]bool, len(report.Corrupted))
	for _, id := range report.Corrupted {
		corrupted[id] = true
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] || corrupted[id] {
			continue
		}
		seen[id] = true
		if !stored[id] || !inIndex[id] {
			report.Dangling = append(report.Dangling, id)
		}
	}

	if !fix || report.Clean() {
		return report, nil
	}

	pipe := client.TxPipeline()
	for _, id := range append(append([]string(nil), report.Corrupted...), report.Dangling...) {
		pipe.Del(ctx, DocumentKey(storeID, id))
		pipe.HDel(ctx, IndexKey(storeID), id)
		pipe.LRem(ctx, OrderKey(storeID), 0, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to repair store %s", storeID)
	}

	slog.InfoContext(ctx, "repaired custom store",
		"store", storeID,
		"corrupted", len(report.Corrupted),
		"dangling", len(report.Dangling))
	report.Repaired = true
	return report, nil
}
