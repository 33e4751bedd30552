package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhscancode/cluedin/internal/model"
	"github.com/redis/go-redis/v9"
)

// FailureRepository keeps a capped, newest-first log of absorbed enrichment
// failures in a Redis list.
type FailureRepository struct {
	client     *redis.Client
	key        string
	maxEntries int64
}

func NewFailureRepository(client *redis.Client, key string, maxEntries int64) *FailureRepository {
	return &FailureRepository{client: client, key: key, maxEntries: maxEntries}
}

func (r *FailureRepository) RecordFailure(ctx context.Context, failure model.EnrichmentFailure) error {
	payload, err := json.Marshal(failure)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, payload)
	pipe.LTrim(ctx, r.key, 0, r.maxEntries-1)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *FailureRepository) RecentFailures(ctx context.Context, limit int) ([]model.EnrichmentFailure, error) {
	values, err := r.client.LRange(ctx, r.key, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	failures := make([]model.EnrichmentFailure, 0, len(values))
	for _, v := range values {
		var f model.EnrichmentFailure
		if err := json.Unmarshal([]byte(v), &f); err != nil {
			return nil, fmt.Errorf("failed to decode failure entry: %w", err)
		}
		failures = append(failures, f)
	}

	return failures, nil
}
