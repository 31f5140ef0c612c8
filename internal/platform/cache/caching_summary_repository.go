// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"invest_backend/internal/feature/commitments/usecase"
)

// CachingSummaryRepository decorates a SummaryRepository with Redis caching.
// Aggregate sums are the most expensive queries of the read API and change
// only when an ingestion run completes, so they cache well. A nil Redis
// client makes every call a transparent pass-through.
type CachingSummaryRepository struct {
	inner     usecase.SummaryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SummaryRepository = (*CachingSummaryRepository)(nil)

// NewCachingSummaryRepository decorates a SummaryRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "commitments".
func NewCachingSummaryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SummaryRepository, namespace string) *CachingSummaryRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "commitments"
	}
	return &CachingSummaryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// SumByInvestor は投資家ごとの合計額をキャッシュ経由で返します。
func (c *CachingSummaryRepository) SumByInvestor(ctx context.Context) (map[string]int64, error) {
	if c.rdb == nil {
		return c.inner.SumByInvestor(ctx)
	}

	key := c.namespace + ":sum_by_investor"
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out map[string]int64
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.SumByInvestor(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort
	}
	return out, nil
}

// SumForInvestor は特定投資家の合計額をキャッシュ経由で返します。
func (c *CachingSummaryRepository) SumForInvestor(ctx context.Context, investorID string) (int64, error) {
	if c.rdb == nil {
		return c.inner.SumForInvestor(ctx, investorID)
	}

	key := c.namespace + ":total:" + safe(investorID)
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil && s != "" {
		if total, err := strconv.ParseInt(s, 10, 64); err == nil {
			return total, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	total, err := c.inner.SumForInvestor(ctx, investorID)
	if err != nil {
		return 0, err
	}

	_ = c.rdb.Set(ctx, key, strconv.FormatInt(total, 10), c.ttl).Err() // Best effort
	return total, nil
}

// SumByAssetClass は特定投資家のアセットクラス別合計をキャッシュ経由で返します。
func (c *CachingSummaryRepository) SumByAssetClass(ctx context.Context, investorID string) (map[string]int64, error) {
	if c.rdb == nil {
		return c.inner.SumByAssetClass(ctx, investorID)
	}

	key := c.namespace + ":by_asset_class:" + safe(investorID)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out map[string]int64
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.SumByAssetClass(ctx, investorID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err() // Best effort
	}
	return out, nil
}

// Invalidate removes every cached summary in the namespace. cmd/ingest calls
// this after a successful run so readers see the new sums immediately.
func Invalidate(ctx context.Context, rdb *redis.Client, namespace string) error {
	if rdb == nil {
		return nil
	}
	if namespace == "" {
		namespace = "commitments"
	}
	return deleteByPattern(ctx, rdb, namespace+":*")
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func deleteByPattern(ctx context.Context, rdb *redis.Client, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
