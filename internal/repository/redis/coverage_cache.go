package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Band_Plan/internal/coverage"

	"github.com/redis/go-redis/v9"
)

const (
	CoverageKeyPrefix = "bandplan:coverage:group"
	CoverageTTL       = 10 * time.Minute
)

// CoverageCacheRepository 整队可用性解算结果的缓存。
// 任何空闲标记或事件变更都要把相关乐队的缓存删掉，读侧回源重算。
type CoverageCacheRepository struct{}

func (r *CoverageCacheRepository) coverageKey(groupID uint64) string {
	return fmt.Sprintf("%s:%d", CoverageKeyPrefix, groupID)
}

// Get 命中返回 (result, true)；miss 返回 (nil, false) 不算错
func (r *CoverageCacheRepository) Get(ctx context.Context, groupID uint64) (*coverage.Result, bool, error) {
	raw, err := Client.Get(ctx, r.coverageKey(groupID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ErrRedisUnavailable
	}
	var res coverage.Result
	if err = json.Unmarshal([]byte(raw), &res); err != nil {
		// 缓存内容坏了当 miss 处理，顺手删掉
		_ = Client.Del(ctx, r.coverageKey(groupID)).Err()
		return nil, false, nil
	}
	return &res, true, nil
}

// Set 写失败忽略，缓存只是加速，不影响正确性
func (r *CoverageCacheRepository) Set(ctx context.Context, groupID uint64, res *coverage.Result) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = Client.Set(ctx, r.coverageKey(groupID), raw, CoverageTTL).Err()
}

func (r *CoverageCacheRepository) Invalidate(ctx context.Context, groupIDs ...uint64) {
	for _, id := range groupIDs {
		_ = Client.Del(ctx, r.coverageKey(id)).Err()
	}
}
