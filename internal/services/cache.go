package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tsmith4014/gridiron-guru-ai/internal/models"
)

// CacheService wraps redis for recommendation caching. The scoring
// pass is deterministic, so identical draft states can share results.
type CacheService struct {
	client *redis.Client
}

func NewCacheService(client *redis.Client) *CacheService {
	return &CacheService{
		client: client,
	}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := s.client.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("key not found")
		}
		return fmt.Errorf("failed to get cache: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}

// Flush clears all cache entries
func (s *CacheService) Flush() error {
	return s.client.FlushDB(context.Background()).Err()
}

// RecommendationCacheKey derives a stable key from the full draft
// state. Any change to the pool, roster or context changes the key.
func RecommendationCacheKey(req models.DraftRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		// Marshaling typed request structs cannot realistically fail;
		// fall back to a context-only key.
		return fmt.Sprintf("recommend:%d:%d:%d", req.CurrentRound, req.DraftSlot, req.Teams)
	}
	sum := sha256.Sum256(data)
	return "recommend:" + hex.EncodeToString(sum[:16])
}
