package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles read-side caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	// FieldTripListTTL is short because admins can add trips and
	// schools at any time and the listing embeds both.
	FieldTripListTTL = 30 * time.Second
)

const fieldTripListKey = "cache:fieldtrips"

// GetFieldTripList retrieves the cached field-trip listing into dest.
// The bool reports whether the cache held a value.
func (s *CacheStore) GetFieldTripList(ctx context.Context, dest any) (bool, error) {
	data, err := s.client.Get(ctx, fieldTripListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // Cache miss
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetFieldTripList stores the field-trip listing in cache.
func (s *CacheStore) SetFieldTripList(ctx context.Context, listing any) error {
	data, err := json.Marshal(listing)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, fieldTripListKey, data, FieldTripListTTL).Err()
}

// InvalidateFieldTripList drops the cached listing. Called after admin
// writes so the next read sees fresh data.
func (s *CacheStore) InvalidateFieldTripList(ctx context.Context) error {
	return s.client.Del(ctx, fieldTripListKey).Err()
}
