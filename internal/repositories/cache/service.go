package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"reship/internal/models"

	"github.com/redis/go-redis/v9"
)

const zoneSnapshotKey = "zones:snapshot"

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get decodes key into dest. A miss is (false, nil).
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Zone snapshot caching
func (s *CacheService) CacheZones(ctx context.Context, zones []models.PricingZone) error {
	return s.Set(ctx, zoneSnapshotKey, zones)
}

func (s *CacheService) GetZones(ctx context.Context) ([]models.PricingZone, bool, error) {
	var zones []models.PricingZone
	found, err := s.Get(ctx, zoneSnapshotKey, &zones)
	if err != nil || !found {
		return nil, false, err
	}
	return zones, true, nil
}

func (s *CacheService) InvalidateZones(ctx context.Context) error {
	return s.Delete(ctx, zoneSnapshotKey)
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
