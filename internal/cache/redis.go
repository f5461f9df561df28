package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	listingsTTL time.Duration
}

// Callers fall back to the source of truth on errors, so an unreachable Redis
// must fail fast.
const (
	dialTimeout = 500 * time.Millisecond
	ioTimeout   = 300 * time.Millisecond
)

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		MaxRetries:   1,
	})
}

func NewRedisCache(client *redis.Client, listingsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      client,
		listingsTTL: listingsTTL,
	}
}

// GetListings returns nil, nil on a miss.
func (c *RedisCache) GetListings(ctx context.Context, kind domain.ListingKind) ([]domain.Listing, error) {
	data, err := c.client.Get(ctx, listingsKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var listings []domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *RedisCache) SetListings(ctx context.Context, kind domain.ListingKind, listings []domain.Listing) error {
	payload, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listingsKey(kind), payload, c.listingsTTL).Err()
}

func listingsKey(kind domain.ListingKind) string {
	return "cache:listings:" + string(kind)
}
