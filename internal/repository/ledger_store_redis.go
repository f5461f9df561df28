package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisLedgerStore keeps the ledger under a single Redis key with no expiry.
type RedisLedgerStore struct {
	client *redis.Client
	key    string
}

func NewRedisLedgerStore(client *redis.Client, key string) *RedisLedgerStore {
	return &RedisLedgerStore{client: client, key: key}
}

func (s *RedisLedgerStore) Load(ctx context.Context) ([]domain.Booking, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ledger: %w", err)
	}
	return decodeLedger(data)
}

func (s *RedisLedgerStore) Save(ctx context.Context, bookings []domain.Booking) error {
	data, err := encodeLedger(bookings)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set ledger: %w", err)
	}
	return nil
}

var _ LedgerStore = (*RedisLedgerStore)(nil)
