package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SubscriberStore persists the newsletter list as a single JSON array of
// addresses, read and rewritten whole like the ledger.
type SubscriberStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, emails []string) error
}

var ErrCorruptSubscribers = errors.New("subscriber list is corrupt")

func encodeSubscribers(emails []string) ([]byte, error) {
	if emails == nil {
		emails = []string{}
	}
	data, err := json.Marshal(emails)
	if err != nil {
		return nil, fmt.Errorf("encode subscribers: %w", err)
	}
	return data, nil
}

func decodeSubscribers(data []byte) ([]string, error) {
	emails := []string{}
	if len(data) == 0 {
		return emails, nil
	}
	if err := json.Unmarshal(data, &emails); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSubscribers, err)
	}
	if emails == nil {
		emails = []string{}
	}
	return emails, nil
}

type FileSubscriberStore struct {
	path string
}

func NewFileSubscriberStore(path string) *FileSubscriberStore {
	return &FileSubscriberStore{path: path}
}

func (s *FileSubscriberStore) Load(_ context.Context) ([]string, error) {
	data, err := readFileRecord(s.path)
	if err != nil {
		return nil, err
	}
	return decodeSubscribers(data)
}

func (s *FileSubscriberStore) Save(_ context.Context, emails []string) error {
	data, err := encodeSubscribers(emails)
	if err != nil {
		return err
	}
	return writeFileRecord(s.path, data)
}

type RedisSubscriberStore struct {
	client *redis.Client
	key    string
}

func NewRedisSubscriberStore(client *redis.Client, key string) *RedisSubscriberStore {
	return &RedisSubscriberStore{client: client, key: key}
}

func (s *RedisSubscriberStore) Load(ctx context.Context) ([]string, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subscribers: %w", err)
	}
	return decodeSubscribers(data)
}

func (s *RedisSubscriberStore) Save(ctx context.Context, emails []string) error {
	data, err := encodeSubscribers(emails)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("set subscribers: %w", err)
	}
	return nil
}

type PGSubscriberStore struct {
	db  *pgxpool.Pool
	key string
}

func NewPGSubscriberStore(db *pgxpool.Pool, key string) *PGSubscriberStore {
	return &PGSubscriberStore{db: db, key: key}
}

func (s *PGSubscriberStore) Load(ctx context.Context) ([]string, error) {
	data, err := selectKV(ctx, s.db, s.key)
	if err != nil {
		return nil, err
	}
	return decodeSubscribers(data)
}

func (s *PGSubscriberStore) Save(ctx context.Context, emails []string) error {
	data, err := encodeSubscribers(emails)
	if err != nil {
		return err
	}
	return upsertKV(ctx, s.db, s.key, data)
}

var (
	_ SubscriberStore = (*FileSubscriberStore)(nil)
	_ SubscriberStore = (*RedisSubscriberStore)(nil)
	_ SubscriberStore = (*PGSubscriberStore)(nil)
)
