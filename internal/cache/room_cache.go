package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwrk-planet/rooms-api/internal/domain"

	"github.com/go-redis/redis/v8"
)

const (
	DefaultKey = "rooms:list:all"
	DefaultTTL = 5 * time.Second
)

// RoomCache — read-through кеш списка комнат поверх любого RoomLister.
// Ошибки Redis не ломают чтение: запрос уходит в хранилище.
type RoomCache struct {
	next   domain.RoomLister
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

type Options struct {
	Key string
	TTL time.Duration
}

func NewRoomCache(next domain.RoomLister, client redis.UniversalClient, opts Options) *RoomCache {
	if opts.Key == "" {
		opts.Key = DefaultKey
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	return &RoomCache{
		next:   next,
		client: client,
		key:    opts.Key,
		ttl:    opts.TTL,
	}
}

func (c *RoomCache) ListAll(ctx context.Context) ([]domain.Room, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	switch {
	case err == nil:
		var rooms []domain.Room
		jerr := json.Unmarshal(data, &rooms)
		if jerr == nil && rooms != nil {
			return rooms, nil
		}
		slog.WarnContext(ctx, "rooms cache: corrupt entry, falling back to store",
			slog.String("key", c.key), slog.Any("err", jerr))
	case errors.Is(err, redis.Nil):
		// промах
	default:
		slog.WarnContext(ctx, "rooms cache: get failed, falling back to store",
			slog.String("key", c.key), slog.Any("err", err))
	}

	rooms, err := c.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store(ctx, rooms); err != nil {
		slog.WarnContext(ctx, "rooms cache: set failed",
			slog.String("key", c.key), slog.Any("err", err))
	}
	return rooms, nil
}

func (c *RoomCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("del %s: %w", c.key, err)
	}
	return nil
}

func (c *RoomCache) store(ctx context.Context, rooms []domain.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("marshal rooms: %w", err)
	}
	return c.client.Set(ctx, c.key, data, c.ttl).Err()
}
