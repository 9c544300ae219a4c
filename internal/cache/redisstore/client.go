// Package redisstore is the shared Redis tier of the summary cache.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spatialkit/planar/internal/cache"
	"github.com/spatialkit/planar/internal/core/model"
	"github.com/spatialkit/planar/internal/core/observability"
)

type Option func(*redis.Options)

func WithPoolSize(n int) Option {
	return func(o *redis.Options) { o.PoolSize = n }
}

func WithDialTimeout(d time.Duration) Option {
	return func(o *redis.Options) { o.DialTimeout = d }
}

func WithReadTimeout(d time.Duration) Option {
	return func(o *redis.Options) { o.ReadTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(o *redis.Options) { o.WriteTimeout = d }
}

type Client struct {
	rdb *redis.Client
}

func New(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	if addr == "" {
		return nil, errors.New("redis address is required")
	}

	ro := &redis.Options{
		Addr:         addr,
		PoolSize:     32,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	}
	for _, f := range opts {
		f(ro)
	}

	rdb := redis.NewClient(ro)

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	observability.ObserveCacheOp("ping", err, time.Since(start).Seconds())
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Client{rdb: rdb}, nil
}

func (c *Client) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ObserveCacheOp("get", nil, time.Since(start).Seconds())
		return nil, false, nil
	}
	observability.ObserveCacheOp("get", err, time.Since(start).Seconds())
	if err != nil {
		return nil, false, fmt.Errorf("redis GET %s: %w", key, err)
	}
	return val, true, nil
}

func (c *Client) SetBytes(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	start := time.Now()
	err := c.rdb.Set(ctx, key, val, ttl).Err()
	observability.ObserveCacheOp("set", err, time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("redis SET %s: %w", key, err)
	}
	return nil
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	start := time.Now()
	err := c.rdb.Del(ctx, keys...).Err()
	observability.ObserveCacheOp("del", err, time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("redis DEL %d keys: %w", len(keys), err)
	}
	return nil
}

func (c *Client) Close() error { return c.rdb.Close() }

// Store adapts the client to the summary-cache contract, serializing
// summaries as JSON.
type Store struct {
	cli        *Client
	defaultTTL time.Duration
}

var _ cache.Interface = (*Store)(nil)

func NewStore(cli *Client, defaultTTL time.Duration) *Store {
	return &Store{cli: cli, defaultTTL: defaultTTL}
}

func (s *Store) Get(ctx context.Context, key string) (model.Summary, bool, error) {
	raw, ok, err := s.cli.GetBytes(ctx, key)
	if err != nil || !ok {
		return model.Summary{}, false, err
	}
	var sum model.Summary
	if err := json.Unmarshal(raw, &sum); err != nil {
		return model.Summary{}, false, fmt.Errorf("decode summary %s: %w", key, err)
	}
	return sum, true, nil
}

func (s *Store) Set(ctx context.Context, key string, sum model.Summary, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	raw, err := json.Marshal(sum)
	if err != nil {
		return fmt.Errorf("encode summary %s: %w", key, err)
	}
	return s.cli.SetBytes(ctx, key, raw, ttl)
}
