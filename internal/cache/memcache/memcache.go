// Package memcache is the in-process LRU tier of the summary cache.
package memcache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/spatialkit/planar/internal/cache"
	"github.com/spatialkit/planar/internal/core/model"
)

type Cache struct {
	lru *lru.Cache[string, model.Summary]
}

var _ cache.Interface = (*Cache)(nil)

func New(size int) (*Cache, error) {
	l, err := lru.New[string, model.Summary](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

func (c *Cache) Get(_ context.Context, key string) (model.Summary, bool, error) {
	s, ok := c.lru.Get(key)
	return s, ok, nil
}

// Set ignores ttl; eviction is purely by recency. Summaries are
// derived from pure parsing, so entries never go stale.
func (c *Cache) Set(_ context.Context, key string, s model.Summary, _ time.Duration) error {
	c.lru.Add(key, s)
	return nil
}

func (c *Cache) Len() int { return c.lru.Len() }
