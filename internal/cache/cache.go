// Package cache stores geometry summaries keyed by document digest.
package cache

import (
	"context"
	"time"

	"github.com/spatialkit/planar/internal/core/model"
)

type Interface interface {
	Get(ctx context.Context, key string) (model.Summary, bool, error)
	Set(ctx context.Context, key string, s model.Summary, ttl time.Duration) error
}

// Tiered checks the in-process tier first and falls back to the shared
// one, backfilling the local tier on a remote hit. Either tier may be
// nil.
type Tiered struct {
	Local  Interface
	Shared Interface
}

func (t *Tiered) Get(ctx context.Context, key string) (model.Summary, bool, error) {
	if t.Local != nil {
		if s, ok, err := t.Local.Get(ctx, key); err == nil && ok {
			return s, true, nil
		}
	}
	if t.Shared == nil {
		return model.Summary{}, false, nil
	}
	s, ok, err := t.Shared.Get(ctx, key)
	if err != nil || !ok {
		return model.Summary{}, false, err
	}
	if t.Local != nil {
		_ = t.Local.Set(ctx, key, s, 0)
	}
	return s, true, nil
}

func (t *Tiered) Set(ctx context.Context, key string, s model.Summary, ttl time.Duration) error {
	if t.Local != nil {
		_ = t.Local.Set(ctx, key, s, ttl)
	}
	if t.Shared != nil {
		return t.Shared.Set(ctx, key, s, ttl)
	}
	return nil
}
