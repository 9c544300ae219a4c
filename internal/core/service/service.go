// Package service orchestrates one import: cache lookup by document
// digest, parse on miss, summary write-back.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/spatialkit/planar/internal/cache"
	"github.com/spatialkit/planar/internal/cache/keys"
	"github.com/spatialkit/planar/internal/core/importer"
	"github.com/spatialkit/planar/internal/core/model"
	"github.com/spatialkit/planar/internal/core/observability"
)

type Service struct {
	Log       *slog.Logger
	Cache     cache.Interface // nil disables caching
	TTL       time.Duration
	OpTimeout time.Duration
}

func New(log *slog.Logger, c cache.Interface, ttl, opTimeout time.Duration) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{Log: log, Cache: c, TTL: ttl, OpTimeout: opTimeout}
}

// Import returns the summary for a document and whether it came from
// the cache. Cache failures degrade to a parse, never to a request
// failure.
func (s *Service) Import(ctx context.Context, req model.ImportRequest) (model.Summary, bool, error) {
	key := keys.Key(req.Format, req.Data)

	if s.Cache != nil {
		opCtx, cancel := s.opContext(ctx)
		sum, ok, err := s.Cache.Get(opCtx, key)
		cancel()
		if err != nil {
			s.Log.Warn("cache get failed", "key", key, "err", err)
		}
		if ok {
			observability.IncCacheHit()
			return sum, true, nil
		}
		observability.IncCacheMiss()
	}

	g, err := importer.Import(req)
	if err != nil {
		return model.Summary{}, false, err
	}
	sum := importer.Summarize(g)

	if s.Cache != nil {
		opCtx, cancel := s.opContext(ctx)
		if err := s.Cache.Set(opCtx, key, sum, s.TTL); err != nil {
			s.Log.Warn("cache set failed", "key", key, "err", err)
		}
		cancel()
	}
	return sum, false, nil
}

func (s *Service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.OpTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.OpTimeout)
}
