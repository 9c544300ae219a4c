package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/spatialkit/planar/internal/cache"
	"github.com/spatialkit/planar/internal/core/model"
)

type fakeCache struct {
	mu     sync.Mutex
	data   map[string]model.Summary
	getErr error
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]model.Summary)}
}

func (f *fakeCache) Get(_ context.Context, key string) (model.Summary, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return model.Summary{}, false, f.getErr
	}
	s, ok := f.data[key]
	return s, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, s model.Summary, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.data[key] = s
	return nil
}

var _ cache.Interface = (*fakeCache)(nil)

func newService(c cache.Interface) *Service {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), c, time.Minute, 100*time.Millisecond)
}

func TestImport_MissThenHit(t *testing.T) {
	fc := newFakeCache()
	svc := newService(fc)
	req := model.ImportRequest{Format: model.FormatWKT, Data: []byte("POLYGON ((0 0, 4 0, 4 4, 0 4, 0 0))")}

	sum, cached, err := svc.Import(context.Background(), req)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if cached {
		t.Fatalf("first import must be a miss")
	}
	if sum.Type != "polygon" || sum.Area != 16 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if fc.sets != 1 {
		t.Fatalf("summary not written back, sets=%d", fc.sets)
	}

	sum2, cached, err := svc.Import(context.Background(), req)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !cached || sum2.Area != sum.Area {
		t.Fatalf("second import must hit: cached=%v %+v", cached, sum2)
	}
}

func TestImport_WhitespaceVariantsShareAnEntry(t *testing.T) {
	fc := newFakeCache()
	svc := newService(fc)

	a := model.ImportRequest{Format: model.FormatWKT, Data: []byte("POINT (1 2)")}
	b := model.ImportRequest{Format: model.FormatWKT, Data: []byte("  POINT   (1  2) ")}

	if _, _, err := svc.Import(context.Background(), a); err != nil {
		t.Fatalf("Import: %v", err)
	}
	_, cached, err := svc.Import(context.Background(), b)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !cached {
		t.Fatalf("reformatted document must share the cache entry")
	}
}

func TestImport_ParseFailureIsNotCached(t *testing.T) {
	fc := newFakeCache()
	svc := newService(fc)

	_, _, err := svc.Import(context.Background(), model.ImportRequest{
		Format: model.FormatWKT, Data: []byte("CIRCLE (1 2)"),
	})
	if err == nil {
		t.Fatalf("grammar failure must propagate")
	}
	if fc.sets != 0 {
		t.Fatalf("failed imports must not be cached")
	}
}

func TestImport_CacheFailureDegradesToParse(t *testing.T) {
	fc := newFakeCache()
	fc.getErr = errors.New("backend down")
	svc := newService(fc)

	sum, cached, err := svc.Import(context.Background(), model.ImportRequest{
		Format: model.FormatWKT, Data: []byte("POINT (1 2)"),
	})
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if cached || sum.Type != "point" {
		t.Fatalf("expected a fresh parse, got cached=%v %+v", cached, sum)
	}
}

func TestImport_NilCacheJustParses(t *testing.T) {
	svc := newService(nil)
	sum, cached, err := svc.Import(context.Background(), model.ImportRequest{
		Format: model.FormatEsriJSON, Data: []byte(`{"x":1,"y":2,"z":3}`),
	})
	if err != nil || cached {
		t.Fatalf("err=%v cached=%v", err, cached)
	}
	if sum.Type != "point" || sum.Dimension != 0 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}
