package redisstore

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/spatialkit/planar/internal/core/model"
)

// creates new client connected to miniredis for testing
func newMini(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	t.Cleanup(cancel)

	rc, err := New(ctx, mr.Addr())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })
	return rc, mr
}

func TestClient_SetGetDel(t *testing.T) {
	rc, _ := newMini(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := rc.SetBytes(ctx, "k1", []byte("v1"), time.Minute); err != nil {
		t.Fatalf("SetBytes: %v", err)
	}

	got, ok, err := rc.GetBytes(ctx, "k1")
	if err != nil || !ok || string(got) != "v1" {
		t.Fatalf("GetBytes: %q ok=%v err=%v", got, ok, err)
	}

	if _, ok, err = rc.GetBytes(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key must be a clean miss, ok=%v err=%v", ok, err)
	}

	if err := rc.Del(ctx, "k1"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if _, ok, _ = rc.GetBytes(ctx, "k1"); ok {
		t.Fatalf("deleted key still present")
	}
}

func TestStore_SummaryRoundTripAndTTL(t *testing.T) {
	rc, mr := newMini(t)
	store := NewStore(rc, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	want := model.Summary{
		Type: "polygon", Dimension: 2, Area: 16, Length: 16,
		Bounds:    &model.BoundsJSON{XMax: 4, YMax: 4},
		PartCount: 1, PointCount: 5,
	}
	if err := store.Set(ctx, "geom:wkt:d=0000000000000001", want, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := store.Get(ctx, "geom:wkt:d=0000000000000001")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Type != want.Type || got.Area != want.Area || got.Bounds == nil || got.Bounds.XMax != 4 {
		t.Fatalf("summary changed across store: %+v", got)
	}

	// default ttl applied when the caller passes 0
	if ttl := mr.TTL("geom:wkt:d=0000000000000001"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}

	if _, ok, err = store.Get(ctx, "nope"); err != nil || ok {
		t.Fatalf("miss must not error, ok=%v err=%v", ok, err)
	}
}

func TestNew_RequiresAddress(t *testing.T) {
	if _, err := New(context.Background(), ""); err == nil {
		t.Fatalf("empty address must be rejected")
	}
}
