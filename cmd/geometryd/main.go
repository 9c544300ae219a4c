package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spatialkit/planar/internal/cache"
	"github.com/spatialkit/planar/internal/cache/memcache"
	"github.com/spatialkit/planar/internal/cache/redisstore"
	"github.com/spatialkit/planar/internal/core/config"
	"github.com/spatialkit/planar/internal/core/health"
	"github.com/spatialkit/planar/internal/core/observability"
	"github.com/spatialkit/planar/internal/core/server"
	"github.com/spatialkit/planar/internal/core/service"
	"github.com/spatialkit/planar/internal/ingest/kafkaconsumer"
	"github.com/spatialkit/planar/internal/logger"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	addrFlag := flag.String("addr", "", "listen address override")
	flag.Parse()

	cfg := config.FromEnv()
	if *addrFlag != "" {
		cfg.Addr = strings.TrimSpace(*addrFlag)
	}

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		Component: "geometryd",
	}, os.Stdout)

	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting geometryd",
		"addr", cfg.Addr,
		"version", Version,
		"redis", cfg.RedisEnabled,
		"ingest", cfg.Ingest.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	local, err := memcache.New(cfg.CacheSize)
	if err != nil {
		appLog.Error("failed to build summary cache", "err", err)
		return 1
	}
	store := &cache.Tiered{Local: local}

	if cfg.RedisEnabled {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rc, err := redisstore.New(connectCtx, cfg.RedisAddr)
		cancel()
		if err != nil {
			appLog.Error("redis connect failed", "addr", cfg.RedisAddr, "err", err)
			return 1
		}
		defer func() { _ = rc.Close() }()
		store.Shared = redisstore.NewStore(rc, cfg.CacheTTLDefault)
	}

	svc := service.New(appLog, store, cfg.CacheTTLDefault, cfg.CacheOpTimeout)

	var ready health.ReadinessReporter
	if cfg.Ingest.Enabled {
		consumer := kafkaconsumer.New(kafkaconsumer.FromService(cfg.Ingest), appLog, svc)
		ready = consumer
		go func() {
			if err := consumer.Start(ctx); err != nil {
				appLog.Error("ingest consumer stopped", "err", err)
			}
		}()
	}

	if err := server.Run(ctx, cfg, appLog, svc, ready); err != nil {
		appLog.Error("server error", "err", err)
		return 1
	}
	return 0
}
