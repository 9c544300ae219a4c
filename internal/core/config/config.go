package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type IngestCfg struct {
	Enabled bool
	Topic   string
	Brokers string
	GroupID string
}

type Config struct {
	Addr            string
	LogLevel        string
	RedisAddr       string
	RedisEnabled    bool
	CacheSize       int
	CacheOpTimeout  time.Duration
	CacheTTLDefault time.Duration
	MaxBodyBytes    int64
	Ingest          IngestCfg
}

func FromEnv() Config {
	return Config{
		Addr:            getenv("ADDR", ":8090"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		RedisAddr:       getenv("REDIS_ADDR", "localhost:6379"),
		RedisEnabled:    getbool("REDIS_ENABLED", false),
		CacheSize:       getint("CACHE_SIZE", 4096),
		CacheOpTimeout:  getduration("CACHE_OP_TIMEOUT", 250*time.Millisecond),
		CacheTTLDefault: getduration("CACHE_TTL_DEFAULT", 10*time.Minute),
		MaxBodyBytes:    int64(getint("MAX_BODY_BYTES", 4<<20)),
		Ingest: IngestCfg{
			Enabled: getbool("INGEST_ENABLED", false),
			Topic:   getenv("KAFKA_TOPIC", "geometry-documents"),
			Brokers: getenv("KAFKA_BROKERS", "localhost:9092"),
			GroupID: getenv("KAFKA_GROUP_ID", "geometry-ingest"),
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "y", "yes":
			return true
		case "0", "f", "false", "n", "no":
			return false
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
