package shared

import (
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	BackendBase string
	BackendKey  string
	BackendRPS  int

	RedisAddr string
	RedisPass string
	RedisDB   int

	EnrichWorkers   int
	PrefetchWorkers int
	CacheTTL        time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		BackendBase:     env("BACKEND_BASE_URL", "http://localhost:8000/api"),
		BackendKey:      env("BACKEND_API_KEY", ""),
		BackendRPS:      atoi("BACKEND_RPS", 10),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		EnrichWorkers:   atoi("ENRICH_WORKERS", 8),
		PrefetchWorkers: atoi("PREFETCH_WORKERS", 4),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 120)) * time.Second,
	}
	if c.BackendKey == "" {
		log.Warn().Msg("BACKEND_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
