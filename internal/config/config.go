package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything memberweb needs from the environment. The backend
// API owns all business data; this service only keeps carts and sessions.
type Config struct {
	ServiceName string
	ListenAddr  string

	// External club backend (auth, catalog, orders, admin).
	BackendURL string

	// Cart persistence. RedisAddr empty means the SQL store is used instead.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DatabaseURL   string

	// Catalog search index.
	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	// Activity events.
	KafkaBrokers []string
	KafkaTopic   string

	// Auth cookie lifetime; the original storefront kept its token 30 days.
	AuthCookieTTL time.Duration

	// Built storefront bundle served behind the route guard.
	StaticDir string

	LogLevel string
}

func Load() *Config {
	return &Config{
		ServiceName: envDefault("SERVICE_NAME", "memberweb"),
		ListenAddr:  envDefault("LISTEN_ADDR", ":8080"),

		BackendURL: must(os.Getenv("BACKEND_API_URL"), "BACKEND_API_URL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envIntDefault("REDIS_DB", 0),
		DatabaseURL:   os.Getenv("DATABASE_URL"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    envDefault("ES_INDEX", "products"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   envDefault("KAFKA_TOPIC", "member_activity"),

		AuthCookieTTL: envDurationDefault("AUTH_COOKIE_TTL", 30*24*time.Hour),

		StaticDir: envDefault("STATIC_DIR", "web/dist"),

		LogLevel: envDefault("LOG_LEVEL", "info"),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func must(v string, name string) string {
	if v == "" {
		log.Fatalf("missing required env %s", name)
	}
	return v
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
