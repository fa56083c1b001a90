package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/clubverde/memberweb/internal/apiclient"
	"github.com/clubverde/memberweb/internal/cart"
	"github.com/clubverde/memberweb/internal/config"
	"github.com/clubverde/memberweb/internal/db"
	"github.com/clubverde/memberweb/internal/events"
	"github.com/clubverde/memberweb/internal/httpserver"
	"github.com/clubverde/memberweb/internal/logging"
	"github.com/clubverde/memberweb/internal/search"
	"github.com/clubverde/memberweb/internal/session"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	storage, cleanup, err := newCartStorage(cfg)
	if err != nil {
		log.Fatalf("cart storage: %v", err)
	}
	defer cleanup()

	api := apiclient.NewClient(cfg.BackendURL)
	sessions := session.NewCache(api)
	store := cart.NewStore(storage)

	var searchClient *search.Client
	if cfg.ESURL != "" {
		searchClient, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex)
		if err != nil {
			log.Fatalf("search client: %v", err)
		}
	}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(httpserver.RequestLogger(logger))
	e.Use(echomw.CORS())
	e.Use(echomw.Secure())

	httpserver.Register(e, &httpserver.Deps{
		Auth:      &httpserver.AuthHTTP{Sessions: sessions, Producer: producer, CookieTTL: cfg.AuthCookieTTL},
		Cart:      &httpserver.CartHTTP{Store: store, API: api, Producer: producer},
		Catalog:   &httpserver.CatalogHTTP{API: api, Search: searchClient},
		Admin:     &httpserver.AdminHTTP{API: api},
		StaticDir: cfg.StaticDir,
	})

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, cfg.ListenAddr)
		if err := e.Start(cfg.ListenAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}

// newCartStorage prefers Redis and falls back to the SQL store so a single
// cart API works in both deployment shapes.
func newCartStorage(cfg *config.Config) (cart.Storage, func(), error) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, nil, err
		}
		return cart.NewRedisStorage(client, cfg.AuthCookieTTL), func() { client.Close() }, nil
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		return nil, nil, err
	}

	storage, err := cart.NewGormStorage(gdb)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return storage, cleanup, nil
}
