package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samandr77/microservices/access/internal/api"
	"github.com/samandr77/microservices/access/internal/api/events"
	"github.com/samandr77/microservices/access/internal/clients/users"
	"github.com/samandr77/microservices/access/internal/repository"
	"github.com/samandr77/microservices/access/internal/service"
	"github.com/samandr77/microservices/access/pkg/broker"
	"github.com/samandr77/microservices/access/pkg/cache"
	"github.com/samandr77/microservices/access/pkg/config"
	"github.com/samandr77/microservices/access/pkg/logger"
	"github.com/samandr77/microservices/access/pkg/postgres"
	"github.com/samandr77/microservices/access/pkg/security"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

// @title Seva access API
// @version 1.0
// @description Roles, data access levels and permission checks.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
//
//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		slog.WarnContext(ctx, "redis is unavailable, counsellee lookups will hit postgres", "error", err)
	}

	counsellees := cache.NewCounselleeCache(rdb, cfg.Redis.CounselleeCacheTTL, cfg.Redis.CounselleeRefillHold)

	var usersClient service.UsersClient
	if cfg.UsersService.URL != "" {
		usersClient = users.NewClient(cfg.UsersService)
	}

	var producer service.Producer

	if len(cfg.Kafka.Brokers) > 0 {
		p := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.RoleChangedTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(repo, counsellees, usersClient, producer)

	if len(cfg.Kafka.Brokers) > 0 {
		userEvents := broker.NewUserEventsConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.UserCreatedTopic)
		defer userEvents.Close()

		eventHandler := events.NewEventHandler(s)

		userEvents.On(cfg.Kafka.UserCreatedTopic, eventHandler.OnUserCreated)
		userEvents.Start(ctx)
	} else {
		slog.WarnContext(ctx, "KAFKA_BROKERS is empty, user events are disabled")
	}

	publicKey, err := security.ParseBase64PublicKey(cfg.JWTPublicKey)
	panicOnErr("parse jwt public key", err)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(security.NewTokenValidator(publicKey))

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
