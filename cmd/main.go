package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"omniflow-broadcast/internal/adapter/channel"
	httpadapter "omniflow-broadcast/internal/adapter/http"
	"omniflow-broadcast/internal/adapter/postgres"
	redisadapter "omniflow-broadcast/internal/adapter/redis"
	"omniflow-broadcast/internal/adapter/usecase"
	"omniflow-broadcast/internal/config"
	"omniflow-broadcast/internal/core/domain"
	"omniflow-broadcast/internal/db"
	"omniflow-broadcast/internal/scheduler"
)

// main loads configuration, optionally runs migrations, wires the broadcast
// engine with its adapters and starts the HTTP server plus the optional
// dispatch loop. On SIGINT/SIGTERM it shuts everything down gracefully.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	registry := channel.NewRegistry()
	chat := channel.NewChatAdapter(cfg.Channels.ChatURL, cfg.Channels.Timeout)
	phone := channel.NewPhoneAdapter(cfg.Channels.PhoneURL, cfg.Channels.Timeout)
	registry.Register(domain.ChannelTelegram, chat)
	registry.Register(domain.ChannelWhatsApp, phone)
	registry.Register(domain.ChannelWABA, phone)
	registry.Register(domain.ChannelSMS, phone)

	repo := postgres.NewBroadcastRepository(pool)
	engine := usecase.NewBroadcastEngine(repo, registry, logger)

	if cfg.Redis.Enabled() {
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		engine.WithStatsCache(redisadapter.NewStatsCache(rdb, cfg.Redis.TTL))
		logger.Info("stats cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	if cfg.Dispatch.Enabled {
		tick := scheduler.NewBroadcastTick(engine, logger, cfg.Dispatch.BatchSize, cfg.Dispatch.DelayMs)
		sched, err := scheduler.New(cfg.Dispatch.Interval, tick)
		if err != nil {
			logger.Error("scheduler setup error", slog.Any("error", err))
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	handler := httpadapter.NewHandler(engine, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
