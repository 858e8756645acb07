package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"groupbook.app/concierge/common/id"
	"groupbook.app/concierge/common/logger"
	"groupbook.app/concierge/common/otel"
	"groupbook.app/concierge/core/config"
	"groupbook.app/concierge/internal/queue"
	"groupbook.app/concierge/internal/worker"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "delivery worker starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	if !cfg.Delivery.Enabled() {
		slog.ErrorContext(ctx, "DELIVERY_WEBHOOK_URL is required for the delivery worker")
		os.Exit(1)
	}

	redisOpts, err := redis.ParseURL(cfg.Outbound.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Outbound.Stream, "group", cfg.Outbound.Group)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Outbound.Stream,
		Group:        cfg.Outbound.Group,
		Consumer:     cfg.Outbound.Consumer,
		DLQStream:    cfg.Outbound.DLQStream,
		BatchSize:    1,
		Block:        5 * time.Second,
		MaxAttempts:  3,
		RequeueDelay: 1 * time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create redis consumer", "error", err)
		os.Exit(1)
	}

	deliverer := worker.NewWebhookDeliverer(worker.WebhookConfig{
		BaseURL: cfg.Delivery.WebhookBaseURL,
		Token:   cfg.Delivery.Token,
	})

	w := worker.New(consumer, deliverer, worker.Config{MaxAttempts: 3})

	reclaimer := worker.NewRedisReclaimer(redisClient, worker.RedisReclaimerConfig{
		Stream:    cfg.Outbound.Stream,
		Group:     cfg.Outbound.Group,
		Consumer:  cfg.Outbound.Consumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  1 * time.Minute,
		BatchSize: 10,
	}, consumer, w.ProcessMessage)

	errCh := make(chan error, 1)

	go func() {
		slog.InfoContext(ctx, "worker loop starting", "consumer", cfg.Outbound.Consumer)
		if err := w.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	go func() {
		slog.InfoContext(ctx, "reclaimer starting")
		reclaimer.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.ErrorContext(ctx, "worker loop failed", "error", err)
	case sig := <-quit:
		slog.InfoContext(ctx, "shutdown signal received", "signal", sig.String())
	}

	slog.InfoContext(ctx, "shutting down...")

	reclaimer.Stop()
	w.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

const banner = `
██████╗ ███████╗██╗     ██╗██╗   ██╗███████╗██████╗ ██╗   ██╗
██╔══██╗██╔════╝██║     ██║██║   ██║██╔════╝██╔══██╗╚██╗ ██╔╝
██║  ██║█████╗  ██║     ██║██║   ██║█████╗  ██████╔╝ ╚████╔╝
██║  ██║██╔══╝  ██║     ██║╚██╗ ██╔╝██╔══╝  ██╔══██╗  ╚██╔╝
██████╔╝███████╗███████╗██║ ╚═████╔╝ ███████╗██║  ██║   ██║
╚═════╝ ╚══════╝╚══════╝╚═╝   ╚═══╝  ╚══════╝╚═╝  ╚═╝   ╚═╝
`
