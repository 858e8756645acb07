package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"groupbook.app/concierge/common/id"
	"groupbook.app/concierge/common/llm"
	"groupbook.app/concierge/common/logger"
	"groupbook.app/concierge/common/otel"
	"groupbook.app/concierge/core/config"
	"groupbook.app/concierge/internal/agent"
	"groupbook.app/concierge/internal/history"
	"groupbook.app/concierge/internal/http/handler"
	"groupbook.app/concierge/internal/http/middleware"
	httprouter "groupbook.app/concierge/internal/http/router"
	"groupbook.app/concierge/internal/messenger"
	"groupbook.app/concierge/internal/queue"
	"groupbook.app/concierge/internal/tools"
	"groupbook.app/concierge/internal/vote"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// slog isn't configured yet at this point
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "concierge starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
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
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Outbound.Stream)

	producer := queue.NewRedisProducer(redisClient, cfg.Outbound.Stream, slog.Default())
	defer producer.Close()

	outbound := messenger.NewOutbound(producer)

	registry := vote.NewRegistry()
	messageLog := vote.NewLog()
	sessions := vote.NewSessionBuilder(registry, outbound)
	tally := vote.NewTally(registry, messageLog)

	llmClient, err := llm.NewAgentClient(llm.Config{
		Provider: cfg.AgentLLM.Provider,
		APIKey:   cfg.AgentLLM.APIKey,
		BaseURL:  cfg.AgentLLM.BaseURL,
		Model:    cfg.AgentLLM.Model,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create llm client", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "llm client ready", "provider", cfg.AgentLLM.Provider, "model", llmClient.Model())

	catalog := tools.NewCatalog(sessions, tally)
	dispatcher := agent.NewDispatcher(
		agent.NewRuntime(llmClient),
		catalog,
		history.New(agent.SystemPrompt),
		outbound,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, dispatcher, messageLog, tally)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, dispatcher *agent.Dispatcher, messageLog *vote.Log, tally *vote.Tally) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	chatHandler := handler.NewChatHandler(dispatcher)
	groupHandler := handler.NewGroupHandler(messageLog, tally)
	httprouter.SetupRoutes(router, chatHandler, groupHandler)

	return router
}

const banner = `
 ██████╗ ██████╗ ███╗   ██╗ ██████╗██╗███████╗██████╗  ██████╗ ███████╗
██╔════╝██╔═══██╗████╗  ██║██╔════╝██║██╔════╝██╔══██╗██╔════╝ ██╔════╝
██║     ██║   ██║██╔██╗ ██║██║     ██║█████╗  ██████╔╝██║  ███╗█████╗
██║     ██║   ██║██║╚██╗██║██║     ██║██╔══╝  ██╔══██╗██║   ██║██╔══╝
╚██████╗╚██████╔╝██║ ╚████║╚██████╗██║███████╗██║  ██║╚██████╔╝███████╗
 ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝╚═╝╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝
`
