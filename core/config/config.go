package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	OTel     OTelConfig
	AgentLLM LLMConfig
	Outbound OutboundConfig
	Delivery DeliveryConfig
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type LLMConfig struct {
	Provider  string // "openai" or "anthropic"
	APIKey    string
	BaseURL   string // Optional: for custom endpoints
	Model     string
	MaxTokens int
}

// OutboundConfig describes the Redis stream used for outbound chat delivery.
type OutboundConfig struct {
	RedisURL  string
	Stream    string
	Group     string
	DLQStream string
	Consumer  string
}

// DeliveryConfig describes the chat-platform webhook the worker posts to.
type DeliveryConfig struct {
	WebhookBaseURL string
	Token          string
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
	ServiceTypeWorker ServiceType = "worker"
)

// Load loads configuration from environment variables.
// In development, it loads from service-specific .env files
// (.env.server or .env.worker), falling back to .env.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("CONCIERGE_ENV", "development") == "development" {
		envFile := fmt.Sprintf(".env.%s", serviceType)
		if err := godotenv.Load(envFile); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	cfg := Config{
		Env:  getEnv("CONCIERGE_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "concierge"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		AgentLLM: LLMConfig{
			Provider:  getEnv("AGENT_LLM_PROVIDER", "openai"),
			APIKey:    getEnv("AGENT_LLM_API_KEY", os.Getenv("OPENAI_API_KEY")),
			BaseURL:   getEnv("AGENT_LLM_BASE_URL", ""),
			Model:     getEnv("AGENT_LLM_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvInt("AGENT_LLM_MAX_TOKENS", 4096),
		},
		Outbound: OutboundConfig{
			RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Stream:    getEnv("REDIS_OUTBOUND_STREAM", "concierge_outbound"),
			Group:     getEnv("REDIS_OUTBOUND_GROUP", "concierge_delivery"),
			DLQStream: getEnv("REDIS_OUTBOUND_DLQ_STREAM", "concierge_outbound_dlq"),
			Consumer:  getEnv("REDIS_CONSUMER_NAME", "concierge-worker"),
		},
		Delivery: DeliveryConfig{
			WebhookBaseURL: getEnv("DELIVERY_WEBHOOK_URL", ""),
			Token:          getEnv("DELIVERY_WEBHOOK_TOKEN", ""),
		},
	}

	if serviceType == ServiceTypeServer && cfg.AgentLLM.APIKey == "" {
		return Config{}, fmt.Errorf("AGENT_LLM_API_KEY is required")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c DeliveryConfig) Enabled() bool {
	return c.WebhookBaseURL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
