package events

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvBrokers      = "KAFKA_BROKERS"
	EnvTopic        = "KAFKA_TOPIC"
	EnvRequireAcks  = "KAFKA_REQUIRE_ACKS"
	EnvBatchTimeout = "KAFKA_BATCH_TIMEOUT"
	EnvMaxAttempts  = "KAFKA_MAX_ATTEMPTS"

	DefaultTopic        = "roomly.events"
	DefaultRequireAcks  = -1
	DefaultBatchTimeout = 100 * time.Millisecond
	DefaultMaxAttempts  = 3
)

// Config for the event publisher. Publishing is optional: with no brokers
// configured the service runs with a no-op publisher.
type Config struct {
	Brokers      []string
	Topic        string
	RequireAcks  int // -1 = all, 0 = none, 1 = leader only
	BatchTimeout time.Duration
	MaxAttempts  int
}

func LoadConfig() *Config {
	var brokers []string
	if raw := os.Getenv(EnvBrokers); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return &Config{
		Brokers:      brokers,
		Topic:        getEnvStr(EnvTopic, DefaultTopic),
		RequireAcks:  getEnvInt(EnvRequireAcks, DefaultRequireAcks),
		BatchTimeout: getEnvDuration(EnvBatchTimeout, DefaultBatchTimeout),
		MaxAttempts:  getEnvInt(EnvMaxAttempts, DefaultMaxAttempts),
	}
}

// Enabled reports whether a broker list was configured.
func (cfg *Config) Enabled() bool {
	return len(cfg.Brokers) > 0
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
