package config

import (
	"os"
	"strings"
)

// DefaultDBPath is where task logs land when ANSIBLE_SQLITE_PATH is not set.
const DefaultDBPath = "/var/cache/ansible_logs/logs.db"

// App holds runtime configuration derived from environment variables.
type App struct {
	DBPath       string
	APIPort      string
	Environment  string
	LogLevel     string
	CORSOrigins  []string
	KafkaBrokers string
	KafkaTopic   string
}

// FromEnv loads the application configuration from environment variables.
// The recorder and the query service share one surface: both resolve the
// store location the same way.
func FromEnv() App {
	return App{
		DBPath:       getEnv("ANSIBLE_SQLITE_PATH", DefaultDBPath),
		APIPort:      getEnv("API_PORT", "5000"),
		Environment:  getEnv("ENVIRONMENT", "production"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  getCORSOrigins(),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"), // empty disables the mirror
		KafkaTopic:   getEnv("KAFKA_TOPIC", "ansible.task-logs"),
	}
}

// MirrorEnabled reports whether recorded entries should also be
// published to Kafka.
func (a App) MirrorEnabled() bool {
	return a.KafkaBrokers != ""
}

// BrokerList splits the comma-separated broker string.
func (a App) BrokerList() []string {
	brokers := []string{}
	for _, b := range strings.Split(a.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func getCORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}

	origins := []string{}
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
