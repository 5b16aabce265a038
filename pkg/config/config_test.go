package config

import (
	"os"
	"testing"
)

func TestFromEnv_WhenAllVariablesSet_ThenReturnsConfigWithSetValues(t *testing.T) {
	// Arrange
	originalDBPath := os.Getenv("ANSIBLE_SQLITE_PATH")
	originalAPIPort := os.Getenv("API_PORT")
	originalEnvironment := os.Getenv("ENVIRONMENT")
	originalLogLevel := os.Getenv("LOG_LEVEL")
	originalCORSOrigins := os.Getenv("CORS_ORIGINS")
	originalKafkaBrokers := os.Getenv("KAFKA_BROKERS")
	originalKafkaTopic := os.Getenv("KAFKA_TOPIC")

	defer func() {
		os.Setenv("ANSIBLE_SQLITE_PATH", originalDBPath)
		os.Setenv("API_PORT", originalAPIPort)
		os.Setenv("ENVIRONMENT", originalEnvironment)
		os.Setenv("LOG_LEVEL", originalLogLevel)
		os.Setenv("CORS_ORIGINS", originalCORSOrigins)
		os.Setenv("KAFKA_BROKERS", originalKafkaBrokers)
		os.Setenv("KAFKA_TOPIC", originalKafkaTopic)
	}()

	os.Setenv("ANSIBLE_SQLITE_PATH", "/tmp/test_logs.db")
	os.Setenv("API_PORT", "9000")
	os.Setenv("ENVIRONMENT", "development")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("CORS_ORIGINS", "http://localhost:3000,https://example.com")
	os.Setenv("KAFKA_BROKERS", "kafka1:9092, kafka2:9092")
	os.Setenv("KAFKA_TOPIC", "test.topic")

	// Act
	config := FromEnv()

	// Assert
	if config.DBPath != "/tmp/test_logs.db" {
		t.Errorf("expected DBPath '/tmp/test_logs.db', got '%s'", config.DBPath)
	}
	if config.APIPort != "9000" {
		t.Errorf("expected APIPort '9000', got '%s'", config.APIPort)
	}
	if config.Environment != "development" {
		t.Errorf("expected Environment 'development', got '%s'", config.Environment)
	}
	if config.LogLevel != "debug" {
		t.Errorf("expected LogLevel 'debug', got '%s'", config.LogLevel)
	}
	if len(config.CORSOrigins) != 2 {
		t.Fatalf("expected 2 CORS origins, got %d", len(config.CORSOrigins))
	}
	if !config.MirrorEnabled() {
		t.Error("expected mirror to be enabled when KAFKA_BROKERS is set")
	}
	brokers := config.BrokerList()
	if len(brokers) != 2 || brokers[0] != "kafka1:9092" || brokers[1] != "kafka2:9092" {
		t.Errorf("expected trimmed broker list, got %v", brokers)
	}
	if config.KafkaTopic != "test.topic" {
		t.Errorf("expected KafkaTopic 'test.topic', got '%s'", config.KafkaTopic)
	}
}

func TestFromEnv_WhenNoVariablesSet_ThenReturnsDefaults(t *testing.T) {
	// Arrange
	originalDBPath := os.Getenv("ANSIBLE_SQLITE_PATH")
	originalAPIPort := os.Getenv("API_PORT")
	originalEnvironment := os.Getenv("ENVIRONMENT")
	originalLogLevel := os.Getenv("LOG_LEVEL")
	originalCORSOrigins := os.Getenv("CORS_ORIGINS")
	originalKafkaBrokers := os.Getenv("KAFKA_BROKERS")
	originalKafkaTopic := os.Getenv("KAFKA_TOPIC")

	defer func() {
		os.Setenv("ANSIBLE_SQLITE_PATH", originalDBPath)
		os.Setenv("API_PORT", originalAPIPort)
		os.Setenv("ENVIRONMENT", originalEnvironment)
		os.Setenv("LOG_LEVEL", originalLogLevel)
		os.Setenv("CORS_ORIGINS", originalCORSOrigins)
		os.Setenv("KAFKA_BROKERS", originalKafkaBrokers)
		os.Setenv("KAFKA_TOPIC", originalKafkaTopic)
	}()

	os.Unsetenv("ANSIBLE_SQLITE_PATH")
	os.Unsetenv("API_PORT")
	os.Unsetenv("ENVIRONMENT")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("CORS_ORIGINS")
	os.Unsetenv("KAFKA_BROKERS")
	os.Unsetenv("KAFKA_TOPIC")

	// Act
	config := FromEnv()

	// Assert
	if config.DBPath != DefaultDBPath {
		t.Errorf("expected DBPath '%s', got '%s'", DefaultDBPath, config.DBPath)
	}
	if config.APIPort != "5000" {
		t.Errorf("expected APIPort '5000', got '%s'", config.APIPort)
	}
	if config.Environment != "production" {
		t.Errorf("expected Environment 'production', got '%s'", config.Environment)
	}
	if config.LogLevel != "info" {
		t.Errorf("expected LogLevel 'info', got '%s'", config.LogLevel)
	}
	if len(config.CORSOrigins) != 1 || config.CORSOrigins[0] != "*" {
		t.Errorf("expected CORS origins ['*'], got %v", config.CORSOrigins)
	}
	if config.MirrorEnabled() {
		t.Error("expected mirror to be disabled by default")
	}
	if config.KafkaTopic != "ansible.task-logs" {
		t.Errorf("expected KafkaTopic 'ansible.task-logs', got '%s'", config.KafkaTopic)
	}
}

func TestGetCORSOrigins_WhenMultipleOriginsWithWhitespace_ThenTrimsCorrectly(t *testing.T) {
	// Arrange
	originalCORSOrigins := os.Getenv("CORS_ORIGINS")
	defer os.Setenv("CORS_ORIGINS", originalCORSOrigins)

	os.Setenv("CORS_ORIGINS", " http://localhost:3000 , https://example.com ,  ")

	// Act
	origins := getCORSOrigins()

	// Assert
	if len(origins) != 2 {
		t.Fatalf("expected 2 origins after trimming, got %d", len(origins))
	}
	if origins[0] != "http://localhost:3000" {
		t.Errorf("expected first origin 'http://localhost:3000', got '%s'", origins[0])
	}
}

func TestGetEnv_WhenVariableEmpty_ThenReturnsDefault(t *testing.T) {
	// Arrange
	originalValue := os.Getenv("EMPTY_VAR")
	defer os.Setenv("EMPTY_VAR", originalValue)

	os.Setenv("EMPTY_VAR", "")

	// Act & Assert
	if result := getEnv("EMPTY_VAR", "default_value"); result != "default_value" {
		t.Errorf("expected 'default_value', got '%s'", result)
	}
}
