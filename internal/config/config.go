package config

import (
	"os"
	"strconv"
	"time"

	"hirescope/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	AI        AIConfig
	Server    ServerConfig
	Interview InterviewConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// AIConfig holds LLM, embedding and speech settings. APIKey may be
// empty: the engine then runs entirely on the local heuristic paths.
type AIConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	EmbedModel      string
	SpeechModel     string
	TranscribeModel string
	Voice           string
	Temperature     float64
	MaxTokens       int
	Timeout         time.Duration
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// InterviewConfig holds engine settings
type InterviewConfig struct {
	// ShuffleSeed pins the question-queue permutation when non-zero;
	// zero means a random shuffle per session.
	ShuffleSeed int64
	// FollowupsEnabled toggles LLM follow-up generation.
	FollowupsEnabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		AI: AIConfig{
			APIKey:          os.Getenv("OPENAI_API_KEY"),
			BaseURL:         getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:           getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
			EmbedModel:      getEnvOrDefault("OPENAI_EMBED_MODEL", "text-embedding-3-small"),
			SpeechModel:     getEnvOrDefault("OPENAI_SPEECH_MODEL", "tts-1"),
			TranscribeModel: getEnvOrDefault("OPENAI_WHISPER_MODEL", "whisper-1"),
			Voice:           getEnvOrDefault("OPENAI_VOICE", "alloy"),
			Temperature:     getEnvFloatOrDefault("TEMPERATURE", 0.2),
			MaxTokens:       getEnvIntOrDefault("MAX_TOKENS", 600),
			Timeout:         getEnvDurationOrDefault("AI_TIMEOUT", 30*time.Second),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Interview: InterviewConfig{
			ShuffleSeed:      int64(getEnvIntOrDefault("SHUFFLE_SEED", 0)),
			FollowupsEnabled: getEnvBoolOrDefault("FOLLOWUPS_ENABLED", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.AI.Timeout <= 0 {
		return errors.ConfigInvalid("AI_TIMEOUT must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
