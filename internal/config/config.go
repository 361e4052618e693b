package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	// Smoother service
	Smoother SmootherConfig
}

// SmootherConfig holds the sample-smoothing service configuration
type SmootherConfig struct {
	WindowSize      int
	SamplePeriod    time.Duration
	MetricsPort     int
	FastAccumulate  bool    // opt into incremental float accumulation
	SignalAmplitude float64 // synthetic signal peak
	SignalPeriod    time.Duration
	NoiseAmplitude  float64 // uniform noise added on top
}

// Load loads configuration from environment variables
// It automatically loads .env file if it exists in the current directory
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Smoother: SmootherConfig{
			WindowSize:      getEnvAsInt("SMOOTHER_WINDOW_SIZE", 32),
			SamplePeriod:    getEnvAsDuration("SMOOTHER_SAMPLE_PERIOD", 100*time.Millisecond),
			MetricsPort:     getEnvAsInt("SMOOTHER_METRICS_PORT", 9102),
			FastAccumulate:  getEnvAsBool("SMOOTHER_FAST_ACCUMULATE", false),
			SignalAmplitude: getEnvAsFloat("SMOOTHER_SIGNAL_AMPLITUDE", 10.0),
			SignalPeriod:    getEnvAsDuration("SMOOTHER_SIGNAL_PERIOD", time.Minute),
			NoiseAmplitude:  getEnvAsFloat("SMOOTHER_NOISE_AMPLITUDE", 2.0),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Smoother.WindowSize < 1 {
		return fmt.Errorf("SMOOTHER_WINDOW_SIZE must be at least 1")
	}
	if c.Smoother.SamplePeriod <= 0 {
		return fmt.Errorf("SMOOTHER_SAMPLE_PERIOD must be positive")
	}
	if c.Smoother.SignalPeriod <= 0 {
		return fmt.Errorf("SMOOTHER_SIGNAL_PERIOD must be positive")
	}
	if c.Smoother.MetricsPort < 1 || c.Smoother.MetricsPort > 65535 {
		return fmt.Errorf("SMOOTHER_METRICS_PORT must be a valid port")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return floatValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
