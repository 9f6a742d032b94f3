package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	CORS    CORSConfig
	Live    LiveConfig
}

type ServerConfig struct {
	Port int
}

// BackendConfig resolves where the prediction/dataset backend lives. The two
// endpoints historically shipped with different default hosts; BaseURL, when
// set, overrides both.
type BackendConfig struct {
	BaseURL        string
	DatasetBaseURL string
	PredictBaseURL string
	TimeoutSec     int
}

func (b BackendConfig) DatasetURL() string {
	if b.BaseURL != "" {
		return b.BaseURL
	}
	return b.DatasetBaseURL
}

func (b BackendConfig) PredictURL() string {
	if b.BaseURL != "" {
		return b.BaseURL
	}
	return b.PredictBaseURL
}

type CORSConfig struct {
	AllowedOrigins string
}

type LiveConfig struct {
	PollIntervalSec int
}

func LoadConfig() (*Config, error) {
	serverPort, err := getIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	backendTimeout, err := getIntEnv("BACKEND_TIMEOUT_SEC", 10)
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT_SEC: %w", err)
	}

	pollInterval, err := getIntEnv("LIVE_POLL_INTERVAL_SEC", 15)
	if err != nil {
		return nil, fmt.Errorf("invalid LIVE_POLL_INTERVAL_SEC: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: serverPort,
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_URL", ""),
			DatasetBaseURL: getEnv("DATASET_BACKEND_URL", "http://127.0.0.1:8000"),
			PredictBaseURL: getEnv("PREDICT_BACKEND_URL", "http://localhost:5000"),
			TimeoutSec:     backendTimeout,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Live: LiveConfig{
			PollIntervalSec: pollInterval,
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
