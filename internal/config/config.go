package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/content-brain/internal/platform/logging"
)

// Config stores runtime configuration for the content brain client.
type Config struct {
	AppEnv                   string
	ServiceName              string
	ServiceVersion           string
	APIBaseURL               string
	APITimeout               time.Duration
	APICircuitEnabled        bool
	APICircuitFailureCount   int
	APICircuitOpenTimeout    time.Duration
	APICircuitHalfOpenMaxReq int
	CacheEnabled             bool
	CacheTTL                 time.Duration
	MockFallbackEnabled      bool
	SessionFile              string
	BatchWorkers             int
	LogLevel                 logging.Level
	LogFormat                string
	TraceFile                string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(getEnv("CONTENTBRAIN_API_BASE_URL", "http://localhost:5050/api/v1")), "/")
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return Config{}, fmt.Errorf("parse CONTENTBRAIN_API_BASE_URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("CONTENTBRAIN_API_BASE_URL must be an http(s) URL, got %q", baseURL)
	}
	if parsed.Host == "" {
		return Config{}, fmt.Errorf("CONTENTBRAIN_API_BASE_URL must include a host")
	}

	apiTimeout, err := time.ParseDuration(getEnv("CONTENTBRAIN_API_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CONTENTBRAIN_API_TIMEOUT: %w", err)
	}
	if apiTimeout < 0 {
		return Config{}, fmt.Errorf("CONTENTBRAIN_API_TIMEOUT must be >= 0")
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("CONTENTBRAIN_API_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CONTENTBRAIN_API_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("CONTENTBRAIN_API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse CONTENTBRAIN_API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount <= 0 {
		return Config{}, fmt.Errorf("CONTENTBRAIN_API_CIRCUIT_FAILURE_COUNT must be > 0")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("CONTENTBRAIN_API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CONTENTBRAIN_API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("CONTENTBRAIN_API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("CONTENTBRAIN_API_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse CONTENTBRAIN_API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMaxReq <= 0 {
		return Config{}, fmt.Errorf("CONTENTBRAIN_API_CIRCUIT_HALF_OPEN_MAX_REQ must be > 0")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	mockDefault := "true"
	if appEnv == EnvProd {
		mockDefault = "false"
	}
	mockFallback, err := strconv.ParseBool(getEnv("MOCK_FALLBACK_ENABLED", mockDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse MOCK_FALLBACK_ENABLED: %w", err)
	}

	sessionFile := strings.TrimSpace(getEnv("SESSION_FILE", ""))
	if sessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory for SESSION_FILE: %w", err)
		}
		sessionFile = filepath.Join(home, ".contentbrain", "session.yaml")
	}

	batchWorkers, err := getEnvAsInt("BATCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse BATCH_WORKERS: %w", err)
	}
	if batchWorkers <= 0 {
		return Config{}, fmt.Errorf("BATCH_WORKERS must be > 0")
	}

	logFormat := strings.ToLower(strings.TrimSpace(getEnv("APP_LOG_FORMAT", "console")))
	if logFormat != "console" && logFormat != "json" {
		return Config{}, fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are console, json", logFormat)
	}

	return Config{
		AppEnv:                   appEnv,
		ServiceName:              getEnv("APP_SERVICE_NAME", "contentbrain"),
		ServiceVersion:           getEnv("APP_SERVICE_VERSION", "dev"),
		APIBaseURL:               baseURL,
		APITimeout:               apiTimeout,
		APICircuitEnabled:        circuitEnabled,
		APICircuitFailureCount:   circuitFailureCount,
		APICircuitOpenTimeout:    circuitOpenTimeout,
		APICircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,
		CacheEnabled:             cacheEnabled,
		CacheTTL:                 cacheTTL,
		MockFallbackEnabled:      mockFallback,
		SessionFile:              sessionFile,
		BatchWorkers:             batchWorkers,
		LogLevel:                 parseLogLevel(getEnv("APP_LOG_LEVEL", "warn")),
		LogFormat:                logFormat,
		TraceFile:                strings.TrimSpace(getEnv("CONTENTBRAIN_TRACE_FILE", "")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	level, err := logging.ParseLevel(v)
	if err != nil {
		return logging.LevelWarn
	}
	return level
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
