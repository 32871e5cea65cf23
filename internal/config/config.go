package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/hoops-reference/internal/platform/logging"
)

// Config stores runtime configuration for the site and its CLI.
type Config struct {
	AppEnv           string
	ServiceName      string
	ServiceVersion   string
	HTTPAddr         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	LogLevel         logging.Level
	CompressionLevel int

	StatsAPIBaseURL               string
	StatsAPITimeout               time.Duration
	StatsAPIMaxRetries            int
	StatsAPIRateLimit             float64
	StatsAPIRateBurst             int
	StatsAPIMaxConcurrency        int
	StatsAPICircuitEnabled        bool
	StatsAPICircuitFailureCount   int
	StatsAPICircuitOpenTimeout    time.Duration
	StatsAPICircuitHalfOpenMaxReq int

	PlayersPageSize  int
	DraftDefaultYear int

	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:          appEnv,
		ServiceName:     getEnv("APP_SERVICE_NAME", "hoops-reference-web"),
		ServiceVersion:  getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:        getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:        parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		StatsAPIBaseURL: strings.TrimRight(strings.TrimSpace(getEnv("STATS_API_BASE_URL", "http://localhost:8001")), "/"),
	}
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if cfg.StatsAPIBaseURL == "" {
		return Config{}, fmt.Errorf("STATS_API_BASE_URL cannot be empty")
	}

	if cfg.ReadTimeout, err = positiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = positiveDuration("APP_WRITE_TIMEOUT", "30s"); err != nil {
		return Config{}, err
	}
	if cfg.CompressionLevel, err = getEnvAsInt("APP_COMPRESSION_LEVEL", 5); err != nil {
		return Config{}, fmt.Errorf("parse APP_COMPRESSION_LEVEL: %w", err)
	}
	if cfg.CompressionLevel < 1 || cfg.CompressionLevel > 9 {
		return Config{}, fmt.Errorf("APP_COMPRESSION_LEVEL must be between 1 and 9")
	}

	if cfg.StatsAPITimeout, err = positiveDuration("STATS_API_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.StatsAPIMaxRetries, err = getEnvAsInt("STATS_API_MAX_RETRIES", 0); err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_MAX_RETRIES: %w", err)
	}
	if cfg.StatsAPIMaxRetries < 0 {
		return Config{}, fmt.Errorf("STATS_API_MAX_RETRIES must be >= 0")
	}
	if cfg.StatsAPIRateLimit, err = getEnvAsFloat("STATS_API_RATE_LIMIT", 20); err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_RATE_LIMIT: %w", err)
	}
	if cfg.StatsAPIRateLimit < 0 {
		return Config{}, fmt.Errorf("STATS_API_RATE_LIMIT must be >= 0")
	}
	if cfg.StatsAPIRateBurst, err = positiveInt("STATS_API_RATE_BURST", 40); err != nil {
		return Config{}, err
	}
	if cfg.StatsAPIMaxConcurrency, err = positiveInt("STATS_API_MAX_CONCURRENCY", 16); err != nil {
		return Config{}, err
	}

	if cfg.StatsAPICircuitEnabled, err = strconv.ParseBool(getEnv("STATS_API_CIRCUIT_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("parse STATS_API_CIRCUIT_ENABLED: %w", err)
	}
	if cfg.StatsAPICircuitFailureCount, err = positiveInt("STATS_API_CIRCUIT_FAILURE_COUNT", 5); err != nil {
		return Config{}, err
	}
	if cfg.StatsAPICircuitOpenTimeout, err = positiveDuration("STATS_API_CIRCUIT_OPEN_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.StatsAPICircuitHalfOpenMaxReq, err = positiveInt("STATS_API_CIRCUIT_HALF_OPEN_MAX_REQ", 2); err != nil {
		return Config{}, err
	}

	if cfg.PlayersPageSize, err = positiveInt("PAGE_SIZE_PLAYERS", 50); err != nil {
		return Config{}, err
	}
	if cfg.DraftDefaultYear, err = getEnvAsInt("DRAFT_DEFAULT_YEAR", 2023); err != nil {
		return Config{}, fmt.Errorf("parse DRAFT_DEFAULT_YEAR: %w", err)
	}
	if cfg.DraftDefaultYear < 1947 {
		return Config{}, fmt.Errorf("DRAFT_DEFAULT_YEAR must be >= 1947")
	}

	if cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	if cfg.PyroscopeUploadRate, err = positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return Config{}, err
	}

	if cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false")); err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	cfg.PprofAddr = strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	return cfg, nil
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func positiveInt(key string, fallback int) (int, error) {
	out, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out < 1 {
		return 0, fmt.Errorf("%s must be >= 1", key)
	}
	return out, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
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

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(value, 64)
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
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
