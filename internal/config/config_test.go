package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "false")
	t.Setenv("STATS_API_BASE_URL", "")
	t.Setenv("STATS_API_MAX_RETRIES", "")
	t.Setenv("PAGE_SIZE_PLAYERS", "")
	t.Setenv("DRAFT_DEFAULT_YEAR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StatsAPIBaseURL != "http://localhost:8001" {
		t.Fatalf("unexpected StatsAPIBaseURL: %q", cfg.StatsAPIBaseURL)
	}
	if cfg.StatsAPIMaxRetries != 0 {
		t.Fatalf("unexpected StatsAPIMaxRetries: %d", cfg.StatsAPIMaxRetries)
	}
	if cfg.PlayersPageSize != 50 {
		t.Fatalf("unexpected PlayersPageSize: %d", cfg.PlayersPageSize)
	}
	if cfg.DraftDefaultYear != 2023 {
		t.Fatalf("unexpected DraftDefaultYear: %d", cfg.DraftDefaultYear)
	}
	if !cfg.StatsAPICircuitEnabled {
		t.Fatalf("expected the circuit breaker to be enabled by default")
	}
}

func TestLoad_StatsAPIParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("STATS_API_BASE_URL", " http://stats.internal:8001/ ")
	t.Setenv("STATS_API_TIMEOUT", "3s")
	t.Setenv("STATS_API_MAX_RETRIES", "2")
	t.Setenv("STATS_API_RATE_LIMIT", "7.5")
	t.Setenv("STATS_API_RATE_BURST", "9")
	t.Setenv("STATS_API_MAX_CONCURRENCY", "4")
	t.Setenv("STATS_API_CIRCUIT_ENABLED", "false")
	t.Setenv("STATS_API_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("STATS_API_CIRCUIT_OPEN_TIMEOUT", "30s")
	t.Setenv("STATS_API_CIRCUIT_HALF_OPEN_MAX_REQ", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StatsAPIBaseURL != "http://stats.internal:8001" {
		t.Fatalf("unexpected StatsAPIBaseURL: %q", cfg.StatsAPIBaseURL)
	}
	if cfg.StatsAPITimeout != 3*time.Second {
		t.Fatalf("unexpected StatsAPITimeout: %s", cfg.StatsAPITimeout)
	}
	if cfg.StatsAPIMaxRetries != 2 || cfg.StatsAPIRateLimit != 7.5 || cfg.StatsAPIRateBurst != 9 {
		t.Fatalf("unexpected retry/limit values: %+v", cfg)
	}
	if cfg.StatsAPIMaxConcurrency != 4 {
		t.Fatalf("unexpected StatsAPIMaxConcurrency: %d", cfg.StatsAPIMaxConcurrency)
	}
	if cfg.StatsAPICircuitEnabled {
		t.Fatalf("expected StatsAPICircuitEnabled=false")
	}
	if cfg.StatsAPICircuitFailureCount != 3 || cfg.StatsAPICircuitOpenTimeout != 30*time.Second || cfg.StatsAPICircuitHalfOpenMaxReq != 1 {
		t.Fatalf("unexpected circuit values: %+v", cfg)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative retries", key: "STATS_API_MAX_RETRIES", value: "-1"},
		{name: "zero timeout", key: "STATS_API_TIMEOUT", value: "0s"},
		{name: "unparsable rate", key: "STATS_API_RATE_LIMIT", value: "fast"},
		{name: "zero concurrency", key: "STATS_API_MAX_CONCURRENCY", value: "0"},
		{name: "zero failure count", key: "STATS_API_CIRCUIT_FAILURE_COUNT", value: "0"},
		{name: "compression out of range", key: "APP_COMPRESSION_LEVEL", value: "12"},
		{name: "zero page size", key: "PAGE_SIZE_PLAYERS", value: "0"},
		{name: "draft before the league", key: "DRAFT_DEFAULT_YEAR", value: "1900"},
		{name: "bad write timeout", key: "APP_WRITE_TIMEOUT", value: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("unexpected PprofAddr: %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "hoops-reference-stage")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "hoops-reference-stage" {
		t.Fatalf("unexpected PyroscopeAppName: %q", cfg.PyroscopeAppName)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		" error ": "error",
		"":        "info",
		"verbose": "info",
	}
	for in, want := range tests {
		if got := parseLogLevel(in).String(); got != want {
			t.Fatalf("parseLogLevel(%q)=%s want=%s", in, got, want)
		}
	}
}
