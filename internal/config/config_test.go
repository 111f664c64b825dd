package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// --- MustLoad ---

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose") // invalid -> Load() error
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

func TestMustLoad_Success_NoPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("MustLoad should not panic on valid defaults, got: %v", r)
		}
	}()
	cfg := MustLoad()
	if cfg.APIBasePath == "" {
		t.Fatalf("unexpected empty config from MustLoad")
	}
}

// --- Load success + normalization + parsing ---

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.LogLevel != "info" || cfg.APIBasePath != "/api/v1" {
		t.Fatalf("server defaults unexpected: %+v", cfg)
	}
	if cfg.MaxBodyBytes != 8<<20 {
		t.Fatalf("body limit default unexpected: %d", cfg.MaxBodyBytes)
	}
	if cfg.RateRPS != 20 || cfg.RateBurst != 40 {
		t.Fatalf("rate defaults unexpected: rps=%v burst=%d", cfg.RateRPS, cfg.RateBurst)
	}
	db := cfg.DB
	if db.Driver != DriverSQLite || db.Path != "wow-auctions.db" || db.DSN != "" || !db.AutoMigrate {
		t.Fatalf("db defaults unexpected: %+v", db)
	}
	if db.MaxOpenConns != 10 || db.MaxIdleConns != 10 || db.ConnMaxIdleTime != 5*time.Minute || db.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("db pool defaults unexpected: %+v", db)
	}
	if cfg.OTEL.Enabled || cfg.OTEL.ServiceName != "wow-auctions" || cfg.OTEL.SampleRatio != 1.0 {
		t.Fatalf("otel defaults unexpected: %+v", cfg.OTEL)
	}
	if cfg.CORS.AllowedOrigins != nil {
		t.Fatalf("cors origins should default to nil, got %#v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_Success_Overrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("GIN_MODE", "weird") // normalizes to "release"

	t.Setenv("LOG_LEVEL", "WARNING") // normalizes to "warn"
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("SWAGGER_ENABLED", "1")
	t.Setenv("API_BASE_PATH", "resources/wowauctions/") // -> "/resources/wowauctions"

	t.Setenv("RATE_RPS", "2.5")
	t.Setenv("RATE_BURST", "3")
	t.Setenv("RATE_KEY_HEADER", " X-Pipeline-ID ")

	t.Setenv("DB_DRIVER", "PostgreSQL")
	t.Setenv("DB_DSN", "host=db user=wow dbname=auctions")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "25")
	t.Setenv("DB_MAX_IDLE_CONNS", "5")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1h")

	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")

	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "0")
	t.Setenv("OTEL_SERVICE_NAME", "svc")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8088" ||
		cfg.ReadTimeout != 2*time.Second ||
		cfg.ReadHeaderTimeout != 1*time.Second ||
		cfg.WriteTimeout != 3*time.Second ||
		cfg.IdleTimeout != 4*time.Second ||
		cfg.MaxHeaderBytes != 8192 ||
		cfg.GinMode != "release" {
		t.Fatalf("server fields unexpected: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled || cfg.APIBasePath != "/resources/wowauctions" {
		t.Fatalf("logging/docs unexpected: %+v", cfg)
	}
	if cfg.RateRPS != 2.5 || cfg.RateBurst != 3 || cfg.RateKeyHeader != "X-Pipeline-ID" {
		t.Fatalf("rate limiting unexpected: %+v", cfg)
	}
	if cfg.DB.Driver != DriverPostgres || cfg.DB.DSN == "" || cfg.DB.AutoMigrate ||
		cfg.DB.MaxOpenConns != 25 || cfg.DB.MaxIdleConns != 5 || cfg.DB.ConnMaxLifetime != time.Hour {
		t.Fatalf("db unexpected: %+v", cfg.DB)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.com", "http://b"}) {
		t.Fatalf("cors origins unexpected: %#v", cfg.CORS.AllowedOrigins)
	}
	if !reflect.DeepEqual(cfg.Security.TrustedProxies, []string{"10.0.0.0/8"}) {
		t.Fatalf("trusted proxies unexpected: %#v", cfg.Security.TrustedProxies)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security unexpected: %+v", cfg.Security)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.Insecure || cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Fatalf("otel unexpected: %+v", cfg.OTEL)
	}
}

func TestLoad_DriverAliases(t *testing.T) {
	cases := map[string]string{
		"sqlite3": DriverSQLite,
		"SQLite":  DriverSQLite,
		"pg":      DriverPostgres,
		"mysql":   DriverMySQL,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			t.Setenv("DB_DRIVER", in)
			t.Setenv("DB_DSN", "dsn")
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.DB.Driver != want {
				t.Fatalf("driver %q -> %q; want %q", in, cfg.DB.Driver, want)
			}
		})
	}
}

// --- Load validations (each case triggers exactly one validation error) ---

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"invalid LOG_LEVEL", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"empty PORT via spaces", map[string]string{"PORT": "   "}, "PORT must not be empty"},
		{"non-positive timeouts", map[string]string{"READ_TIMEOUT": "0s"}, "timeouts must be positive"},
		{"max header bytes <= 0", map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{"max body bytes <= 0", map[string]string{"MAX_BODY_BYTES": "0"}, "MAX_BODY_BYTES"},
		{"empty DB_PATH", map[string]string{"DB_PATH": "   "}, "DB_PATH must not be empty"},
		{"mysql without DSN", map[string]string{"DB_DRIVER": "mysql"}, "DB_DSN must be set"},
		{"unknown driver", map[string]string{"DB_DRIVER": "oracle"}, "DB_DRIVER"},
		{"no open conns", map[string]string{"DB_MAX_OPEN_CONNS": "0"}, "DB_MAX_OPEN_CONNS"},
		{"rate rps negative", map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{"rate burst < 1", map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{"hsts max age negative", map[string]string{"HSTS_MAX_AGE": "-1s"}, "HSTS_MAX_AGE"},
		{"otel sample ratio out of range", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
		{"unparsable duration", map[string]string{"READ_TIMEOUT": "soon"}, "config:"},
		{"unparsable int", map[string]string{"RATE_BURST": "nope"}, "config:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil || !containsErr(err, tc.want) {
				t.Fatalf("expected error containing %q, got: %v", tc.want, err)
			}
		})
	}
}

// --- .env loading ---

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("WOW_DOTENV_ONLY=from-file\nWOW_DOTENV_SET=from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("WOW_DOTENV_SET", "from-env")
	t.Setenv("WOW_DOTENV_ONLY", "")
	os.Unsetenv("WOW_DOTENV_ONLY")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("WOW_DOTENV_ONLY"); got != "from-file" {
		t.Fatalf("dotenv-only var = %q; want from-file", got)
	}
	if got := os.Getenv("WOW_DOTENV_SET"); got != "from-env" {
		t.Fatalf("existing var overridden: %q", got)
	}
}

// --- helpers ---

func TestHelpers_compact_and_normalizeBasePath(t *testing.T) {
	if out := compact(nil); out != nil {
		t.Fatalf("compact(nil) should return nil")
	}
	if out := compact([]string{" ", ""}); out != nil {
		t.Fatalf("compact of blanks should return nil, got %#v", out)
	}
	want := []string{"a", "b", "c"}
	if got := compact([]string{" a", " ", "b ", "  c  ", ""}); !reflect.DeepEqual(got, want) {
		t.Fatalf("compact mismatch: got %#v want %#v", got, want)
	}

	if normalizeBasePath("") != "/" {
		t.Fatalf("normalizeBasePath empty -> '/' failed")
	}
	if normalizeBasePath("v1") != "/v1" {
		t.Fatalf("normalizeBasePath missing leading slash failed")
	}
	if normalizeBasePath("/v1/") != "/v1" {
		t.Fatalf("normalizeBasePath trailing slash trim failed")
	}
	if normalizeBasePath(" / ") != "/" {
		t.Fatalf("normalizeBasePath whitespace failed")
	}
}

// Ensure tests don't leak env to others.
func TestMain(m *testing.M) {
	os.Unsetenv("PORT")
	os.Unsetenv("DB_DRIVER")
	os.Unsetenv("DB_DSN")
	os.Exit(m.Run())
}

// containsErr reports whether err's message contains the given substring.
func containsErr(err error, want string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), want)
}
