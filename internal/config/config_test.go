package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Catalog.Source != "produtos.csv" {
		t.Errorf("Catalog.Source = %q, want %q", cfg.Catalog.Source, "produtos.csv")
	}
	if cfg.Catalog.PlaceholderImage != "placeholder.jpg" {
		t.Errorf("Catalog.PlaceholderImage = %q, want %q", cfg.Catalog.PlaceholderImage, "placeholder.jpg")
	}
	if cfg.Store.Driver != "file" {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, "file")
	}
	if cfg.Store.Key != "cart" {
		t.Errorf("Store.Key = %q, want %q", cfg.Store.Key, "cart")
	}
	if cfg.Export.Currency != "R$ " {
		t.Errorf("Export.Currency = %q, want %q", cfg.Export.Currency, "R$ ")
	}
	if !cfg.Security.EnableCSP {
		t.Error("Security.EnableCSP = false, want true")
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "https://example.com/produtos.csv")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Catalog.Source != "https://example.com/produtos.csv" {
		t.Errorf("Catalog.Source = %q", cfg.Catalog.Source)
	}
	if cfg.Store.Driver != "memory" {
		t.Errorf("Store.Driver = %q, want %q", cfg.Store.Driver, "memory")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_PostgresRequiresURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for missing DATABASE_URL")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_URL", "postgres://localhost/alttest")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.DatabaseURL != "postgres://localhost/alttest" {
		t.Errorf("Store.DatabaseURL = %q, want %q", cfg.Store.DatabaseURL, "postgres://localhost/alttest")
	}
}

func TestLoad_Duration(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "45s")
	t.Setenv("CATALOG_FETCH_TIMEOUT", "1m30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Catalog.FetchTimeout != 90*time.Second {
		t.Errorf("Catalog.FetchTimeout = %v, want %v", cfg.Catalog.FetchTimeout, 90*time.Second)
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , ,192.168.0.0/16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(want) {
		t.Fatalf("TrustedProxies = %v, want %v", cfg.Security.TrustedProxies, want)
	}
	for i := range want {
		if cfg.Security.TrustedProxies[i] != want[i] {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], want[i])
		}
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"bad port", "SERVER_PORT", "99999"},
		{"non-numeric port", "SERVER_PORT", "http"},
		{"bad duration", "SERVER_READ_TIMEOUT", "soon"},
		{"bad bool", "SECURITY_ENABLE_CSP", "maybe"},
		{"unknown driver", "STORE_DRIVER", "mongo"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad log format", "LOG_FORMAT", "xml"},
		{"total format without verb", "EXPORT_TOTAL_FORMAT", "Total"},
		{"relative share url", "SHARE_BASE_URL", "/share"},
		{"zero qr size", "SHARE_QR_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q expected error", tt.env, tt.value)
			}
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() on zero config expected error")
	}
	for _, want := range []string{"SERVER_PORT", "CATALOG_SOURCE", "STORE_DRIVER", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestString_MasksSecrets(t *testing.T) {
	cfg := &Config{Store: StoreConfig{
		Driver:        "postgres",
		RedisPassword: "hunter2",
		DatabaseURL:   "postgres://user:secret@db/cart",
	}}
	s := cfg.String()
	if strings.Contains(s, "hunter2") || strings.Contains(s, "secret") {
		t.Errorf("String() leaks secrets: %s", s)
	}
	if !strings.Contains(s, "[MASKED]") {
		t.Errorf("String() = %s, want masked values", s)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: 8081}
	if got := c.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr() = %q, want %q", got, "127.0.0.1:8081")
	}
}
