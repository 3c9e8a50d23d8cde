// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Store    StoreConfig
	Export   ExportConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// CatalogConfig holds product catalog settings.
type CatalogConfig struct {
	// Source is a file path or http(s) URL of the product CSV (default: produtos.csv)
	Source string `env:"CATALOG_SOURCE" default:"produtos.csv"`

	// FetchTimeout bounds remote catalog downloads (default: 30s)
	FetchTimeout time.Duration `env:"CATALOG_FETCH_TIMEOUT" default:"30s"`

	PlaceholderName     string `env:"CATALOG_PLACEHOLDER_NAME" default:"Sem Nome"`
	PlaceholderImage    string `env:"CATALOG_PLACEHOLDER_IMAGE" default:"placeholder.jpg"`
	PlaceholderCategory string `env:"CATALOG_PLACEHOLDER_CATEGORY" default:"Sem Categoria"`
}

// StoreConfig selects and configures the cart snapshot backend.
type StoreConfig struct {
	// Driver is one of memory, file, redis, postgres (default: file)
	Driver string `env:"STORE_DRIVER" default:"file"`

	// Key is the key the cart snapshot is stored under (default: cart)
	Key string `env:"CART_STORE_KEY" default:"cart"`

	// Dir is the directory used by the file driver (default: data)
	Dir string `env:"STORE_DIR" default:"data"`

	RedisAddr     string `env:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" default:"0"`

	// DatabaseURL is the PostgreSQL connection string, required for the postgres driver.
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	DatabaseURL string `env:"DATABASE_URL" envAlt:"DB_URL"`

	MaxConns int `env:"DB_MAX_CONNS" default:"4"`
	MinConns int `env:"DB_MIN_CONNS" default:"1"`
}

// ExportConfig holds the quote message and share link settings.
type ExportConfig struct {
	Title    string `env:"EXPORT_TITLE" default:"*Orçamento Solicitado*:"`
	Marker   string `env:"EXPORT_MARKER" default:"➤"`
	Currency string `env:"EXPORT_CURRENCY" default:"R$ "`

	// TotalFormat is the last line of the message; %s receives the amount.
	TotalFormat string `env:"EXPORT_TOTAL_FORMAT" default:"*Total: %s*"`

	ShareBaseURL string `env:"SHARE_BASE_URL" default:"https://wa.me/"`
	QRSize       int    `env:"SHARE_QR_SIZE" default:"256"`
	QRLevel      string `env:"SHARE_QR_LEVEL" default:"M"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
