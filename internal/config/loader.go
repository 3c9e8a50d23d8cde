package config

import (
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/catalogo/internal/store"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Load reads configuration from environment variables.
// It applies defaults for unset values and validates the result.
// Returns an error if required values are missing or validation fails.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := loadStruct(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadStruct recursively populates struct fields from environment variables.
func loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		if field.Type.Kind() == reflect.Struct {
			if err := loadStruct(fieldVal); err != nil {
				return err
			}
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		value, err := lookup(field.Tag)
		if err != nil {
			return err
		}
		if value == "" {
			continue
		}

		if err := setField(fieldVal, value); err != nil {
			return fmt.Errorf("invalid value for %s=%q: %w", envName, value, err)
		}
	}

	return nil
}

// lookup resolves a field's raw value: primary env var, then the alternate,
// then the default.
func lookup(tag reflect.StructTag) (string, error) {
	envName := tag.Get("env")

	value := os.Getenv(envName)
	if value == "" {
		if alt := tag.Get("envAlt"); alt != "" {
			value = os.Getenv(alt)
		}
	}
	if value != "" {
		return value, nil
	}

	if tag.Get("required") == "true" {
		return "", fmt.Errorf("required environment variable %s is not set", envName)
	}
	return tag.Get("default"), nil
}

// setField sets a reflect.Value from a string based on its type.
func setField(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int64:
		if field.Type() == durationType {
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			field.SetInt(int64(d))
			return nil
		}
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %w", err)
		}
		field.SetInt(i)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}
		field.SetBool(b)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type().Elem().Kind())
		}
		var result []string
		for _, p := range strings.Split(value, ",") {
			if p = strings.TrimSpace(p); p != "" {
				result = append(result, p)
			}
		}
		field.Set(reflect.ValueOf(result))

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("SERVER_PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be non-negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}

	// Catalog validation
	if strings.TrimSpace(c.Catalog.Source) == "" {
		errs = append(errs, "CATALOG_SOURCE is required")
	}
	if c.Catalog.FetchTimeout <= 0 {
		errs = append(errs, "CATALOG_FETCH_TIMEOUT must be positive")
	}

	// Store validation
	if !store.ValidDriver(c.Store.Driver) {
		errs = append(errs, fmt.Sprintf("STORE_DRIVER (%q) must be one of: memory, file, redis, postgres", c.Store.Driver))
	}
	if strings.TrimSpace(c.Store.Key) == "" {
		errs = append(errs, "CART_STORE_KEY must not be empty")
	}
	switch strings.ToLower(c.Store.Driver) {
	case store.DriverFile:
		if c.Store.Dir == "" {
			errs = append(errs, "STORE_DIR is required for the file driver")
		}
	case store.DriverRedis:
		if c.Store.RedisAddr == "" {
			errs = append(errs, "REDIS_ADDR is required for the redis driver")
		}
	case store.DriverPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, "DATABASE_URL is required for the postgres driver")
		}
		if c.Store.MaxConns <= 0 {
			errs = append(errs, "DB_MAX_CONNS must be positive")
		}
		if c.Store.MaxConns < c.Store.MinConns {
			errs = append(errs, fmt.Sprintf("DB_MAX_CONNS (%d) must be >= DB_MIN_CONNS (%d)",
				c.Store.MaxConns, c.Store.MinConns))
		}
	}

	// Export validation
	if !strings.Contains(c.Export.TotalFormat, "%s") {
		errs = append(errs, "EXPORT_TOTAL_FORMAT must contain %s")
	}
	if u, err := url.Parse(c.Export.ShareBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("SHARE_BASE_URL (%q) must be an absolute URL", c.Export.ShareBaseURL))
	}
	if c.Export.QRSize <= 0 {
		errs = append(errs, "SHARE_QR_SIZE must be positive")
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a safe string representation of the config for logging.
// Sensitive values like database URLs and passwords are masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	fmt.Fprintf(&b, "Server: {Host: %q, Port: %d}, ", c.Server.Host, c.Server.Port)
	fmt.Fprintf(&b, "Catalog: {Source: %q}, ", c.Catalog.Source)
	fmt.Fprintf(&b, "Store: {Driver: %q, Key: %q, Dir: %q, RedisAddr: %q, RedisPassword: %s, DatabaseURL: %s}, ",
		c.Store.Driver, c.Store.Key, c.Store.Dir, c.Store.RedisAddr,
		mask(c.Store.RedisPassword), mask(c.Store.DatabaseURL))
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format)
	b.WriteString("}")
	return b.String()
}

func mask(s string) string {
	if s == "" {
		return `""`
	}
	return "[MASKED]"
}
