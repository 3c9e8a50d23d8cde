// Package store provides key-value backends for the cart snapshot.
//
// Every backend stores opaque bytes under a string key and reports a missing
// key as ErrNotFound. Writes replace the whole value.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("key not found")

// KV is the interface every backend satisfies.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Supported driver names.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// ValidDriver reports whether name is a supported driver.
func ValidDriver(name string) bool {
	switch strings.ToLower(name) {
	case DriverMemory, DriverFile, DriverRedis, DriverPostgres:
		return true
	}
	return false
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("store: empty key")
	}
	return nil
}

var (
	_ KV = (*Memory)(nil)
	_ KV = (*File)(nil)
	_ KV = (*Redis)(nil)
	_ KV = (*Postgres)(nil)
)
