package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

// keyPattern limits file store keys to names that are safe as file names.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// File stores each key as <dir>/<key>.json. Saves write a temporary file and
// rename it over the old one so readers never see a partial snapshot.
type File struct {
	dir string
}

// NewFile creates dir if needed and returns a file store rooted there.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) (string, error) {
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("store: invalid file key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *File) Load(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return data, nil
}

func (f *File) Save(_ context.Context, key string, data []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}

	tmp := filepath.Join(f.dir, "."+key+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", p, err)
	}
	return nil
}
