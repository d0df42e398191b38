package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gravitrone/wordroom/internal/vocab"
)

// ErrIO marks persistence failures. The previously saved data is left intact.
var ErrIO = errors.New("vocabulary i/o failed")

// Backend loads and saves the full entry set.
type Backend interface {
	Load(ctx context.Context) ([]vocab.Entry, error)
	Save(ctx context.Context, entries []vocab.Entry) error
}

const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Open returns the backend for kind, stored at path.
func Open(kind, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindJSON:
		return &JSONFile{Path: path}, nil
	case KindSQLite:
		return &SQLite{Path: path}, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q (want %s or %s)", kind, KindJSON, KindSQLite)
}

// LoadInto loads the backend's entries into store, all or nothing.
func LoadInto(ctx context.Context, b Backend, store *vocab.Store) error {
	entries, err := b.Load(ctx)
	if err != nil {
		return err
	}
	return store.Replace(entries)
}

func ioErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrIO)
}
