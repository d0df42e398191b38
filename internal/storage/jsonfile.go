package storage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/gravitrone/wordroom/internal/vocab"
)

// JSONFile stores the vocabulary as a JSON object of word to notes.
type JSONFile struct {
	Path string
}

// Load reads the file. A missing file is an empty vocabulary.
func (f *JSONFile) Load(ctx context.Context) ([]vocab.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, ioErr("read vocabulary", err)
	}
	return vocab.DecodeEntries(bytes.NewReader(data))
}

// Save writes a temp file next to the target and renames it into place.
func (f *JSONFile) Save(ctx context.Context, entries []vocab.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := vocab.EncodeEntries(&buf, entries); err != nil {
		return err
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return ioErr("create data dir", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return ioErr("create temp file", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return ioErr("write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return ioErr("sync temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return ioErr("close temp file", err)
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return ioErr("chmod temp file", err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		return ioErr("replace vocabulary", err)
	}
	return nil
}
