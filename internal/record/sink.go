package record

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Sink receives derived records.
type Sink interface {
	WriteRecord(ctx context.Context, rec *Record) error
	// RemoveRecord drops a previously written record and reports whether
	// one existed. Removing a record that does not exist is not an error.
	RemoveRecord(ctx context.Context, name string) (bool, error)
}

// FileSink writes one artifact file per record into a directory.
type FileSink struct {
	dir    string
	format Format
	logger *slog.Logger
}

// NewFileSink creates a sink writing into dir. A nil logger discards output.
func NewFileSink(dir string, format Format, logger *slog.Logger) *FileSink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if format == "" {
		format = FormatText
	}
	return &FileSink{dir: dir, format: format, logger: logger}
}

// Dir returns the output directory.
func (s *FileSink) Dir() string {
	return s.dir
}

// Path returns the artifact path for a component name.
func (s *FileSink) Path(name string) string {
	return filepath.Join(s.dir, name+s.format.Ext())
}

// WriteRecord encodes rec into <dir>/<name><ext>. The file is written to a
// temporary name first and renamed into place.
func (s *FileSink) WriteRecord(ctx context.Context, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	target := s.Path(rec.Name)
	tmp, err := os.CreateTemp(s.dir, "."+rec.Name+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", rec.Name, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := Encode(tmp, rec, s.format); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", rec.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", rec.Name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil { //nolint:gosec // artifacts are meant to be shared
		return fmt.Errorf("failed to set permissions on %s: %w", rec.Name, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", rec.Name, err)
	}

	s.logger.Debug("wrote artifact", "component", rec.Name, "path", target, "fields", len(rec.Fields))
	return nil
}

// RemoveRecord deletes the artifact for name so a stale file from an earlier
// run cannot be mistaken for current output.
func (s *FileSink) RemoveRecord(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	target := s.Path(name)
	if err := os.Remove(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to remove %s: %w", name, err)
	}
	s.logger.Debug("removed stale artifact", "component", name, "path", target)
	return true, nil
}

// ReadFile reads an artifact written by FileSink. The format is chosen by
// extension; the record name falls back to the file's base name.
func ReadFile(path string) (*Record, error) {
	format, ok := FormatForExt(filepath.Ext(path))
	if !ok {
		return nil, &ParseError{File: path, Message: fmt.Sprintf("unknown artifact extension %q", filepath.Ext(path))}
	}

	f, err := os.Open(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	defer func() { _ = f.Close() }()

	rec, err := Decode(f, format, path)
	if err != nil {
		return nil, err
	}
	if rec.Name == "" {
		rec.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return rec, nil
}
