// Package startlist writes team start lists as CSV for timing software.
package startlist

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/okian/startlist/internal/domain/model"
)

const dirPermission = 0o755

// Option applies a configuration option to a write.
type Option func(*writer)

type writer struct {
	comma rune
}

// WithDelimiter sets the column separator. The zero rune keeps the default.
func WithDelimiter(r rune) Option {
	return func(w *writer) {
		if r != 0 {
			w.comma = r
		}
	}
}

func newWriter(opts []Option) *writer {
	w := &writer{comma: ','}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write emits the header and one row per team.
func Write(ctx context.Context, out io.Writer, teams []model.Team, opts ...Option) error {
	w := newWriter(opts)
	cw := csv.NewWriter(out)
	cw.Comma = w.comma

	if err := cw.Write(model.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range teams {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(t.Record()); err != nil {
			return fmt.Errorf("write team %d: %w", t.Bib, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the start list to path. The file is replaced only once
// the whole list has been written.
func WriteFile(ctx context.Context, path string, teams []model.Team, opts ...Option) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(ctx, tmp, teams, opts...); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}
	return nil
}
