package sheet

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/startlist/internal/domain/model"
)

const bom = "\ufeff"

func (r *reader) readCSVFile(ctx context.Context, path string) ([]model.Athlete, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()
	return r.readCSV(ctx, f)
}

// ReadCSV loads athletes from CSV text. The delimiter is ';' when the header
// line contains one and ',' otherwise.
func ReadCSV(ctx context.Context, in io.Reader, opts ...Option) ([]model.Athlete, error) {
	return newReader(opts).readCSV(ctx, in)
}

func (r *reader) readCSV(ctx context.Context, in io.Reader) ([]model.Athlete, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	text := strings.TrimPrefix(string(data), bom)

	firstLine, _, _ := strings.Cut(text, "\n")
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = ','
	if strings.Contains(firstLine, ";") {
		cr.Comma = ';'
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("parse roster header: %w", err)
	}
	l, err := r.resolve(header)
	if err != nil {
		return nil, err
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	return r.athletes(ctx, l, rows)
}
