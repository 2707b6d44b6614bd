// Package sheet reads athlete registrations from Excel workbooks and CSV
// exports.
package sheet

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/okian/startlist/internal/domain/model"
	"golang.org/x/text/unicode/norm"
)

type reader struct {
	columns Columns
	sheet   string
	date    func(raw string) string
}

func newReader(opts []Option) *reader {
	r := &reader{
		columns: DefaultColumns(),
		date:    func(raw string) string { return raw },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read loads the athletes of the roster at path. The format follows the
// file extension: .xlsx and .xlsm workbooks, or .csv text.
func Read(ctx context.Context, path string, opts ...Option) ([]model.Athlete, error) {
	r := newReader(opts)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return r.readWorkbook(ctx, path)
	case ".csv", ".txt":
		return r.readCSVFile(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// layout holds the position of each athlete field in a row; -1 when the
// optional column is absent.
type layout struct {
	id, competition, team, license, last, first, sex, born, club int
}

func headerKey(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// resolve locates the configured columns in header.
func (r *reader) resolve(header []string) (layout, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		k := headerKey(h)
		if _, dup := index[k]; !dup {
			index[k] = i
		}
	}
	var missing []string
	find := func(name string, required bool) int {
		if i, ok := index[headerKey(name)]; ok {
			return i
		}
		if required {
			missing = append(missing, name)
		}
		return -1
	}
	l := layout{
		id:          find(r.columns.ID, true),
		competition: find(r.columns.Competition, false),
		team:        find(r.columns.Team, true),
		license:     find(r.columns.License, false),
		last:        find(r.columns.LastName, true),
		first:       find(r.columns.FirstName, true),
		sex:         find(r.columns.Sex, true),
		born:        find(r.columns.BirthDate, true),
		club:        find(r.columns.Club, false),
	}
	if len(missing) > 0 {
		return layout{}, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return l, nil
}

// athletes converts data rows; blank rows are skipped.
func (r *reader) athletes(ctx context.Context, l layout, rows [][]string) ([]model.Athlete, error) {
	out := make([]model.Athlete, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if blank(row) {
			continue
		}
		get := func(i int) string {
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		out = append(out, model.Athlete{
			ID:          get(l.id),
			Competition: get(l.competition),
			Team:        get(l.team),
			License:     get(l.license),
			LastName:    get(l.last),
			FirstName:   get(l.first),
			Sex:         get(l.sex),
			BirthDate:   r.date(get(l.born)),
			Club:        get(l.club),
		})
	}
	return out, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
