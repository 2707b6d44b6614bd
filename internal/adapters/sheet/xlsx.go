package sheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/okian/startlist/internal/domain/birthdate"
	"github.com/okian/startlist/internal/domain/model"
	"github.com/xuri/excelize/v2"
)

func (r *reader) readWorkbook(ctx context.Context, path string) ([]model.Athlete, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	name := r.sheet
	if name == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, ErrNoHeader
		}
		name = list[0]
	} else if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}

	// Raw values keep date cells as serial numbers.
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	l, err := r.resolve(rows[0])
	if err != nil {
		return nil, err
	}

	use1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		use1904 = *props.Date1904
	}
	r.date = func(raw string) string { return serialDate(raw, use1904) }

	athletes, err := r.athletes(ctx, l, rows[1:])
	if err != nil {
		return nil, err
	}
	for i := range athletes {
		athletes[i].ID = integral(athletes[i].ID)
		athletes[i].License = integral(athletes[i].License)
	}
	return athletes, nil
}

// serialDate converts an Excel date serial to dd/mm/yyyy; text is returned
// unchanged.
func serialDate(raw string, use1904 bool) string {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	t, err := excelize.ExcelDateToTime(v, use1904)
	if err != nil {
		return raw
	}
	return birthdate.FromTime(t).String()
}

// integral drops the ".0" of integer-valued numeric cells.
func integral(raw string) string {
	if !strings.HasSuffix(raw, ".0") {
		return raw
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return raw
	}
	return strings.TrimSuffix(raw, ".0")
}
