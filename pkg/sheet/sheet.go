// Package sheet imports interval tables from Excel workbooks.
//
// A table has one interval per row: start in column A, end in column B and
// an optional label in column C. A first row whose start cell is not a
// number is taken as a header and skipped. Blank rows are ignored.
package sheet

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
)

// Interval is one table row.
type Interval struct {
	Row   int // 1-based row number in the sheet
	Start uint64
	End   uint64
	Label string
}

// ReadIntervals reads every interval row of the named sheet. An empty
// sheet name selects the first sheet in the workbook.
func ReadIntervals(path, sheet string) ([]Interval, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "workbook %s", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "open workbook %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New(errors.ErrCodeParse, "workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "sheet %q not found in %s", sheet, path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "read sheet %q", sheet)
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]Interval, error) {
	var out []Interval
	for i, cells := range rows {
		row := i + 1
		if blank(cells) {
			continue
		}
		start, ok := parseCoord(cell(cells, 0))
		if !ok {
			if i == 0 {
				continue // header
			}
			return nil, errors.New(errors.ErrCodeParse, "row %d: start %q is not a non-negative integer", row, cell(cells, 0))
		}
		end, ok := parseCoord(cell(cells, 1))
		if !ok {
			return nil, errors.New(errors.ErrCodeParse, "row %d: end %q is not a non-negative integer", row, cell(cells, 1))
		}
		if end < start {
			return nil, errors.New(errors.ErrCodeInvalidInterval, "row %d: end %d is before start %d", row, end, start)
		}
		out = append(out, Interval{Row: row, Start: start, End: end, Label: cell(cells, 2)})
	}
	return out, nil
}

// Figure builds one interval track per row, in row order.
// A zero width keeps the default canvas width.
func Figure(intervals []Interval, width uint) (*figure.Figure, error) {
	f := figure.New()
	if width > 0 {
		f.Width = width
	}
	for _, iv := range intervals {
		t, err := figure.IntervalTrack(iv.Start, iv.End, iv.Label)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInterval, err, "row %d", iv.Row)
		}
		f.Tracks = append(f.Tracks, t)
	}
	return f, nil
}

// Import reads a sheet and builds its figure.
func Import(path, sheet string, width uint) (*figure.Figure, error) {
	intervals, err := ReadIntervals(path, sheet)
	if err != nil {
		return nil, err
	}
	return Figure(intervals, width)
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseCoord accepts integers and integral floats such as "1200" or "1200.0".
func parseCoord(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v != math.Trunc(v) || v > math.MaxUint64 {
		return 0, false
	}
	return uint64(v), true
}
