package sheet

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
)

// writeWorkbook saves rows to Sheet1 of a new workbook in a temp dir.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			name, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue("Sheet1", name, v); err != nil {
				t.Fatalf("SetCellValue: %v", err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "intervals.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestReadIntervals(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"start", "end", "label"},
		{100, 150, "exon 1"},
		{},
		{200, 260},
		{"300", "300.0", "point"},
	})

	got, err := ReadIntervals(path, "")
	if err != nil {
		t.Fatalf("ReadIntervals: %v", err)
	}
	want := []Interval{
		{Row: 2, Start: 100, End: 150, Label: "exon 1"},
		{Row: 4, Start: 200, End: 260},
		{Row: 5, Start: 300, End: 300, Label: "point"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("intervals (-want +got):\n%s", diff)
	}
}

func TestReadIntervalsNoHeader(t *testing.T) {
	path := writeWorkbook(t, [][]any{{0, 10}, {5, 20}})
	got, err := ReadIntervals(path, "Sheet1")
	if err != nil {
		t.Fatalf("ReadIntervals: %v", err)
	}
	if len(got) != 2 || got[0].Row != 1 {
		t.Errorf("got %+v", got)
	}
}

func TestReadIntervalsErrors(t *testing.T) {
	tests := []struct {
		name  string
		rows  [][]any
		sheet string
		code  errors.Code
	}{
		{"reversed", [][]any{{10, 5}}, "", errors.ErrCodeInvalidInterval},
		{"text start after header", [][]any{{"start", "end"}, {"abc", 5}}, "", errors.ErrCodeParse},
		{"missing end", [][]any{{1}}, "", errors.ErrCodeParse},
		{"negative", [][]any{{"start", "end"}, {-1, 5}}, "", errors.ErrCodeParse},
		{"fractional", [][]any{{"start", "end"}, {1.5, 5}}, "", errors.ErrCodeParse},
		{"unknown sheet", [][]any{{1, 5}}, "Genes", errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadIntervals(writeWorkbook(t, tt.rows), tt.sheet)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestReadIntervalsMissingFile(t *testing.T) {
	_, err := ReadIntervals(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestFigure(t *testing.T) {
	f, err := Figure([]Interval{
		{Row: 1, Start: 100, End: 150, Label: "a"},
		{Row: 2, Start: 0, End: 400},
	}, 800)
	if err != nil {
		t.Fatalf("Figure: %v", err)
	}
	if f.Width != 800 {
		t.Errorf("Width = %d, want 800", f.Width)
	}
	want := []figure.Track{
		{Height: figure.IntervalHeight, Elems: []figure.Element{
			{Style: figure.StyleBar, Label: "a", Start: 100, Length: 50, Colour: figure.IntervalColour},
		}},
		{Height: figure.IntervalHeight, Elems: []figure.Element{
			{Style: figure.StyleBar, Start: 0, Length: 400, Colour: figure.IntervalColour},
		}},
	}
	if diff := cmp.Diff(want, f.Tracks); diff != "" {
		t.Errorf("tracks (-want +got):\n%s", diff)
	}
}

func TestFigureDefaultWidth(t *testing.T) {
	f, err := Figure(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != figure.DefaultWidth || len(f.Tracks) != 0 {
		t.Errorf("got width %d, %d tracks", f.Width, len(f.Tracks))
	}
}

func TestFigureRejectsReversed(t *testing.T) {
	_, err := Figure([]Interval{{Row: 7, Start: 9, End: 1}}, 0)
	if !errors.Is(err, errors.ErrCodeInvalidInterval) {
		t.Errorf("err = %v, want INVALID_INTERVAL", err)
	}
}

func TestImport(t *testing.T) {
	path := writeWorkbook(t, [][]any{{"start", "end"}, {1, 2}, {3, 4}, {5, 6}})
	f, err := Import(path, "", 0)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(f.Tracks) != 3 {
		t.Errorf("tracks = %d, want one per row", len(f.Tracks))
	}
}
