package figure

import (
	"math"
	"strings"
	"testing"

	"github.com/genetracks/genetracks/pkg/errors"
)

func TestCheck(t *testing.T) {
	f := &Figure{
		Width: 0,
		Tracks: []Track{
			{Height: 0},
			{Height: 10, Elems: []Element{
				{Style: "Diamond", Length: 5},
				{Style: StyleBar, Length: 0},
				{Style: StyleRect, Start: math.MaxUint64, Length: 1},
			}},
		},
	}

	problems := f.Check()
	if len(problems) != 5 {
		for _, p := range problems {
			t.Log(p)
		}
		t.Fatalf("Check() = %d problems, want 5", len(problems))
	}

	var invalid int
	for _, p := range problems {
		if p.Severity == Invalid {
			invalid++
		}
	}
	if invalid != 2 {
		t.Errorf("invalid problems = %d, want 2", invalid)
	}

	if !strings.Contains(problems[2].String(), `unknown style "Diamond"`) {
		t.Errorf("problem = %q", problems[2])
	}
}

func TestCheckCleanFigure(t *testing.T) {
	f := New(Track{Height: 16, Elems: []Element{{Style: StyleRect, Length: 10, Colour: "red"}}})
	if p := f.Check(); len(p) != 0 {
		t.Errorf("Check() = %v, want none", p)
	}
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	f := &Figure{Width: 0}
	err := f.Validate()
	if !errors.Is(err, errors.ErrCodeInvalidFigure) {
		t.Fatalf("Validate() = %v, want %s", err, errors.ErrCodeInvalidFigure)
	}

	// Warnings alone do not fail validation.
	f = New(Track{Height: 0, Elems: []Element{{Style: "Hexagon", Length: 1}}})
	if err := f.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestStats(t *testing.T) {
	f := New(
		Track{Height: 16, Elems: []Element{
			{Style: StyleRect, Start: 0, Length: 10},
			{Style: "", Start: 10, Length: 10},
			{Style: "Unknown", Start: 20, Length: 10},
		}},
		Track{Height: 16, Elems: []Element{{Style: StyleRight, Start: 0, Length: 90}}},
	)
	s := f.Stats()
	if s.Tracks != 2 || s.Elements != 4 {
		t.Errorf("Tracks=%d Elements=%d, want 2 and 4", s.Tracks, s.Elements)
	}
	if s.MaxExtent != 90 {
		t.Errorf("MaxExtent = %d, want 90", s.MaxExtent)
	}
	if s.Height != 38 {
		t.Errorf("Height = %d, want 38", s.Height)
	}
	if s.ByStyle[StyleRect] != 3 || s.ByStyle[StyleRight] != 1 {
		t.Errorf("ByStyle = %v", s.ByStyle)
	}
}
