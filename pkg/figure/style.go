package figure

// Style selects the glyph an element is drawn with.
type Style string

// Known styles. The zero value renders as [StyleRect].
const (
	StyleRect  Style = "Rect"
	StyleLine  Style = "Line"
	StyleBar   Style = "Bar"
	StyleLeft  Style = "Left"
	StyleRight Style = "Right"
)

// Styles lists the known styles in declaration order.
var Styles = []Style{StyleRect, StyleLine, StyleBar, StyleLeft, StyleRight}

// Known reports whether s is one of [Styles].
func (s Style) Known() bool {
	switch s {
	case StyleRect, StyleLine, StyleBar, StyleLeft, StyleRight:
		return true
	}
	return false
}

// Labelled reports whether elements of this style carry a text label.
func (s Style) Labelled() bool {
	return s != StyleLine && s != StyleBar
}

func (s Style) String() string {
	if s == "" {
		return string(StyleRect)
	}
	return string(s)
}
