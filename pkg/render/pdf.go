package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/svg"
)

const (
	pdfFont     = "Courier"
	pdfFontSize = 12.0
	// minPageSide keeps gofpdf from rejecting empty figures.
	minPageSide = 1.0
)

// PDF draws root on a single page sized to the canvas, one canvas pixel
// per point.
func PDF(root *svg.Node) ([]byte, error) {
	w, h := canvas(root)
	size := gofpdf.SizeType{Wd: max(w, minPageSide), Ht: max(h, minPageSide)}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("genetracks", false)
	pdf.AddPage()
	pdf.SetFont(pdfFont, "", pdfFontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	err := svg.Walk(root, func(n *svg.Node, dx, dy float64) error {
		switch n.Name {
		case "rect":
			drawRect(pdf, n, dx, dy)
		case "path":
			return drawPath(pdf, n, dx, dy)
		case "text":
			drawText(pdf, n, dx, dy, tr)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "replay drawing")
	}
	if err := pdf.Error(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build pdf")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func setFill(pdf *gofpdf.Fpdf, token string) {
	c, _ := ParseColour(token)
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setDraw(pdf *gofpdf.Fpdf, token string) {
	c, _ := ParseColour(token)
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

// paintStyle maps SVG paint attributes to a gofpdf style string.
// A transparent stroke is not drawn.
func paintStyle(pdf *gofpdf.Fpdf, n *svg.Node) string {
	var style string
	if fill, ok := n.Attr("fill"); !ok || fill != "none" {
		if !ok {
			fill = "black"
		}
		setFill(pdf, fill)
		style += "F"
	}
	if stroke, ok := n.Attr("stroke"); ok && stroke != "none" {
		if op, _ := n.Attr("stroke-opacity"); op != "0" {
			setDraw(pdf, stroke)
			style += "D"
		}
	}
	return style
}

func drawRect(pdf *gofpdf.Fpdf, n *svg.Node, dx, dy float64) {
	style := paintStyle(pdf, n)
	if style == "" {
		return
	}
	pdf.Rect(dx+attrFloat(n, "x"), dy+attrFloat(n, "y"), attrFloat(n, "width"), attrFloat(n, "height"), style)
}

func drawPath(pdf *gofpdf.Fpdf, n *svg.Node, dx, dy float64) error {
	d, _ := n.Attr("d")
	subpaths, err := svg.ParsePath(d)
	if err != nil {
		return err
	}
	style := paintStyle(pdf, n)
	for _, pts := range subpaths {
		if style == "D" {
			for i := 1; i < len(pts); i++ {
				pdf.Line(dx+pts[i-1].X, dy+pts[i-1].Y, dx+pts[i].X, dy+pts[i].Y)
			}
			continue
		}
		if style == "" {
			continue
		}
		poly := make([]gofpdf.PointType, len(pts))
		for i, p := range pts {
			poly[i] = gofpdf.PointType{X: dx + p.X, Y: dy + p.Y}
		}
		pdf.Polygon(poly, style)
	}
	return nil
}

// drawText centres the label on its anchor; 0.35em approximates the
// distance from the middle of the x-height to the baseline.
func drawText(pdf *gofpdf.Fpdf, n *svg.Node, dx, dy float64, tr func(string) string) {
	if n.Text == "" {
		return
	}
	text := tr(n.Text)
	x := dx + attrFloat(n, "x") - pdf.GetStringWidth(text)/2
	y := dy + attrFloat(n, "y") + pdfFontSize*0.35
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(x, y, text)
}
