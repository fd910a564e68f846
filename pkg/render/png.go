package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/svg"
)

// MaxPixels bounds the raster canvas, after scaling.
const MaxPixels = 1 << 26

// PNG rasterises root at scale device pixels per canvas pixel and returns
// the encoded image on a white background.
func PNG(root *svg.Node, scale float64) ([]byte, error) {
	img, err := Raster(root, scale)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Raster draws root into a new RGBA image. A figure with no area yields a
// 1x1 white image.
func Raster(root *svg.Node, scale float64) (*image.RGBA, error) {
	if err := errors.ValidateScale(scale); err != nil {
		return nil, err
	}
	cw, ch := canvas(root)
	if sw, sh := math.Ceil(cw*scale), math.Ceil(ch*scale); sw*sh > MaxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"raster of %gx%g pixels exceeds the %d pixel limit", sw, sh, MaxPixels)
	}
	w, h := int(math.Ceil(cw*scale)), int(math.Ceil(ch*scale))

	if w == 0 || h == 0 {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, color.White)
		return img, nil
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	shapes := SVG(normalise(root, true))
	icon, err := oksvg.ReadIconStream(bytes.NewReader(shapes), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse drawing for raster")
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	if err := drawLabels(img, root, float64(w)/cw, float64(h)/ch); err != nil {
		return nil, err
	}
	return img, nil
}

// drawLabels writes each text node centred on its anchor point.
func drawLabels(img *image.RGBA, root *svg.Node, sx, sy float64) error {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.Black), Face: face}
	ascent := face.Metrics().Ascent.Round()

	return svg.Walk(root, func(n *svg.Node, dx, dy float64) error {
		if n.Name != "text" || n.Text == "" {
			return nil
		}
		x := (dx + attrFloat(n, "x")) * sx
		y := (dy + attrFloat(n, "y")) * sy
		width := d.MeasureString(n.Text).Round()
		d.Dot = fixed.P(int(math.Round(x))-width/2, int(math.Round(y))+ascent/2)
		d.DrawString(n.Text)
		return nil
	})
}
