package render

import (
	"bytes"

	"github.com/genetracks/genetracks/pkg/svg"
)

// SVG returns the indented markup of root.
func SVG(root *svg.Node) []byte {
	var buf bytes.Buffer
	_ = svg.Encode(&buf, root)
	return buf.Bytes()
}

// canvas reads the pixel size declared on the root element.
func canvas(root *svg.Node) (w, h float64) {
	w = attrFloat(root, "width")
	h = attrFloat(root, "height")
	return w, h
}
