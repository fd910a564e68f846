package svg

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

// Encode writes n and its descendants as indented markup.
// Elements without children or text are self-closed.
func Encode(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	encodeNode(bw, n, 0)
	return bw.Flush()
}

func encodeNode(w *bufio.Writer, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	w.WriteString(indent)
	w.WriteByte('<')
	w.WriteString(n.Name)
	for _, a := range n.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		w.WriteString(Escape(a.Value))
		w.WriteByte('"')
	}

	switch {
	case len(n.Children) == 0 && n.Text == "":
		w.WriteString("/>\n")
	case len(n.Children) == 0:
		w.WriteByte('>')
		w.WriteString(Escape(n.Text))
		w.WriteString("</" + n.Name + ">\n")
	default:
		w.WriteString(">\n")
		if n.Text != "" {
			w.WriteString(indent + "  " + Escape(n.Text) + "\n")
		}
		for _, c := range n.Children {
			encodeNode(w, c, depth+1)
		}
		w.WriteString(indent + "</" + n.Name + ">\n")
	}
}

// Escape returns s with XML special characters replaced by entities.
func Escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
