// Package svg provides the structured vector-drawing fragment produced by the
// figure renderer.
//
// A [Node] is an element with ordered attributes, child nodes and optional
// character data. The tree is what the layout engine hands to its callers;
// turning it into bytes is a separate step:
//
//   - [Encode] writes the tree as indented SVG markup
//   - [Walk] visits nodes with the translation accumulated from enclosing
//     groups, which is how the raster and PDF sinks replay the geometry
//
// Only the subset of SVG the figure renderer emits is interpreted by
// [Walk] and [ParsePath]: groups translated with "translate(x y)", rect,
// path data made of absolute M and L commands, and text.
package svg
