// Package pkg provides the core libraries for genetracks track diagrams.
//
// # Overview
//
// A figure is a canvas of fixed width holding tracks stacked top to bottom.
// Each track holds elements (rectangles, lines, bars, directional flags)
// placed on a shared coordinate axis that is scaled to the canvas width.
//
// # Architecture
//
// The typical data flow:
//
//	JSON/YAML document or spreadsheet
//	         ↓
//	    [io] / [sheet] (decode into a figure)
//	         ↓
//	    [figure] (measure tracks, build the drawing)
//	         ↓
//	    [svg] (drawing tree)
//	         ↓
//	    [render] (SVG, PNG, PDF bytes)
//
// [pipeline] runs these steps with artifact caching through [cache], and
// [server] exposes the pipeline over HTTP.
//
// # Quick Start
//
//	fig := figure.New()
//	_ = fig.PushInterval(100, 150)
//	svg := render.SVG(fig.ToDrawing())
package pkg
