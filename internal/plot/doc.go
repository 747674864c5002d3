// Package plot renders sampled curves for terminals and files.
//
//   - [Lines]: multi-series line chart via asciigraph
//   - [Scatter]: framed ASCII scatter for P-V loops
//   - [SVG], [DiagramSVG]: polyline SVG export
package plot
