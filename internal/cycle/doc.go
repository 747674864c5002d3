// Package cycle samples the thermo formulas over ordered ranges of inputs.
//
// It produces plain data for renderers and exporters:
//
//   - [Linspace]: evenly spaced sample points
//   - [OttoDiagram]: P-V loop of an ideal Otto cycle
//   - [Comparison]: Otto and Diesel efficiency curves over compression ratio
//   - [Isotherm]: ideal-gas pressure over volume at fixed temperature
//
// Domain errors from [thermo] are returned unchanged so callers can decide
// whether to abort or skip the offending range.
package cycle
