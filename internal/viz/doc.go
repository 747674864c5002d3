// Package viz provides an interactive terminal explorer for cycle efficiency.
//
// The explorer is a Bubble Tea program showing Otto and Diesel efficiency for
// adjustable compression ratio, cutoff ratio and gamma, with a live chart of
// both curves over the default sweep.
//
// # Key Bindings
//
//	Up/Down    - Select parameter
//	Left/Right - Decrease/increase selected parameter
//	R          - Reset to initial values
//	Q          - Quit
//
// Inputs outside a formula's domain (a cutoff ratio of exactly 1, for
// example) are reported in the view instead of stopping the program.
package viz
