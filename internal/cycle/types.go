package cycle

import "fmt"

// Point is a single state on a P-V diagram.
type Point struct {
	V float64
	P float64
}

// Series is a named curve sampled at ordered X values.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Len returns the number of X samples.
func (s Series) Len() int {
	return len(s.X)
}

// Validate reports a mismatch between X and Y lengths.
func (s Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series %q: %d x values but %d y values", s.Name, len(s.X), len(s.Y))
	}
	return nil
}
