package cycle

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/thermolab/internal/thermo"
)

// ErrTooFewPoints indicates a sample count below two.
var ErrTooFewPoints = errors.New("cycle: at least two sample points required")

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	return floats.Span(make([]float64, n), start, stop), nil
}

// Comparison samples Otto efficiency and one Diesel curve per cutoff ratio
// over the given compression ratios.
func Comparison(ratios, cutoffs []float64, gamma float64) ([]Series, error) {
	if len(ratios) == 0 {
		return nil, ErrTooFewPoints
	}

	out := make([]Series, 0, len(cutoffs)+1)

	otto := Series{Name: "otto", X: cloneFloats(ratios), Y: make([]float64, len(ratios))}
	for i, r := range ratios {
		eff, err := thermo.OttoEfficiency(r, gamma)
		if err != nil {
			return nil, err
		}
		otto.Y[i] = eff
	}
	out = append(out, otto)

	for _, cutoff := range cutoffs {
		diesel := Series{
			Name: fmt.Sprintf("diesel (cutoff=%g)", cutoff),
			X:    cloneFloats(ratios),
			Y:    make([]float64, len(ratios)),
		}
		for i, r := range ratios {
			eff, err := thermo.DieselEfficiency(r, cutoff, gamma)
			if err != nil {
				return nil, err
			}
			diesel.Y[i] = eff
		}
		out = append(out, diesel)
	}

	return out, nil
}

// Isotherm samples ideal-gas pressure across volumes at a fixed temperature.
func Isotherm(volumes []float64, moles, temperature, r float64) (Series, error) {
	s := Series{
		Name: fmt.Sprintf("isotherm (T=%gK)", temperature),
		X:    cloneFloats(volumes),
		Y:    make([]float64, len(volumes)),
	}
	for i, v := range volumes {
		p, err := thermo.IdealGasPressure(v, moles, temperature, r)
		if err != nil {
			return Series{}, err
		}
		s.Y[i] = p
	}
	return s, nil
}

func cloneFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
