package cycle

import (
	"fmt"
	"math"

	"github.com/san-kum/thermolab/internal/thermo"
)

const DefaultPoints = 100

// OttoParams describes an ideal Otto engine for diagram sampling.
type OttoParams struct {
	Displacement     float64 // m³, the maximum cylinder volume
	CompressionRatio float64
	HeatAdded        float64 // J per cycle
	Gamma            float64
	Points           int // per stroke; DefaultPoints when zero
}

// Diagram is a closed P-V loop with its derived efficiency.
type Diagram struct {
	Points       []Point
	Efficiency   float64
	PeakPressure float64
	MinVolume    float64
	MaxVolume    float64
}

// OttoDiagram samples the four strokes of an ideal Otto cycle starting from
// atmospheric intake: isentropic compression, isochoric heat addition,
// isentropic expansion and isochoric heat rejection back to the start.
func OttoDiagram(p OttoParams) (*Diagram, error) {
	if p.Points == 0 {
		p.Points = DefaultPoints
	}
	if p.Points < 2 {
		return nil, ErrTooFewPoints
	}
	if p.Displacement <= 0 {
		return nil, &thermo.DomainError{Op: "OttoDiagram", Param: "displacement", Value: p.Displacement, Reason: "must be positive"}
	}
	if p.HeatAdded < 0 {
		return nil, &thermo.DomainError{Op: "OttoDiagram", Param: "heat_added", Value: p.HeatAdded, Reason: "must not be negative"}
	}

	eff, err := thermo.OttoEfficiency(p.CompressionRatio, p.Gamma)
	if err != nil {
		return nil, err
	}

	vMax := p.Displacement
	vMin := p.Displacement / p.CompressionRatio
	p1 := thermo.AtmosphericPressure

	pts := make([]Point, 0, 2*p.Points+2)

	compression, err := Linspace(vMax, vMin, p.Points)
	if err != nil {
		return nil, err
	}
	p2 := p1
	for _, v := range compression {
		p2 = p1 * math.Pow(vMax/v, p.Gamma)
		pts = append(pts, Point{V: v, P: p2})
	}

	// Constant-volume heat addition, approximated as a pressure ratio.
	p3 := p2 * (1 + p.HeatAdded/(p2*vMin))
	pts = append(pts, Point{V: vMin, P: p3})

	expansion, err := Linspace(vMin, vMax, p.Points)
	if err != nil {
		return nil, err
	}
	for _, v := range expansion {
		pts = append(pts, Point{V: v, P: p3 * math.Pow(vMin/v, p.Gamma)})
	}

	pts = append(pts, Point{V: vMax, P: p1})

	for _, pt := range pts {
		if math.IsNaN(pt.P) || math.IsInf(pt.P, 0) {
			return nil, fmt.Errorf("otto diagram: pressure diverged at V=%g: %w", pt.V, thermo.ErrDomain)
		}
	}

	return &Diagram{
		Points:       pts,
		Efficiency:   eff,
		PeakPressure: p3,
		MinVolume:    vMin,
		MaxVolume:    vMax,
	}, nil
}

// Volumes and Pressures split the loop into parallel slices for renderers.
func (d *Diagram) Volumes() []float64 {
	out := make([]float64, len(d.Points))
	for i, pt := range d.Points {
		out[i] = pt.V
	}
	return out
}

func (d *Diagram) Pressures() []float64 {
	out := make([]float64, len(d.Points))
	for i, pt := range d.Points {
		out[i] = pt.P
	}
	return out
}

// Series returns the loop as a single series in traversal order.
func (d *Diagram) Series() Series {
	return Series{Name: "otto p-v", X: d.Volumes(), Y: d.Pressures()}
}
