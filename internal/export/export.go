// Package export writes sampled series as CSV or JSON.
package export

import (
	"encoding/json"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/thermolab/internal/cycle"
)

// Sample is one row of the long-format CSV export.
type Sample struct {
	Series string  `csv:"series"`
	Index  int     `csv:"index"`
	X      float64 `csv:"x"`
	Y      float64 `csv:"y"`
}

// SeriesData is the JSON form of a series.
type SeriesData struct {
	Name   string    `json:"name"`
	Points int       `json:"points"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

type document struct {
	Series []SeriesData `json:"series"`
}

// Rows flattens series into one row per sample, in series order.
func Rows(series []cycle.Series) ([]*Sample, error) {
	n := 0
	for _, s := range series {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		n += s.Len()
	}

	rows := make([]*Sample, 0, n)
	for _, s := range series {
		for i := range s.X {
			rows = append(rows, &Sample{Series: s.Name, Index: i, X: s.X[i], Y: s.Y[i]})
		}
	}
	return rows, nil
}

func WriteCSV(w io.Writer, series []cycle.Series) error {
	rows, err := Rows(series)
	if err != nil {
		return err
	}
	return gocsv.Marshal(rows, w)
}

func WriteJSON(w io.Writer, series []cycle.Series) error {
	doc := document{Series: make([]SeriesData, 0, len(series))}
	for _, s := range series {
		if err := s.Validate(); err != nil {
			return err
		}
		doc.Series = append(doc.Series, SeriesData{Name: s.Name, Points: s.Len(), X: s.X, Y: s.Y})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadCSV parses rows written by WriteCSV back into series, preserving the
// order in which series names first appear.
func ReadCSV(r io.Reader) ([]cycle.Series, error) {
	var rows []*Sample
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}

	var out []cycle.Series
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Series]
		if !ok {
			i = len(out)
			index[row.Series] = i
			out = append(out, cycle.Series{Name: row.Series})
		}
		out[i].X = append(out[i].X, row.X)
		out[i].Y = append(out[i].Y, row.Y)
	}
	return out, nil
}
