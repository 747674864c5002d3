package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/thermolab/internal/cycle"
)

func sampleSeries() []cycle.Series {
	return []cycle.Series{
		{Name: "otto", X: []float64{4, 8}, Y: []float64{0.4257, 0.5647}},
		{Name: "diesel (cutoff=2)", X: []float64{4, 8}, Y: []float64{0.3276, 0.4899}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleSeries()); err != nil {
		t.Fatalf("write csv failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 rows, got %d lines", len(lines))
	}
	if lines[0] != "series,index,x,y" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "otto,0,4,0.4257" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], `"diesel (cutoff=2)",0,`) && !strings.HasPrefix(lines[3], "diesel (cutoff=2),0,") {
		t.Errorf("unexpected diesel row: %q", lines[3])
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleSeries()); err != nil {
		t.Fatalf("write csv failed: %v", err)
	}

	series, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read csv failed: %v", err)
	}

	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[1].Name != "diesel (cutoff=2)" {
		t.Errorf("expected diesel second, got %s", series[1].Name)
	}
	if series[0].Y[1] != 0.5647 {
		t.Errorf("expected 0.5647, got %f", series[0].Y[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleSeries()); err != nil {
		t.Fatalf("write json failed: %v", err)
	}

	var doc struct {
		Series []SeriesData `json:"series"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if len(doc.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(doc.Series))
	}
	if doc.Series[0].Points != 2 {
		t.Errorf("expected 2 points, got %d", doc.Series[0].Points)
	}
}

func TestMismatchedSeries(t *testing.T) {
	bad := []cycle.Series{{Name: "bad", X: []float64{1, 2}, Y: []float64{1}}}

	if err := WriteCSV(&bytes.Buffer{}, bad); err == nil {
		t.Error("expected error for mismatched csv series")
	}
	if err := WriteJSON(&bytes.Buffer{}, bad); err == nil {
		t.Error("expected error for mismatched json series")
	}
}
