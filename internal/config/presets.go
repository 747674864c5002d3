package config

import "sort"

var Presets = map[string]EngineConfig{
	"petrol": {
		Displacement: 0.002, CompressionRatio: 9.5, CutoffRatio: 2.0, HeatAdded: 1000, Points: DefaultPoints,
	},
	"performance": {
		Displacement: 0.0016, CompressionRatio: 12.5, CutoffRatio: 1.8, HeatAdded: 1200, Points: DefaultPoints,
	},
	"diesel_truck": {
		Displacement: 0.012, CompressionRatio: 17.0, CutoffRatio: 2.2, HeatAdded: 9000, Points: DefaultPoints,
	},
	"diesel_marine": {
		Displacement: 0.5, CompressionRatio: 14.0, CutoffRatio: 1.6, HeatAdded: 300000, Points: DefaultPoints,
	},
}

// GetPreset returns a copy of the named engine preset, or nil.
func GetPreset(name string) *EngineConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
