package thermo

import "math"

// DefaultGamma is the ratio of specific heats for air.
const DefaultGamma = 1.4

// OttoEfficiency returns the air-standard thermal efficiency of an Otto cycle,
// 1 - r^(1-gamma). The result lies in [0, 1) for r >= 1 and gamma > 1.
func OttoEfficiency(compressionRatio, gamma float64) (float64, error) {
	const op = "OttoEfficiency"
	if err := requirePositive(op, "compression_ratio", compressionRatio); err != nil {
		return 0, err
	}
	if err := requireFinite(op, "gamma", gamma); err != nil {
		return 0, err
	}
	return checkResult(op, 1-math.Pow(compressionRatio, -(gamma-1)))
}

// DieselEfficiency returns the air-standard thermal efficiency of a Diesel
// cycle. The cutoff ratio is the volume ratio across constant-pressure heat
// addition; at cutoffRatio == 1 the formula is undefined and rejected, though
// the efficiency approaches OttoEfficiency in that limit.
func DieselEfficiency(compressionRatio, cutoffRatio, gamma float64) (float64, error) {
	const op = "DieselEfficiency"
	if err := requirePositive(op, "compression_ratio", compressionRatio); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "cutoff_ratio", cutoffRatio); err != nil {
		return 0, err
	}
	if cutoffRatio == 1 {
		return 0, domainErr(op, "cutoff_ratio", cutoffRatio, "must not equal 1")
	}
	if err := requireFinite(op, "gamma", gamma); err != nil {
		return 0, err
	}
	if gamma == 0 {
		return 0, domainErr(op, "gamma", gamma, "must be non-zero")
	}

	compression := math.Pow(compressionRatio, -(gamma - 1))
	cutoff := (math.Pow(cutoffRatio, gamma) - 1) / (gamma * (cutoffRatio - 1))
	return checkResult(op, 1-compression*cutoff)
}
