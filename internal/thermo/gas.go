package thermo

import "math"

const (
	// GasConstant is the molar gas constant in J/(mol·K).
	GasConstant = 8.314

	// AtmosphericPressure is standard sea-level pressure in Pa.
	AtmosphericPressure = 101325.0

	// ReferenceTemperature is the intake temperature in K used for cycle diagrams.
	ReferenceTemperature = 298.0
)

// IdealGasPressure solves PV = nRT for P. Volume is in m³, temperature in K,
// and the result in Pa.
func IdealGasPressure(volume, moles, temperature, r float64) (float64, error) {
	return gasPressure("IdealGasPressure", volume, moles, temperature, 1, r)
}

// GasPressure is IdealGasPressure corrected by the compressibility factor z.
func GasPressure(volume, moles, temperature, z, r float64) (float64, error) {
	return gasPressure("GasPressure", volume, moles, temperature, z, r)
}

func gasPressure(op string, volume, moles, temperature, z, r float64) (float64, error) {
	if err := requirePositive(op, "volume", volume); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "moles", moles); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "temperature", temperature); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "z", z); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "r", r); err != nil {
		return 0, err
	}
	return checkResult(op, (z*moles*r*temperature)/volume)
}

// IsothermalWork is the work done by an ideal gas expanding reversibly at
// constant temperature from v1 to v2. Compression yields negative work.
func IsothermalWork(moles, temperature, v1, v2, r float64) (float64, error) {
	const op = "IsothermalWork"
	if err := requirePositive(op, "moles", moles); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "temperature", temperature); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "v1", v1); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "v2", v2); err != nil {
		return 0, err
	}
	if err := requirePositive(op, "r", r); err != nil {
		return 0, err
	}
	return checkResult(op, moles*r*temperature*math.Log(v2/v1))
}
