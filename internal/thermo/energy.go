package thermo

// InternalEnergyChange applies the first law of thermodynamics: the change in
// internal energy is the heat added to the system minus the work done by it.
// All quantities are in joules and may be negative.
func InternalEnergyChange(heatAdded, workDone float64) float64 {
	return heatAdded - workDone
}
