// Package thermo provides closed-form thermodynamics formulas.
//
// Every function is a pure mapping from scalar inputs to a scalar output:
//
//   - [InternalEnergyChange]: first law, dU = Q - W
//   - [IdealGasPressure], [GasPressure]: PV = ZnRT solved for P
//   - [IsothermalWork]: W = nRT ln(V2/V1)
//   - [OttoEfficiency], [DieselEfficiency]: air-standard cycle efficiency
//
// # Domain Errors
//
// Inputs outside a formula's valid domain are rejected with a [*DomainError]
// wrapping [ErrDomain]. Non-positive volume, moles, temperature and gas
// constant are rejected, as are NaN and infinite inputs. No function returns
// NaN or Inf silently.
//
//	p, err := thermo.IdealGasPressure(0.05, 2, 300, thermo.GasConstant)
//	if errors.Is(err, thermo.ErrDomain) {
//	    // skip the sample, report, or abort
//	}
//
// # Thread Safety
//
// The package holds no state; all functions are safe for concurrent use.
package thermo
