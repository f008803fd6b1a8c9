/*
Copyright © 2024 the Strata authors.
This file is part of Strata.

Strata is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Strata is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Strata.  If not, see <http://www.gnu.org/licenses/>.
*/

package strata

import "github.com/ctessum/unit"

// Default values for the physical constants, MKS units.
const (
	DefaultGravity       = 9.81   // acceleration due to gravity [m s⁻²]
	DefaultRhoSeaWater   = 1030.  // density of sea water [kg m⁻³]
	DefaultRhoFreshWater = 1000.  // density of fresh water [kg m⁻³]
	DefaultSeaSalinity   = 35.    // salinity of the ocean [psu]
	DefaultRhoQuartz     = 2650.  // density of quartz [kg m⁻³]
	DefaultRhoMantle     = 3300.  // density of the mantle [kg m⁻³]
	DefaultMuWater       = 0.0014 // dynamic viscosity of water [kg m⁻¹ s⁻¹]
	DefaultEtaWater      = 1.4e-6 // kinematic viscosity of water [m² s⁻¹]
)

// Derived constants that are not settable.
const (
	gammaWater      = 10000. // unit weight of water [N m⁻³]
	velocityInWater = 1500.  // speed of sound in water [m s⁻¹]
	velocityInRock  = 5230.  // speed of sound in rock [m s⁻¹]
	secondsPerDay   = 86400.
	daysPerSecond   = 1. / secondsPerDay
	daysPerYear     = 365.
)

// Bursik (1995) constants relating removal rate to settling velocity.
//
// Bursik, M.I., 1995. Theory of the sedimentation of suspended particles
// from fluvial plumes. Sedimentology, v. 42, pp. 831-838.
const (
	bursikA3 = 1.74
	bursikH  = 7.5
)

var (
	gravity       = DefaultGravity
	rhoSeaWater   = DefaultRhoSeaWater
	rhoFreshWater = DefaultRhoFreshWater
	seaSalinity   = DefaultSeaSalinity
	rhoQuartz     = DefaultRhoQuartz
	rhoMantle     = DefaultRhoMantle
	muWater       = DefaultMuWater
	etaWater      = DefaultEtaWater
)

// UnitSystem selects the unit system that a physical constant is reported
// in. Internally everything is MKS; the other systems are offered on read
// for output formatting.
type UnitSystem int

const (
	MKS UnitSystem = iota
	CGS
	Imperial
)

// Conversion factors from MKS.
const (
	cmPerM          = 100.
	ftPerM          = 3.2808399
	lbPerFt3PerMKS  = 0.062428 // kg m⁻³ to lb ft⁻³
	gPerCm3PerMKS   = 0.001    // kg m⁻³ to g cm⁻³
	kgPerM3Fraction = 0.001    // psu to mass fraction
)

func densityIn(rho float64, u UnitSystem) float64 {
	switch u {
	case CGS:
		return rho * gPerCm3PerMKS
	case Imperial:
		return rho * lbPerFt3PerMKS
	default:
		return rho
	}
}

// Gravity returns the acceleration due to gravity [m s⁻²].
func Gravity() float64 { return gravity }

// SetGravity sets the acceleration due to gravity and returns the new value.
func SetGravity(v float64) float64 { gravity = v; return gravity }

// GravityIn returns the acceleration due to gravity in the requested unit
// system.
func GravityIn(u UnitSystem) float64 {
	switch u {
	case CGS:
		return gravity * cmPerM
	case Imperial:
		return gravity * ftPerM
	default:
		return gravity
	}
}

// RhoSeaWater returns the density of sea water [kg m⁻³].
func RhoSeaWater() float64 { return rhoSeaWater }

// SetRhoSeaWater sets the density of sea water.
func SetRhoSeaWater(v float64) float64 { rhoSeaWater = v; return rhoSeaWater }

// RhoSeaWaterIn returns the density of sea water in the requested unit
// system.
func RhoSeaWaterIn(u UnitSystem) float64 { return densityIn(rhoSeaWater, u) }

// RhoFreshWater returns the density of fresh water [kg m⁻³].
func RhoFreshWater() float64 { return rhoFreshWater }

// SetRhoFreshWater sets the density of fresh water.
func SetRhoFreshWater(v float64) float64 { rhoFreshWater = v; return rhoFreshWater }

// RhoFreshWaterIn returns the density of fresh water in the requested unit
// system.
func RhoFreshWaterIn(u UnitSystem) float64 { return densityIn(rhoFreshWater, u) }

// SeaSalinity returns the salinity of the ocean [psu].
func SeaSalinity() float64 { return seaSalinity }

// SetSeaSalinity sets the salinity of the ocean.
func SetSeaSalinity(v float64) float64 { seaSalinity = v; return seaSalinity }

// SeaSalinityIn returns the ocean salinity as a mass fraction; all unit
// systems report the same dimensionless value.
func SeaSalinityIn(u UnitSystem) float64 { return seaSalinity * kgPerM3Fraction }

// RhoQuartz returns the density of quartz [kg m⁻³], the upper bound for
// grain densities.
func RhoQuartz() float64 { return rhoQuartz }

// SetRhoQuartz sets the density of quartz.
func SetRhoQuartz(v float64) float64 { rhoQuartz = v; return rhoQuartz }

// RhoQuartzIn returns the density of quartz in the requested unit system.
func RhoQuartzIn(u UnitSystem) float64 { return densityIn(rhoQuartz, u) }

// RhoMantle returns the density of the mantle [kg m⁻³].
func RhoMantle() float64 { return rhoMantle }

// SetRhoMantle sets the density of the mantle.
func SetRhoMantle(v float64) float64 { rhoMantle = v; return rhoMantle }

// RhoMantleIn returns the density of the mantle in the requested unit
// system.
func RhoMantleIn(u UnitSystem) float64 { return densityIn(rhoMantle, u) }

// MuWater returns the dynamic viscosity of water [kg m⁻¹ s⁻¹].
func MuWater() float64 { return muWater }

// SetMuWater sets the dynamic viscosity of water.
func SetMuWater(v float64) float64 { muWater = v; return muWater }

// EtaWater returns the kinematic viscosity of water [m² s⁻¹].
func EtaWater() float64 { return etaWater }

// SetEtaWater sets the kinematic viscosity of water.
func SetEtaWater(v float64) float64 { etaWater = v; return etaWater }

// ResetConstants restores every physical constant to its default value.
func ResetConstants() {
	gravity = DefaultGravity
	rhoSeaWater = DefaultRhoSeaWater
	rhoFreshWater = DefaultRhoFreshWater
	seaSalinity = DefaultSeaSalinity
	rhoQuartz = DefaultRhoQuartz
	rhoMantle = DefaultRhoMantle
	muWater = DefaultMuWater
	etaWater = DefaultEtaWater
}

// Dimensioned accessors. These attach SI dimensions to the constants so
// that client code doing unit arithmetic can carry them through
// dimension-checked calculations.

var (
	accelDims   = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2}
	densityDims = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}
	dynViscDims = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -1}
	kinViscDims = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -1}
)

// GravityUnit returns gravity as a dimensioned value.
func GravityUnit() *unit.Unit { return unit.New(gravity, accelDims) }

// RhoSeaWaterUnit returns the sea-water density as a dimensioned value.
func RhoSeaWaterUnit() *unit.Unit { return unit.New(rhoSeaWater, densityDims) }

// RhoFreshWaterUnit returns the fresh-water density as a dimensioned value.
func RhoFreshWaterUnit() *unit.Unit { return unit.New(rhoFreshWater, densityDims) }

// RhoQuartzUnit returns the quartz density as a dimensioned value.
func RhoQuartzUnit() *unit.Unit { return unit.New(rhoQuartz, densityDims) }

// RhoMantleUnit returns the mantle density as a dimensioned value.
func RhoMantleUnit() *unit.Unit { return unit.New(rhoMantle, densityDims) }

// MuWaterUnit returns the dynamic viscosity of water as a dimensioned value.
func MuWaterUnit() *unit.Unit { return unit.New(muWater, dynViscDims) }

// EtaWaterUnit returns the kinematic viscosity of water as a dimensioned
// value.
func EtaWaterUnit() *unit.Unit { return unit.New(etaWater, kinViscDims) }

// RemovalRateToSettlingVelocity converts a removal rate [1/day] to a
// settling velocity [m/day] using the Bursik (1995) relation.
func RemovalRateToSettlingVelocity(lambda float64) float64 {
	return lambda * bursikA3 * bursikH
}

// SettlingVelocityToRemovalRate converts a settling velocity [m/day] back
// to a removal rate [1/day].
func SettlingVelocityToRemovalRate(ws float64) float64 {
	return ws / (bursikA3 * bursikH)
}
