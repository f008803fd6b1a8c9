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

import (
	"testing"

	"github.com/ctessum/unit"
)

func TestConstantsDefaults(t *testing.T) {
	ResetConstants()
	if Gravity() != 9.81 || RhoSeaWater() != 1030. || RhoFreshWater() != 1000. ||
		SeaSalinity() != 35. || RhoQuartz() != 2650. || RhoMantle() != 3300. {
		t.Error("defaults not restored")
	}
}

func TestConstantsSetAndReset(t *testing.T) {
	defer ResetConstants()

	if got := SetGravity(3.7); got != 3.7 || Gravity() != 3.7 {
		t.Errorf("gravity = %g, want 3.7", Gravity())
	}
	SetRhoSeaWater(1025)
	if RhoSeaWater() != 1025 {
		t.Errorf("rho sea water = %g, want 1025", RhoSeaWater())
	}

	ResetConstants()
	if Gravity() != 9.81 || RhoSeaWater() != 1030 {
		t.Error("reset did not restore defaults")
	}
}

func TestConstantsUnitSystems(t *testing.T) {
	ResetConstants()

	if absDifferent(GravityIn(CGS), 981, 1e-9) {
		t.Errorf("gravity in CGS = %g, want 981", GravityIn(CGS))
	}
	if absDifferent(GravityIn(Imperial), 9.81*3.2808399, 1e-9) {
		t.Errorf("gravity in ft/s² = %g", GravityIn(Imperial))
	}
	if absDifferent(RhoSeaWaterIn(CGS), 1.03, 1e-12) {
		t.Errorf("sea water in g/cm³ = %g, want 1.03", RhoSeaWaterIn(CGS))
	}
	if absDifferent(RhoQuartzIn(Imperial), 2650*0.062428, 1e-9) {
		t.Errorf("quartz in lb/ft³ = %g", RhoQuartzIn(Imperial))
	}
	if absDifferent(RhoMantleIn(MKS), 3300, 1e-12) {
		t.Errorf("mantle in MKS = %g, want 3300", RhoMantleIn(MKS))
	}
	if absDifferent(SeaSalinityIn(MKS), .035, 1e-12) {
		t.Errorf("salinity fraction = %g, want .035", SeaSalinityIn(MKS))
	}
}

func TestConstantsDimensioned(t *testing.T) {
	ResetConstants()

	g := GravityUnit()
	if err := g.Check(unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -2}); err != nil {
		t.Error(err)
	}
	if g.Value() != 9.81 {
		t.Errorf("gravity value = %g", g.Value())
	}

	rho := RhoSeaWaterUnit()
	if err := rho.Check(unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -3}); err != nil {
		t.Error(err)
	}

	// ρ·g comes out in pressure-gradient units.
	rho.Mul(g)
	if err := rho.Check(unit.Dimensions{
		unit.MassDim: 1, unit.LengthDim: -2, unit.TimeDim: -2,
	}); err != nil {
		t.Error(err)
	}
}

func TestSettlingVelocityConversions(t *testing.T) {
	ws := RemovalRateToSettlingVelocity(50)
	if absDifferent(ws, 652.5, 1e-9) {
		t.Errorf("settling velocity = %g, want 652.5", ws)
	}
	if absDifferent(SettlingVelocityToRemovalRate(ws), 50, 1e-9) {
		t.Error("conversion should round-trip")
	}
}
