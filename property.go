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

import "fmt"

// A Property describes one measurable geotechnical property of a cell: a
// name, a file extension for output files, and the function that measures
// it. Properties come in two arities. Plain properties are functions of
// the cell alone. Two-argument properties additionally take either the
// overlying load or, when UsesColumnAge is set, the column's age — the
// column reductions use that flag to decide which value to supply.
type Property struct {
	name          string
	ext           string
	nArgs         int
	usesColumnAge bool
	f0            func(*Cell) float64
	f1            func(*Cell, float64) float64
}

// NewPropertyFull returns a plain property measured by f.
func NewPropertyFull(name, ext string, f func(*Cell) float64) Property {
	return Property{name: name, ext: ext, nArgs: 1, f0: f}
}

// NewPropertyWithArg returns a two-argument property measured by f. When
// usesColumnAge is set, column reductions pass the column age as the
// second argument; otherwise they pass the cell's overlying load.
func NewPropertyWithArg(name, ext string, f func(*Cell, float64) float64, usesColumnAge bool) Property {
	return Property{name: name, ext: ext, nArgs: 2, usesColumnAge: usesColumnAge, f1: f}
}

// Name returns the name the property is registered under.
func (p Property) Name() string { return p.name }

// Ext returns the file extension used for the property in output files.
func (p Property) Ext() string { return p.ext }

// NArgs returns 1 for plain properties and 2 for properties that take an
// extra argument.
func (p Property) NArgs() int { return p.nArgs }

// UsesColumnAge reports whether the property's extra argument is the
// column age rather than the overlying load.
func (p Property) UsesColumnAge() bool { return p.usesColumnAge }

// IsNamed reports whether the property is registered under name.
func (p Property) IsNamed(name string) bool { return p.name == name }

// Measure evaluates the property on a cell. Two-argument properties take
// the extra argument from args, defaulting to 0 when none is supplied.
func (p Property) Measure(c *Cell, args ...float64) float64 {
	if p.nArgs == 2 {
		arg := 0.
		if len(args) > 0 {
			arg = args[0]
		}
		return p.f1(c, arg)
	}
	return p.f0(c)
}

// properties is the registry of all named properties.
var properties = []Property{
	NewPropertyFull("age", "age", (*Cell).Age),
	NewPropertyFull("facies", "facies", func(c *Cell) float64 { return float64(c.Facies()) }),
	NewPropertyFull("pressure", "press", (*Cell).Pressure),
	NewPropertyFull("density", "bulk", (*Cell).Density),
	NewPropertyFull("grain_density", "rhograin", (*Cell).GrainDensity),
	NewPropertyFull("max_density", "rho_max", (*Cell).MaxDensity),
	NewPropertyFull("grain", "grain", (*Cell).GrainSizeInPhi),
	NewPropertyFull("grain_in_meters", "grain", func(c *Cell) float64 { return c.GrainSize() * 1e-6 }),
	NewPropertyFull("sand", "sand", (*Cell).SandFraction),
	NewPropertyFull("silt", "silt", (*Cell).SiltFraction),
	NewPropertyFull("clay", "clay", (*Cell).ClayFraction),
	NewPropertyFull("mud", "mud", (*Cell).MudFraction),
	NewPropertyFull("velocity", "vel", (*Cell).Velocity),
	NewPropertyFull("viscosity", "visc", (*Cell).Viscosity),
	NewPropertyFull("relative_density", "dr", (*Cell).RelativeDensity),
	NewPropertyFull("porosity", "por", (*Cell).Porosity),
	NewPropertyFull("porosity_min", "pormin", (*Cell).PorosityMin),
	NewPropertyFull("porosity_max", "pormax", (*Cell).PorosityMax),
	NewPropertyFull("pi", "pi", (*Cell).PlasticIndex),
	NewPropertyFull("permeability", "perm", (*Cell).Permeability),
	NewPropertyFull("void_ratio", "void", (*Cell).VoidRatio),
	NewPropertyFull("void_ratio_min", "emin", (*Cell).VoidRatioMin),
	NewPropertyFull("void_ratio_max", "emax", (*Cell).VoidRatioMax),
	NewPropertyFull("friction_angle", "angle", (*Cell).FrictionAngle),
	NewPropertyFull("cc", "cc", (*Cell).Cc),
	NewPropertyFull("yield_strength", "yield", (*Cell).YieldStrength),
	NewPropertyFull("dynamic_viscosity", "nu", (*Cell).DynamicViscosity),
	NewPropertyFull("mv", "mv", (*Cell).Mv),
	NewPropertyFull("cv", "cv", (*Cell).Cv),
	NewPropertyFull("hydraulic_con", "hydro", (*Cell).BulkHydraulicConductivity),
	NewPropertyWithArg("shear_strength", "sheer", (*Cell).ShearStrength, false),
	NewPropertyWithArg("cohesion", "cohesion", (*Cell).Cohesion, false),
	NewPropertyWithArg("consolidation", "con", (*Cell).Consolidation, true),
	NewPropertyWithArg("consolidation_rate", "du", (*Cell).ConsolidationRate, true),
	NewPropertyWithArg("excess_pressure", "excess", (*Cell).ExcessPressure, false),
	NewPropertyWithArg("relative_pressure", "rel", (*Cell).RelativePressure, false),
}

// PropertyByName looks a property up by its registered name.
func PropertyByName(name string) (Property, error) {
	for _, p := range properties {
		if p.name == name {
			return p, nil
		}
	}
	return Property{}, fmt.Errorf("strata: no property named %q", name)
}

// PropertyNames returns the names of all registered properties in
// registration order.
func PropertyNames() []string {
	names := make([]string, len(properties))
	for i, p := range properties {
		names[i] = p.name
	}
	return names
}
