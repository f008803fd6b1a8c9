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
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// A Cell is a homogeneous parcel of sediment: the fraction of each grain
// type it holds, its current and uncompacted thickness, the mean age of
// its sediment, its excess pore pressure, and the facies flags accumulated
// over its history.
//
// Thickness is per unit area, so masses come out in kg/m² and loads in Pa.
// The ratio t/t₀ of current to uncompacted thickness encodes compaction:
// resizing a cell preserves the ratio, compacting changes t and leaves t₀
// alone.
type Cell struct {
	f        []float64
	t        float64
	t0       float64
	age      float64
	pressure float64
	facies   Facies
}

// NewCell returns a clear cell with room for n grain types, or nil when
// n ≤ 0.
func NewCell(n int) *Cell {
	if n <= 0 {
		return nil
	}
	return &Cell{f: make([]float64, n)}
}

// NewCellAmbient returns a clear cell sized for the ambient catalog, or
// nil when no ambient catalog is registered.
func NewCellAmbient() *Cell {
	if !AmbientIsSet() {
		return nil
	}
	return NewCell(AmbientLen())
}

// newEnvCell returns a clear cell sized for the ambient catalog. Unlike
// NewCellAmbient it never returns nil: without an ambient catalog the cell
// has no composition slots, which keeps columns usable (though
// composition-dependent properties read as 0).
func newEnvCell() *Cell {
	return &Cell{f: make([]float64, AmbientLen())}
}

// NewCellSized returns a cell with thickness t and the given composition.
func NewCellSized(n int, t float64, f []float64) *Cell {
	c := NewCell(n)
	if c == nil {
		return nil
	}
	c.Resize(t)
	c.SetFraction(f)
	return c
}

// NewCellTyped returns a cell of thickness t composed entirely of the
// grain types in s equal to gt. A nil catalog means the ambient catalog.
func NewCellTyped(s *Catalog, t float64, gt *GrainType) *Cell {
	s = s.actual()
	if s == nil {
		return nil
	}
	n := s.Len()
	f := make([]float64, n)
	for i := 0; i < n; i++ {
		if s.Type(i).Equal(gt) {
			f[i] = 1.
		}
	}
	return NewCellSized(n, t, f)
}

// NewCellClassed returns a cell of thickness t spread uniformly over the
// grain types of s whose size class intersects class. A nil catalog means
// the ambient catalog.
func NewCellClassed(s *Catalog, t float64, class SizeClass) *Cell {
	s = s.actual()
	if s == nil {
		return nil
	}
	n := s.Len()
	f := make([]float64, n)
	for i := 0; i < n; i++ {
		if s.Type(i).IsSizeClass(class) != 0 {
			f[i] = 1.
		}
	}
	normalize(f)
	return NewCellSized(n, t, f)
}

// normalize scales f so it sums to 1, leaving an all-zero vector alone.
func normalize(f []float64) {
	sum := floats.Sum(f)
	if sum > 0 {
		floats.Scale(1./sum, f)
	}
}

// CopyCell deep-copies src into dst and returns dst. A nil dst allocates a
// new cell. A non-nil dst must be compatible with src; passing an
// incompatible destination is a programming error.
func CopyCell(dst, src *Cell) *Cell {
	if src == nil || dst == src {
		return dst
	}
	if dst == nil {
		dst = &Cell{f: make([]float64, src.NTypes())}
	} else if !dst.IsCompatible(src) {
		panic("strata: copy between incompatible cells")
	}
	copy(dst.f, src.f)
	dst.t = src.t
	dst.t0 = src.t0
	dst.age = src.age
	dst.pressure = src.pressure
	dst.facies = src.facies
	return dst
}

// Dup returns a deep copy of the cell.
func (c *Cell) Dup() *Cell {
	if c == nil {
		return nil
	}
	return CopyCell(nil, c)
}

// Clear resets the cell to its newly-created state and returns it.
func (c *Cell) Clear() *Cell {
	if c == nil {
		return nil
	}
	for i := range c.f {
		c.f[i] = 0
	}
	c.t = 0
	c.t0 = 0
	c.age = 0
	c.pressure = 0
	c.facies = FaciesNothing
	return c
}

// NTypes returns the number of grain types the cell has room for.
func (c *Cell) NTypes() int {
	if c == nil {
		return 0
	}
	return len(c.f)
}

// Size returns the current thickness of the cell [m].
func (c *Cell) Size() float64 {
	if c == nil {
		return 0
	}
	return c.t
}

// Size0 returns the uncompacted thickness of the cell [m].
func (c *Cell) Size0() float64 {
	if c == nil {
		return 0
	}
	return c.t0
}

// Age returns the mean age of the sediment in the cell [yr].
func (c *Cell) Age() float64 { return c.age }

// SetAge sets the mean age of the sediment in the cell.
func (c *Cell) SetAge(age float64) *Cell {
	c.age = age
	return c
}

// Pressure returns the excess pore-water pressure of the cell [Pa].
func (c *Cell) Pressure() float64 { return c.pressure }

// SetPressure sets the excess pore-water pressure of the cell.
func (c *Cell) SetPressure(p float64) *Cell {
	c.pressure = p
	return c
}

// Facies returns the facies flags of the cell.
func (c *Cell) Facies() Facies { return c.facies }

// SetFacies replaces the facies flags of the cell.
func (c *Cell) SetFacies(f Facies) *Cell {
	c.facies = f
	return c
}

// AddFacies merges facies flags into the cell.
func (c *Cell) AddFacies(f Facies) *Cell {
	c.facies |= f
	return c
}

// Fraction returns the fraction of the n-th grain type in the cell.
func (c *Cell) Fraction(n int) float64 {
	if c == nil || n < 0 || n >= len(c.f) {
		return 0
	}
	return c.f[n]
}

// Fractions copies the cell's composition into f, allocating when f is
// nil, and returns it.
func (c *Cell) Fractions(f []float64) []float64 {
	if f == nil {
		f = make([]float64, len(c.f))
	}
	copy(f, c.f)
	return f
}

// SetFraction replaces the cell's composition with a copy of f.
func (c *Cell) SetFraction(f []float64) *Cell {
	copy(c.f, f)
	return c
}

// SetEqualFraction spreads the composition evenly over all grain types.
func (c *Cell) SetEqualFraction() *Cell {
	n := len(c.f)
	for i := range c.f {
		c.f[i] = 1. / float64(n)
	}
	return c
}

// IsEmpty reports whether the cell holds no sediment.
func (c *Cell) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.t < 1e-12
}

// IsClear reports whether the cell is in its newly-created state: empty
// with an all-zero composition.
func (c *Cell) IsClear() bool {
	if c == nil {
		return true
	}
	if !c.IsEmpty() {
		return false
	}
	for _, fi := range c.f {
		if fi > 1e-12 {
			return false
		}
	}
	return true
}

// IsValid reports whether the cell's state is internally consistent: a
// positive grain-type count, a non-negative thickness, fractions in [0, 1]
// summing to 1 unless the cell is clear.
func (c *Cell) IsValid() bool {
	if c == nil || len(c.f) == 0 || c.t < 0 {
		return false
	}
	sum := 0.
	for _, fi := range c.f {
		if fi < 0 || fi > 1 {
			return false
		}
		sum += fi
	}
	if math.Abs(sum-1.) > 1e-6 && !c.IsClear() {
		return false
	}
	return true
}

// IsCompatible reports whether two cells hold the same number of grain
// types and so can take part in cell arithmetic together.
func (c *Cell) IsCompatible(b *Cell) bool {
	return c.NTypes() == b.NTypes()
}

// IsSize reports whether the cell's thickness equals t within 1e-12.
func (c *Cell) IsSize(t float64) bool {
	return scalar.EqualWithinAbs(c.Size(), t, 1e-12)
}

// IsAge reports whether the cell's age equals a within 1e-12.
func (c *Cell) IsAge(a float64) bool {
	return scalar.EqualWithinAbs(c.Age(), a, 1e-12)
}

// IsMass reports whether the cell's mass equals m within 1e-12.
func (c *Cell) IsMass(m float64) bool {
	return scalar.EqualWithinAbs(c.Mass(), m, 1e-12)
}

// IsSizeClass reports whether the cell's size class intersects class.
func (c *Cell) IsSizeClass(class SizeClass) bool {
	return c.SizeClass()&class != 0
}

// Equal reports whether two cells agree on every field, comparing floats
// to within 1e-12.
func (c *Cell) Equal(b *Cell) bool {
	if c == b {
		return true
	}
	if c == nil || b == nil || !c.IsCompatible(b) {
		return false
	}
	if !scalar.EqualWithinAbs(c.t, b.t, 1e-12) ||
		!scalar.EqualWithinAbs(c.t0, b.t0, 1e-12) ||
		!scalar.EqualWithinAbs(c.age, b.age, 1e-12) ||
		!scalar.EqualWithinAbs(c.pressure, b.pressure, 1e-12) ||
		c.facies != b.facies {
		return false
	}
	return floats.EqualApprox(c.f, b.f, 1e-12)
}

// Add merges b into c: thicknesses and uncompacted thicknesses add,
// composition, age and pressure mix weighted by relative size, and facies
// flags union. b is unchanged. Adding an empty or nil cell is a no-op.
// The two cells must be compatible.
func (c *Cell) Add(b *Cell) *Cell {
	if c == nil || b == nil || b.IsEmpty() {
		return c
	}
	if !c.IsCompatible(b) {
		panic("strata: add between incompatible cells")
	}
	ratio := c.t / b.t
	for i := range c.f {
		c.f[i] = (c.f[i]*ratio + b.f[i]) / (ratio + 1.)
	}
	c.t += b.t
	c.t0 += b.t0
	c.age = (c.age*ratio + b.age) / (ratio + 1.)
	c.pressure = (c.pressure*ratio + b.pressure) / (ratio + 1.)
	c.facies |= b.facies
	return c
}

// Resize sets the cell's thickness to t while preserving its degree of
// compaction: t₀ scales along with t. Resizing to t ≤ 0 clears the cell.
func (c *Cell) Resize(t float64) *Cell {
	if c == nil {
		return nil
	}
	if t <= 0 {
		return c.Clear()
	}
	if c.t > 0 {
		ratio := c.t0 / c.t
		c.t = t
		c.t0 = t * ratio
	} else {
		c.t = t
		c.t0 = t
	}
	return c
}

// Compact sets the cell's thickness to t without touching its uncompacted
// thickness, so the sediment becomes denser. Negative thicknesses clamp
// to 0.
func (c *Cell) Compact(t float64) *Cell {
	if c == nil {
		return nil
	}
	if t < 0 {
		t = 0
	}
	c.t = t
	return c
}

// SetAmount sets both the composition and the thickness of the cell from a
// vector of per-type amounts: the composition is t normalized and the new
// thickness is the sum of t. An all-zero amount vector clears the cell.
func (c *Cell) SetAmount(t []float64) *Cell {
	if c == nil || t == nil {
		return c
	}
	sum := floats.Sum(t[:min(len(t), len(c.f))])
	if sum <= 0 {
		return c.Clear()
	}
	for i := range c.f {
		if i < len(t) {
			c.f[i] = t[i] / sum
		} else {
			c.f[i] = 0
		}
	}
	return c.Resize(sum)
}

// AddAmount merges a vector of per-type amounts into the cell. The added
// sediment counts as uncompacted, so both t and t₀ grow by the total.
func (c *Cell) AddAmount(t []float64) *Cell {
	if c == nil || t == nil {
		return c
	}
	sum := floats.Sum(t[:min(len(t), len(c.f))])
	if sum <= 0 {
		return c
	}
	newT := sum + c.t
	for i := range c.f {
		amt := 0.
		if i < len(t) {
			amt = t[i]
		}
		c.f[i] = (c.f[i]*c.t + amt) / newT
	}
	c.t += sum
	c.t0 += sum
	return c
}

// SeparateThickness removes up to t of thickness from the cell into out,
// keeping the composition of both sides. out is overwritten; a nil out
// allocates a new cell.
func (c *Cell) SeparateThickness(t float64, out *Cell) *Cell {
	if c == nil {
		return out
	}
	total := c.t
	inSize := total - t
	if inSize < 0 {
		inSize = 0
	} else if inSize > total {
		inSize = total
	}
	outSize := total - inSize

	out = CopyCell(out, c)
	c.Resize(inSize)
	out.Resize(outSize)
	return out
}

// SeparateFraction removes the given fraction of each grain type from the
// cell into out; the cell keeps the rest. Fractions are clamped to [0, 1].
// out is overwritten; a nil out allocates a new cell.
func (c *Cell) SeparateFraction(f []float64, out *Cell) *Cell {
	if c == nil || f == nil {
		return out
	}
	out = CopyCell(out, c)
	if c.IsEmpty() {
		return out
	}

	n := len(c.f)
	inT := make([]float64, n)
	outT := make([]float64, n)
	size := c.t
	for i := 0; i < n; i++ {
		fi := 0.
		if i < len(f) {
			fi = f[i]
		}
		if fi < 0 {
			fi = 0
		} else if fi > 1 {
			fi = 1
		}
		outT[i] = fi * size * c.f[i]
		inT[i] = (1. - fi) * size * c.f[i]
	}
	c.SetAmount(inT)
	out.SetAmount(outT)
	return out
}

// SeparateAmount removes the given per-type thicknesses from the cell into
// out by deriving the equivalent fraction vector. out is overwritten; a
// nil out allocates a new cell.
func (c *Cell) SeparateAmount(t []float64, out *Cell) *Cell {
	if c == nil || t == nil {
		return out
	}
	if c.IsEmpty() {
		out = CopyCell(out, c)
		out.Resize(0)
		return out
	}

	n := len(c.f)
	f := make([]float64, n)
	total := c.t
	for i := 0; i < n; i++ {
		if c.f[i] > 0 && i < len(t) {
			f[i] = t[i] / (total * c.f[i])
		}
		if f[i] < 0 {
			f[i] = 0
		} else if f[i] > 1 {
			f[i] = 1
		}
	}
	return c.SeparateFraction(f, out)
}

// Separate removes a parcel of total thickness t with relative composition
// f from the cell into out. out is overwritten; a nil out allocates a new
// cell.
func (c *Cell) Separate(f []float64, t float64, out *Cell) *Cell {
	if c == nil || f == nil || t < 0 {
		return out
	}
	out = CopyCell(out, c)
	if c.IsEmpty() {
		return out
	}

	sum := floats.Sum(f)
	if sum <= 0 {
		out.Resize(0)
		return out
	}
	tRem := make([]float64, len(c.f))
	for i := range tRem {
		if i < len(f) {
			tRem[i] = f[i] / sum * t
		}
	}
	return c.SeparateAmount(tRem, out)
}

// SeparateCell removes from the cell a parcel matching ref's composition
// and size, discarding it.
func (c *Cell) SeparateCell(ref *Cell) *Cell {
	if c == nil || ref == nil {
		return c
	}
	c.Separate(ref.f, ref.Size(), nil)
	return c
}

// MoveThickness removes t of thickness from the cell and accumulates it
// into dst.
func (c *Cell) MoveThickness(dst *Cell, t float64) {
	if c == nil || dst == nil || t <= 0 {
		return
	}
	if !c.IsCompatible(dst) {
		panic("strata: move between incompatible cells")
	}
	dst.Add(c.SeparateThickness(t, nil))
}

// MoveFraction removes the given fraction of each grain type from the cell
// and accumulates it into dst.
func (c *Cell) MoveFraction(dst *Cell, f []float64) {
	if c == nil || dst == nil || f == nil {
		return
	}
	if !c.IsCompatible(dst) {
		panic("strata: move between incompatible cells")
	}
	dst.Add(c.SeparateFraction(f, nil))
}

// Move removes up to t of thickness from the cell, keeps the part of it
// not selected by f, and accumulates the selected part into dst.
func (c *Cell) Move(dst *Cell, f []float64, t float64) {
	if c == nil || dst == nil || f == nil {
		return
	}
	temp1 := c.SeparateThickness(t, nil)
	temp2 := temp1.SeparateFraction(f, nil)
	c.Add(temp1)
	dst.Add(temp2)
}

// Property queries. All of them reduce over the ambient catalog weighted
// by the cell's composition; with no ambient catalog registered they
// return 0.

// Density0 returns the uncompacted bulk density [kg/m³].
func (c *Cell) Density0() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).Density0)
}

// Density returns the bulk density accounting for compaction [kg/m³].
func (c *Cell) Density() float64 {
	if c == nil {
		return 0
	}
	ratio := 0.
	if c.t0 > 0 {
		ratio = c.t / c.t0
	}
	return Ambient().PropertyAvgPresent(c.f, func(t *GrainType) float64 {
		return t.DensityCompacted(ratio)
	})
}

// GrainDensity returns the mean solid-grain density [kg/m³].
func (c *Cell) GrainDensity() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).RhoGrain)
}

// MaxDensity returns the bulk density at closest packing [kg/m³].
func (c *Cell) MaxDensity() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).RhoMax)
}

// GrainSize returns the mean grain size [μm].
func (c *Cell) GrainSize() float64 {
	if c == nil {
		return 0
	}
	return Ambient().PropertyAvg(c.f, (*GrainType).GrainSize)
}

// GrainSizeInPhi returns the mean grain size in φ units.
func (c *Cell) GrainSizeInPhi() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).GrainSizeInPhi)
}

// SandFraction returns the fraction of the cell in sand-class grain types.
func (c *Cell) SandFraction() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).IsSand)
}

// SiltFraction returns the fraction of the cell in silt-class grain types.
func (c *Cell) SiltFraction() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).IsSilt)
}

// ClayFraction returns the fraction of the cell in clay-class grain types.
func (c *Cell) ClayFraction() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).IsClay)
}

// MudFraction returns the fraction of the cell in mud-class grain types.
func (c *Cell) MudFraction() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).IsMud)
}

// CConsolidation returns the mean consolidation coefficient [m²/yr].
func (c *Cell) CConsolidation() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).CConsolidation)
}

// Velocity returns the mean speed of sound through the sediment [m/s].
func (c *Cell) Velocity() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).Velocity)
}

// Viscosity returns the mean kinematic viscosity [m²/s].
func (c *Cell) Viscosity() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).Viscosity)
}

// RelativeDensity returns the mean relative density.
func (c *Cell) RelativeDensity() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).RelativeDensity)
}

// Porosity returns the mean porosity at the reference state.
func (c *Cell) Porosity() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).Porosity)
}

// PorosityMin returns the mean porosity at closest packing.
func (c *Cell) PorosityMin() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).PorosityMin)
}

// PorosityMax returns the mean porosity in the uncompacted state.
func (c *Cell) PorosityMax() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).PorosityMax)
}

// PlasticIndex returns the mean plastic index.
func (c *Cell) PlasticIndex() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).PlasticIndex)
}

// Permeability returns the mean intrinsic permeability [m²].
func (c *Cell) Permeability() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).Permeability)
}

// HydraulicConductivity returns the mean hydraulic conductivity [m/s].
func (c *Cell) HydraulicConductivity() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).HydraulicConductivity)
}

// BulkPermeability returns the permeability of the cell as a whole,
// combining the void ratio of the mixture with its mean specific surface.
func (c *Cell) BulkPermeability() float64 {
	e := c.VoidRatio()
	s := 6. * Ambient().PropertyAvg(c.f, (*GrainType).InvGrainSizeInMeters)
	if s == 0 {
		return 0
	}
	return 1. / (5. * kozenyShapeFactor * s * s) * (math.Pow(e, 3) / (1 + e))
}

// BulkLogPermeability returns the natural log of the bulk permeability,
// or NaN when the permeability is not positive.
func (c *Cell) BulkLogPermeability() float64 {
	k := c.BulkPermeability()
	if k <= 0 {
		return math.NaN()
	}
	return math.Log(k)
}

// BulkHydraulicConductivity returns the hydraulic conductivity of the
// cell as a whole.
func (c *Cell) BulkHydraulicConductivity() float64 {
	return c.BulkPermeability() * gammaWater / MuWater()
}

// VoidRatio returns the void ratio of the cell, accounting for compaction
// through the ratio of current to uncompacted thickness.
func (c *Cell) VoidRatio() float64 {
	if c == nil || c.t0 <= 0 {
		return 0
	}
	e := Ambient().PropertyAvg(c.f, (*GrainType).VoidRatio)
	return (c.t/c.t0)*(1.+e) - 1.
}

// VoidRatioMin returns the mean void ratio at closest packing.
func (c *Cell) VoidRatioMin() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).VoidRatioMin)
}

// VoidRatioMax returns the mean void ratio in the uncompacted state.
func (c *Cell) VoidRatioMax() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).VoidRatioMax)
}

// FrictionAngle returns the mean Coulomb friction angle [degrees].
func (c *Cell) FrictionAngle() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).FrictionAngle)
}

// Cc returns the mean consolidation coefficient.
func (c *Cell) Cc() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).CConsolidation)
}

// Compressibility returns the mean compressibility coefficient.
func (c *Cell) Compressibility() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).Compressibility)
}

// YieldStrength returns the mean remolded yield strength [Pa].
func (c *Cell) YieldStrength() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).YieldStrength)
}

// BulkYieldStrength returns the yield strength of the cell as a whole from
// its solids concentration.
func (c *Cell) BulkYieldStrength() float64 {
	conc := 1. - c.Porosity()
	const a = 13.
	return .1 * math.Exp(a*(conc-.05))
}

// DynamicViscosity returns the mean dynamic viscosity [kg m⁻¹ s⁻¹].
func (c *Cell) DynamicViscosity() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).DynamicViscosity)
}

// BulkDynamicViscosity returns the dynamic viscosity of the cell as a
// whole from its solids concentration.
func (c *Cell) BulkDynamicViscosity() float64 {
	conc := 1. - c.Porosity()
	const a = 10.
	return MuWater() * (1. + 2.5*conc + math.Exp(a*(conc-.05)))
}

// Mv returns the mean coefficient of volume compressibility.
func (c *Cell) Mv() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).Mv)
}

// Cv returns the mean coefficient of consolidation.
func (c *Cell) Cv() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).Cv)
}

// BulkCv returns the coefficient of consolidation of the cell as a whole.
func (c *Cell) BulkCv() float64 {
	mv := c.Mv()
	if mv == 0 {
		return 0
	}
	return c.BulkHydraulicConductivity() / (gammaWater * mv)
}

// WaterRatio returns the mean water content by weight.
func (c *Cell) WaterRatio() float64 {
	return Ambient().PropertyAvg(c.f, (*GrainType).WaterContent)
}

// ShearStrength returns the shear strength of the cell under the given
// overlying load [Pa].
func (c *Cell) ShearStrength(load float64) float64 {
	l := load
	return Ambient().PropertyAvgPresent(c.f, func(t *GrainType) float64 {
		return t.ShearStrength(l)
	})
}

// Cohesion returns the cohesion of the cell under the given overlying load
// [Pa]. The cell's own excess pore pressure reduces the effective load.
func (c *Cell) Cohesion(load float64) float64 {
	load -= c.pressure
	if load < 0 {
		load = 0
	}
	return Ambient().PropertyAvgPresent(c.f, func(t *GrainType) float64 {
		return t.Cohesion(load)
	})
}

// Consolidation returns the mean degree of consolidation of the cell at
// the given time, measuring elapsed time against the cell's age.
func (c *Cell) Consolidation(timeNow float64) float64 {
	if c == nil {
		return 0
	}
	dt := timeNow - c.age
	d := c.t
	return Ambient().PropertyAvgPresent(c.f, func(t *GrainType) float64 {
		return t.Consolidation(d, dt)
	})
}

// ConsolidationRate returns the mean rate of consolidation of the cell at
// the given time.
func (c *Cell) ConsolidationRate(timeNow float64) float64 {
	if c == nil {
		return 0
	}
	dt := timeNow - c.age
	d := c.t
	return Ambient().PropertyAvgPresent(c.f, func(t *GrainType) float64 {
		return t.ConsolidationRate(d, dt)
	})
}

// ExcessPressure returns the cell's pore pressure in excess of the given
// hydrostatic pressure, never negative.
func (c *Cell) ExcessPressure(hydrostatic float64) float64 {
	p := c.pressure - hydrostatic
	if p < 0 {
		return 0
	}
	return p
}

// RelativePressure returns the cell's pore pressure relative to the given
// load, or 0 for non-positive loads.
func (c *Cell) RelativePressure(load float64) float64 {
	if load <= 0 {
		return 0
	}
	return c.pressure / load
}

// SizeClass returns the Wentworth aggregate class of the cell's mean grain
// size in φ units.
func (c *Cell) SizeClass() SizeClass {
	if c == nil {
		return SizeClassNone
	}
	return SizeClassOfPhi(c.GrainSizeInPhi())
}

// SizeClassPercent returns the fraction of the cell contained in grain
// types whose size class intersects class.
func (c *Cell) SizeClassPercent(class SizeClass) float64 {
	if c == nil {
		return 0
	}
	return Ambient().PropertyAvgPresent(c.f, func(t *GrainType) float64 {
		return t.IsSizeClass(class)
	})
}

// SizeClasses returns the union of the size classes of every grain type
// present in the cell.
func (c *Cell) SizeClasses() SizeClass {
	if c == nil {
		return SizeClassNone
	}
	size := SizeClassNone
	Ambient().PropertyAvgPresent(c.f, func(t *GrainType) float64 {
		size |= t.SizeClass()
		return 1.
	})
	return size
}

// SedimentVolume returns the volume of solids in the cell per unit area
// [m].
func (c *Cell) SedimentVolume() float64 {
	if c == nil {
		return 0
	}
	return c.t / (c.VoidRatio() + 1.)
}

// SedimentMass returns the mass of solids in the cell [kg/m²].
func (c *Cell) SedimentMass() float64 {
	if c == nil {
		return 0
	}
	return c.GrainDensity() * c.SedimentVolume()
}

// Mass returns the saturated mass of the cell [kg/m²].
func (c *Cell) Mass() float64 {
	if c == nil || c.IsEmpty() {
		return 0
	}
	return c.t * c.Density()
}

// Load returns the load the cell exerts on what lies beneath it [Pa].
func (c *Cell) Load() float64 {
	return c.Mass() * Gravity()
}

// SedimentLoad returns the load of the solids alone [Pa].
func (c *Cell) SedimentLoad() float64 {
	return c.SedimentMass() * Gravity()
}

// Fprint writes a short human-readable description of the cell to w.
func (c *Cell) Fprint(w io.Writer) {
	if c == nil {
		fmt.Fprintf(w, "( null )\n")
		return
	}
	fmt.Fprintf(w, "Thickness : %f\n", c.t)
	fmt.Fprintf(w, "Age       : %f\n", c.age)
	fmt.Fprintf(w, "Fraction  : %f", c.Fraction(0))
	for n := 1; n < c.NTypes(); n++ {
		fmt.Fprintf(w, ", %f", c.f[n])
	}
	fmt.Fprintf(w, "\n")
}
