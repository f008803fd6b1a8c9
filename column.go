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
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Columns grow their backing storage in blocks of this many cells, so
// repeated deposition amortizes allocation.
const addBins = 16

// A Column is an ordered stack of sediment cells over a base elevation,
// bottom up. Sediment is stored in bins of nominal height dz: every live
// cell except the topmost is filled to dz, and new sediment flows into the
// partial top cell first, opening a new cell when it overflows. The
// backing storage runs past the live stack as pre-allocated clear cells.
type Column struct {
	cells []*Cell // backing storage; cells[0:len] are live
	len   int
	z     float64 // base elevation [m]
	t     float64 // cached total thickness [m]
	dz    float64 // nominal cell height [m]
	x, y  float64 // horizontal position
	age   float64 // column age, maintained by clients
	sl    float64 // sea level relative to the datum
}

// NewColumn returns an empty column with room for at least n cells, or
// nil when n ≤ 0. The nominal cell height starts at 1.
func NewColumn(n int) *Column {
	if n <= 0 {
		return nil
	}
	c := &Column{dz: 1.}
	c.Resize(n)
	return c
}

// NewColumnFilled returns a column holding a single deposit of thickness t
// classed by class from the ambient catalog.
func NewColumnFilled(t float64, class SizeClass) *Column {
	c := NewColumn(1)
	cell := NewCellClassed(nil, t, class)
	c.AddCell(cell)
	return c
}

// Resize grows the backing storage to hold at least n cells, in blocks of
// addBins; the new cells are clear and sized for the ambient catalog.
// When n is less than the current capacity, the cells from n up are
// cleared instead. The live length never changes.
func (c *Column) Resize(n int) *Column {
	if c == nil {
		return nil
	}
	size := len(c.cells)
	if n > size {
		add := ((n-size)/addBins + 1) * addBins
		for i := 0; i < add; i++ {
			c.cells = append(c.cells, newEnvCell())
		}
	} else {
		for i := n; i < size; i++ {
			if i >= 0 {
				c.cells[i].Clear()
			}
		}
	}
	return c
}

// Clear removes all sediment from the column, keeping its geometry
// (base height, cell height, position, age, sea level).
func (c *Column) Clear() *Column {
	if c == nil {
		return nil
	}
	for i := 0; i < c.len; i++ {
		c.cells[i].Clear()
	}
	c.len = 0
	c.t = 0
	return c
}

// CopyColumn deep-copies src into dst and returns dst, growing dst's
// backing storage as needed. A nil dst allocates a new column.
func CopyColumn(dst, src *Column) *Column {
	if src == nil {
		return nil
	}
	if dst == nil {
		dst = NewColumn(len(src.cells))
	}
	dst.Resize(len(src.cells))

	dst.z = src.z
	dst.t = src.t
	dst.len = src.len
	dst.dz = src.dz
	dst.x = src.x
	dst.y = src.y
	dst.age = src.age
	dst.sl = src.sl

	for i := range dst.cells {
		if i < len(src.cells) {
			dst.cells[i] = src.cells[i].Dup()
		} else {
			dst.cells[i].Clear()
		}
	}
	return dst
}

// Dup returns a deep copy of the column.
func (c *Column) Dup() *Column {
	return CopyColumn(nil, c)
}

// EqualData reports whether two columns agree on their scalar state —
// base height, thickness, cell height, position, age, sea level, and live
// length — to within 1e-12.
func (c *Column) EqualData(b *Column) bool {
	if c == b {
		return true
	}
	if c == nil || b == nil {
		return false
	}
	return scalar.EqualWithinAbs(c.z, b.z, 1e-12) &&
		scalar.EqualWithinAbs(c.t, b.t, 1e-12) &&
		scalar.EqualWithinAbs(c.dz, b.dz, 1e-12) &&
		scalar.EqualWithinAbs(c.x, b.x, 1e-12) &&
		scalar.EqualWithinAbs(c.y, b.y, 1e-12) &&
		scalar.EqualWithinAbs(c.age, b.age, 1e-12) &&
		scalar.EqualWithinAbs(c.sl, b.sl, 1e-12) &&
		c.len == b.len
}

// Equal reports whether two columns agree on their scalar state and on
// every live cell.
func (c *Column) Equal(b *Column) bool {
	if c == b {
		return true
	}
	if !c.EqualData(b) {
		return false
	}
	for i := 0; i < c.len; i++ {
		if !c.cells[i].Equal(b.cells[i]) {
			return false
		}
	}
	return true
}

// Geometry accessors.

// BaseHeight returns the elevation of the bottom of the column.
func (c *Column) BaseHeight() float64 {
	if c == nil {
		return 0
	}
	return c.z
}

// SetBaseHeight sets the elevation of the bottom of the column.
func (c *Column) SetBaseHeight(z float64) *Column {
	c.z = z
	return c
}

// AdjustBaseHeight shifts the base elevation by dz.
func (c *Column) AdjustBaseHeight(dz float64) *Column {
	c.z += dz
	return c
}

// XPosition returns the x-coordinate of the column.
func (c *Column) XPosition() float64 { return c.x }

// SetXPosition sets the x-coordinate of the column.
func (c *Column) SetXPosition(x float64) *Column {
	c.x = x
	return c
}

// YPosition returns the y-coordinate of the column.
func (c *Column) YPosition() float64 { return c.y }

// SetYPosition sets the y-coordinate of the column.
func (c *Column) SetYPosition(y float64) *Column {
	c.y = y
	return c
}

// Age returns the column age.
func (c *Column) Age() float64 { return c.age }

// SetAge sets the column age.
func (c *Column) SetAge(age float64) *Column {
	c.age = age
	return c
}

// SeaLevel returns sea level relative to the datum.
func (c *Column) SeaLevel() float64 { return c.sl }

// SetSeaLevel sets sea level relative to the datum.
func (c *Column) SetSeaLevel(sl float64) *Column {
	c.sl = sl
	return c
}

// ZRes returns the nominal cell height, the fill quantum for new sediment.
func (c *Column) ZRes() float64 { return c.dz }

// SetZRes sets the nominal cell height.
func (c *Column) SetZRes(dz float64) *Column {
	c.dz = dz
	return c
}

// TopHeight returns the elevation of the top of the column.
func (c *Column) TopHeight() float64 {
	if c == nil {
		return 0
	}
	return c.z + c.Thickness()
}

// Thickness returns the total thickness of sediment in the column.
func (c *Column) Thickness() float64 {
	if c == nil {
		return 0
	}
	return c.t
}

// setThickness overwrites the cached thickness.
func (c *Column) setThickness(t float64) { c.t = t }

// Len returns the number of live (filled or partially filled) cells.
func (c *Column) Len() int {
	if c == nil {
		return 0
	}
	return c.len
}

// Cap returns the capacity of the backing storage.
func (c *Column) Cap() int {
	if c == nil {
		return 0
	}
	return len(c.cells)
}

// IsEmpty reports whether the column holds no live cells.
func (c *Column) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.len == 0
}

// IsAbove reports whether the top of the column is above elevation z.
func (c *Column) IsAbove(z float64) bool { return c.TopHeight() > z }

// IsBelow reports whether the top of the column is below elevation z.
func (c *Column) IsBelow(z float64) bool { return c.TopHeight() < z }

// IsValidIndex reports whether n indexes into the backing storage.
func (c *Column) IsValidIndex(n int) bool {
	if c == nil {
		return false
	}
	return n >= 0 && n < len(c.cells)
}

// IsGetIndex reports whether n indexes a live cell.
func (c *Column) IsGetIndex(n int) bool {
	if c == nil {
		return false
	}
	return n >= 0 && n < c.len
}

// IsSetIndex reports whether n indexes a cell that can be added to: a live
// cell or the first clear cell above the stack.
func (c *Column) IsSetIndex(n int) bool {
	if c == nil {
		return false
	}
	return n >= 0 && n <= c.len
}

// TopIndex returns the index of the top cell, or -1 for an empty column.
func (c *Column) TopIndex() int {
	if c == nil {
		return -1
	}
	return c.len - 1
}

// TopCell returns the cell at the top of the column, or nil when the
// column is empty.
func (c *Column) TopCell() *Cell {
	if c.IsEmpty() {
		return nil
	}
	return c.cells[c.len-1]
}

// NthCell returns the n-th cell from the bottom of the column. The index
// one past the live stack resolves to the pre-allocated clear cell there
// when capacity allows; anything else out of range is nil.
func (c *Column) NthCell(n int) *Cell {
	if c == nil || !c.IsSetIndex(n) || n >= len(c.cells) {
		return nil
	}
	return c.cells[n]
}

// CellFractions returns the composition of the i-th cell; the slice
// aliases the cell's own storage.
func (c *Column) CellFractions(i int) []float64 {
	if !c.IsGetIndex(i) {
		return nil
	}
	return c.cells[i].f
}

// Mass returns the total saturated mass of the column [kg/m²].
func (c *Column) Mass() float64 {
	if c == nil {
		return 0
	}
	sum := 0.
	for i := 0; i < c.len; i++ {
		sum += c.cells[i].Mass()
	}
	return sum
}

// SedimentMass returns the total mass of solids in the column [kg/m²].
func (c *Column) SedimentMass() float64 {
	if c == nil {
		return 0
	}
	sum := 0.
	for i := 0; i < c.len; i++ {
		sum += c.cells[i].SedimentMass()
	}
	return sum
}

// IsMass reports whether the column mass equals m within 1e-12.
func (c *Column) IsMass(m float64) bool {
	return scalar.EqualWithinAbs(c.Mass(), m, 1e-12)
}

// IsSize reports whether the column thickness equals t within 1e-12.
func (c *Column) IsSize(t float64) bool {
	return scalar.EqualWithinAbs(c.Thickness(), t, 1e-12)
}

// IsBaseHeight reports whether the base elevation equals z within 1e-12.
func (c *Column) IsBaseHeight(z float64) bool {
	return scalar.EqualWithinAbs(c.BaseHeight(), z, 1e-12)
}

// IsTopHeight reports whether the top elevation equals z within 1e-12.
func (c *Column) IsTopHeight(z float64) bool {
	return scalar.EqualWithinAbs(c.TopHeight(), z, 1e-12)
}

// AddCell pushes the contents of cell onto the top of the column,
// filling the partial top cell up to dz and opening new cells until the
// sediment is absorbed. The incoming load is added to the pore pressure
// of every buried cell, and the remaining unburied load plus the water
// column sets the pressure at the advancing top. The input cell is not
// modified. Returns the thickness added.
func (c *Column) AddCell(cell *Cell) float64 {
	return c.addCell(cell, true)
}

// AddCellAvgPressure pushes the contents of cell onto the top of the
// column like AddCell, but instead of propagating the new load downward
// it lets the incoming pressure mix size-weighted into the cells it
// lands in. Returns the thickness added.
func (c *Column) AddCellAvgPressure(cell *Cell) float64 {
	return c.addCell(cell, false)
}

func (c *Column) addCell(cell *Cell, updatePressure bool) float64 {
	if c == nil || cell == nil || cell.IsEmpty() {
		return 0
	}

	amount := cell.Size()
	scratch := cell.Dup()

	if updatePressure {
		load := cell.Load()
		for i := 0; i < c.len; i++ {
			c.cells[i].SetPressure(c.cells[i].Pressure() + load)
		}
	}

	var top *Cell
	if c.IsEmpty() {
		c.Resize(1)
		top = c.cells[0]
		c.len++
	} else {
		top = c.TopCell()
	}

	leftToAdd := amount
	for leftToAdd > 0 {
		free := c.dz - top.Size()
		if free <= 1e-12 {
			c.Resize(c.len + 1)
			c.len++
		} else {
			if free >= leftToAdd {
				free = leftToAdd
			}
			scratch.Resize(free)
			top.Add(scratch)
			c.setThickness(c.Thickness() + free)
			leftToAdd -= free

			if updatePressure {
				scratch.Resize(leftToAdd)
				top.SetPressure(scratch.Load() + c.WaterPressure())
			}
		}
		top = c.TopCell()
	}
	return amount
}

// AppendCell places a deep copy of cell as a new cell on top of the
// column without rebinning it to dz. Returns the thickness added.
func (c *Column) AppendCell(cell *Cell) float64 {
	if c == nil || cell == nil {
		return 0
	}
	amount := cell.Size()

	c.Resize(c.len + 1)
	c.cells[c.len] = cell.Dup()
	c.len++
	c.setThickness(c.Thickness() + amount)
	return amount
}

// AddAmount deposits a vector of per-type thicknesses onto the column.
// Returns the thickness added.
func (c *Column) AddAmount(t []float64) float64 {
	if c == nil || t == nil {
		return 0
	}
	cell := newEnvCell()
	cell.AddAmount(t)
	return c.AddCell(cell)
}

// ResizeCell resizes the i-th cell (preserving its compaction state) and
// updates the cached column thickness.
func (c *Column) ResizeCell(i int, t float64) *Column {
	if c == nil || !c.IsGetIndex(i) {
		return c
	}
	if t < 0 {
		t = 0
	}
	old := c.cells[i].Size()
	c.cells[i].Resize(t)
	c.setThickness(c.Thickness() + t - old)
	return c
}

// CompactCell compacts the i-th cell (leaving its uncompacted thickness
// alone) and updates the cached column thickness.
func (c *Column) CompactCell(i int, t float64) *Column {
	if c == nil || !c.IsGetIndex(i) {
		return c
	}
	old := c.cells[i].Size()
	c.cells[i].Compact(t)
	c.setThickness(c.Thickness() + c.cells[i].Size() - old)
	return c
}

// ExtractTopCell removes the top fraction f of the top cell into dest,
// overwriting it; a nil dest allocates a new cell. Returns dest, or nil
// when the column is empty.
func (c *Column) ExtractTopCell(f float64, dest *Cell) *Cell {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	if c == nil || c.IsEmpty() {
		return nil
	}
	top := c.TopCell()
	dest = CopyCell(dest, top)
	dest.Resize(dest.Size() * f)
	c.RemoveTopCell(f)
	return dest
}

// RemoveTopCell discards the top fraction f of the top cell. When the
// remainder shrinks below the empty threshold the cell closes and the
// live length drops.
func (c *Column) RemoveTopCell(f float64) *Column {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	if c == nil || c.IsEmpty() {
		return c
	}
	top := c.TopCell()
	c.setThickness(c.Thickness() - f*top.Size())
	top.Resize(top.Size() * (1. - f))
	if top.Size() < 1e-12 {
		top.Clear()
		c.len--
	}
	return c
}

// ExtractTop removes up to t of thickness from the top of the column into
// dest, which is cleared first; a nil dest allocates a new cell.
func (c *Column) ExtractTop(t float64, dest *Cell) *Cell {
	return c.ExtractTopFill(t, nil, dest)
}

// ExtractTopFill removes up to t of thickness from the top of the column
// into dest. If the column runs out of sediment before t is satisfied and
// fill is non-nil, the base of the column drops by the shortfall and fill
// — resized to the shortfall while keeping its composition — makes up the
// difference in dest. This models erosion cutting down into basement.
func (c *Column) ExtractTopFill(t float64, fill, dest *Cell) *Cell {
	if c == nil {
		return dest
	}
	if dest == nil {
		dest = newEnvCell()
	} else {
		dest.Clear()
	}

	if fill != nil {
		// Keep the fill composition alive at (almost) zero size.
		fill.Resize(math.SmallestNonzeroFloat64)
	}

	if t <= 0 {
		return dest
	}

	temp := newEnvCell()
	leftToRemove := t
	moreToRemove := leftToRemove > 0

	for !c.IsEmpty() && moreToRemove {
		top := c.TopCell()
		available := top.Size()
		f := 1.0
		if available > leftToRemove {
			f = leftToRemove / available
			moreToRemove = false
		}
		c.ExtractTopCell(f, temp)
		dest.Add(temp)
		leftToRemove -= temp.Size()
	}

	if fill != nil && math.Abs(dest.Size()-t) > 1e-12 {
		dh := t - dest.Size()
		if dh > 0 {
			fill.Resize(dh)
			c.z -= dh
			dest.Add(fill)
		}
	}

	return dest
}

// RemoveTop discards up to t of thickness from the top of the column.
func (c *Column) RemoveTop(t float64) *Column {
	if c == nil || t <= 0 || c.IsEmpty() {
		return c
	}
	leftToRemove := t
	moreToRemove := leftToRemove > 0
	for !c.IsEmpty() && moreToRemove {
		available := c.TopCell().Size()
		f := 1.0
		if available >= leftToRemove {
			f = leftToRemove / available
			moreToRemove = false
		}
		c.RemoveTopCell(f)
		leftToRemove -= f * available
	}
	return c
}

// RemoveTopErode discards t of thickness from the top of the column; when
// t exceeds the sediment present, the base elevation drops by the excess.
func (c *Column) RemoveTopErode(t float64) *Column {
	if c == nil {
		return nil
	}
	erode := t - c.Thickness()
	c.RemoveTop(t)
	if erode > 0 {
		c.z -= erode
	}
	return c
}

// SeparateTop extracts the top t of the column, splits off the part of it
// selected by the per-type fractions f into rem, and returns the lag to
// the column. rem is overwritten; a nil rem allocates a new cell.
func (c *Column) SeparateTop(t float64, f []float64, rem *Cell) *Cell {
	lag := newEnvCell()
	c.ExtractTop(t, lag)
	rem = lag.SeparateFraction(f, rem)
	c.AddCell(lag)
	return rem
}

// SeparateTopAmounts extracts the top totalT of the column, splits off the
// given per-type thicknesses into rem, and returns the lag to the column.
func (c *Column) SeparateTopAmounts(totalT float64, t []float64, rem *Cell) *Cell {
	lag := newEnvCell()
	c.ExtractTop(totalT, lag)
	rem = lag.SeparateAmount(t, rem)
	c.AddCell(lag)
	return rem
}

// SeparateTopAmountsFill is SeparateTopAmounts with basement fill: when
// the column is shorter than totalT, fill supplies the deficit and the
// base drops accordingly.
func (c *Column) SeparateTopAmountsFill(totalT float64, t []float64, fill, rem *Cell) *Cell {
	lag := newEnvCell()
	c.ExtractTopFill(totalT, fill, lag)
	rem = lag.SeparateAmount(t, rem)
	c.AddCell(lag)
	return rem
}

// Top copies the top t of the column into dest without modifying the
// column. When t exceeds the column thickness dest gets the whole
// column's worth. dest is cleared first; a nil dest allocates a new cell.
func (c *Column) Top(t float64, dest *Cell) *Cell {
	if c == nil {
		return nil
	}
	if dest == nil {
		dest = newEnvCell()
	}
	dest.Clear()

	if c.IsEmpty() {
		return dest
	}

	leftToGet := t
	for i := c.len - 1; leftToGet > 1e-12 && i >= 0; i-- {
		cell := c.cells[i]
		available := cell.Size()
		if available > leftToGet {
			// Borrow the top part of this cell: temporarily resize it so
			// the mix weights come out right, then put it back.
			cell.Resize(leftToGet)
			dest.Add(cell)
			cell.Resize(available)
			leftToGet = 0
		} else {
			dest.Add(cell)
			leftToGet -= available
		}
	}
	return dest
}

// TopProperty measures a property of the top t of the column as one bulk
// parcel. For two-argument properties the extra argument is the column
// age when the property wants it, and otherwise the weight of the
// extracted parcel itself.
func (c *Column) TopProperty(p Property, top float64) float64 {
	if c == nil {
		return 0
	}
	avg := c.Top(top, nil)
	if p.NArgs() == 2 {
		extra := 0.
		if p.UsesColumnAge() {
			extra = c.age
		} else {
			extra = avg.Load()
		}
		return p.Measure(avg, extra)
	}
	return p.Measure(avg)
}

// TopRho returns the bulk density of the top t of the column.
func (c *Column) TopRho(top float64) float64 {
	if c == nil {
		return 0
	}
	avg := c.Top(top, nil)
	return avg.Density()
}

// TopAge returns the thickness-weighted mean age of the top t of the
// column.
func (c *Column) TopAge(top float64) float64 {
	if c == nil {
		return 0
	}
	avg := c.Top(top, nil)
	return avg.Age()
}

// TopNBins returns the number of cells, partial cells included, needed to
// cover the column from elevation z to the top. At or below the base that
// is every live cell; above the top it is one.
func (c *Column) TopNBins(z float64) int {
	if c == nil || c.IsEmpty() {
		return 0
	}
	t := z - c.BaseHeight()
	if t <= 0 {
		return c.len
	}
	return c.len - c.IndexThickness(t)
}

// IndexAt returns the index of the cell at elevation z.
func (c *Column) IndexAt(z float64) int {
	if c == nil {
		return -1
	}
	return c.IndexThickness(z - c.BaseHeight())
}

// IndexThickness returns the index of the cell containing thickness t
// measured up from the base, or -1 for t ≤ 0. Targets in the upper half
// of the column are found top-down, so lookups near either end stay
// cheap.
func (c *Column) IndexThickness(t float64) int {
	if c == nil {
		return -1
	}
	if t > c.Thickness()*.5 {
		return c.IndexDepth(c.Thickness() - t)
	}
	if t < 0 {
		t = 0
	}
	total := 0.
	i := 0
	for ; total < t && i < c.len; i++ {
		total += c.cells[i].Size()
	}
	return i - 1
}

// IndexDepth returns the index of the cell at burial depth d measured
// down from the top, or -1 for d at or beyond the full thickness.
func (c *Column) IndexDepth(d float64) int {
	if c == nil {
		return -1
	}
	if d >= c.Thickness()*.5 {
		return c.IndexThickness(c.Thickness() - d)
	}
	if d < 0 {
		d = 0
	}
	total := 0.
	i := c.len - 1
	for ; total <= d && i >= 0; i-- {
		total += c.cells[i].Size()
	}
	return i + 1
}

// ThicknessIndex returns the cumulative thickness from the base through
// the i-th cell. Negative indices give 0 and indices above the stack give
// the whole thickness.
func (c *Column) ThicknessIndex(i int) float64 {
	if c == nil {
		return 0
	}
	topInd := i + 1
	if topInd < 0 {
		topInd = 0
	} else if topInd > c.len {
		topInd = c.len
	}
	t := 0.
	for j := 0; j < topInd; j++ {
		t += c.cells[j].Size()
	}
	return t
}

// DepthAge returns the burial depth from the top at which cell age first
// stops exceeding age, integrating cell thicknesses from the top down.
func (c *Column) DepthAge(age float64) float64 {
	if c == nil {
		return 0
	}
	d := 0.
	for i := c.len - 1; i >= 0 && c.cells[i].Age() > age; i-- {
		d += c.cells[i].Size()
	}
	return d
}

// WaterDepth returns the depth of water over the column: sea level minus
// the top elevation, negative when the column is subaerial.
func (c *Column) WaterDepth() float64 {
	return c.SeaLevel() - c.TopHeight()
}

// WaterPressure returns the hydrostatic pressure of the overlying water
// column, or 0 when the column top is above sea level.
func (c *Column) WaterPressure() float64 {
	if d := c.WaterDepth(); d > 0 {
		return d * RhoSeaWater() * Gravity()
	}
	return 0
}

// clampBins normalizes a (start, nBins) request against the live stack:
// start is clamped to 0 and nBins ≤ 0 or overflowing requests run to the
// top.
func (c *Column) clampBins(start, nBins int) (int, int) {
	if start < 0 {
		start = 0
	}
	if nBins <= 0 || start+nBins > c.len {
		nBins = c.len - start
	}
	return start, nBins
}

// TotalLoad returns, for each of nBins cells starting at start, the load
// of that cell and everything above it, plus the given overlying load.
// Element i corresponds to cell start+i. A nil out allocates the result;
// nBins ≤ 0 runs to the top of the column.
func (c *Column) TotalLoad(start, nBins int, overlyingLoad float64, out []float64) []float64 {
	if c == nil {
		return nil
	}
	start, nBins = c.clampBins(start, nBins)
	if nBins <= 0 {
		return out
	}
	if out == nil {
		out = make([]float64, nBins)
	}

	load0 := overlyingLoad
	for i := c.len - 1; i >= start+nBins-1; i-- {
		load0 += c.cells[i].SedimentLoad()
	}

	out[nBins-1] = load0
	for i := nBins - 2; i >= 0; i-- {
		out[i] = out[i+1] + c.cells[i+start].SedimentLoad()
	}
	return out
}

// Load returns the cumulative sediment loads for nBins cells starting at
// start.
func (c *Column) Load(start, nBins int, out []float64) []float64 {
	return c.TotalLoad(start, nBins, 0., out)
}

// LoadWithWater is Load with the hydrostatic pressure of the overlying
// water added in.
func (c *Column) LoadWithWater(start, nBins int, out []float64) []float64 {
	return c.TotalLoad(start, nBins, c.WaterPressure(), out)
}

// LoadAt returns the load felt by the n-th cell from everything strictly
// above it.
func (c *Column) LoadAt(n int) float64 {
	if c == nil || n < 0 {
		return 0
	}
	load := 0.
	for i := c.len - 1; i > n; i-- {
		load += c.cells[i].Load()
	}
	return load
}

// TotalProperty returns, for each of nBins cells starting at start, the
// sum of the property over that cell and everything above it. A nil out
// allocates the result.
func (c *Column) TotalProperty(p Property, start, nBins int, out []float64) []float64 {
	if c == nil {
		return nil
	}
	start, nBins = c.clampBins(start, nBins)
	if nBins <= 0 {
		return out
	}
	if out == nil {
		out = make([]float64, nBins)
	}

	val0 := 0.
	for i := c.len - 1; i >= start+nBins-1; i-- {
		val0 += p.Measure(c.cells[i])
	}

	out[nBins-1] = val0
	for i := nBins - 2; i >= 0; i-- {
		out[i] = out[i+1] + p.Measure(c.cells[i+start])
	}
	return out
}

// AvgProperty returns, for each of nBins cells starting at start, the
// thickness-weighted average of the property over that cell and
// everything above it within the window. A nil out allocates the result.
func (c *Column) AvgProperty(p Property, start, nBins int, out []float64) []float64 {
	if c == nil {
		return nil
	}
	start, nBins = c.clampBins(start, nBins)
	if nBins <= 0 {
		return out
	}
	if out == nil {
		out = make([]float64, nBins)
	}

	t := make([]float64, nBins)
	t[nBins-1] = c.cells[start+nBins-1].Size()
	for i := nBins - 2; i >= 0; i-- {
		t[i] = t[i+1] + c.cells[start+i].Size()
	}

	out[nBins-1] = p.Measure(c.cells[start+nBins-1])
	for i := nBins - 2; i >= 0; i-- {
		out[i] = (out[i+1]*t[i+1] + p.Measure(c.cells[start+i])*(t[i]-t[i+1])) / t[i]
	}
	return out
}

// AvgPropertyWithLoad is AvgProperty for two-argument properties, feeding
// each cell its overlying load as the extra argument.
func (c *Column) AvgPropertyWithLoad(p Property, start, nBins int, out []float64) []float64 {
	if c == nil {
		return nil
	}
	start, nBins = c.clampBins(start, nBins)
	if nBins <= 0 {
		return out
	}
	if out == nil {
		out = make([]float64, nBins)
	}

	load := c.Load(start, nBins, nil)

	t := make([]float64, nBins)
	t[nBins-1] = c.cells[start+nBins-1].Size()
	for i := nBins - 2; i >= 0; i-- {
		t[i] = t[i+1] + c.cells[start+i].Size()
	}

	out[nBins-1] = p.Measure(c.cells[start+nBins-1], load[nBins-1])
	for i := nBins - 2; i >= 0; i-- {
		out[i] = (out[i+1]*t[i+1] + p.Measure(c.cells[start+i], load[i])*(t[i]-t[i+1])) / t[i]
	}
	return out
}

// AtProperty returns the raw per-cell property values for nBins cells
// starting at start. A nil out allocates the result.
func (c *Column) AtProperty(p Property, start, nBins int, out []float64) []float64 {
	if c == nil {
		return nil
	}
	start, nBins = c.clampBins(start, nBins)
	if nBins <= 0 {
		return out
	}
	if out == nil {
		out = make([]float64, nBins)
	}
	for i := 0; i < nBins; i++ {
		out[i] = p.Measure(c.cells[start+i])
	}
	return out
}

// Property returns the thickness-weighted mean of the property over the
// whole column. Two-argument properties get the column age when they want
// it and otherwise each cell's overlying load.
func (c *Column) Property(p Property) float64 {
	if c == nil || c.IsEmpty() {
		return 0
	}
	val := 0.
	switch {
	case p.NArgs() == 2 && p.UsesColumnAge():
		extra := c.Age()
		for i := 0; i < c.len; i++ {
			val += p.Measure(c.cells[i], extra) * c.cells[i].Size()
		}
	case p.NArgs() == 2:
		load := c.Load(0, c.len, nil)
		for i := 0; i < c.len; i++ {
			val += p.Measure(c.cells[i], load[i]) * c.cells[i].Size()
		}
	default:
		for i := 0; i < c.len; i++ {
			val += p.Measure(c.cells[i]) * c.cells[i].Size()
		}
	}
	return val / c.Thickness()
}

// HeightCopy copies the portion of the column above elevation z into
// dest, without modifying the column. A nil dest allocates a new column.
// The copy keeps the cell structure of the source; its bottom cell is
// trimmed to start exactly at z.
func (c *Column) HeightCopy(z float64, dest *Column) *Column {
	if c == nil {
		return nil
	}
	t := z - c.BaseHeight()
	start := c.IndexThickness(t)
	binsToExtract := c.len - start

	if dest == nil {
		dest = NewColumn(1)
	}
	dest.Clear()
	dest.dz = c.dz
	dest.x = c.x
	dest.y = c.y
	dest.age = c.age
	dest.sl = c.sl
	dest.SetBaseHeight(z)

	if binsToExtract <= 0 || start < 0 {
		return dest
	}

	dh := c.ThicknessIndex(start) - t
	if dh > 0 {
		dest.AppendCell(c.cells[start])
		dest.ResizeCell(0, dh)
	}
	for i := 1; i < binsToExtract; i++ {
		dest.AppendCell(c.cells[start+i])
	}
	return dest
}

// Chomp removes the sediment below elevation bottom, leaving the column
// standing on a new base. Above the top it empties the column and moves
// the base to bottom; at or below the base it is a no-op.
func (c *Column) Chomp(bottom float64) *Column {
	if c == nil {
		return nil
	}
	if bottom > c.BaseHeight() {
		CopyColumn(c, c.HeightCopy(bottom, nil))
	}
	return c
}

// Chop removes the sediment above elevation top. Below the base it
// empties the column and drops the base to top; at or above the top it is
// a no-op.
func (c *Column) Chop(top float64) *Column {
	if c == nil {
		return nil
	}
	if top < c.TopHeight() {
		c.RemoveTop(c.TopHeight() - top)
		if top < c.BaseHeight() {
			c.SetBaseHeight(top)
		}
	}
	return c
}

// Strip keeps only the sediment between the elevations bottom and top.
func (c *Column) Strip(bottom, top float64) *Column {
	return c.Chomp(bottom).Chop(top)
}

// ExtractCellsAbove removes the sediment above elevation z and returns it
// as dz-sized cells (the lowest cell possibly partial), ordered bottom up. The
// caller owns the returned cells.
func (c *Column) ExtractCellsAbove(z float64) []*Cell {
	if c == nil {
		return nil
	}
	t := c.TopHeight() - z
	if t <= 0 {
		return nil
	}

	var cells []*Cell
	for t > 1e-12 && !c.IsEmpty() {
		take := c.dz
		if take > t {
			take = t
		}
		cell := c.ExtractTop(take, nil)
		if cell.IsEmpty() {
			break
		}
		cells = append(cells, cell)
		t -= take
	}
	// The chunks came off the top; flip them bottom up.
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// AddColumnToCell accumulates every live cell of src into dest. A nil
// dest allocates a new cell.
func AddColumnToCell(dest *Cell, src *Column) *Cell {
	if src == nil {
		return nil
	}
	if dest == nil {
		dest = newEnvCell()
	}
	for i := 0; i < src.len; i++ {
		dest.Add(src.cells[i])
	}
	return dest
}

// Add pushes copies of every live cell of src onto the top of the column,
// rebinning them to the column's dz.
func (c *Column) Add(src *Column) *Column {
	if src == nil {
		return nil
	}
	if c == nil {
		c = NewColumn(len(src.cells))
	}
	for i := 0; i < src.len; i++ {
		c.AddCell(src.cells[i])
	}
	return c
}

// Append appends copies of every live cell of src on top of the column
// without rebinning.
func (c *Column) Append(src *Column) *Column {
	if c == nil || src == nil {
		return nil
	}
	for i := 0; i < src.len; i++ {
		c.AppendCell(src.cells[i])
	}
	return c
}

// Remove interprets src as an erosion column: any sediment in c above
// src's base is removed, and if that empties c its base drops to src's
// base.
func (c *Column) Remove(src *Column) *Column {
	if c == nil || src == nil {
		return c
	}
	d := c.TopHeight() - src.BaseHeight()
	if d > 0 {
		c.RemoveTop(d)
		if c.IsEmpty() {
			c.SetBaseHeight(src.BaseHeight())
		}
	}
	return c
}

// Rebin pulls all of the sediment out of the column and deposits it
// again, restoring the uniform-dz bin layout after arbitrary cell
// mutations. Mass is conserved.
func (c *Column) Rebin() *Column {
	if c == nil {
		return nil
	}
	temp := c.Dup()
	c.Clear()
	for i := 0; i < temp.len; i++ {
		c.AddCellAvgPressure(temp.cells[i])
	}
	return c
}
