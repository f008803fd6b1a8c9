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

import "strings"

// SizeClass is a set of Wentworth grain-size classes. Each bit is one class;
// aggregate masks (Sand, Mud, ...) are unions of them, so clients can test
// or mask classes with the usual bit operations.
type SizeClass int32

const (
	SizeClassNone   SizeClass = 0
	Boulder         SizeClass = 1 << 0  // -12 < φ ≤ -8
	Cobble          SizeClass = 1 << 1  //  -8 < φ ≤ -5
	Pebble          SizeClass = 1 << 2  //  -5 < φ ≤ -2
	Granule         SizeClass = 1 << 3  //  -2 < φ ≤ -1
	VeryCoarseSand  SizeClass = 1 << 4  //  -1 < φ ≤  0
	CoarseSand      SizeClass = 1 << 5  //   0 < φ ≤  1
	MediumSand      SizeClass = 1 << 6  //   1 < φ ≤  2
	FineSand        SizeClass = 1 << 7  //   2 < φ ≤  3
	VeryFineSand    SizeClass = 1 << 8  //   3 < φ ≤  4
	CoarseSilt      SizeClass = 1 << 9  //   4 < φ ≤  5
	MediumSilt      SizeClass = 1 << 10 //   5 < φ ≤  6
	FineSilt        SizeClass = 1 << 11 //   6 < φ ≤  7
	VeryFineSilt    SizeClass = 1 << 12 //   7 < φ ≤  8
	CoarseClay      SizeClass = 1 << 13 //   8 < φ ≤  9
	MediumClay      SizeClass = 1 << 14 //   9 < φ ≤ 10
	FineClay        SizeClass = 1 << 15 //  10 < φ ≤ 11
)

// Aggregate masks.
const (
	Gravel SizeClass = Pebble | Granule
	Sand   SizeClass = VeryCoarseSand | CoarseSand | MediumSand | FineSand | VeryFineSand
	Silt   SizeClass = CoarseSilt | MediumSilt | FineSilt | VeryFineSilt
	Clay   SizeClass = CoarseClay | MediumClay | FineClay
	Mud    SizeClass = Silt | Clay
)

// Maximum φ for each size class.
const (
	BoulderPhi        = -8.
	CobblePhi         = -5.
	PebblePhi         = -2.
	GranulePhi        = -1.
	VeryCoarseSandPhi = 0.
	CoarseSandPhi     = 1.
	MediumSandPhi     = 2.
	FineSandPhi       = 3.
	VeryFineSandPhi   = 4.
	CoarseSiltPhi     = 5.
	MediumSiltPhi     = 6.
	FineSiltPhi       = 7.
	VeryFineSiltPhi   = 8.
	CoarseClayPhi     = 9.
	MediumClayPhi     = 10.
	FineClayPhi       = 11.
)

// SizeClassOfPhi places a grain size in φ units into the sand, silt, or
// clay aggregate class. Sediment at or coarser than very fine sand counts
// as sand, at or coarser than very fine silt as silt, and everything finer
// as clay.
func SizeClassOfPhi(phi float64) SizeClass {
	switch {
	case phi <= VeryFineSandPhi:
		return Sand
	case phi <= VeryFineSiltPhi:
		return Silt
	default:
		return Clay
	}
}

// WentworthClassOfPhi gives the single (non-aggregate) Wentworth class of
// a grain size in φ units.
func WentworthClassOfPhi(phi float64) SizeClass {
	bounds := []struct {
		phi float64
		c   SizeClass
	}{
		{BoulderPhi, Boulder},
		{CobblePhi, Cobble},
		{PebblePhi, Pebble},
		{GranulePhi, Granule},
		{VeryCoarseSandPhi, VeryCoarseSand},
		{CoarseSandPhi, CoarseSand},
		{MediumSandPhi, MediumSand},
		{FineSandPhi, FineSand},
		{VeryFineSandPhi, VeryFineSand},
		{CoarseSiltPhi, CoarseSilt},
		{MediumSiltPhi, MediumSilt},
		{FineSiltPhi, FineSilt},
		{VeryFineSiltPhi, VeryFineSilt},
		{CoarseClayPhi, CoarseClay},
		{MediumClayPhi, MediumClay},
	}
	for _, b := range bounds {
		if phi <= b.phi {
			return b.c
		}
	}
	return FineClay
}

var sizeClassNames = []struct {
	c    SizeClass
	name string
}{
	{Boulder, "boulder"},
	{Cobble, "cobble"},
	{Pebble, "pebble"},
	{Granule, "granule"},
	{VeryCoarseSand, "very coarse sand"},
	{CoarseSand, "coarse sand"},
	{MediumSand, "medium sand"},
	{FineSand, "fine sand"},
	{VeryFineSand, "very fine sand"},
	{CoarseSilt, "coarse silt"},
	{MediumSilt, "medium silt"},
	{FineSilt, "fine silt"},
	{VeryFineSilt, "very fine silt"},
	{CoarseClay, "coarse clay"},
	{MediumClay, "medium clay"},
	{FineClay, "fine clay"},
}

func (c SizeClass) String() string {
	if c == SizeClassNone {
		return "none"
	}
	var names []string
	for _, cn := range sizeClassNames {
		if c&cn.c != 0 {
			names = append(names, cn.name)
		}
	}
	return strings.Join(names, "|")
}
