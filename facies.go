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

// Facies tags the depositional processes that produced the sediment in a
// cell. It is a bitmask: cells that mix sediment from several processes
// carry the union of their flags.
type Facies uint8

const (
	FaciesNothing    Facies = 0
	FaciesBedload    Facies = 1 << 0
	FaciesPlume      Facies = 1 << 1
	FaciesDebrisFlow Facies = 1 << 2
	FaciesTurbidite  Facies = 1 << 3
	FaciesDiffused   Facies = 1 << 4
	FaciesRiver      Facies = 1 << 5
	FaciesWave       Facies = 1 << 6
	FaciesAlongShore Facies = 1 << 7
)

var faciesNames = []struct {
	f    Facies
	name string
}{
	{FaciesBedload, "bedload"},
	{FaciesPlume, "plume"},
	{FaciesDebrisFlow, "debris flow"},
	{FaciesTurbidite, "turbidite"},
	{FaciesDiffused, "diffused"},
	{FaciesRiver, "river"},
	{FaciesWave, "wave"},
	{FaciesAlongShore, "along shore"},
}

func (f Facies) String() string {
	if f == FaciesNothing {
		return "none"
	}
	var names []string
	for _, fn := range faciesNames {
		if f&fn.f != 0 {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}
