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

import "testing"

func TestSizeClassOfPhi(t *testing.T) {
	cases := []struct {
		phi  float64
		want SizeClass
	}{
		{-2, Sand},
		{0, Sand},
		{4, Sand},
		{4.5, Silt},
		{8, Silt},
		{8.5, Clay},
		{11, Clay},
	}
	for _, c := range cases {
		if got := SizeClassOfPhi(c.phi); got != c.want {
			t.Errorf("SizeClassOfPhi(%g) = %v, want %v", c.phi, got, c.want)
		}
	}
}

func TestWentworthClassOfPhi(t *testing.T) {
	cases := []struct {
		phi  float64
		want SizeClass
	}{
		{-9, Boulder},
		{-6, Cobble},
		{-3, Pebble},
		{-1.5, Granule},
		{-.5, VeryCoarseSand},
		{1.5, MediumSand},
		{3.5, VeryFineSand},
		{4.5, CoarseSilt},
		{7.5, VeryFineSilt},
		{8.5, CoarseClay},
		{10.5, FineClay},
		{15, FineClay},
	}
	for _, c := range cases {
		if got := WentworthClassOfPhi(c.phi); got != c.want {
			t.Errorf("WentworthClassOfPhi(%g) = %v, want %v", c.phi, got, c.want)
		}
	}
}

func TestSizeClassAggregates(t *testing.T) {
	if Sand&Silt != 0 || Silt&Clay != 0 || Sand&Clay != 0 {
		t.Error("aggregate classes should not overlap")
	}
	if Mud != Silt|Clay {
		t.Error("mud should be silt and clay together")
	}
	if Gravel&Pebble == 0 || Gravel&Granule == 0 {
		t.Error("gravel should include pebble and granule")
	}
	if MediumSand&Sand == 0 {
		t.Error("single classes should intersect their aggregate")
	}
}

func TestSizeClassString(t *testing.T) {
	if s := (Pebble | Granule).String(); s != "pebble|granule" {
		t.Errorf("String() = %q", s)
	}
	if s := SizeClassNone.String(); s != "none" {
		t.Errorf("String() = %q", s)
	}
}
