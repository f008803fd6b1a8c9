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

func TestPropertyByName(t *testing.T) {
	useDefaultCatalog()
	p, err := PropertyByName("density")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "density" || p.Ext() != "bulk" || p.NArgs() != 1 {
		t.Errorf("unexpected descriptor %q/%q/%d", p.Name(), p.Ext(), p.NArgs())
	}

	cell := NewCellClassed(nil, 1., Sand)
	if different(p.Measure(cell), cell.Density(), 1e-12) {
		t.Error("property should measure the cell's density")
	}

	if _, err := PropertyByName("no such property"); err == nil {
		t.Error("unknown names should fail")
	}
}

func TestPropertyArgs(t *testing.T) {
	useDefaultCatalog()
	cell := NewCellClassed(nil, 1., Clay)

	shear, err := PropertyByName("shear_strength")
	if err != nil {
		t.Fatal(err)
	}
	if shear.NArgs() != 2 || shear.UsesColumnAge() {
		t.Error("shear strength takes a load, not the column age")
	}
	if different(shear.Measure(cell, 1000), cell.ShearStrength(1000), 1e-12) {
		t.Error("two-argument measure should pass the load through")
	}

	con, err := PropertyByName("consolidation")
	if err != nil {
		t.Fatal(err)
	}
	if !con.UsesColumnAge() {
		t.Error("consolidation takes the column age")
	}
	rate, err := PropertyByName("consolidation_rate")
	if err != nil {
		t.Fatal(err)
	}
	if !rate.UsesColumnAge() {
		t.Error("consolidation rate takes the column age")
	}
}

func TestPropertyNames(t *testing.T) {
	names := PropertyNames()
	if len(names) == 0 {
		t.Fatal("no properties registered")
	}
	seenTwice := map[string]bool{}
	for _, n := range names {
		if seenTwice[n] {
			t.Errorf("property %q registered twice", n)
		}
		seenTwice[n] = true
	}
}
