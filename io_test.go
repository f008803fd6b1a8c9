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
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// testColumn builds the reference column from the persistence scenario:
// z=1.414, dz=2.718, x=3.14, y=9.81, age=33, one 23.1 m sand/mud deposit.
func testColumn() *Column {
	c := NewColumn(5)
	cell := NewCellClassed(nil, 23.1, Sand|Mud)
	c.AddCell(cell)
	c.SetZRes(2.718)
	c.SetXPosition(3.14)
	c.SetYPosition(9.81)
	c.SetBaseHeight(1.414)
	c.SetAge(33.)
	return c
}

func TestCellRoundTrip(t *testing.T) {
	useDefaultCatalog()
	cell := NewCellClassed(nil, 23.1, Sand|Mud).
		SetAge(12.5).SetPressure(3.25).SetFacies(FaciesPlume | FaciesRiver)

	var buf bytes.Buffer
	if err := cell.Write(&buf); err != nil {
		t.Fatal(err)
	}

	// n(i32) + 5 fractions + t0, t, age, pressure + facies(u8).
	wantLen := 4 + 5*8 + 4*8 + 1
	if buf.Len() != wantLen {
		t.Fatalf("record is %d bytes, want %d", buf.Len(), wantLen)
	}

	got, err := ReadCell(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(cell) {
		t.Error("cell did not survive the round trip")
	}
	if got.Facies() != FaciesPlume|FaciesRiver {
		t.Errorf("facies = %v", got.Facies())
	}
}

func TestColumnRoundTrip(t *testing.T) {
	useDefaultCatalog()
	c := testColumn()

	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		t.Fatal(err)
	}

	// Header is 7 f64 and 2 i32; every backing cell is written, trailing
	// clear cells included.
	cellLen := 4 + 5*8 + 4*8 + 1
	wantLen := 7*8 + 2*4 + c.Cap()*cellLen
	if buf.Len() != wantLen {
		t.Fatalf("record is %d bytes, want %d", buf.Len(), wantLen)
	}

	got, err := ReadColumn(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(c) {
		t.Error("column did not survive the round trip")
	}
	if got.Cap() != c.Cap() {
		t.Errorf("capacity = %d, want %d", got.Cap(), c.Cap())
	}
	if absDifferent(got.ZRes(), 2.718, 1e-12) ||
		absDifferent(got.XPosition(), 3.14, 1e-12) ||
		absDifferent(got.YPosition(), 9.81, 1e-12) ||
		absDifferent(got.BaseHeight(), 1.414, 1e-12) ||
		absDifferent(got.Age(), 33, 1e-12) {
		t.Error("scalar fields not faithful")
	}
	// 23.1 m of the five-type mix at 1750 kg/m³.
	if different(got.Mass(), 23.1*1750, 1e-9) {
		t.Errorf("mass = %g, want %g", got.Mass(), 23.1*1750.)
	}
	if got.Len() != 24 {
		t.Errorf("len = %d, want 24", got.Len())
	}
}

func TestColumnByteLayout(t *testing.T) {
	useDefaultCatalog()
	c := testColumn()

	var le, be bytes.Buffer
	if err := c.WriteOrder(&le, binary.LittleEndian); err != nil {
		t.Fatal(err)
	}
	if err := c.WriteOrder(&be, binary.BigEndian); err != nil {
		t.Fatal(err)
	}

	leb, beb := le.Bytes(), be.Bytes()

	// The first field is the base elevation as a little-endian f64.
	if got := binary.LittleEndian.Uint64(leb[:8]); got != math.Float64bits(1.414) {
		t.Errorf("leading field = %#x, want bits of 1.414", got)
	}
	// The big-endian record is the same value byte-swapped.
	if got := binary.BigEndian.Uint64(beb[:8]); got != math.Float64bits(1.414) {
		t.Errorf("big-endian leading field = %#x, want bits of 1.414", got)
	}
	for i := 0; i < 8; i++ {
		if leb[i] != beb[7-i] {
			t.Fatalf("byte %d not a swap of its mirror", i)
		}
	}

	// The live-cell count sits after the two f64 fields.
	if got := binary.LittleEndian.Uint32(leb[16:20]); got != uint32(c.Len()) {
		t.Errorf("len field = %d, want %d", got, c.Len())
	}
	if got := binary.BigEndian.Uint32(be.Bytes()[16:20]); got != uint32(c.Len()) {
		t.Errorf("big-endian len field = %d, want %d", got, c.Len())
	}
}

func TestColumnBigEndianRoundTrip(t *testing.T) {
	useDefaultCatalog()
	c := testColumn()

	var buf bytes.Buffer
	if err := c.WriteOrder(&buf, binary.BigEndian); err != nil {
		t.Fatal(err)
	}
	got, err := ReadColumnOrder(&buf, binary.BigEndian)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(c) {
		t.Error("column did not survive the big-endian round trip")
	}
}

func TestReadCellCatalogMismatch(t *testing.T) {
	useDefaultCatalog()
	cell := NewCellClassed(nil, 1., Sand)

	var buf bytes.Buffer
	if err := cell.Write(&buf); err != nil {
		t.Fatal(err)
	}

	// Re-register a smaller catalog: the stored record no longer fits.
	ClearAmbient()
	small := NewCatalog()
	small.AddType(DefaultCatalog().Type(0))
	small.AddType(DefaultCatalog().Type(4))
	SetAmbient(small)

	if _, err := ReadCell(&buf); err == nil {
		t.Error("reading a 5-type record against a 2-type catalog should fail")
	}
}

func TestReadCellTruncated(t *testing.T) {
	useDefaultCatalog()
	cell := NewCellClassed(nil, 1., Sand)

	var buf bytes.Buffer
	if err := cell.Write(&buf); err != nil {
		t.Fatal(err)
	}
	short := buf.Bytes()[:buf.Len()-3]
	if _, err := ReadCell(bytes.NewReader(short)); err == nil {
		t.Error("truncated record should fail to read")
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	s := DefaultCatalog()

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCatalog(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(s) {
		t.Error("catalog did not survive the round trip")
	}
	// The derived settling velocity is rebuilt from the removal rate.
	if absDifferent(got.Bedload().SettlingVelocity(), 50*1.74*7.5, 1e-12) {
		t.Error("settling velocity not rebuilt on read")
	}
}
