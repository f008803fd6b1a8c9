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

// Binary persistence. Cells, columns, and catalogs write themselves as
// self-contained fixed-layout records, little-endian by default with a
// selectable byte order. Reads consume exactly the bytes a matching write
// produced; clients framing multiple records must length-prefix them
// externally.
//
// Cell record:
//
//	n_grains  : i32
//	f[0..n)   : f64 × n
//	t_0, t    : f64 × 2
//	age       : f64
//	pressure  : f64
//	facies    : u8
//
// Column record:
//
//	base_elevation : f64
//	thickness      : f64
//	len            : i32  (live cells)
//	size           : i32  (capacity)
//	cell_height    : f64
//	x, y           : f64 × 2
//	age            : f64
//	sea_level      : f64
//	cells[0..size) : cell records, trailing clear cells included

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultByteOrder is the byte order records are written in unless the
// caller selects another.
var DefaultByteOrder binary.ByteOrder = binary.LittleEndian

// WriteOrder writes the cell as a binary record in the given byte order.
func (c *Cell) WriteOrder(w io.Writer, order binary.ByteOrder) error {
	if c == nil {
		return fmt.Errorf("strata: write of nil cell")
	}
	if err := binary.Write(w, order, int32(c.NTypes())); err != nil {
		return fmt.Errorf("strata: cell write: %w", err)
	}
	for _, v := range []interface{}{c.f, c.t0, c.t, c.age, c.pressure, uint8(c.facies)} {
		if err := binary.Write(w, order, v); err != nil {
			return fmt.Errorf("strata: cell write: %w", err)
		}
	}
	return nil
}

// Write writes the cell as a binary record in the default byte order.
func (c *Cell) Write(w io.Writer) error {
	return c.WriteOrder(w, DefaultByteOrder)
}

// ReadCellOrder reads one cell record in the given byte order.
func ReadCellOrder(r io.Reader, order binary.ByteOrder) (*Cell, error) {
	var n int32
	if err := binary.Read(r, order, &n); err != nil {
		return nil, fmt.Errorf("strata: cell read: %w", err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("strata: cell read: bad grain-type count %d", n)
	}
	if AmbientIsSet() && int(n) != AmbientLen() {
		return nil, fmt.Errorf("strata: cell read: record has %d grain types but the catalog has %d",
			n, AmbientLen())
	}

	c := NewCell(int(n))
	var facies uint8
	for _, v := range []interface{}{c.f, &c.t0, &c.t, &c.age, &c.pressure, &facies} {
		if err := binary.Read(r, order, v); err != nil {
			return nil, fmt.Errorf("strata: cell read: %w", err)
		}
	}
	c.facies = Facies(facies)
	return c, nil
}

// ReadCell reads one cell record in the default byte order.
func ReadCell(r io.Reader) (*Cell, error) {
	return ReadCellOrder(r, DefaultByteOrder)
}

// WriteOrder writes the column as a binary record in the given byte
// order. The full backing storage is written, trailing clear cells
// included, so that a read restores the column's capacity as well as its
// contents.
func (c *Column) WriteOrder(w io.Writer, order binary.ByteOrder) error {
	if c == nil {
		return fmt.Errorf("strata: write of nil column")
	}
	hdr := []interface{}{
		c.z, c.t, int32(c.len), int32(len(c.cells)),
		c.dz, c.x, c.y, c.age, c.sl,
	}
	for _, v := range hdr {
		if err := binary.Write(w, order, v); err != nil {
			return fmt.Errorf("strata: column write: %w", err)
		}
	}
	for _, cell := range c.cells {
		if err := cell.WriteOrder(w, order); err != nil {
			return err
		}
	}
	return nil
}

// Write writes the column as a binary record in the default byte order.
func (c *Column) Write(w io.Writer) error {
	return c.WriteOrder(w, DefaultByteOrder)
}

// ReadColumnOrder reads one column record in the given byte order. The
// grain-type count of the stored cells must match the ambient catalog if
// one is registered.
func ReadColumnOrder(r io.Reader, order binary.ByteOrder) (*Column, error) {
	c := &Column{}
	var csLen, size int32
	hdr := []interface{}{
		&c.z, &c.t, &csLen, &size, &c.dz, &c.x, &c.y, &c.age, &c.sl,
	}
	for _, v := range hdr {
		if err := binary.Read(r, order, v); err != nil {
			return nil, fmt.Errorf("strata: column read: %w", err)
		}
	}
	if size < 0 || csLen < 0 || csLen > size {
		return nil, fmt.Errorf("strata: column read: bad lengths len=%d size=%d", csLen, size)
	}
	c.len = int(csLen)
	c.cells = make([]*Cell, size)
	for i := range c.cells {
		cell, err := ReadCellOrder(r, order)
		if err != nil {
			return nil, err
		}
		c.cells[i] = cell
	}
	return c, nil
}

// ReadColumn reads one column record in the default byte order.
func ReadColumn(r io.Reader) (*Column, error) {
	return ReadColumnOrder(r, DefaultByteOrder)
}

// WriteOrder writes the catalog as a binary record in the given byte
// order: an i32 grain-type count followed by the nine configured
// coefficients of each type. Derived coefficients are rebuilt on read.
func (s *Catalog) WriteOrder(w io.Writer, order binary.ByteOrder) error {
	s = s.actual()
	if s == nil {
		return fmt.Errorf("strata: write of nil catalog")
	}
	if err := binary.Write(w, order, int32(len(s.types))); err != nil {
		return fmt.Errorf("strata: catalog write: %w", err)
	}
	for _, t := range s.types {
		vals := []float64{
			t.grainSize, t.rhoGrain, t.rhoSat, t.voidMin, t.plasticIndex,
			t.diffCoef, t.lambda, t.cv, t.c,
		}
		if err := binary.Write(w, order, vals); err != nil {
			return fmt.Errorf("strata: catalog write: %w", err)
		}
	}
	return nil
}

// Write writes the catalog as a binary record in the default byte order.
func (s *Catalog) Write(w io.Writer) error {
	return s.WriteOrder(w, DefaultByteOrder)
}

// ReadCatalogOrder reads one catalog record in the given byte order.
func ReadCatalogOrder(r io.Reader, order binary.ByteOrder) (*Catalog, error) {
	var n int32
	if err := binary.Read(r, order, &n); err != nil {
		return nil, fmt.Errorf("strata: catalog read: %w", err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("strata: catalog read: bad grain-type count %d", n)
	}
	s := NewCatalog()
	for i := int32(0); i < n; i++ {
		vals := make([]float64, 9)
		if err := binary.Read(r, order, vals); err != nil {
			return nil, fmt.Errorf("strata: catalog read: %w", err)
		}
		t := NewGrainType().
			SetGrainSize(vals[0]).
			SetRhoGrain(vals[1]).
			SetRhoSat(vals[2]).
			SetVoidRatioMin(vals[3]).
			SetPlasticIndex(vals[4]).
			SetDiffCoef(vals[5]).
			SetLambda(vals[6]).
			SetCConsolidation(vals[7]).
			SetCompressibility(vals[8])
		s.AddType(t)
	}
	return s, nil
}

// ReadCatalog reads one catalog record in the default byte order.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	return ReadCatalogOrder(r, DefaultByteOrder)
}
