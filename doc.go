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

// Package strata is the stratigraphic column storage engine underlying a
// sedimentary-basin simulation system. For each location on a surface it
// maintains a vertical stack of sediment cells recording deposition history,
// and keeps that stack consistent — mass conserved, compositions normalized,
// vertical order preserved — while process models deposit, erode, compact,
// and age sediment through it.
//
// The engine has three layers. A Catalog describes the grain types in play
// and their material properties; one catalog is normally registered
// process-wide (the ambient catalog) and consulted implicitly by everything
// else. A Cell is a homogeneous parcel of sediment: per-type fractions, a
// current and an uncompacted thickness, an age, a pore pressure, and a
// facies bitmask. A Column is a stack of cells over a base elevation, filled
// in fixed-height bins with a partial cell on top, with an algebra of
// deposition, erosion, extraction and rebinning defined on it.
//
// Columns and cells serialize to a fixed-layout binary record
// (little-endian by default) so that model state survives restarts
// byte-for-byte.
package strata

// Version gives the version of this software.
const Version = "0.1.0"
