// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Voronova

// Package units defines the measurement units known to the inventory and
// provides conversion between compatible ones.
//
// Every unit belongs to a dimension (mass, length, count, or skein) and has
// a factor relative to the dimension's base unit (g, m, pcs). Conversion is
// only possible within a dimension; skeins deliberately form their own
// dimension because a skein is not a countable piece of anything else.
package units

import (
	"errors"
	"fmt"
)

// Dimension classifies units that can be converted into each other.
type Dimension string

// Known dimensions.
const (
	Mass   Dimension = "mass"
	Length Dimension = "length"
	Count  Dimension = "count"
	Skein  Dimension = "skein"
)

// Unit names accepted everywhere a unit is expected.
const (
	Gram     = "g"
	Kilogram = "kg"
	Ounce    = "oz"
	Meter    = "m"
	Centi    = "cm"
	Yard     = "yd"
	Inch     = "in"
	Piece    = "pcs"
	Pair     = "pair"
	SkeinU   = "skein"
)

// ErrUnknownUnit is returned when a unit name is not in the known set.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrIncompatibleUnits is returned when a conversion crosses dimensions.
var ErrIncompatibleUnits = errors.New("units are not convertible")

type unitDef struct {
	dimension Dimension
	// factor converts a value in this unit into the dimension's base unit.
	factor float64
}

var unitTable = map[string]unitDef{
	Gram:     {Mass, 1},
	Kilogram: {Mass, 1000},
	Ounce:    {Mass, 28.349523125},
	Meter:    {Length, 1},
	Centi:    {Length, 0.01},
	Yard:     {Length, 0.9144},
	Inch:     {Length, 0.0254},
	Piece:    {Count, 1},
	Pair:     {Count, 2},
	SkeinU:   {Skein, 1},
}

// All returns every known unit name in display order.
func All() []string {
	return []string{SkeinU, Gram, Kilogram, Ounce, Meter, Centi, Yard, Inch, Pair, Piece}
}

// IsKnown reports whether unit is one of the known unit names.
func IsKnown(unit string) bool {
	_, ok := unitTable[unit]
	return ok
}

// DimensionOf returns the dimension of the given unit.
//
// Returns ErrUnknownUnit when the unit is not in the known set.
func DimensionOf(unit string) (Dimension, error) {
	def, ok := unitTable[unit]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return def.dimension, nil
}

// Convertible reports whether a value in from can be expressed in to.
// Unknown units are never convertible.
func Convertible(from, to string) bool {
	fromDef, ok := unitTable[from]
	if !ok {
		return false
	}
	toDef, ok := unitTable[to]
	if !ok {
		return false
	}
	return fromDef.dimension == toDef.dimension
}

// Convert expresses value (measured in from) in the unit to.
//
// Returns ErrUnknownUnit when either unit is not in the known set, or
// ErrIncompatibleUnits when the units belong to different dimensions.
func Convert(value float64, from, to string) (float64, error) {
	fromDef, ok := unitTable[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	toDef, ok := unitTable[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	if fromDef.dimension != toDef.dimension {
		return 0, fmt.Errorf("%w: %q and %q", ErrIncompatibleUnits, from, to)
	}

	return value * fromDef.factor / toDef.factor, nil
}
