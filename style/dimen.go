package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import (
	"fmt"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInitial  uint32 = 0x0003
	dimenPercent  uint32 = 0x0004
	kindMask      uint32 = 0x000f
)

// Dimen is an option type for stylesheet dimensions.
//
// The stylesheet format treats every length as pixels; units (px, vw, vh,
// pt, %) are parsed and carried along, but only `%` changes resolution.
// A Dimen is one of
//
//	Auto | Initial | Px length (with advisory unit) | Percentage
type Dimen struct {
	px    float64
	pcnt  percent.Percent
	unit  string
	flags uint32
}

// Auto returns the `auto` dimension.
func Auto() Dimen {
	return Dimen{flags: dimenAuto}
}

// Initial returns the `initial` dimension.
func Initial() Dimen {
	return Dimen{flags: dimenInitial}
}

// Px creates a fixed pixel length.
func Px(x float64) Dimen {
	return Dimen{px: x, flags: dimenAbsolute}
}

// Length creates a fixed length with an advisory unit suffix
// (px, vw, vh, pt or empty).
func Length(x float64, unit string) Dimen {
	if unit == "%" {
		return Percentage(percent.Percent(x))
	}
	return Dimen{px: x, unit: unit, flags: dimenAbsolute}
}

// Percentage creates a %-relative dimension.
func Percentage(n percent.Percent) Dimen {
	return Dimen{pcnt: n, flags: dimenPercent}
}

// IsAuto is a predicate for the `auto` dimension.
func (d Dimen) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsInitial is a predicate for the `initial` dimension.
func (d Dimen) IsInitial() bool {
	return d.flags&kindMask == dimenInitial
}

// IsPercent is a predicate for %-relative dimensions.
func (d Dimen) IsPercent() bool {
	return d.flags&kindMask == dimenPercent
}

// IsNone is a predicate for the zero Dimen, i.e. an unset dimension.
func (d Dimen) IsNone() bool {
	return d.flags == dimenNone
}

// Px returns the fixed pixel length, or 0 for non-absolute dimensions.
func (d Dimen) Px() float64 {
	if d.flags&kindMask != dimenAbsolute {
		return 0
	}
	return d.px
}

// Unit returns the advisory unit suffix of an absolute length.
func (d Dimen) Unit() string {
	return d.unit
}

// Percent returns the percentage of a %-relative dimension.
func (d Dimen) Percent() percent.Percent {
	return d.pcnt
}

// Resolve turns a dimension into a concrete pixel value. Percentages
// resolve against base (a parent's content size); `auto`, `initial` and
// unset dimensions resolve to 0.
func (d Dimen) Resolve(base float64) float64 {
	switch d.flags & kindMask {
	case dimenAbsolute:
		return d.px
	case dimenPercent:
		return base * float64(d.pcnt) / 100
	}
	return 0
}

// DU converts an absolute pixel length to device units for typesetting
// interop, at the conventional 96 dpi (1 px = 0.75 pt).
func (d Dimen) DU() dimen.DU {
	return dimen.DU(d.px * 0.75 * float64(dimen.PT))
}

func (d Dimen) String() string {
	switch d.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInitial:
		return "initial"
	case dimenPercent:
		return fmt.Sprintf("%d%%", int(d.pcnt))
	case dimenAbsolute:
		return fmt.Sprintf("%g%s", d.px, d.unit)
	}
	return "<none>"
}
