// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units supports CSS-style length units (px, em, rem, etc).

The unit is stored along with a value, so a length parsed early from a
style declaration keeps its authored form and can be emitted back out
unchanged. Values can also be converted to a common base-pixel scale
for comparison, using reference factors for the absolute units and
fixed defaults for the font- and viewport-relative ones; see [Context].
*/
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// standard conversion factors; 1px = 1/96 in per CSS convention.
const (
	PxPerInch = 96.0
	DpPerInch = 160.0
	MmPerInch = 25.4
	CmPerInch = 2.54
	PtPerInch = 72.0
	PcPerInch = 6.0
)

// Units is an enum that represents a unit (px, em, etc).
type Units int32

const (
	// UnitPx = pixels; 1px = 1/96th of 1in.
	UnitPx Units = iota

	// UnitDp = density-independent pixels; 1dp = 1/160th of 1in.
	UnitDp

	// UnitEm = font size of the element.
	UnitEm

	// UnitRem = font size of the root element.
	UnitRem

	// UnitVw = 1% of the viewport's width.
	UnitVw

	// UnitVh = 1% of the viewport's height.
	UnitVh

	// UnitCm = centimeters; 1cm = 96px/2.54.
	UnitCm

	// UnitMm = millimeters; 1mm = 1/10th of cm.
	UnitMm

	// UnitQ = quarter-millimeters; 1q = 1/40th of cm.
	UnitQ

	// UnitIn = inches; 1in = 2.54cm = 96px.
	UnitIn

	// UnitPc = picas; 1pc = 1/6th of 1in.
	UnitPc

	// UnitPt = points; 1pt = 1/72th of 1in.
	UnitPt
)

// UnitNames are the standard string names for each unit.
var UnitNames = [...]string{
	UnitPx:  "px",
	UnitDp:  "dp",
	UnitEm:  "em",
	UnitRem: "rem",
	UnitVw:  "vw",
	UnitVh:  "vh",
	UnitCm:  "cm",
	UnitMm:  "mm",
	UnitQ:   "q",
	UnitIn:  "in",
	UnitPc:  "pc",
	UnitPt:  "pt",
}

// String implements the fmt.Stringer interface.
func (u Units) String() string {
	if u < 0 || int(u) >= len(UnitNames) {
		return "px"
	}
	return UnitNames[u]
}

// SetString sets the unit from its standard string name,
// returning an error for an unknown name.
func (u *Units) SetString(s string) error {
	for i, nm := range UnitNames {
		if s == nm {
			*u = Units(i)
			return nil
		}
	}
	return fmt.Errorf("units.Units: %q is not a valid unit name", s)
}

// Value is a length value with its unit.
type Value struct {

	// Val is the value in terms of the specified unit.
	Val float32

	// Unit is the unit used for the value.
	Unit Units
}

// New creates a new value with the given unit.
func New(val float32, un Units) Value {
	return Value{Val: val, Unit: un}
}

// Px returns a new pixel value; 1px = 1/96th of 1in.
func Px(val float32) Value { return Value{Val: val, Unit: UnitPx} }

// Dp returns a new density-independent pixel value; 1dp = 1/160th of 1in.
func Dp(val float32) Value { return Value{Val: val, Unit: UnitDp} }

// Em returns a new em value (font size of the element).
func Em(val float32) Value { return Value{Val: val, Unit: UnitEm} }

// Rem returns a new rem value (font size of the root element).
func Rem(val float32) Value { return Value{Val: val, Unit: UnitRem} }

// Vw returns a new viewport-width value (1vw = 1% of viewport width).
func Vw(val float32) Value { return Value{Val: val, Unit: UnitVw} }

// Vh returns a new viewport-height value (1vh = 1% of viewport height).
func Vh(val float32) Value { return Value{Val: val, Unit: UnitVh} }

// Cm returns a new centimeter value.
func Cm(val float32) Value { return Value{Val: val, Unit: UnitCm} }

// Mm returns a new millimeter value.
func Mm(val float32) Value { return Value{Val: val, Unit: UnitMm} }

// Q returns a new quarter-millimeter value.
func Q(val float32) Value { return Value{Val: val, Unit: UnitQ} }

// In returns a new inch value; 1in = 96px.
func In(val float32) Value { return Value{Val: val, Unit: UnitIn} }

// Pc returns a new pica value; 1pc = 1/6th of 1in.
func Pc(val float32) Value { return Value{Val: val, Unit: UnitPc} }

// Pt returns a new point value; 1pt = 1/72th of 1in.
func Pt(val float32) Value { return Value{Val: val, Unit: UnitPt} }

// IsZero reports whether the value is the zero value.
func (v Value) IsZero() bool {
	return v == Value{}
}

// Sub returns the value reduced by the given amount of its own unit.
// This is used for exclusive-style upper bounds, e.g., turning a
// 700px min boundary into a 699px max one.
func (v Value) Sub(f float32) Value {
	v.Val -= f
	return v
}

// String implements the fmt.Stringer interface, rendering the value
// in authored form, e.g., 700px or 1.5em.
func (v Value) String() string {
	return strconv.FormatFloat(float64(v.Val), 'f', -1, 32) + v.Unit.String()
}

// SetString sets the value from a string representation such as
// "700px" or "1.5em". A bare number is treated as px. It returns an
// error if the string cannot be parsed as a number plus a known unit.
func (v *Value) SetString(str string) error {
	str = strings.TrimSpace(str)
	if str == "" {
		return fmt.Errorf("units.Value: empty value string")
	}
	// longer names first so that rem is not taken as em
	numstr, unit := str, UnitPx
	for _, trial := range unitsByNameLength {
		if strings.HasSuffix(str, UnitNames[trial]) {
			numstr = strings.TrimSpace(strings.TrimSuffix(str, UnitNames[trial]))
			unit = trial
			break
		}
	}
	val, err := strconv.ParseFloat(numstr, 32)
	if err != nil {
		return fmt.Errorf("units.Value: invalid value %q: %w", str, err)
	}
	v.Val = float32(val)
	v.Unit = unit
	return nil
}

// StringToValue converts a string to a value representation,
// falling back to a zero px value for an unparseable string.
// See [Value.SetString] for a version that returns the error.
func StringToValue(str string) Value {
	var v Value
	if err := v.SetString(str); err != nil {
		return Value{}
	}
	return v
}

// unitsByNameLength lists units with longer names first, so suffix
// matching in SetString never stops at em when the author wrote rem.
var unitsByNameLength = [...]Units{
	UnitRem,
	UnitPx, UnitDp, UnitEm, UnitVw, UnitVh,
	UnitCm, UnitMm, UnitIn, UnitPc, UnitPt,
	UnitQ,
}

// Context specifies the reference values used to convert relative
// units to the base scale: the font size backing em and rem, and the
// viewport size backing vw and vh. The absolute units convert with
// the standard per-inch factors and do not consult the context.
type Context struct {

	// DPI is the dots-per-px scale factor; 1 by default.
	DPI float32

	// FontSize is the reference font size in px, for em and rem.
	FontSize float32

	// Vpw is the viewport width in px.
	Vpw float32

	// Vph is the viewport height in px.
	Vph float32
}

// Defaults sets the context to standard reference values:
// DPI 1, font size 16px, viewport 1920x1080.
func (uc *Context) Defaults() {
	uc.DPI = 1
	uc.FontSize = 16
	uc.Vpw = 1920
	uc.Vph = 1080
}

// ToBase converts the value to the common base-pixel scale given the
// reference values in the context, for size comparisons across units.
func (v Value) ToBase(uc *Context) float32 {
	switch v.Unit {
	case UnitPx:
		return v.Val * uc.DPI
	case UnitDp:
		return v.Val * (PxPerInch / DpPerInch) * uc.DPI
	case UnitEm, UnitRem:
		return v.Val * uc.FontSize * uc.DPI
	case UnitVw:
		return v.Val * 0.01 * uc.Vpw
	case UnitVh:
		return v.Val * 0.01 * uc.Vph
	case UnitCm:
		return v.Val * (PxPerInch / CmPerInch) * uc.DPI
	case UnitMm:
		return v.Val * (PxPerInch / MmPerInch) * uc.DPI
	case UnitQ:
		return v.Val * (PxPerInch / (4 * MmPerInch)) * uc.DPI
	case UnitIn:
		return v.Val * PxPerInch * uc.DPI
	case UnitPc:
		return v.Val * (PxPerInch / PcPerInch) * uc.DPI
	case UnitPt:
		return v.Val * (PxPerInch / PtPerInch) * uc.DPI
	}
	return v.Val * uc.DPI
}
