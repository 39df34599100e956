// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakpoints

import (
	"github.com/styleworks/mixins/base/keylist"
	"github.com/styleworks/mixins/styles"
	"github.com/styleworks/mixins/styles/units"
)

// Reserved table keys that select a breakpoint spec override instead
// of declaring a property. At most one of the two may be present in
// a table. The first slot under either key is a base placeholder
// (conventionally "global") and is never parsed as a width.
const (
	// UseMin overrides the breakpoints with min-width entries.
	UseMin = "use-min"

	// UseMax overrides the breakpoints with max-width entries,
	// with each width reduced by one unit.
	UseMax = "use-max"
)

func isReserved(key string) bool {
	return key == UseMin || key == UseMax
}

// Slot is the value assigned to a property at one breakpoint index,
// or the explicit marker that the property has no value there.
// The zero Slot is unset; any string, including the empty one, is a
// legitimate value, so "no value" is a tag rather than a skip string.
type Slot struct {
	value string
	set   bool
}

// None is the explicit unset marker: a slot that contributes no
// declaration to its breakpoint's block.
var None = Slot{}

// V returns a set slot holding the given value.
func V(value string) Slot {
	return Slot{value: value, set: true}
}

// Vals returns a slot sequence holding the given values, for
// properties that have a value at every leading breakpoint.
func Vals(values ...string) []Slot {
	slots := make([]Slot, len(values))
	for i, v := range values {
		slots[i] = V(v)
	}
	return slots
}

// IsUnset reports whether the slot has no value.
func (s Slot) IsUnset() bool {
	return !s.set
}

// Value returns the slot's value, which is empty for an unset slot.
func (s Slot) Value() string {
	return s.value
}

// String implements the fmt.Stringer interface, rendering unset
// slots as _.
func (s Slot) String() string {
	if !s.set {
		return "_"
	}
	return s.value
}

// Table is a declaration-ordered property table: each property maps
// to its ordered slot sequence, and properties come back out of
// expansion in the order they were set. The zero Table is ready
// to use.
type Table struct {
	props keylist.List[string, []Slot]
}

// NewTable returns a new empty [Table].
func NewTable() *Table {
	return &Table{}
}

// Set assigns the slot sequence for the given property, appending
// the property in declaration order, or replacing the sequence in
// place if the property was already set. It returns the table for
// chaining.
func (t *Table) Set(property string, slots ...Slot) *Table {
	t.props.Set(property, slots)
	return t
}

// Len returns the number of declared properties, not counting the
// reserved mode keys.
func (t *Table) Len() int {
	n := 0
	for _, key := range t.props.Keys {
		if !isReserved(key) {
			n++
		}
	}
	return n
}

// resolveSpec determines the breakpoints in effect for this table:
// the table's own UseMin / UseMax override if present, else the
// given per-call spec, else [DefaultSpec]. All [ConfigError]
// conditions relating to the spec are detected here.
func (t *Table) resolveSpec(sp Spec) (Spec, error) {
	minSlots, hasMin := t.props.AtTry(UseMin)
	maxSlots, hasMax := t.props.AtTry(UseMax)
	if hasMin && hasMax {
		return nil, configErrorf("table has both %s and %s; at most one mode key may be present", UseMin, UseMax)
	}
	if !hasMin && !hasMax {
		if sp != nil {
			if err := sp.Validate(); err != nil {
				return nil, err
			}
			return sp, nil
		}
		return DefaultSpec(), nil
	}
	mode, slots, key := styles.MinWidth, minSlots, UseMin
	if hasMax {
		mode, slots, key = styles.MaxWidth, maxSlots, UseMax
	}
	if len(slots) == 0 {
		return nil, configErrorf("mode key %s has no entries; the first entry is the base placeholder", key)
	}
	widths := make([]units.Value, 0, len(slots)-1)
	for _, s := range slots[1:] { // slot 0 is the base placeholder
		if s.IsUnset() {
			return nil, configErrorf("mode key %s has an unset width entry", key)
		}
		var w units.Value
		if err := w.SetString(s.Value()); err != nil {
			return nil, configErrorf("mode key %s has invalid width %q: %v", key, s.Value(), err)
		}
		widths = append(widths, w)
	}
	return NewSpec(mode, widths...)
}
