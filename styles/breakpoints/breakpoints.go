// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package breakpoints expands a multi-viewport property table into an
ordered sequence of style blocks: one unconditional base block,
followed by one conditional block per breakpoint that has at least
one value at that position.

Each property in a [Table] carries an ordered sequence of [Slot]
values aligned against the breakpoint index: slot i of every property
belongs to breakpoint i. A sequence may be shorter than the number of
breakpoints, in which case the trailing slots are unset, but it may
never be longer. Slot 0 belongs to the base block, which applies
without any viewport condition.

The breakpoints in effect default to [DefaultSpec] and can be
overridden per table with the reserved [UseMin] / [UseMax] keys, or
per call with [ExpandWith]. Expansion is a pure function: the same
table always produces the same blocks, and nothing is cached or
mutated between calls.
*/
package breakpoints

import (
	"math"
	"slices"

	"github.com/styleworks/mixins/styles"
	"github.com/styleworks/mixins/styles/units"
)

// Breakpoint is one entry of a [Spec]: a viewport width and the mode
// determining whether that width is a lower or upper bound.
type Breakpoint struct {

	// Width is the viewport width at which the breakpoint takes
	// effect. It is zero for the base entry at index 0, which has
	// no condition.
	Width units.Value

	// Mode determines whether Width bounds the range from below
	// (min-width) or above (max-width).
	Mode styles.Modes
}

// Spec is an ordered sequence of breakpoints. Index 0 is always the
// base entry, which carries no condition; the widths of subsequent
// entries must be strictly increasing.
type Spec []Breakpoint

// defaultSpec is package-wide constant configuration; it is cloned
// on access and never mutated.
var defaultSpec = Spec{
	{},
	{Width: units.Px(480), Mode: styles.MinWidth},
	{Width: units.Px(768), Mode: styles.MinWidth},
	{Width: units.Px(1024), Mode: styles.MinWidth},
	{Width: units.Px(1280), Mode: styles.MinWidth},
}

// DefaultSpec returns a copy of the default breakpoint spec: the
// base entry plus min-width breakpoints at 480px, 768px, 1024px,
// and 1280px.
func DefaultSpec() Spec {
	return slices.Clone(defaultSpec)
}

// NewSpec builds a spec with the given mode from the given widths,
// which must be strictly increasing. In [styles.MaxWidth] mode,
// every width is reduced by one unit of its own kind to form an
// exclusive-style upper bound that does not overlap an adjacent
// min-width range (700px becomes 699px).
func NewSpec(mode styles.Modes, widths ...units.Value) (Spec, error) {
	var uc units.Context
	uc.Defaults()
	sp := make(Spec, 0, len(widths)+1)
	sp = append(sp, Breakpoint{})
	last := float32(math.Inf(-1))
	for _, w := range widths {
		wb := w.ToBase(&uc)
		if wb <= last {
			return nil, configErrorf("breakpoint widths must be strictly increasing: %v does not exceed the preceding width", w)
		}
		last = wb
		if mode == styles.MaxWidth {
			w = w.Sub(1)
		}
		sp = append(sp, Breakpoint{Width: w, Mode: mode})
	}
	return sp, nil
}

// Validate returns a [ConfigError] if the spec does not consist of a
// leading base entry followed by strictly increasing widths.
func (sp Spec) Validate() error {
	if len(sp) == 0 {
		return configErrorf("spec has no entries; index 0 must be the base entry")
	}
	if !sp[0].Width.IsZero() {
		return configErrorf("spec index 0 must be the base entry with no width")
	}
	var uc units.Context
	uc.Defaults()
	last := float32(math.Inf(-1))
	for _, bp := range sp[1:] {
		wb := bp.Width.ToBase(&uc)
		if wb <= last {
			return configErrorf("breakpoint widths must be strictly increasing: %v does not exceed the preceding width", bp.Width)
		}
		last = wb
	}
	return nil
}
