// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakpoints

import "github.com/styleworks/mixins/styles"

// Expand transposes the given property table into an ordered
// sequence of style blocks: the unconditional base block from slot 0
// of every property, then one conditional block per breakpoint in
// ascending width order. A block only includes properties whose slot
// at that index is set, in the order the properties were declared;
// identical values under different properties are never merged or
// deduplicated. Blocks that end up with no declarations are omitted,
// including the base block.
//
// The breakpoints in effect are [DefaultSpec] unless the table
// carries a [UseMin] or [UseMax] override. All configuration errors
// are reported as a [ConfigError] before any blocks are built.
func Expand(t *Table) ([]styles.Block, error) {
	return ExpandWith(t, nil)
}

// ExpandWith is like [Expand], but uses the given spec instead of
// [DefaultSpec] when the table itself carries no override. A nil
// spec means the default.
func ExpandWith(t *Table, sp Spec) ([]styles.Block, error) {
	esp, err := t.resolveSpec(sp)
	if err != nil {
		return nil, err
	}
	nb := len(esp)
	for i, name := range t.props.Keys {
		if isReserved(name) {
			continue
		}
		if ns := len(t.props.Values[i]); ns > nb {
			return nil, configErrorf("property %s has %d slots for %d breakpoints", name, ns, nb)
		}
	}
	blocks := make([]styles.Block, 0, nb)
	for bi := 0; bi < nb; bi++ {
		var b styles.Block
		if bi > 0 {
			b.Condition = styles.Condition{Width: esp[bi].Width, Mode: esp[bi].Mode}
		}
		for pi, name := range t.props.Keys {
			if isReserved(name) {
				continue
			}
			slots := t.props.Values[pi]
			if bi >= len(slots) || slots[bi].IsUnset() {
				continue
			}
			b.Add(name, slots[bi].Value())
		}
		if len(b.Decls) == 0 {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}
