// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles defines the flat output model shared by all of the
// mixins in this module: property declarations, viewport-width
// conditions, and the style blocks that group them. The consuming
// preprocessor is responsible for rendering these structures into
// concrete rule syntax; nothing here parses or serializes CSS.
package styles

import (
	"strings"

	"github.com/styleworks/mixins/styles/units"
)

// Declaration is a single property: value pair within a style block.
type Declaration struct {

	// Property is the CSS property name (e.g., margin-bottom).
	Property string

	// Value is the literal value for the property (e.g., 12px).
	Value string
}

// String implements the fmt.Stringer interface.
func (d Declaration) String() string {
	return d.Property + ": " + d.Value
}

// Modes are the ways a breakpoint width bounds the viewport range
// that a conditional block applies to.
type Modes int32

const (
	// MinWidth applies a block at the breakpoint width and above.
	MinWidth Modes = iota

	// MaxWidth applies a block at the breakpoint width and below.
	MaxWidth
)

func (m Modes) String() string {
	switch m {
	case MinWidth:
		return "min-width"
	case MaxWidth:
		return "max-width"
	}
	return "invalid-mode"
}

// Condition is a viewport-width guard on a style block.
// The zero Condition means no guard at all (the base block).
type Condition struct {

	// Width is the bounding viewport width.
	Width units.Value

	// Mode determines whether Width is a lower or upper bound.
	Mode Modes
}

// IsZero reports whether the condition is the unconditional
// (base block) case.
func (c Condition) IsZero() bool {
	return c == Condition{}
}

// String implements the fmt.Stringer interface, rendering the
// condition in media-feature form, e.g., (min-width: 768px).
// The zero condition renders as an empty string.
func (c Condition) String() string {
	if c.IsZero() {
		return ""
	}
	return "(" + c.Mode.String() + ": " + c.Width.String() + ")"
}

// Block is one emitted style block: an optional viewport condition
// and the declarations that apply under it, in declaration order.
type Block struct {

	// Condition guards the block; the zero value means unconditional.
	Condition Condition

	// Decls are the property declarations, in the order declared.
	Decls []Declaration
}

// IsConditional reports whether the block carries a viewport condition.
func (b *Block) IsConditional() bool {
	return !b.Condition.IsZero()
}

// Add appends a declaration for the given property and value.
func (b *Block) Add(property, value string) {
	b.Decls = append(b.Decls, Declaration{Property: property, Value: value})
}

// String implements the fmt.Stringer interface.
func (b *Block) String() string {
	var sb strings.Builder
	if b.IsConditional() {
		sb.WriteString(b.Condition.String())
		sb.WriteString(" ")
	}
	sb.WriteString("{")
	for i, d := range b.Decls {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(d.String())
	}
	sb.WriteString("}")
	return sb.String()
}
