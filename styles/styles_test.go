// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/styleworks/mixins/styles/units"
)

func TestCondition(t *testing.T) {
	var c Condition
	assert.True(t, c.IsZero())
	assert.Equal(t, "", c.String())

	c = Condition{Width: units.Px(768), Mode: MinWidth}
	assert.False(t, c.IsZero())
	assert.Equal(t, "(min-width: 768px)", c.String())

	c = Condition{Width: units.Px(699), Mode: MaxWidth}
	assert.Equal(t, "(max-width: 699px)", c.String())
}

func TestBlock(t *testing.T) {
	var b Block
	assert.False(t, b.IsConditional())
	assert.Equal(t, "{}", b.String())

	b.Add("margin-bottom", "12px")
	b.Add("border-width", "1px")
	assert.Equal(t, "{margin-bottom: 12px; border-width: 1px}", b.String())

	cb := Block{Condition: Condition{Width: units.Px(768), Mode: MinWidth}}
	cb.Add("border-width", "2px")
	assert.True(t, cb.IsConditional())
	assert.Equal(t, "(min-width: 768px) {border-width: 2px}", cb.String())
}
