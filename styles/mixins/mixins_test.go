// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/styleworks/mixins/styles"
)

func TestGridAreas(t *testing.T) {
	decls := GridAreas("header header", "side main")
	assert.Equal(t, []styles.Declaration{
		{Property: "display", Value: "grid"},
		{Property: "grid-template-areas", Value: `"header header" "side main"`},
	}, decls)
}

func TestGridAreasRagged(t *testing.T) {
	// ragged rows are logged but still emitted as given
	decls := GridAreas("header header", "main")
	assert.Equal(t, `"header header" "main"`, decls[1].Value)
}

func TestGridArea(t *testing.T) {
	assert.Equal(t, []styles.Declaration{
		{Property: "grid-area", Value: "side"},
	}, GridArea("side"))
}

func TestCoverBackground(t *testing.T) {
	decls := CoverBackground("hero.jpg")
	assert.Equal(t, []styles.Declaration{
		{Property: "background-image", Value: "url(hero.jpg)"},
		{Property: "background-size", Value: "cover"},
		{Property: "background-position", Value: "center center"},
		{Property: "background-repeat", Value: "no-repeat"},
	}, decls)
}

func TestLineClamp(t *testing.T) {
	decls := LineClamp(3)
	assert.Equal(t, []styles.Declaration{
		{Property: "display", Value: "-webkit-box"},
		{Property: "-webkit-box-orient", Value: "vertical"},
		{Property: "-webkit-line-clamp", Value: "3"},
		{Property: "overflow", Value: "hidden"},
	}, decls)

	// under 1 line is clamped to 1
	assert.Equal(t, "1", LineClamp(0)[2].Value)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, []styles.Declaration{
		{Property: "overflow", Value: "hidden"},
		{Property: "text-overflow", Value: "ellipsis"},
		{Property: "white-space", Value: "nowrap"},
	}, Truncate())
}
