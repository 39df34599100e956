// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mixins provides the fixed shorthand expansions in this
// module: named-area grid layout, cover-fit background images, and
// text clamping / truncation. Each mixin is a literal expansion into
// a flat declaration list, with no conditional output; the
// responsive multi-viewport expansion lives in the breakpoints
// package.
package mixins

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/styleworks/mixins/styles"
)

// GridAreas expands to a named-area grid container: display: grid
// plus a grid-template-areas value built from the given rows. Each
// row is a space-separated list of area names, and all rows must
// name the same number of columns. Ragged rows are a programmer
// error: they are logged and the template is emitted as given.
func GridAreas(rows ...string) []styles.Declaration {
	ncol := -1
	for _, row := range rows {
		nf := len(strings.Fields(row))
		if ncol < 0 {
			ncol = nf
			continue
		}
		if nf != ncol {
			slog.Error("programmer error: mixins.GridAreas: rows must name the same number of columns", "expected", ncol, "got", nf, "row", row)
		}
	}
	quoted := make([]string, len(rows))
	for i, row := range rows {
		quoted[i] = strconv.Quote(row)
	}
	return []styles.Declaration{
		{Property: "display", Value: "grid"},
		{Property: "grid-template-areas", Value: strings.Join(quoted, " ")},
	}
}

// GridArea expands to the placement declaration assigning a child
// element to the named template area.
func GridArea(name string) []styles.Declaration {
	return []styles.Declaration{
		{Property: "grid-area", Value: name},
	}
}

// CoverBackground expands to a cover-fit background image: the image
// scaled to fill the element, centered, and not repeated.
func CoverBackground(url string) []styles.Declaration {
	return []styles.Declaration{
		{Property: "background-image", Value: "url(" + url + ")"},
		{Property: "background-size", Value: "cover"},
		{Property: "background-position", Value: "center center"},
		{Property: "background-repeat", Value: "no-repeat"},
	}
}

// LineClamp expands to a multi-line text clamp at the given number
// of lines, using the -webkit-box expansion. A line count under 1 is
// a programmer error: it is logged and clamped to 1.
func LineClamp(lines int) []styles.Declaration {
	if lines < 1 {
		slog.Error("programmer error: mixins.LineClamp: expected at least 1 line, but got", "lines", lines)
		lines = 1
	}
	return []styles.Declaration{
		{Property: "display", Value: "-webkit-box"},
		{Property: "-webkit-box-orient", Value: "vertical"},
		{Property: "-webkit-line-clamp", Value: strconv.Itoa(lines)},
		{Property: "overflow", Value: "hidden"},
	}
}

// Truncate expands to single-line text truncation with an ellipsis.
func Truncate() []styles.Declaration {
	return []styles.Declaration{
		{Property: "overflow", Value: "hidden"},
		{Property: "text-overflow", Value: "ellipsis"},
		{Property: "white-space", Value: "nowrap"},
	}
}
