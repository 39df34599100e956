// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakpoints

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/styleworks/mixins/styles"
	"github.com/styleworks/mixins/styles/units"
)

func writeSpecFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	return fn
}

func TestOpenSpecTOML(t *testing.T) {
	fn := writeSpecFile(t, "breakpoints.toml", `
mode = "max"
widths = ["700px", "1300px"]
`)
	sp, err := OpenSpec(fn)
	require.NoError(t, err)
	require.Len(t, sp, 3)
	assert.True(t, sp[0].Width.IsZero())
	assert.Equal(t, Breakpoint{Width: units.Px(699), Mode: styles.MaxWidth}, sp[1])
	assert.Equal(t, Breakpoint{Width: units.Px(1299), Mode: styles.MaxWidth}, sp[2])
}

func TestOpenSpecYAML(t *testing.T) {
	fn := writeSpecFile(t, "breakpoints.yaml", `
mode: min
widths:
  - 480px
  - 768px
`)
	sp, err := OpenSpec(fn)
	require.NoError(t, err)
	require.Len(t, sp, 3)
	assert.Equal(t, Breakpoint{Width: units.Px(480), Mode: styles.MinWidth}, sp[1])
	assert.Equal(t, Breakpoint{Width: units.Px(768), Mode: styles.MinWidth}, sp[2])
}

func TestOpenSpecErrors(t *testing.T) {
	_, err := OpenSpec("breakpoints.json")
	assert.Error(t, err)

	fn := writeSpecFile(t, "bad.toml", `
mode = "sideways"
widths = ["700px"]
`)
	_, err = OpenSpec(fn)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)

	fn = writeSpecFile(t, "shrinking.toml", `
widths = ["800px", "700px"]
`)
	_, err = OpenSpec(fn)
	require.ErrorAs(t, err, &cerr)

	fn = writeSpecFile(t, "unparseable.yaml", `
widths:
  - wat
`)
	_, err = OpenSpec(fn)
	require.ErrorAs(t, err, &cerr)
}

func TestSpecFileDefaultsToMin(t *testing.T) {
	sf := SpecFile{Widths: []string{"700px"}}
	sp, err := sf.Spec()
	require.NoError(t, err)
	require.Len(t, sp, 2)
	assert.Equal(t, styles.MinWidth, sp[1].Mode)
	assert.Equal(t, units.Px(700), sp[1].Width)
}
