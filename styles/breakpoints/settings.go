// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakpoints

import (
	"fmt"
	"path/filepath"

	"github.com/styleworks/mixins/base/iox/tomlx"
	"github.com/styleworks/mixins/base/iox/yamlx"
	"github.com/styleworks/mixins/styles"
	"github.com/styleworks/mixins/styles/units"
)

// SpecFile is the on-disk form of a breakpoint spec override, as
// stored in a preprocessor project file.
type SpecFile struct {

	// Mode is min or max; empty means min.
	Mode string `toml:"mode" yaml:"mode"`

	// Widths are the non-base breakpoint widths in increasing
	// order, e.g., "700px".
	Widths []string `toml:"widths" yaml:"widths"`
}

// OpenSpec loads a breakpoint spec from the given TOML or YAML file,
// chosen by extension, applying the same validation as [Expand].
func OpenSpec(filename string) (Spec, error) {
	var sf SpecFile
	var err error
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		err = tomlx.Open(&sf, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(&sf, filename)
	default:
		return nil, fmt.Errorf("breakpoints.OpenSpec: unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return sf.Spec()
}

// Spec builds the validated [Spec] from the file form.
func (sf *SpecFile) Spec() (Spec, error) {
	var mode styles.Modes
	switch sf.Mode {
	case "min", "":
		mode = styles.MinWidth
	case "max":
		mode = styles.MaxWidth
	default:
		return nil, configErrorf("invalid mode %q: must be min or max", sf.Mode)
	}
	widths := make([]units.Value, len(sf.Widths))
	for i, ws := range sf.Widths {
		if err := widths[i].SetString(ws); err != nil {
			return nil, configErrorf("invalid breakpoint width %q: %v", ws, err)
		}
	}
	return NewSpec(mode, widths...)
}
