// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breakpoints

import "fmt"

// ConfigError is the error reported for an invalid table or spec:
// conflicting mode keys, a property slot sequence longer than the
// number of breakpoints, or breakpoint widths that are not strictly
// increasing. Configuration is always checked before any output is
// produced, so a non-nil error means no blocks were built at all.
type ConfigError struct {

	// Problem describes what is wrong with the configuration.
	Problem string
}

func (e *ConfigError) Error() string {
	return "breakpoints: " + e.Problem
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Problem: fmt.Sprintf(format, args...)}
}
