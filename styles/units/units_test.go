// Copyright (c) 2026, The Styleworks Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBase(t *testing.T) {
	tests := map[Units]float32{
		UnitPx:  50,
		UnitDp:  30,
		UnitEm:  800,
		UnitRem: 800,
		UnitVw:  960,
		UnitVh:  540,
		UnitCm:  1889.7638,
		UnitMm:  188.97638,
		UnitQ:   47.244095,
		UnitIn:  4800,
		UnitPc:  800,
		UnitPt:  66.666664,
	}
	var uc Context
	uc.Defaults()
	for unit, want := range tests {
		v := New(50, unit)
		assert.InDelta(t, want, v.ToBase(&uc), 0.01, unit.String())
	}
}

func TestSetString(t *testing.T) {
	tests := map[string]Value{
		"700px":  Px(700),
		"1.5em":  Em(1.5),
		"2rem":   Rem(2),
		"50vw":   Vw(50),
		"25vh":   Vh(25),
		"12pt":   Pt(12),
		"3pc":    Pc(3),
		"2.54cm": Cm(2.54),
		"10mm":   Mm(10),
		"4q":     Q(4),
		"1in":    In(1),
		"160dp":  Dp(160),
		"42":     Px(42),
		"-5px":   Px(-5),
		" 8px ":  Px(8),
	}
	for str, want := range tests {
		var v Value
		err := v.SetString(str)
		require.NoError(t, err, str)
		assert.Equal(t, want, v, str)
	}

	bad := []string{"", "abc", "12xx", "px"}
	for _, str := range bad {
		var v Value
		assert.Error(t, v.SetString(str), str)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "700px", Px(700).String())
	assert.Equal(t, "1.5em", Em(1.5).String())
	assert.Equal(t, "0px", Value{}.String())

	for _, un := range unitsByNameLength {
		v := New(1, un)
		assert.Equal(t, v, StringToValue(v.String()), un.String())
	}
}

func TestSub(t *testing.T) {
	assert.Equal(t, Px(699), Px(700).Sub(1))
	assert.Equal(t, Em(39), Em(40).Sub(1))
	assert.Equal(t, "699px", Px(700).Sub(1).String())
}

func TestStringToValueFallback(t *testing.T) {
	assert.Equal(t, Value{}, StringToValue("not-a-length"))
	assert.Equal(t, Px(12), StringToValue("12"))
}
