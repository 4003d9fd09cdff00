// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundingModeString(t *testing.T) {
	assert.Equal(t, "ToNearestEven", ToNearestEven.String())
	assert.Equal(t, "ToNearestAway", ToNearestAway.String())
	assert.Equal(t, "ToZero", ToZero.String())
	assert.Equal(t, "AwayFromZero", AwayFromZero.String())
	assert.Equal(t, "ToNegativeInf", ToNegativeInf.String())
	assert.Equal(t, "ToPositiveInf", ToPositiveInf.String())
	assert.Equal(t, "ToExact", ToExact.String())
	assert.Contains(t, RoundingMode(99).String(), "RoundingMode(99)")
}

func TestAccuracyString(t *testing.T) {
	assert.Equal(t, "Below", Below.String())
	assert.Equal(t, "Exact", Exact.String())
	assert.Equal(t, "Above", Above.String())
}

func TestOrderingString(t *testing.T) {
	assert.Equal(t, "Less", Less.String())
	assert.Equal(t, "Equal", Equal.String())
	assert.Equal(t, "Greater", Greater.String())
}

func TestErrNaNError(t *testing.T) {
	err := ErrNaN{"boom"}
	assert.Equal(t, "boom", err.Error())
	var asErr error = err
	assert.EqualError(t, asErr, "boom")
}
