// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides IEEE-754 style contexts for bigfloat.Floats.
//
// All factory functions of the form
//
//    func (c *Context) NewT(x T) *bigfloat.Float
//
// create a new bigfloat.Float set to the value of x, and rounded using c's
// precision and rounding mode.
//
// Operators that set a receiver z to a function of other Float/Rational
// arguments like:
//
//    func (c *Context) Quo(z, x, y *bigfloat.Float) *bigfloat.Float
//
// set z to the result of the operation, rounded using c's precision and
// rounding mode, and return z.
//
// A Context catches NaN errors: if an operation generates a NaN, the operation
// will silently succeed with an undefined result. Further operations with the
// context will be no-ops (they simply return the receiver z) until
// (*Context).Err is called to check for errors.
//
// Although it does not exactly provide IEEE-754 NaNs, it provides a form of
// support for quiet NaNs.
package context

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/db47h/bigfloat"
)

const handleNaNs = true

// DefaultPrec is the precision newly constructed Contexts use when none is
// given explicitly.
const DefaultPrec = 64

// A Context is a wrapper around Floats that facilitates management of
// rounding modes, precision and error handling.
type Context struct {
	prec uint32
	mode bigfloat.RoundingMode
	err  error
}

// New creates a new context with the given precision and rounding mode. If
// prec is 0, it will be set to DefaultPrec.
func New(prec uint, mode bigfloat.RoundingMode) *Context {
	return new(Context).SetMode(mode).SetPrec(prec)
}

// Mode returns the rounding mode of c.
func (c *Context) Mode() bigfloat.RoundingMode {
	return c.mode
}

// Prec returns the mantissa precision of c, in bits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetMode sets c's rounding mode to mode and returns c.
func (c *Context) SetMode(mode bigfloat.RoundingMode) *Context {
	c.mode = mode
	return c
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > bigfloat.MaxPrec, it is set to bigfloat.MaxPrec. If prec == 0, it
// is set to DefaultPrec.
func (c *Context) SetPrec(prec uint) *Context {
	if prec == 0 {
		prec = DefaultPrec
	}
	if prec > bigfloat.MaxPrec {
		prec = bigfloat.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

// New returns a new bigfloat.Float with value 0, precision and rounding mode
// set to c's precision and rounding mode.
func (c *Context) New() *bigfloat.Float {
	return new(bigfloat.Float).SetMode(c.mode).SetPrec(uint(c.prec))
}

// NewInt returns a new *bigfloat.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewInt(x *big.Int) *bigfloat.Float {
	return c.New().SetInt(x)
}

// NewInt64 returns a new *bigfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewInt64(x int64) *bigfloat.Float {
	return c.New().SetInt64(x)
}

// NewUint64 returns a new *bigfloat.Float set to the (possibly rounded) value
// of x.
func (c *Context) NewUint64(x uint64) *bigfloat.Float {
	return c.New().SetUint64(x)
}

// NewRat returns a new *bigfloat.Float set to the (possibly rounded) value of
// x.
func (c *Context) NewRat(x *big.Rat) *bigfloat.Float {
	return c.New().SetRat(x)
}

// NewString returns a new Float with the value of s and a boolean indicating
// success. s must be in the format accepted by (*bigfloat.Float).SetString.
// The entire string (not just a prefix) must be valid for success. If the
// operation failed, the returned Float is nil. d's precision and rounding
// mode are set to c's precision and rounding mode.
func (c *Context) NewString(s string) (d *bigfloat.Float, success bool) {
	return c.New().SetString(s)
}

// Err returns the first error encountered since the last call to Err and
// clears the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Round sets z to the value of x and returns z rounded using c's precision
// and rounding mode.
func (c *Context) Round(z, x *bigfloat.Float) *bigfloat.Float {
	if handleNaNs {
		if c.err != nil {
			return z
		}
	}
	return c.apply(z.Copy(x))
}

// apply applies c's precision and rounding mode to z and returns z.
func (c *Context) apply(z *bigfloat.Float) *bigfloat.Float {
	z.SetMode(c.mode)
	if z.Prec() != uint(c.prec) {
		z.SetPrec(uint(c.prec))
	}
	return z
}

func (c *Context) recoverNaN(r **bigfloat.Float, z *bigfloat.Float) {
	if err := recover(); err != nil {
		var nerr bigfloat.ErrNaN
		if !errors.As(err.(error), &nerr) {
			panic(err)
		}
		c.err = nerr
		*r = z
	}
}

// Quo sets z to the rounded quotient x/y and returns z.
func (c *Context) Quo(z, x, y *bigfloat.Float) (r *bigfloat.Float) {
	r = z
	if handleNaNs {
		if c.err != nil {
			return z
		}
		defer c.recoverNaN(&r, z)
	}
	c.apply(z)
	z.QuoPrecRound(x, y, z.Prec(), z.Mode())
	if z.IsNaN() {
		c.err = fmt.Errorf("bigfloat/context: quotient is NaN%w", bigfloat.ErrNaN{})
	}
	return z
}

// QuoRational sets z to the rounded quotient x/y, with y a Rational, and
// returns z.
func (c *Context) QuoRational(z, x *bigfloat.Float, y *bigfloat.Rational) (r *bigfloat.Float) {
	r = z
	if handleNaNs {
		if c.err != nil {
			return z
		}
		defer c.recoverNaN(&r, z)
	}
	c.apply(z)
	z.QuoRationalPrecRound(x, y, z.Prec(), z.Mode())
	if z.IsNaN() {
		c.err = fmt.Errorf("bigfloat/context: quotient is NaN%w", bigfloat.ErrNaN{})
	}
	return z
}

// RationalQuo sets z to the rounded quotient x/y, with x a Rational, and
// returns z.
func (c *Context) RationalQuo(z *bigfloat.Float, x *bigfloat.Rational, y *bigfloat.Float) (r *bigfloat.Float) {
	r = z
	if handleNaNs {
		if c.err != nil {
			return z
		}
		defer c.recoverNaN(&r, z)
	}
	c.apply(z)
	z.RationalQuoPrecRound(x, y, z.Prec(), z.Mode())
	if z.IsNaN() {
		c.err = fmt.Errorf("bigfloat/context: quotient is NaN%w", bigfloat.ErrNaN{})
	}
	return z
}

// Neg sets z to the (possibly rounded) value of x with its sign negated,
// and returns z.
func (c *Context) Neg(z, x *bigfloat.Float) *bigfloat.Float {
	if handleNaNs {
		if c.err != nil {
			return z
		}
	}
	return c.apply(z).Neg(x)
}

// Abs sets z to the (possibly rounded) value |x| and returns z.
func (c *Context) Abs(z, x *bigfloat.Float) *bigfloat.Float {
	if handleNaNs {
		if c.err != nil {
			return z
		}
	}
	return c.apply(z).Abs(x)
}
