// Package dexmath provides checked 256-bit integer arithmetic. Every operation
// returns a fresh value and fails with apperrors.ErrArithmeticRange instead of
// wrapping around.
package dexmath

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
)

// Add returns x + y.
func Add(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).AddOverflow(orZero(x), orZero(y))
	if overflow {
		return nil, errors.Wrapf(apperrors.ErrArithmeticRange, "add overflow: %s + %s", orZero(x).Dec(), orZero(y).Dec())
	}
	return z, nil
}

// Sub returns x - y.
func Sub(x, y *uint256.Int) (*uint256.Int, error) {
	z, underflow := new(uint256.Int).SubOverflow(orZero(x), orZero(y))
	if underflow {
		return nil, errors.Wrapf(apperrors.ErrArithmeticRange, "sub underflow: %s - %s", orZero(x).Dec(), orZero(y).Dec())
	}
	return z, nil
}

// Mul returns x * y.
func Mul(x, y *uint256.Int) (*uint256.Int, error) {
	z, overflow := new(uint256.Int).MulOverflow(orZero(x), orZero(y))
	if overflow {
		return nil, errors.Wrapf(apperrors.ErrArithmeticRange, "mul overflow: %s * %s", orZero(x).Dec(), orZero(y).Dec())
	}
	return z, nil
}

// Div returns x / y truncated toward zero.
func Div(x, y *uint256.Int) (*uint256.Int, error) {
	if y == nil || y.IsZero() {
		return nil, errors.Wrapf(apperrors.ErrArithmeticRange, "division by zero: %s / 0", orZero(x).Dec())
	}
	return new(uint256.Int).Div(orZero(x), y), nil
}

// MulDiv returns x * y / d, failing if the product overflows or d is zero.
func MulDiv(x, y, d *uint256.Int) (*uint256.Int, error) {
	num, err := Mul(x, y)
	if err != nil {
		return nil, err
	}
	return Div(num, d)
}

var zero = new(uint256.Int)

func orZero(x *uint256.Int) *uint256.Int {
	if x == nil {
		return zero
	}
	return x
}
