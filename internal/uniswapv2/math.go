package uniswapv2

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
	"github.com/fleshka4/v2-aggregator/internal/dexmath"
)

// Uniswap V2 fee constants: 0.3% = 997/1000.
var (
	feeMul = uint256.NewInt(997)
	feeDen = uint256.NewInt(1000)

	// Parameterized fees are numerators out of 10000.
	feeBase = uint256.NewInt(10000)

	one = uint256.NewInt(1)
)

// Quote returns the amount of the other asset worth amountA at the current
// reserve ratio: amountB = amountA * reserveB / reserveA. No fee is applied.
func Quote(amountA, reserveA, reserveB *uint256.Int) (*uint256.Int, error) {
	if isZero(amountA) {
		return nil, errors.Wrap(apperrors.ErrInsufficientAmount, "quote")
	}
	if isZero(reserveA) || isZero(reserveB) {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "quote")
	}
	return dexmath.MulDiv(amountA, reserveB, reserveA)
}

// GetAmountOut returns the output of swapping amountIn with the 0.3% fee:
// amountOut = (amountIn*997 * reserveOut) / (reserveIn*1000 + amountIn*997)
func GetAmountOut(amountIn, reserveIn, reserveOut *uint256.Int) (*uint256.Int, error) {
	return amountOut(amountIn, reserveIn, reserveOut, feeMul, feeDen)
}

// GetAmountOutWithFee is GetAmountOut with fee given as the retained numerator
// out of 10000 (9970 is the 0.3% tier).
func GetAmountOutWithFee(amountIn, reserveIn, reserveOut *uint256.Int, fee uint64) (*uint256.Int, error) {
	return amountOut(amountIn, reserveIn, reserveOut, uint256.NewInt(fee), feeBase)
}

// GetAmountIn returns the input needed to receive amountOut with the 0.3% fee:
// amountIn = reserveIn*amountOut*1000 / ((reserveOut-amountOut)*997) + 1
//
// The +1 makes GetAmountOut(GetAmountIn(x)) >= x; it is not an exact inverse.
func GetAmountIn(amountOut, reserveIn, reserveOut *uint256.Int) (*uint256.Int, error) {
	return amountIn(amountOut, reserveIn, reserveOut, feeMul, feeDen)
}

// GetAmountInWithFee is GetAmountIn with fee given as the retained numerator out of 10000.
func GetAmountInWithFee(amountOut, reserveIn, reserveOut *uint256.Int, fee uint64) (*uint256.Int, error) {
	return amountIn(amountOut, reserveIn, reserveOut, uint256.NewInt(fee), feeBase)
}

func amountOut(amountIn, reserveIn, reserveOut, mul, den *uint256.Int) (*uint256.Int, error) {
	if isZero(amountIn) {
		return nil, errors.Wrap(apperrors.ErrInsufficientInputAmount, "get amount out")
	}
	if isZero(reserveIn) || isZero(reserveOut) {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "get amount out")
	}

	withFee, err := dexmath.Mul(amountIn, mul)
	if err != nil {
		return nil, errors.Wrap(err, "amountIn * fee")
	}
	num, err := dexmath.Mul(withFee, reserveOut)
	if err != nil {
		return nil, errors.Wrap(err, "numerator")
	}
	scaled, err := dexmath.Mul(reserveIn, den)
	if err != nil {
		return nil, errors.Wrap(err, "reserveIn * denominator")
	}
	denominator, err := dexmath.Add(scaled, withFee)
	if err != nil {
		return nil, errors.Wrap(err, "denominator")
	}

	return dexmath.Div(num, denominator)
}

func amountIn(amountOut, reserveIn, reserveOut, mul, den *uint256.Int) (*uint256.Int, error) {
	if isZero(amountOut) {
		return nil, errors.Wrap(apperrors.ErrInsufficientOutputAmount, "get amount in")
	}
	if isZero(reserveIn) || isZero(reserveOut) {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "get amount in")
	}

	num, err := dexmath.Mul(reserveIn, amountOut)
	if err != nil {
		return nil, errors.Wrap(err, "reserveIn * amountOut")
	}
	num, err = dexmath.Mul(num, den)
	if err != nil {
		return nil, errors.Wrap(err, "numerator")
	}
	// Underflows when amountOut exceeds reserveOut.
	remaining, err := dexmath.Sub(reserveOut, amountOut)
	if err != nil {
		return nil, errors.Wrap(err, "reserveOut - amountOut")
	}
	denominator, err := dexmath.Mul(remaining, mul)
	if err != nil {
		return nil, errors.Wrap(err, "denominator")
	}

	q, err := dexmath.Div(num, denominator)
	if err != nil {
		return nil, err
	}
	return dexmath.Add(q, one)
}
