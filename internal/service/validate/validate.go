package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
	"github.com/fleshka4/v2-aggregator/internal/service/dto"
)

// MaxFee is the fee denominator; a fee is the retained numerator out of it.
const MaxFee = 10000

// QuoteRequestValidate validates a quote request.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	if req.Factory == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "factory address cannot be empty")
	}
	if req.AmountA == nil || req.AmountA.IsZero() {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount cannot be zero")
	}
	return nil
}

// AmountsRequestValidate validates a single-factory path request.
func AmountsRequestValidate(req dto.AmountsRequest) error {
	if req.Factory == (common.Address{}) {
		return errors.Wrap(apperrors.ErrInvalidArgument, "factory address cannot be empty")
	}
	if req.Amount == nil || req.Amount.IsZero() {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount cannot be zero")
	}
	return validatePath(req.Path)
}

// AggregationRequestValidate validates a multi-venue path request.
// Length agreement between the candidate slices is left to the router.
func AggregationRequestValidate(req dto.AggregationRequest) error {
	if req.Amount == nil || req.Amount.IsZero() {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount cannot be zero")
	}
	if err := validatePath(req.Path); err != nil {
		return err
	}
	for i, fee := range req.Fees {
		if fee == 0 || fee > MaxFee {
			return errors.Wrapf(apperrors.ErrInvalidArgument, "fees[%d] = %d out of range 1..%d", i, fee, MaxFee)
		}
	}
	for i, floor := range req.MinAmounts {
		if floor == nil {
			return errors.Wrapf(apperrors.ErrInvalidArgument, "min_amounts[%d] is missing", i)
		}
	}
	return nil
}

func validatePath(path []common.Address) error {
	if len(path) < 2 {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "path needs at least 2 tokens, got %d", len(path))
	}
	return nil
}
