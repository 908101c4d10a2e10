package service

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/service/dto"
	"github.com/fleshka4/v2-aggregator/internal/service/validate"
)

// AmountsOut chains swaps of req.Amount along req.Path through req.Factory.
func (s *RouterService) AmountsOut(ctx context.Context, req dto.AmountsRequest) ([]*uint256.Int, error) {
	if err := validate.AmountsRequestValidate(req); err != nil {
		return nil, err
	}

	amounts, err := s.lib.GetAmountsOut(ctx, req.Factory, req.Amount, req.Path)
	if err != nil {
		return nil, errors.Wrap(err, "s.lib.GetAmountsOut")
	}

	s.logger.Debug("amounts out",
		zap.Stringer("factory", req.Factory),
		zap.Int("hops", len(req.Path)-1),
		zap.String("amount_in", req.Amount.Dec()),
		zap.String("amount_out", amounts[len(amounts)-1].Dec()),
	)

	return amounts, nil
}

// AmountsIn returns the inputs needed along req.Path to receive req.Amount.
func (s *RouterService) AmountsIn(ctx context.Context, req dto.AmountsRequest) ([]*uint256.Int, error) {
	if err := validate.AmountsRequestValidate(req); err != nil {
		return nil, err
	}

	amounts, err := s.lib.GetAmountsIn(ctx, req.Factory, req.Amount, req.Path)
	if err != nil {
		return nil, errors.Wrap(err, "s.lib.GetAmountsIn")
	}

	s.logger.Debug("amounts in",
		zap.Stringer("factory", req.Factory),
		zap.Int("hops", len(req.Path)-1),
		zap.String("amount_in", amounts[0].Dec()),
		zap.String("amount_out", req.Amount.Dec()),
	)

	return amounts, nil
}
