package service

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/service/dto"
	"github.com/fleshka4/v2-aggregator/internal/service/validate"
	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

// Quote returns the amount of TokenB worth AmountA at the pool's reserve ratio.
func (s *RouterService) Quote(ctx context.Context, req dto.QuoteRequest) (*uint256.Int, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
		return nil, err
	}

	reserveA, reserveB, err := s.lib.GetReserves(ctx, req.Factory, req.TokenA, req.TokenB)
	if err != nil {
		return nil, errors.Wrap(err, "s.lib.GetReserves")
	}

	amountB, err := uniswapv2.Quote(req.AmountA, reserveA, reserveB)
	if err != nil {
		return nil, errors.Wrap(err, "uniswapv2.Quote")
	}

	s.logger.Debug("quote",
		zap.Stringer("factory", req.Factory),
		zap.Stringer("token_a", req.TokenA),
		zap.Stringer("token_b", req.TokenB),
		zap.String("amount_a", req.AmountA.Dec()),
		zap.String("amount_b", amountB.Dec()),
	)

	return amountB, nil
}
