package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/service/dto"
	"github.com/fleshka4/v2-aggregator/internal/service/validate"
	"github.com/fleshka4/v2-aggregator/internal/uniswapv2"
)

// AggregateOut routes req.Amount along req.Path choosing a venue per hop.
func (s *RouterService) AggregateOut(ctx context.Context, req dto.AggregationRequest) (dto.AggregationResult, error) {
	if err := validate.AggregationRequestValidate(req); err != nil {
		return dto.AggregationResult{}, err
	}

	amounts, used, err := s.lib.GetAggregationAmountsOut(ctx, s.candidates(req), req.Amount, req.Path)
	if err != nil {
		return dto.AggregationResult{}, errors.Wrap(err, "s.lib.GetAggregationAmountsOut")
	}

	s.logResult("aggregate out", amounts, used)
	return dto.AggregationResult{Amounts: amounts, Factories: used}, nil
}

// AggregateIn returns the inputs needed along req.Path to receive req.Amount,
// choosing a venue per hop from the end of the path.
func (s *RouterService) AggregateIn(ctx context.Context, req dto.AggregationRequest) (dto.AggregationResult, error) {
	if err := validate.AggregationRequestValidate(req); err != nil {
		return dto.AggregationResult{}, err
	}

	amounts, used, err := s.lib.GetAggregationAmountsIn(ctx, s.candidates(req), req.Amount, req.Path)
	if err != nil {
		return dto.AggregationResult{}, errors.Wrap(err, "s.lib.GetAggregationAmountsIn")
	}

	s.logResult("aggregate in", amounts, used)
	return dto.AggregationResult{Amounts: amounts, Factories: used}, nil
}

func (s *RouterService) candidates(req dto.AggregationRequest) uniswapv2.CandidateSet {
	set := uniswapv2.CandidateSet{MinAmounts: req.MinAmounts}

	if len(req.Factories) == 0 && len(req.Fees) == 0 {
		set.Factories, set.Fees = s.factories, s.fees
	} else {
		set.Factories = make([]uniswapv2.FactorySlot, len(req.Factories))
		for i, f := range req.Factories {
			set.Factories[i] = uniswapv2.SlotFromAddress(f)
		}
		set.Fees = req.Fees
	}

	if len(set.MinAmounts) == 0 {
		set.MinAmounts = make([]*uint256.Int, len(req.Path))
		for i := range set.MinAmounts {
			set.MinAmounts[i] = new(uint256.Int)
		}
	}

	return set
}

func (s *RouterService) logResult(msg string, amounts []*uint256.Int, used []common.Address) {
	if ce := s.logger.Check(zap.DebugLevel, msg); ce != nil {
		venues := make([]string, len(used))
		for i, f := range used {
			venues[i] = f.Hex()
		}
		ce.Write(
			zap.String("amount_first", amounts[0].Dec()),
			zap.String("amount_last", amounts[len(amounts)-1].Dec()),
			zap.Strings("venues", venues),
		)
	}
}
