package http

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"

	"github.com/fleshka4/v2-aggregator/internal/apperrors"
	"github.com/fleshka4/v2-aggregator/internal/service/dto"
	transportdto "github.com/fleshka4/v2-aggregator/internal/transport/http/dto"
	"github.com/fleshka4/v2-aggregator/internal/transport/http/validate"
)

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.QuoteRequestValidate(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()

	out, err := s.svc.Quote(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(out.Dec())); err != nil {
		s.logger.Warn("quote write error", zap.Error(err))
	}
}

func (s *Server) handleAmountsOut(w http.ResponseWriter, r *http.Request) {
	s.handleAmounts(w, r, "amount_in", s.svc.AmountsOut)
}

func (s *Server) handleAmountsIn(w http.ResponseWriter, r *http.Request) {
	s.handleAmounts(w, r, "amount_out", s.svc.AmountsIn)
}

func (s *Server) handleAmounts(
	w http.ResponseWriter,
	r *http.Request,
	amountParam string,
	compute func(context.Context, dto.AmountsRequest) ([]*uint256.Int, error),
) {
	req, code, err := validate.AmountsRequestValidate(r, amountParam)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()

	amounts, err := compute(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, transportdto.AmountsResponse{Amounts: decimals(amounts)})
}

func (s *Server) handleAggregateOut(w http.ResponseWriter, r *http.Request) {
	s.handleAggregate(w, r, s.svc.AggregateOut)
}

func (s *Server) handleAggregateIn(w http.ResponseWriter, r *http.Request) {
	s.handleAggregate(w, r, s.svc.AggregateIn)
}

func (s *Server) handleAggregate(
	w http.ResponseWriter,
	r *http.Request,
	compute func(context.Context, dto.AggregationRequest) (dto.AggregationResult, error),
) {
	req, code, err := validate.AggregationRequestValidate(r)
	if err != nil {
		http.Error(w, err.Error(), code)
		return
	}

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()

	res, err := compute(ctx, req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, transportdto.AggregationResponse{
		Amounts:   decimals(res.Amounts),
		Factories: hexes(res.Factories),
	})
}

func (s *Server) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.requestTimeout)
}

// writeError maps a service error to a status code.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	case errors.Is(err, apperrors.ErrArithmeticRange):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, apperrors.ErrInvalidArgument), apperrors.IsLibraryError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrStateRead):
		s.logger.Warn("state read failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		s.logger.Error("unexpected service error", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	body, err := sonnet.Marshal(v)
	if err != nil {
		s.logger.Error("response encode error", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("response write error", zap.Error(err))
	}
}

func decimals(amounts []*uint256.Int) []string {
	out := make([]string, len(amounts))
	for i, a := range amounts {
		out[i] = a.Dec()
	}
	return out
}

func hexes(addrs []common.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.Hex()
	}
	return out
}
