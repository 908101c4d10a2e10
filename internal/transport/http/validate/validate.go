package validate

import (
	"io"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/sugawarayuuta/sonnet"

	"github.com/fleshka4/v2-aggregator/internal/service/dto"
	transportdto "github.com/fleshka4/v2-aggregator/internal/transport/http/dto"
)

const maxBodyBytes = 1 << 20

// QuoteRequestValidate validates /quote request and returns dto.
func QuoteRequestValidate(r *http.Request) (dto.QuoteRequest, int, error) {
	q := r.URL.Query()

	factory, err := parseAddress("factory", q.Get("factory"))
	if err != nil {
		return dto.QuoteRequest{}, http.StatusBadRequest, err
	}
	tokenA, err := parseAddress("token_a", q.Get("token_a"))
	if err != nil {
		return dto.QuoteRequest{}, http.StatusBadRequest, err
	}
	tokenB, err := parseAddress("token_b", q.Get("token_b"))
	if err != nil {
		return dto.QuoteRequest{}, http.StatusBadRequest, err
	}
	amount, err := parseAmount("amount_a", q.Get("amount_a"))
	if err != nil {
		return dto.QuoteRequest{}, http.StatusBadRequest, err
	}

	return dto.QuoteRequest{
		Factory: factory,
		TokenA:  tokenA,
		TokenB:  tokenB,
		AmountA: amount,
	}, 0, nil
}

// AmountsRequestValidate validates /amounts-out and /amounts-in requests.
// amountParam names the query parameter carrying the amount.
func AmountsRequestValidate(r *http.Request, amountParam string) (dto.AmountsRequest, int, error) {
	q := r.URL.Query()

	factory, err := parseAddress("factory", q.Get("factory"))
	if err != nil {
		return dto.AmountsRequest{}, http.StatusBadRequest, err
	}
	amount, err := parseAmount(amountParam, q.Get(amountParam))
	if err != nil {
		return dto.AmountsRequest{}, http.StatusBadRequest, err
	}
	raw := q.Get("path")
	if raw == "" {
		return dto.AmountsRequest{}, http.StatusBadRequest, errors.New("missing param path")
	}
	path, err := parseAddresses("path", strings.Split(raw, ","))
	if err != nil {
		return dto.AmountsRequest{}, http.StatusBadRequest, err
	}

	return dto.AmountsRequest{
		Factory: factory,
		Amount:  amount,
		Path:    path,
	}, 0, nil
}

// AggregationRequestValidate decodes and validates an aggregate request body.
func AggregationRequestValidate(r *http.Request) (dto.AggregationRequest, int, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return dto.AggregationRequest{}, http.StatusBadRequest, errors.Wrap(err, "read body")
	}
	if len(raw) > maxBodyBytes {
		return dto.AggregationRequest{}, http.StatusRequestEntityTooLarge, errors.New("body too large")
	}

	var body transportdto.AggregationBody
	if err := sonnet.Unmarshal(raw, &body); err != nil {
		return dto.AggregationRequest{}, http.StatusBadRequest, errors.Wrap(err, "bad json")
	}

	amount, err := parseAmount("amount", body.Amount)
	if err != nil {
		return dto.AggregationRequest{}, http.StatusBadRequest, err
	}
	path, err := parseAddresses("path", body.Path)
	if err != nil {
		return dto.AggregationRequest{}, http.StatusBadRequest, err
	}
	factories, err := parseAddresses("factories", body.Factories)
	if err != nil {
		return dto.AggregationRequest{}, http.StatusBadRequest, err
	}

	var floors []*uint256.Int
	if len(body.MinAmounts) > 0 {
		floors = make([]*uint256.Int, len(body.MinAmounts))
		for i, s := range body.MinAmounts {
			v, err := uint256.FromDecimal(s)
			if err != nil {
				return dto.AggregationRequest{}, http.StatusBadRequest, errors.Errorf("bad min_amounts[%d]", i)
			}
			floors[i] = v
		}
	}

	return dto.AggregationRequest{
		Factories:  factories,
		Fees:       body.Fees,
		MinAmounts: floors,
		Amount:     amount,
		Path:       path,
	}, 0, nil
}

func parseAddress(name, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, errors.Errorf("missing param %s", name)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Errorf("bad address format for %s", name)
	}
	return common.HexToAddress(s), nil
}

func parseAddresses(name string, values []string) ([]common.Address, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]common.Address, len(values))
	for i, v := range values {
		if !common.IsHexAddress(strings.TrimSpace(v)) {
			return nil, errors.Errorf("bad address format for %s[%d]", name, i)
		}
		out[i] = common.HexToAddress(strings.TrimSpace(v))
	}
	return out, nil
}

func parseAmount(name, s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.Errorf("missing param %s", name)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, errors.Errorf("bad %s", name)
	}
	if v.IsZero() {
		return nil, errors.Errorf("%s must be positive", name)
	}
	return v, nil
}
