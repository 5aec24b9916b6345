package status

import (
	"context"
	"fmt"

	"github/orbitpulse/orbit-gateway/internal/chains/node"
	"github/orbitpulse/orbit-gateway/internal/util/eth"
)

// gasPrice reads the current child chain gas price.
func (s *service) gasPrice(ctx context.Context, child *node.Client, childErr error) GasReport {
	if childErr != nil {
		return s.gasPriceUnavailable("child chain unreachable", childErr)
	}

	price, err := child.SuggestGasPrice(ctx)
	if err != nil {
		return s.gasPriceUnavailable("failed to read gas price", err)
	}

	gwei := eth.FormatGwei(price)

	return GasReport{
		GasPriceWei:  price.String(),
		GasPriceGwei: gwei,
		Summary:      fmt.Sprintf("Gas price: %s gwei", gwei),
	}
}

func (s *service) gasPriceUnavailable(reason string, err error) GasReport {
	s.metrics.ObserveSubqueryFailure("gas")

	report := GasReport{
		GasPriceWei:  "0",
		GasPriceGwei: "0.00",
		Summary:      "Gas price unavailable: " + reason,
	}
	if err != nil {
		report.Error = err.Error()
	}

	return report
}
