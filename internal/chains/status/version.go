package status

import (
	"context"
	"fmt"
	"math/big"

	"github/orbitpulse/orbit-gateway/internal/chains/node"
)

// arbOSVersion reads the ArbOS version from the system precompile,
// falling back to web3_clientVersion and finally "Unknown". This branch
// never fails.
func (s *service) arbOSVersion(ctx context.Context, child *node.Client, dialErr error) string {
	if dialErr != nil {
		s.metrics.ObserveSubqueryFailure("version")
		return "Unknown"
	}

	raw, err := child.CallContract(ctx, ArbSysAddress, arbOSVersionSelector)
	if err == nil && len(raw) > 0 {
		reported := new(big.Int).SetBytes(raw)
		if reported.IsUint64() && reported.Uint64() > arbOSVersionOffset {
			return fmt.Sprintf("ArbOS %d", reported.Uint64()-arbOSVersionOffset)
		}
	}

	var clientVersion string
	if err := child.Call(ctx, &clientVersion, "web3_clientVersion"); err == nil && clientVersion != "" {
		return clientVersion
	}

	s.metrics.ObserveSubqueryFailure("version")

	return "Unknown"
}
