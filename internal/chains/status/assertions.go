package status

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github/orbitpulse/orbit-gateway/internal/chains/node"
	"github/orbitpulse/orbit-gateway/internal/chains/resolver"
)

// assertions scans the last assertionScanWindow parent blocks for
// assertion creation and confirmation events at the rollup contract.
func (s *service) assertions(ctx context.Context, res resolver.Result, parent *node.Client, parentErr error) AssertionReport {
	if res.Record == nil || res.Record.EthBridge == nil || res.Record.EthBridge.Rollup == "" {
		return s.assertionsUnavailable("rollup contract address unknown for this chain", nil)
	}
	if parentErr != nil {
		return s.assertionsUnavailable("parent chain unreachable", parentErr)
	}

	head, err := parent.BlockNumber(ctx)
	if err != nil {
		return s.assertionsUnavailable("failed to read parent chain height", err)
	}

	var from uint64
	if head > assertionScanWindow {
		from = head - assertionScanWindow
	}

	rollup := common.HexToAddress(res.Record.EthBridge.Rollup)
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(head),
		Addresses: []common.Address{rollup},
	}

	query.Topics = [][]common.Hash{{NodeCreatedTopic}}
	createdLogs, err := parent.FilterLogs(ctx, query)
	if err != nil {
		return s.assertionsUnavailable("failed to scan assertion creation events", err)
	}

	query.Topics = [][]common.Hash{{NodeConfirmedTopic}}
	confirmedLogs, err := parent.FilterLogs(ctx, query)
	if err != nil {
		return s.assertionsUnavailable("failed to scan assertion confirmation events", err)
	}

	report := AssertionReport{}

	if len(createdLogs) > 0 {
		n := nodeNumFromLog(createdLogs[len(createdLogs)-1])
		report.LatestNodeCreated = &n
	}
	if len(confirmedLogs) > 0 {
		n := nodeNumFromLog(confirmedLogs[len(confirmedLogs)-1])
		report.LatestNodeConfirmed = &n
	}

	summary := fmt.Sprintf("Latest assertion created: %s, confirmed: %s",
		formatNodeNum(report.LatestNodeCreated), formatNodeNum(report.LatestNodeConfirmed))

	if report.LatestNodeCreated != nil && report.LatestNodeConfirmed != nil {
		if *report.LatestNodeCreated > *report.LatestNodeConfirmed {
			report.UnconfirmedGap = *report.LatestNodeCreated - *report.LatestNodeConfirmed
		}
		summary += fmt.Sprintf(", unconfirmed gap: %d", report.UnconfirmedGap)
	}

	report.Summary = summary

	return report
}

func (s *service) assertionsUnavailable(reason string, err error) AssertionReport {
	s.metrics.ObserveSubqueryFailure("assertions")

	report := AssertionReport{
		Summary: "Assertion status unavailable: " + reason,
	}
	if err != nil {
		report.Error = err.Error()
	}

	return report
}

// nodeNumFromLog extracts the indexed assertion number from the first
// event topic after the signature.
func nodeNumFromLog(l types.Log) uint64 {
	if len(l.Topics) < 2 {
		return 0
	}

	return new(big.Int).SetBytes(l.Topics[1].Bytes()).Uint64()
}

func formatNodeNum(n *uint64) string {
	if n == nil {
		return "None"
	}

	return strconv.FormatUint(*n, 10)
}
