package status

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github/orbitpulse/orbit-gateway/internal/chains/node"
	"github/orbitpulse/orbit-gateway/internal/chains/resolver"
)

// batchPosting scans the last batchScanWindow parent blocks for
// sequencer batch events and reads the bridge message counter. The
// backlog is the child block height minus that counter, floored at zero.
func (s *service) batchPosting(ctx context.Context, res resolver.Result, child *node.Client, childErr error, parent *node.Client, parentErr error) BatchPostingReport {
	if res.Record == nil || !res.Record.HasCoreContracts() {
		return s.batchPostingUnavailable("core contract addresses unknown for this chain", nil)
	}
	if parentErr != nil {
		return s.batchPostingUnavailable("parent chain unreachable", parentErr)
	}

	head, err := parent.BlockNumber(ctx)
	if err != nil {
		return s.batchPostingUnavailable("failed to read parent chain height", err)
	}

	var from uint64
	if head > batchScanWindow {
		from = head - batchScanWindow
	}

	sequencerInbox := common.HexToAddress(res.Record.EthBridge.SequencerInbox)
	logs, err := parent.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(head),
		Addresses: []common.Address{sequencerInbox},
		Topics:    [][]common.Hash{{SequencerBatchDeliveredTopic}},
	})
	if err != nil {
		return s.batchPostingUnavailable("failed to scan sequencer inbox events", err)
	}

	if len(logs) == 0 {
		return BatchPostingReport{
			LastBatchPostedSecondsAgo: noBatchSentinelSeconds,
			BacklogSize:               "0",
			Summary:                   fmt.Sprintf("No batches posted in the last %d parent blocks", batchScanWindow),
		}
	}

	last := logs[len(logs)-1]
	header, err := parent.HeaderByNumber(ctx, new(big.Int).SetUint64(last.BlockNumber))
	if err != nil {
		return s.batchPostingUnavailable("failed to read batch block header", err)
	}

	secondsAgo := time.Now().Unix() - int64(header.Time)
	if secondsAgo < 0 {
		secondsAgo = 0
	}

	// the sequencer message counter lives on the parent chain bridge
	bridge := common.HexToAddress(res.Record.EthBridge.Bridge)
	raw, err := parent.CallContract(ctx, bridge, sequencerMessageCountSelector)
	if err != nil {
		return s.batchPostingUnavailable("failed to read bridge message counter", err)
	}
	counter := new(big.Int).SetBytes(raw)

	if childErr != nil {
		return s.batchPostingUnavailable("child chain unreachable", childErr)
	}

	height, err := child.BlockNumber(ctx)
	if err != nil {
		return s.batchPostingUnavailable("failed to read child chain height", err)
	}

	backlog := new(big.Int).Sub(new(big.Int).SetUint64(height), counter)
	if backlog.Sign() < 0 {
		backlog.SetInt64(0)
	}

	return BatchPostingReport{
		LastBatchPostedSecondsAgo: secondsAgo,
		BatchCount:                counter.String(),
		BacklogSize:               backlog.String(),
		Summary: fmt.Sprintf("Last batch posted %s ago, backlog %s messages",
			(time.Duration(secondsAgo) * time.Second).String(), backlog.String()),
	}
}

func (s *service) batchPostingUnavailable(reason string, err error) BatchPostingReport {
	s.metrics.ObserveSubqueryFailure("batch_posting")

	report := BatchPostingReport{
		BacklogSize: "0",
		Summary:     "Batch posting status unavailable: " + reason,
	}
	if err != nil {
		report.Error = err.Error()
	}

	return report
}
