package status_test

import (
	"encoding/json"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/orbitpulse/orbit-gateway/internal/chains"
	"github/orbitpulse/orbit-gateway/internal/chains/registry"
	"github/orbitpulse/orbit-gateway/internal/chains/resolver"
	"github/orbitpulse/orbit-gateway/internal/chains/status"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/metrics"
	"github/orbitpulse/orbit-gateway/internal/test"
)

var (
	testBridge         = "0x7dd8A76bdAeBE3BBBaCD7Aa87f1D4FB4AAa354a5"
	testRollup         = "0xC47DacFbAa80Bd9D8092F8762f0A0b1b4A2d9527"
	testSequencerInbox = "0x995a9d3ca121D48d21087eDE20bc8acb2398c8B1"
)

// newStatusService builds the resolve and status stack over a catalog
// with a single orbit chain whose endpoints point at the given nodes.
func newStatusService(t *testing.T, childURL string, parentURL string) status.Service {
	t.Helper()

	doc := chains.CatalogDocument{
		Mainnet: []chains.Record{
			{
				ChainID:       660279,
				Name:          "Xai",
				Slug:          "xai",
				ParentChainID: 42161,
				RPCURL:        childURL,
				EthBridge: &chains.EthBridge{
					Bridge:         testBridge,
					Rollup:         testRollup,
					SequencerInbox: testSequencerInbox,
				},
			},
		},
	}

	catalog := test.StartCatalogServer(t, doc)

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Catalog.URL = catalog.URL()
	cfg.RPC.RequestTimeout = 10 * time.Second
	cfg.RPC.ParentChainURLs = map[int64]string{42161: parentURL}

	m := metrics.New()

	reg, err := registry.New(cfg, m)
	require.NoError(t, err)

	return status.New(cfg, reg, resolver.New(reg), m)
}

// routeLogs answers eth_getLogs per requested event topic.
func routeLogs(n *test.RPCNode, logsByTopic map[common.Hash][]types.Log) {
	n.Handle("eth_getLogs", func(params []json.RawMessage) (interface{}, *test.RPCError) {
		var filter struct {
			Topics [][]common.Hash `json:"topics"`
		}
		if len(params) > 0 {
			if err := json.Unmarshal(params[0], &filter); err != nil {
				return nil, &test.RPCError{Code: -32602, Message: err.Error()}
			}
		}

		if len(filter.Topics) > 0 && len(filter.Topics[0]) > 0 {
			return logsByTopic[filter.Topics[0][0]], nil
		}

		return []types.Log{}, nil
	})
}

func TestChainStatusHealthy(t *testing.T) {
	child := test.StartRPCNode(t)
	parent := test.StartRPCNode(t)

	// child: ArbOS 32 reported as 87, current height and gas price
	child.HandleContractCall(common.BigToHash(big.NewInt(87)).Bytes())
	child.HandleBlockNumber(5000000)
	child.HandleGasPrice(big.NewInt(2500000000))

	// parent: one batch posted two minutes ago, message counter 10 below
	// the child height
	parent.HandleBlockNumber(22000000)
	parent.HandleHeader(test.NewTestHeader(21999500, uint64(time.Now().Unix()-120)))
	parent.HandleContractCall(common.BigToHash(big.NewInt(4999990)).Bytes())

	seqInbox := common.HexToAddress(testSequencerInbox)
	rollup := common.HexToAddress(testRollup)
	routeLogs(parent, map[common.Hash][]types.Log{
		status.SequencerBatchDeliveredTopic: {
			test.NewTestLog(seqInbox, []common.Hash{status.SequencerBatchDeliveredTopic, common.BigToHash(big.NewInt(812))}, 21999500),
		},
		status.NodeCreatedTopic: {
			test.NewTestLog(rollup, []common.Hash{status.NodeCreatedTopic, common.BigToHash(big.NewInt(120))}, 21999000),
		},
		status.NodeConfirmedTopic: {
			test.NewTestLog(rollup, []common.Hash{status.NodeConfirmedTopic, common.BigToHash(big.NewInt(100))}, 21998000),
		},
	})

	svc := newStatusService(t, child.URL(), parent.URL())

	report, err := svc.ChainStatus(t.Context(), "xai")
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "Xai", report.Chain.Name)
	assert.Equal(t, int64(660279), report.Chain.ChainID)
	assert.Equal(t, "resolved", report.Chain.Resolution)

	assert.Equal(t, "ArbOS 32", report.ArbOSVersion)

	require.Empty(t, report.BatchPosting.Error)
	assert.GreaterOrEqual(t, report.BatchPosting.LastBatchPostedSecondsAgo, int64(120))
	assert.Less(t, report.BatchPosting.LastBatchPostedSecondsAgo, int64(180))
	assert.Equal(t, "4999990", report.BatchPosting.BatchCount)
	assert.Equal(t, "10", report.BatchPosting.BacklogSize)
	assert.Contains(t, report.BatchPosting.Summary, "backlog 10 messages")

	require.Empty(t, report.Assertions.Error)
	require.NotNil(t, report.Assertions.LatestNodeCreated)
	require.NotNil(t, report.Assertions.LatestNodeConfirmed)
	assert.Equal(t, uint64(120), *report.Assertions.LatestNodeCreated)
	assert.Equal(t, uint64(100), *report.Assertions.LatestNodeConfirmed)
	assert.Equal(t, uint64(20), report.Assertions.UnconfirmedGap)
	assert.Contains(t, report.Assertions.Summary, "unconfirmed gap: 20")

	require.Empty(t, report.Gas.Error)
	assert.Equal(t, "2500000000", report.Gas.GasPriceWei)
	assert.Equal(t, "2.50", report.Gas.GasPriceGwei)
}

func TestChainStatusUpstreamsUnreachable(t *testing.T) {
	child := test.StartRPCNode(t)
	parent := test.StartRPCNode(t)
	child.Close()
	parent.Close()

	svc := newStatusService(t, child.URL(), parent.URL())

	report, err := svc.ChainStatus(t.Context(), "xai")
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, "Unknown", report.ArbOSVersion)

	assert.NotEmpty(t, report.BatchPosting.Error)
	assert.Equal(t, "0", report.BatchPosting.BacklogSize)
	assert.Contains(t, report.BatchPosting.Summary, "unavailable")

	assert.NotEmpty(t, report.Assertions.Error)
	assert.Nil(t, report.Assertions.LatestNodeCreated)
	assert.Nil(t, report.Assertions.LatestNodeConfirmed)

	assert.NotEmpty(t, report.Gas.Error)
	assert.Equal(t, "0", report.Gas.GasPriceWei)
	assert.Equal(t, "0.00", report.Gas.GasPriceGwei)
}

func TestChainStatusRawURLWithoutContracts(t *testing.T) {
	child := test.StartRPCNode(t)
	child.HandleBlockNumber(77)
	child.HandleGasPrice(big.NewInt(100000000))
	child.HandleResult("web3_clientVersion", "nitro/v3.1.2")

	svc := newStatusService(t, "http://unused.invalid", "http://unused.invalid")

	report, err := svc.ChainStatus(t.Context(), child.URL())
	require.NoError(t, err)

	assert.Equal(t, "resolved", report.Chain.Resolution)
	assert.Equal(t, child.URL(), report.Chain.RPCURL)
	assert.Zero(t, report.Chain.ChainID)

	// no catalog record, the parent side queries cannot run
	assert.Contains(t, report.BatchPosting.Summary, "core contract addresses unknown")
	assert.Contains(t, report.Assertions.Summary, "rollup contract address unknown")

	assert.Equal(t, "nitro/v3.1.2", report.ArbOSVersion)
	assert.Equal(t, "0.10", report.Gas.GasPriceGwei)
}

func TestBatchPostingStatusNoBatchesInWindow(t *testing.T) {
	child := test.StartRPCNode(t)
	parent := test.StartRPCNode(t)

	child.HandleBlockNumber(100)
	parent.HandleBlockNumber(22000000)
	parent.HandleLogs([]types.Log{})

	svc := newStatusService(t, child.URL(), parent.URL())

	report, err := svc.BatchPostingStatus(t.Context(), "xai")
	require.NoError(t, err)

	assert.Empty(t, report.Error)
	assert.Equal(t, int64(999999), report.LastBatchPostedSecondsAgo)
	assert.Equal(t, "0", report.BacklogSize)
	assert.Equal(t, "No batches posted in the last 10000 parent blocks", report.Summary)
}

func TestBatchPostingStatusBacklogFloorsAtZero(t *testing.T) {
	child := test.StartRPCNode(t)
	parent := test.StartRPCNode(t)

	// counter ahead of the child height
	child.HandleBlockNumber(50)
	parent.HandleBlockNumber(22000000)
	parent.HandleHeader(test.NewTestHeader(21999500, uint64(time.Now().Unix()-60)))
	parent.HandleContractCall(common.BigToHash(big.NewInt(100)).Bytes())

	seqInbox := common.HexToAddress(testSequencerInbox)
	parent.HandleLogs([]types.Log{
		test.NewTestLog(seqInbox, []common.Hash{status.SequencerBatchDeliveredTopic, common.BigToHash(big.NewInt(1))}, 21999500),
	})

	svc := newStatusService(t, child.URL(), parent.URL())

	report, err := svc.BatchPostingStatus(t.Context(), "xai")
	require.NoError(t, err)

	assert.Empty(t, report.Error)
	assert.Equal(t, "0", report.BacklogSize)
}

func TestAssertionStatusNoEventsInWindow(t *testing.T) {
	child := test.StartRPCNode(t)
	parent := test.StartRPCNode(t)

	parent.HandleBlockNumber(22000000)
	parent.HandleLogs([]types.Log{})

	svc := newStatusService(t, child.URL(), parent.URL())

	report, err := svc.AssertionStatus(t.Context(), "xai")
	require.NoError(t, err)

	assert.Empty(t, report.Error)
	assert.Nil(t, report.LatestNodeCreated)
	assert.Nil(t, report.LatestNodeConfirmed)
	assert.Zero(t, report.UnconfirmedGap)
	assert.Equal(t, "Latest assertion created: None, confirmed: None", report.Summary)
}

func TestAssertionStatusConfirmedOnly(t *testing.T) {
	child := test.StartRPCNode(t)
	parent := test.StartRPCNode(t)

	parent.HandleBlockNumber(22000000)

	rollup := common.HexToAddress(testRollup)
	routeLogs(parent, map[common.Hash][]types.Log{
		status.NodeConfirmedTopic: {
			test.NewTestLog(rollup, []common.Hash{status.NodeConfirmedTopic, common.BigToHash(big.NewInt(55))}, 21990000),
		},
	})

	svc := newStatusService(t, child.URL(), parent.URL())

	report, err := svc.AssertionStatus(t.Context(), "xai")
	require.NoError(t, err)

	assert.Nil(t, report.LatestNodeCreated)
	require.NotNil(t, report.LatestNodeConfirmed)
	assert.Equal(t, uint64(55), *report.LatestNodeConfirmed)
	assert.Zero(t, report.UnconfirmedGap)
	assert.Equal(t, "Latest assertion created: None, confirmed: 55", report.Summary)
}

func TestGasPriceReport(t *testing.T) {
	child := test.StartRPCNode(t)
	child.HandleGasPrice(big.NewInt(12345678901))

	svc := newStatusService(t, child.URL(), "http://unused.invalid")

	report, err := svc.GasPrice(t.Context(), "xai")
	require.NoError(t, err)

	assert.Empty(t, report.Error)
	assert.Equal(t, "12345678901", report.GasPriceWei)
	assert.Equal(t, "12.35", report.GasPriceGwei)
	assert.Contains(t, report.Summary, "12.35")
}

func TestArbOSVersionFromPrecompile(t *testing.T) {
	child := test.StartRPCNode(t)
	child.HandleContractCall(common.BigToHash(big.NewInt(95)).Bytes())

	svc := newStatusService(t, child.URL(), "http://unused.invalid")

	version, err := svc.ArbOSVersion(t.Context(), "xai")
	require.NoError(t, err)
	assert.Equal(t, "ArbOS 40", version)
}

func TestArbOSVersionClientVersionFallback(t *testing.T) {
	child := test.StartRPCNode(t)
	child.HandleResult("web3_clientVersion", "nitro/v3.6.5")

	svc := newStatusService(t, child.URL(), "http://unused.invalid")

	version, err := svc.ArbOSVersion(t.Context(), "xai")
	require.NoError(t, err)
	assert.Equal(t, "nitro/v3.6.5", version)
}

func TestArbOSVersionUnknown(t *testing.T) {
	child := test.StartRPCNode(t)
	child.Close()

	svc := newStatusService(t, child.URL(), "http://unused.invalid")

	version, err := svc.ArbOSVersion(t.Context(), "xai")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", version)
}
