package status

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ArbSysAddress is the system precompile present on every
// Arbitrum-family chain.
var ArbSysAddress = common.HexToAddress("0x0000000000000000000000000000000000000064")

// ArbSys.arbOSVersion() reports 55 plus the actual ArbOS version.
const arbOSVersionOffset = 55

const (
	// parent chain scan windows, in blocks
	batchScanWindow     = 10000
	assertionScanWindow = 50000

	// reported when no batch was found inside the scan window
	noBatchSentinelSeconds = 999999
)

// Event topics of the rollup contracts on the parent chain.
var (
	SequencerBatchDeliveredTopic = crypto.Keccak256Hash([]byte("SequencerBatchDelivered(uint256,bytes32,bytes32,bytes32,uint256,(uint64,uint64,uint64,uint64),uint8)"))
	NodeCreatedTopic             = crypto.Keccak256Hash([]byte("NodeCreated(uint64,bytes32,bytes32,bytes32,(((bytes32[2],uint64[2]),uint8),((bytes32[2],uint64[2]),uint8),uint64),bytes32,bytes32,uint256)"))
	NodeConfirmedTopic           = crypto.Keccak256Hash([]byte("NodeConfirmed(uint64,bytes32,bytes32)"))
)

var (
	arbOSVersionSelector          = crypto.Keccak256([]byte("arbOSVersion()"))[:4]
	sequencerMessageCountSelector = crypto.Keccak256([]byte("sequencerMessageCount()"))[:4]
)
