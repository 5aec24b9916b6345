package eth

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// IsAddress reports whether s is a 0x-prefixed 20 byte hex address.
func IsAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// IsTxHash reports whether s is a 0x-prefixed 32 byte hex hash.
func IsTxHash(s string) bool {
	if len(s) != 2+2*common.HashLength {
		return false
	}

	_, err := hexutil.Decode(s)

	return err == nil
}
