package chains

import (
	"github.com/pkg/errors"
)

var (
	// ErrCatalogUnavailable is returned when the chain catalog has never
	// been loaded and the remote document cannot be fetched.
	ErrCatalogUnavailable = errors.New("chain catalog unavailable")

	// ErrMalformedAddress is returned for inputs that are not a
	// 0x-prefixed 20 byte hex address.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrMalformedTxHash is returned for inputs that are not a
	// 0x-prefixed 32 byte hex hash.
	ErrMalformedTxHash = errors.New("malformed transaction hash")

	// ErrUnsupportedMethod is returned when a raw RPC method is outside
	// the allowed namespaces or rejected by the remote node.
	ErrUnsupportedMethod = errors.New("unsupported RPC method")
)
