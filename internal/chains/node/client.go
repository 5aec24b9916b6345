package node

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// Client wraps a single JSON-RPC endpoint with both the typed ethclient
// surface and raw namespaced calls. Endpoints differ per resolved chain,
// so clients are dialed per operation and must be closed by the caller.
type Client struct {
	url string
	rpc *rpc.Client
	eth *ethclient.Client
}

// Dial connects to the given endpoint URL.
func Dial(ctx context.Context, url string) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial RPC endpoint %s", url)
	}

	return &Client{
		url: url,
		rpc: rpcClient,
		eth: ethclient.NewClient(rpcClient),
	}, nil
}

// URL returns the endpoint this client is connected to.
func (c *Client) URL() string {
	return c.url
}

// Close closes the underlying connection.
func (c *Client) Close() {
	c.rpc.Close()
}

// BlockNumber returns the latest known block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	blockNumber, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get latest block number")
	}

	return blockNumber, nil
}

// HeaderByNumber returns the header of the given block, or the latest
// header if number is nil.
func (c *Client) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	header, err := c.eth.HeaderByNumber(ctx, number)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get block header")
	}

	return header, nil
}

// ChainID returns the chain id reported by the endpoint.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := c.eth.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain ID")
	}

	return chainID, nil
}

// SuggestGasPrice returns the current gas price in wei.
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get gas price")
	}

	return gasPrice, nil
}

// BalanceAt returns the balance of an address at the latest known block.
func (c *Client) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	balance, err := c.eth.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return balance, nil
}

// FilterLogs runs an eth_getLogs query.
func (c *Client) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	logs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter logs")
	}

	return logs, nil
}

// CallContract executes a read-only contract call against the latest block.
func (c *Client) CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	callMsg := ethereum.CallMsg{
		To:   &to,
		Data: data,
	}

	resp, err := c.eth.CallContract(ctx, callMsg, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call contract")
	}

	return resp, nil
}

// Call performs a raw JSON-RPC call, used for the namespaced methods the
// typed client does not cover (arb_*, admin_*, arbtrace_*, ...).
func (c *Client) Call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if err := c.rpc.CallContext(ctx, result, method, args...); err != nil {
		return errors.Wrapf(err, "failed to call %s", method)
	}

	return nil
}

// IsMethodNotSupported reports whether err is a JSON-RPC "method not
// found" response from the remote node.
func IsMethodNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == -32601 {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "method not found") ||
		strings.Contains(msg, "does not exist/is not available")
}
