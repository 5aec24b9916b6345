package test

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// RPCError mirrors the JSON-RPC error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RPCHandlerFunc produces the result for a single JSON-RPC method call.
type RPCHandlerFunc func(params []json.RawMessage) (interface{}, *RPCError)

// RPCNode is a scriptable JSON-RPC endpoint. Methods without a registered
// handler answer with -32601 like a node that does not expose that API.
type RPCNode struct {
	srv *httptest.Server

	mu       sync.Mutex
	handlers map[string]RPCHandlerFunc
	calls    map[string]int
}

// StartRPCNode starts an empty node and closes it on test cleanup.
func StartRPCNode(t *testing.T) *RPCNode {
	t.Helper()

	n := &RPCNode{
		handlers: map[string]RPCHandlerFunc{},
		calls:    map[string]int{},
	}
	n.srv = httptest.NewServer(http.HandlerFunc(n.handle))
	t.Cleanup(n.srv.Close)

	return n
}

func (n *RPCNode) URL() string {
	return n.srv.URL
}

// Close shuts the node down early, dials and calls fail from then on.
func (n *RPCNode) Close() {
	n.srv.Close()
}

// Handle registers fn for the given method.
func (n *RPCNode) Handle(method string, fn RPCHandlerFunc) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.handlers[method] = fn
}

// HandleResult registers a static result for the given method.
func (n *RPCNode) HandleResult(method string, result interface{}) {
	n.Handle(method, func([]json.RawMessage) (interface{}, *RPCError) {
		return result, nil
	})
}

// HandleError registers a static JSON-RPC error for the given method.
func (n *RPCNode) HandleError(method string, code int, message string) {
	n.Handle(method, func([]json.RawMessage) (interface{}, *RPCError) {
		return nil, &RPCError{Code: code, Message: message}
	})
}

// HandleBlockNumber answers eth_blockNumber with the given height.
func (n *RPCNode) HandleBlockNumber(number uint64) {
	n.HandleResult("eth_blockNumber", hexutil.Uint64(number))
}

// HandleHeader answers eth_getBlockByNumber with the given header for
// every queried block.
func (n *RPCNode) HandleHeader(header *types.Header) {
	n.HandleResult("eth_getBlockByNumber", header)
}

// HandleGasPrice answers eth_gasPrice with the given wei amount.
func (n *RPCNode) HandleGasPrice(wei *big.Int) {
	n.HandleResult("eth_gasPrice", (*hexutil.Big)(wei))
}

// HandleBalance answers eth_getBalance with the given wei amount.
func (n *RPCNode) HandleBalance(wei *big.Int) {
	n.HandleResult("eth_getBalance", (*hexutil.Big)(wei))
}

// HandleLogs answers eth_getLogs with the given logs.
func (n *RPCNode) HandleLogs(logs []types.Log) {
	n.HandleResult("eth_getLogs", logs)
}

// HandleContractCall answers eth_call with the given return data.
func (n *RPCNode) HandleContractCall(data []byte) {
	n.HandleResult("eth_call", hexutil.Bytes(data))
}

// Calls returns how often the given method was requested.
func (n *RPCNode) Calls(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.calls[method]
}

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

func (n *RPCNode) handle(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.calls[req.Method]++
	fn, ok := n.handlers[req.Method]
	n.mu.Unlock()

	resp := rpcResponse{JSONRPC: "2.0", ID: req.ID}

	if !ok {
		resp.Error = &RPCError{
			Code:    -32601,
			Message: fmt.Sprintf("the method %s does not exist/is not available", req.Method),
		}
	} else if result, rpcErr := fn(req.Params); rpcErr != nil {
		resp.Error = rpcErr
	} else {
		b, err := json.Marshal(result)
		if err != nil {
			resp.Error = &RPCError{Code: -32603, Message: err.Error()}
		} else {
			resp.Result = b
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}

// NewTestHeader returns a header carrying every field the client side
// requires to be present when decoding.
func NewTestHeader(number uint64, time uint64) *types.Header {
	return &types.Header{
		Number:     new(big.Int).SetUint64(number),
		Difficulty: big.NewInt(0),
		Time:       time,
	}
}

// NewTestLog returns a minimal log entry for eth_getLogs fixtures.
func NewTestLog(address common.Address, topics []common.Hash, blockNumber uint64) types.Log {
	return types.Log{
		Address:     address,
		Topics:      topics,
		BlockNumber: blockNumber,
	}
}
