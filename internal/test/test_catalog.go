package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github/orbitpulse/orbit-gateway/internal/chains"
)

// CatalogServer is a local stand-in for the public chain catalog document.
type CatalogServer struct {
	srv *httptest.Server

	mu       sync.Mutex
	doc      chains.CatalogDocument
	failing  bool
	requests int
}

// StartCatalogServer serves the given catalog document over HTTP and
// closes itself on test cleanup.
func StartCatalogServer(t *testing.T, doc chains.CatalogDocument) *CatalogServer {
	t.Helper()

	c := &CatalogServer{doc: doc}
	c.srv = httptest.NewServer(http.HandlerFunc(c.handle))
	t.Cleanup(c.srv.Close)

	return c
}

func (c *CatalogServer) handle(w http.ResponseWriter, _ *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requests++

	if c.failing {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.doc) //nolint:errcheck
}

func (c *CatalogServer) URL() string {
	return c.srv.URL
}

// Requests returns how often the catalog document was fetched.
func (c *CatalogServer) Requests() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.requests
}

// SetFailing makes the server answer with 500 until reset.
func (c *CatalogServer) SetFailing(failing bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failing = failing
}

// SetDocument swaps the served catalog document.
func (c *CatalogServer) SetDocument(doc chains.CatalogDocument) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.doc = doc
}

// DefaultCatalogDocument returns a small catalog fixture next to the
// canonical chains the registry always provides.
func DefaultCatalogDocument() chains.CatalogDocument {
	return chains.CatalogDocument{
		Mainnet: []chains.Record{
			{
				ChainID:       660279,
				Name:          "Xai",
				Slug:          "xai",
				ParentChainID: 42161,
				RPCURL:        "https://xai-chain.net/rpc",
				NativeCurrency: &chains.NativeCurrency{
					Name:     "Xai",
					Symbol:   "XAI",
					Decimals: 18,
				},
				EthBridge: &chains.EthBridge{
					Bridge:         "0x7dd8A76bdAeBE3BBBaCD7Aa87f1D4FB4AAa354a5",
					Inbox:          "0xaE21fDA3de92dE2FDAF606233b2863782Ba046F9",
					Outbox:         "0x1E400568AD4840dbE50FB32f306B842e9ddeF726",
					Rollup:         "0xC47DacFbAa80Bd9D8092F8762f0A0b1b4A2d9527",
					SequencerInbox: "0x995a9d3ca121D48d21087eDE20bc8acb2398c8B1",
				},
				TokenBridge: &chains.TokenBridge{
					ParentGatewayRouter: "0x22CCA5Dc96a4Ac1EC32c9c7C5ad4D66254a24C35",
					ChildGatewayRouter:  "0xd096e8dE90D34de758B0E0bA4a796eA2e1e272cF",
					ParentErc20Gateway:  "0xb591cE747CF19cF30e11d656EB94134F523A9e77",
					ChildErc20Gateway:   "0x0c71417917D24F4A6A6A55559B98c5cCEcb33F7a",
				},
				NativeToken: &chains.NativeToken{
					Name:     "Xai",
					Symbol:   "XAI",
					Decimals: 18,
					Address:  "0x4Cb9a7AE498CEDcBb5EAe9f25736aE7d428C9D66",
				},
				IsArbitrum: true,
			},
			{
				ChainID:       70700,
				Name:          "Proof of Play Apex",
				Slug:          "pop-apex",
				ParentChainID: 42161,
				RPCURL:        "https://rpc.apex.proofofplay.com",
			},
		},
		Testnet: []chains.Record{
			{
				ChainID:       37714555429,
				Name:          "Xai Testnet",
				Slug:          "xai-testnet",
				ParentChainID: 421614,
				RPCURL:        "https://testnet-v2.xai-chain.net/rpc",
			},
		},
	}
}
