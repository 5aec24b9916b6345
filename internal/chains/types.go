package chains

// NativeCurrency describes the fee token of a chain.
type NativeCurrency struct {
	Name     string `json:"name" mapstructure:"name"`
	Symbol   string `json:"symbol" mapstructure:"symbol"`
	Decimals int    `json:"decimals" mapstructure:"decimals"`
}

// EthBridge holds the core rollup contract addresses on the parent chain.
type EthBridge struct {
	Bridge         string `json:"bridge" mapstructure:"bridge"`
	Inbox          string `json:"inbox" mapstructure:"inbox"`
	Outbox         string `json:"outbox" mapstructure:"outbox"`
	Rollup         string `json:"rollup" mapstructure:"rollup"`
	SequencerInbox string `json:"sequencerInbox" mapstructure:"sequencerInbox"`
}

// TokenBridge holds the token gateway contract addresses on both sides
// of the bridge.
type TokenBridge struct {
	ParentGatewayRouter string `json:"parentGatewayRouter,omitempty" mapstructure:"parentGatewayRouter"`
	ChildGatewayRouter  string `json:"childGatewayRouter,omitempty" mapstructure:"childGatewayRouter"`
	ParentErc20Gateway  string `json:"parentErc20Gateway,omitempty" mapstructure:"parentErc20Gateway"`
	ChildErc20Gateway   string `json:"childErc20Gateway,omitempty" mapstructure:"childErc20Gateway"`
	ParentWethGateway   string `json:"parentWethGateway,omitempty" mapstructure:"parentWethGateway"`
	ChildWethGateway    string `json:"childWethGateway,omitempty" mapstructure:"childWethGateway"`
}

// NativeToken describes a custom fee token replacing ether, including
// its ERC-20 address on the parent chain.
type NativeToken struct {
	Name     string `json:"name" mapstructure:"name"`
	Symbol   string `json:"symbol" mapstructure:"symbol"`
	Decimals int    `json:"decimals" mapstructure:"decimals"`
	Address  string `json:"address,omitempty" mapstructure:"address"`
}

// Record is a single chain catalog entry. Field names follow the wire
// format of the public chain catalog document.
type Record struct {
	ChainID        int64           `json:"chainId" mapstructure:"chainId"`
	Name           string          `json:"name" mapstructure:"name"`
	Slug           string          `json:"slug" mapstructure:"slug"`
	ParentChainID  int64           `json:"parentChainId" mapstructure:"parentChainId"`
	RPCURL         string          `json:"rpcUrl" mapstructure:"rpcUrl"`
	ExplorerURL    string          `json:"explorerUrl,omitempty" mapstructure:"explorerUrl"`
	NativeCurrency *NativeCurrency `json:"nativeCurrency,omitempty" mapstructure:"nativeCurrency"`
	EthBridge      *EthBridge      `json:"ethBridge,omitempty" mapstructure:"ethBridge"`
	TokenBridge    *TokenBridge    `json:"tokenBridge,omitempty" mapstructure:"tokenBridge"`
	NativeToken    *NativeToken    `json:"nativeToken,omitempty" mapstructure:"nativeToken"`
	IsArbitrum     bool            `json:"isArbitrum,omitempty" mapstructure:"isArbitrum"`
	IsMainnet      bool            `json:"isMainnet,omitempty" mapstructure:"isMainnet"`
	IsTestnet      bool            `json:"isTestnet,omitempty" mapstructure:"isTestnet"`
	IsCustom       bool            `json:"isCustom,omitempty" mapstructure:"isCustom"`
}

// CatalogDocument is the shape of the remote chain catalog.
type CatalogDocument struct {
	Mainnet []Record `json:"mainnet"`
	Testnet []Record `json:"testnet"`
}

// HasCoreContracts reports whether the record carries the parent-chain
// contract addresses required for batch and assertion queries. Safe on a
// nil receiver, endpoints resolved from a raw URL have no record.
func (r *Record) HasCoreContracts() bool {
	return r != nil &&
		r.EthBridge != nil &&
		r.EthBridge.Bridge != "" &&
		r.EthBridge.Rollup != "" &&
		r.EthBridge.SequencerInbox != ""
}

// CurrencySymbol returns the fee token symbol, defaulting to ETH. A
// native token override wins over the currency descriptor.
func (r *Record) CurrencySymbol() string {
	if r != nil && r.NativeToken != nil && r.NativeToken.Symbol != "" {
		return r.NativeToken.Symbol
	}
	if r != nil && r.NativeCurrency != nil && r.NativeCurrency.Symbol != "" {
		return r.NativeCurrency.Symbol
	}
	return "ETH"
}

// CurrencyDecimals returns the fee token decimals, defaulting to 18.
func (r *Record) CurrencyDecimals() int {
	if r != nil && r.NativeToken != nil && r.NativeToken.Decimals > 0 {
		return r.NativeToken.Decimals
	}
	if r != nil && r.NativeCurrency != nil && r.NativeCurrency.Decimals > 0 {
		return r.NativeCurrency.Decimals
	}
	return 18
}
