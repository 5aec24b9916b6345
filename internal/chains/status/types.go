package status

// ChainInfo identifies the chain a report was built for.
type ChainInfo struct {
	Name       string `json:"name"`
	ChainID    int64  `json:"chainId,omitempty"`
	RPCURL     string `json:"rpcUrl"`
	Resolution string `json:"resolution"`
}

// BatchPostingReport covers sequencer batch activity on the parent
// chain. A window without any batch carries the 999999 sentinel and a
// "0" backlog, an unreachable upstream carries zero values plus Error.
type BatchPostingReport struct {
	LastBatchPostedSecondsAgo int64  `json:"lastBatchPostedSecondsAgo"`
	BatchCount                string `json:"batchCount,omitempty"`
	BacklogSize               string `json:"backlogSize"`
	Summary                   string `json:"summary"`
	Error                     string `json:"error,omitempty"`
}

// AssertionReport covers rollup assertion activity on the parent chain.
// Sides without any event in the window stay nil and render as "None"
// in the summary.
type AssertionReport struct {
	LatestNodeCreated   *uint64 `json:"latestNodeCreated"`
	LatestNodeConfirmed *uint64 `json:"latestNodeConfirmed"`
	UnconfirmedGap      uint64  `json:"unconfirmedGap"`
	Summary             string  `json:"summary"`
	Error               string  `json:"error,omitempty"`
}

// GasReport carries the child chain gas price in wei and gwei.
type GasReport struct {
	GasPriceWei  string `json:"gasPriceWei"`
	GasPriceGwei string `json:"gasPriceGwei"`
	Summary      string `json:"summary"`
	Error        string `json:"error,omitempty"`
}

// Report is the composite chain status. Sub-reports are always all
// present, each carrying either data or its own error summary.
type Report struct {
	Chain        ChainInfo          `json:"chain"`
	ArbOSVersion string             `json:"arbosVersion"`
	BatchPosting BatchPostingReport `json:"batchPosting"`
	Assertions   AssertionReport    `json:"assertions"`
	Gas          GasReport          `json:"gas"`
}
