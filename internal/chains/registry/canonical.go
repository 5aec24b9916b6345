package registry

import (
	"github/orbitpulse/orbit-gateway/internal/chains"
)

var etherCurrency = &chains.NativeCurrency{
	Name:     "Ether",
	Symbol:   "ETH",
	Decimals: 18,
}

// canonicalChains are the well known chains compiled into the gateway.
// They are trusted over the remote catalog and always listed first.
var canonicalChains = []chains.Record{
	{
		ChainID:        42161,
		Name:           "Arbitrum One",
		Slug:           "arbitrum-one",
		ParentChainID:  1,
		IsArbitrum:     true,
		IsMainnet:      true,
		RPCURL:         "https://arb1.arbitrum.io/rpc",
		ExplorerURL:    "https://arbiscan.io",
		NativeCurrency: etherCurrency,
		EthBridge: &chains.EthBridge{
			Bridge:         "0x8315177aB297bA92A06054cE80a67Ed4DBd7ed3a",
			Inbox:          "0x4Dbd4fc535Ac27206064B68FfCf827b0A60BAB3f",
			Outbox:         "0x0B9857ae2D4A3DBe74ffE1d7DF045bb7F96E4840",
			Rollup:         "0x5eF0D09d1E6204141B4d37530808eD19f60FBa35",
			SequencerInbox: "0x1c479675ad559DC151F6Ec7ed3FbF8ceE79582B6",
		},
	},
	{
		ChainID:        42170,
		Name:           "Arbitrum Nova",
		Slug:           "arbitrum-nova",
		ParentChainID:  1,
		IsArbitrum:     true,
		IsMainnet:      true,
		RPCURL:         "https://nova.arbitrum.io/rpc",
		ExplorerURL:    "https://nova.arbiscan.io",
		NativeCurrency: etherCurrency,
		EthBridge: &chains.EthBridge{
			Bridge:         "0xC1Ebd02f738644983b6C4B2d440b8e77DdE276Bd",
			Inbox:          "0xc4448b71118c9071Bcb9734A0EAc55D18A153949",
			Outbox:         "0xD4B80C3D7240325D18E645B49e6535A3Bf95cc58",
			Rollup:         "0xFb209827c58283535b744575e11953DCC4bEAD88",
			SequencerInbox: "0x211E1c4c7f1bF5351Ac850Ed10FD68CFfCF6c21b",
		},
	},
	{
		ChainID:        421614,
		Name:           "Arbitrum Sepolia",
		Slug:           "arbitrum-sepolia",
		ParentChainID:  11155111,
		IsArbitrum:     true,
		RPCURL:         "https://sepolia-rollup.arbitrum.io/rpc",
		ExplorerURL:    "https://sepolia.arbiscan.io",
		NativeCurrency: etherCurrency,
		IsTestnet:      true,
		EthBridge: &chains.EthBridge{
			Bridge:         "0x38f918D0E9F1b721EDaA41302E399fa1B79333a9",
			Inbox:          "0xaAe29B0366299461418F5324a79Afc425BE5ae21",
			Outbox:         "0x65f07C7D521164a4d5DaC6eB8Fac8DA067A3B78F",
			Rollup:         "0xd80810638dbDF9081b72C1B33c65375e807281C8",
			SequencerInbox: "0x6c97864CE4bEf387dE0b3310A44230f7E3F1be0D",
		},
	},
}
