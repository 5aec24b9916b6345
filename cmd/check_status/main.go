//go:build tools
// +build tools

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github/orbitpulse/orbit-gateway/internal/chains/registry"
	"github/orbitpulse/orbit-gateway/internal/chains/resolver"
	"github/orbitpulse/orbit-gateway/internal/chains/status"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/metrics"
)

func main() {
	var (
		chain = flag.String("chain", "", "Chain name, slug or RPC URL")
	)
	flag.Parse()

	if *chain == "" {
		fmt.Println("Error: chain is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.DefaultServiceConfigFromEnv()
	ctx := context.Background()

	m := metrics.New()

	registryService, err := registry.New(cfg, m)
	if err != nil {
		fmt.Printf("Error creating chain registry: %v\n", err)
		os.Exit(1)
	}

	resolverService := resolver.New(registryService)
	statusService := status.New(cfg, registryService, resolverService, m)

	fmt.Printf("Querying status of %s...\n", *chain)

	report, err := statusService.ChainStatus(ctx, *chain)
	if err != nil {
		fmt.Printf("Error querying chain status: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Printf("Error rendering report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}
