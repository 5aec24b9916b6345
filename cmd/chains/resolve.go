package chains

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/util/command"
)

func newResolve() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <chain>",
		Short: "Resolves a chain name, slug or RPC URL to an endpoint",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := command.WithServer(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
				return runResolve(ctx, s, args[0])
			})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to resolve chain")
			}
		},
	}
}

func runResolve(ctx context.Context, s *api.Server, chain string) error {
	result, err := s.Resolver.Resolve(ctx, chain)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}
