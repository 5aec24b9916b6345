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

func newStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status <chain>",
		Short: "Prints the full status report of a chain",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := command.WithServer(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
				return runStatus(ctx, s, args[0])
			})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to query chain status")
			}
		},
	}
}

func runStatus(ctx context.Context, s *api.Server, chain string) error {
	report, err := s.Status.ChainStatus(ctx, chain)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}
