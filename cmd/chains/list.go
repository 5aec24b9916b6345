package chains

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/orbitpulse/orbit-gateway/internal/api"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/util/command"
)

func newList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists all known chains",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := command.WithServer(cmd.Context(), config.DefaultServiceConfigFromEnv(), runList); err != nil {
				log.Fatal().Err(err).Msg("Failed to list chains")
			}
		},
	}
}

func runList(ctx context.Context, s *api.Server) error {
	names, err := s.Registry.Names(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Println(name)
	}

	return nil
}
