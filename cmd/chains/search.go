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

func newSearch() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Searches the chain catalog by name or slug",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := command.WithServer(cmd.Context(), config.DefaultServiceConfigFromEnv(), func(ctx context.Context, s *api.Server) error {
				return runSearch(ctx, s, args[0])
			})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to search chains")
			}
		},
	}
}

func runSearch(ctx context.Context, s *api.Server, query string) error {
	records, err := s.Registry.Search(ctx, query)
	if err != nil {
		return err
	}

	for _, record := range records {
		fmt.Printf("%s (%s, chain id %d)\n", record.Name, record.Slug, record.ChainID)
	}

	return nil
}
