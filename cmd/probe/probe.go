package probe

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/orbitpulse/orbit-gateway/internal/config"
	"github/orbitpulse/orbit-gateway/internal/util/command"
)

const (
	verboseFlag string = "verbose"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}

func runProbe(cfg config.Server, path string, timeout time.Duration, verbose bool) {
	client := &http.Client{Timeout: timeout}

	res, err := client.Get(probeURL(cfg.Echo.ListenAddress, path))
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Probe failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to read probe response")
	}

	if verbose {
		fmt.Println(string(body))
	}

	if res.StatusCode != http.StatusOK {
		log.Fatal().Int("status", res.StatusCode).Str("path", path).Msg("Probe failed")
	}
}

func probeURL(listenAddress string, path string) string {
	if strings.HasPrefix(listenAddress, ":") {
		return "http://localhost" + listenAddress + path
	}

	return "http://" + listenAddress + path
}
