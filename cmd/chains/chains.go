package chains

import (
	"github.com/spf13/cobra"
	"github/orbitpulse/orbit-gateway/internal/util/command"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("chains",
		newList(),
		newSearch(),
		newResolve(),
		newStatus(),
	)
}
