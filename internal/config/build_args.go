package config

import (
	"fmt"
)

// Filled by the build pipeline via go build -ldflags.
var (
	ModuleName = "github/orbitpulse/orbit-gateway"

	Commit = "< 40 chars git commit hash injected at build time >"

	BuildDate = "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns "ModuleName @ Commit (BuildDate)".
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
