package main

import (
	"github/orbitpulse/orbit-gateway/cmd"
)

func main() {
	cmd.Execute()
}
