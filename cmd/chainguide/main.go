package main

import (
	"os"

	"github.com/chainguide-labs/chainguide-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
