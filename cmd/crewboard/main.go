package main

import (
	"os"

	"github.com/rlankford/crewboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
