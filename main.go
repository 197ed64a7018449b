package main

import (
	"os"

	"github.com/atelierhq/atelier/cli"
)

func main() {
	if err := cli.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
