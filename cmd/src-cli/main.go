package main

import (
	"os"

	"github.com/s8508235/src-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
