// Package main provides the CLI for the rocker-bogie dimension generator.
package main

import (
	"os"

	"github.com/leapstack-labs/rockerbogie/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
