// Package main provides the spacelint CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/spacelint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
