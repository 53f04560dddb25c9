// Package main provides the iconname command.
package main

import (
	"os"

	"github.com/gaphor/iconname/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
