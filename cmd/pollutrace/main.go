// Package main is the entry point of the pollutrace CLI.
package main

import (
	"os"

	"github.com/lintang-b-s/Pollutrace/cmd/pollutrace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
