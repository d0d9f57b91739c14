// Package main is the entry point for the pmpy CLI.
package main

import (
	"os"

	"github.com/f3rmion/pmpy/cmd/pmpy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
