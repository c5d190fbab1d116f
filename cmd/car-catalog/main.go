// Package main is the entry point for the car catalog viewer.
package main

import (
	"os"

	"car-catalog/cmd/car-catalog/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
