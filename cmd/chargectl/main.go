package main

import (
	"os"

	"seatbill/internal/cli"

	"github.com/fatih/color"
)

var version = "1.0.0"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
