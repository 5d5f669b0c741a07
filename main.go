package main

import (
	"os"

	"github.com/docweave/docweave/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
