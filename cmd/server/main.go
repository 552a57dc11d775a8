package main

import (
	"os"

	"github.com/fastygo/dayplanner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
