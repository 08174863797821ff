package main

import (
	"os"

	"github.com/vocadrill/vocadrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
