package main

import (
	"os"

	"github.com/azizk/campulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
