package main

import (
	"os"

	"github.com/wonny/brownian/cmd/gbm/commands"
)

// main is the entry point for the gbm CLI
// ⭐ Each stage runs as its own process: gbm generate → gbm scan → gbm evaluate
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
