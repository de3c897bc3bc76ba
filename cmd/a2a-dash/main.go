package main

import (
	"os"

	"github.com/lbrxagents/a2a-dash/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
