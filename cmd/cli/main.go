package main

import (
	"fmt"
	"os"

	"github.com/crucial707/postboard/cmd/cli/config"
	"github.com/crucial707/postboard/cmd/cli/root"
)

func main() {
	// Execute the root Cobra command
	if err := root.New(config.OpenDB, config.DatabaseURL).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
