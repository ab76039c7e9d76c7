package main

import (
	"fmt"
	"os"

	"github.com/Gunvolt24/sand_conformance/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sand-server: %v\n", err)
		os.Exit(1)
	}
}
