package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/boxgrid/cmd/boxgrid"
)

func main() {
	rootCmd := boxgrid.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, boxgrid.FormatError(err))
		os.Exit(1)
	}
}
