// Command hoopsctl inspects the stat table registry and renders single tables
// from the stats API.
//
// Usage:
//
//	hoopsctl schema list
//	hoopsctl schema show per_game
//	hoopsctl schema check
//	hoopsctl render advanced --player jamesle01
//	hoopsctl render pgl_basic --player curryst01 --season 2015-16
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hoopsctl",
		Short:         "Hoops Reference table tooling",
		SilenceUsage: true,
	}

	root.AddCommand(schemaCmd())
	root.AddCommand(renderCmd())
	return root
}
