package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

var version = "devel"

// New assembles the feedlint command tree.
func New() *cli.Command {
	return &cli.Command{
		Name:    "feedlint",
		Usage:   "Validate merchant product-catalog feeds against the commerce feed schema",
		Version: version,
		Commands: []*cli.Command{
			validateCmd(),
		},
	}
}

// Run executes the CLI with the process arguments.
func Run(ctx context.Context) error {
	return New().Run(ctx, os.Args)
}
