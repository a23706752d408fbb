package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/stratum/internal/cli"
	"github.com/toyz/stratum/internal/models"
)

func newCleanCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clean [out]",
		Short: "Delete generated Java files",
		Long: `Clean removes every .java file below the output directory whose first
line is the generated header. Hand written files are kept.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagnostics := rootOpts.diagnostics(cmd)

			dir := models.DefaultOptions().OutputRoot
			if len(args) == 1 {
				dir = args[0]
			}

			removed, err := cli.NewCleaner().CleanGeneratedFiles([]string{dir})
			for _, file := range removed {
				diagnostics.Verbose("Removed %s", file)
			}
			if err != nil {
				return rootOpts.report(cmd, err)
			}

			diagnostics.Success("Removed %d generated files from %s", len(removed), dir)
			return nil
		},
	}
}
