package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/stratum/internal/classifier"
	"github.com/toyz/stratum/internal/cli"
	"github.com/toyz/stratum/internal/utils"
)

func newIRCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ir <inputs...>",
		Short: "Print the intermediate representation as YAML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := cli.NewGenerator(quiet(rootOpts, cmd), rootOpts.reporter(cmd))
			classes, buildErr := generator.BuildIR(args)
			if classes == nil && buildErr != nil {
				return errReported
			}
			if err := cli.WriteIR(cmd.OutOrStdout(), classes); err != nil {
				return err
			}
			if buildErr != nil {
				return errReported
			}
			return nil
		},
	}
}

func newClassifyCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <inputs...>",
		Short: "Print the role assigned to each class and the rule that chose it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			generator := cli.NewGenerator(quiet(rootOpts, cmd), rootOpts.reporter(cmd))
			classes, buildErr := generator.BuildIR(args)
			if classes == nil && buildErr != nil {
				return errReported
			}
			if err := cli.WriteClassifications(cmd.OutOrStdout(), classifier.Describe(classes)); err != nil {
				return err
			}
			if buildErr != nil {
				return errReported
			}
			return nil
		},
	}
}

// quiet returns diagnostics writing to stderr so stdout only carries command output
func quiet(o *rootOptions, cmd *cobra.Command) *utils.DiagnosticSystem {
	d := o.diagnostics(cmd)
	d.SetOutput(cmd.ErrOrStderr(), cmd.ErrOrStderr())
	return d
}
