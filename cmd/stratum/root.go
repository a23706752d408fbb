package main

import (
	"github.com/spf13/cobra"

	"github.com/toyz/stratum/internal/cli"
	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/utils"
)

// Version is the tool version, overridden at build time with -ldflags
var Version = "0.1.0-dev"

// errReported marks an error that was already printed to the user
var errReported = errors.New(errors.UnknownErrorCode, "reported")

// rootOptions holds global flags for all commands
type rootOptions struct {
	Verbose  bool
	Quiet    bool
	NoColors bool
}

// newRootCommand creates the root command of the stratum CLI
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "stratum",
		Short: "Generate Java Spring sources from class descriptors",
		Long: `Stratum turns structured class descriptors (JSON or YAML) into a
layered Java Spring project: controllers, services, repositories,
entities and DTOs, plus Gradle build files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output and detailed error reporting")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "only show errors and final results")
	cmd.PersistentFlags().BoolVar(&opts.NoColors, "no-colors", false, "disable colored output")

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newIRCommand(opts))
	cmd.AddCommand(newClassifyCommand(opts))
	cmd.AddCommand(newCleanCommand(opts))
	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}

// diagnostics creates the diagnostic system for one command invocation
func (o *rootOptions) diagnostics(cmd *cobra.Command) *utils.DiagnosticSystem {
	var d *utils.DiagnosticSystem
	switch {
	case o.Quiet:
		d = utils.NewQuietDiagnostics()
	case o.Verbose:
		d = utils.NewVerboseDiagnostics()
	default:
		d = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	d.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if o.NoColors {
		d.SetColors(false)
	}
	return d
}

// reporter creates the error reporter for one command invocation
func (o *rootOptions) reporter(cmd *cobra.Command) *cli.DiagnosticReporter {
	r := cli.NewDiagnosticReporter(o.Verbose)
	r.SetOutput(cmd.ErrOrStderr())
	if o.NoColors {
		r.SetColors(false)
	}
	return r
}

// report prints err through the reporter and returns errReported
func (o *rootOptions) report(cmd *cobra.Command, err error) error {
	o.reporter(cmd).ReportError(err)
	return errReported
}
