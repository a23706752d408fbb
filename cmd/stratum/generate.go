package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toyz/stratum/internal/cli"
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/utils"
)

// generateOptions holds flags for the generate command
type generateOptions struct {
	*rootOptions
	ConfigFile   string
	BasePackage  string
	OutputRoot   string
	Workers      int
	WrapOptional bool
	NoScaffold   bool
	DryRun       bool
	Watch        bool
	FailOnError  bool
}

func newGenerateCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &generateOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate <inputs...>",
		Short: "Generate Java sources from descriptor files",
		Long: `Generate reads class descriptors from .json, .yaml and .yml files and
writes the generated Java sources below <out>/src/main/java.

Inputs may be files or directories. A directory ending in '/...' is
scanned recursively.`,
		Example: `  stratum generate classes.json
  stratum generate ./descriptors/... --package org.acme.shop --out build/shop
  stratum generate api.yaml --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "YAML config file (defaults to ./"+utils.DefaultConfigFile+" when present)")
	cmd.Flags().StringVarP(&opts.BasePackage, "package", "p", "", "base Java package")
	cmd.Flags().StringVarP(&opts.OutputRoot, "out", "o", "", "output directory")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "number of classes generated in parallel")
	cmd.Flags().BoolVar(&opts.WrapOptional, "wrap-optional", false, "wrap nullable return types in Optional")
	cmd.Flags().BoolVar(&opts.NoScaffold, "no-scaffold", false, "skip Gradle build files")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the files that would be written")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "regenerate when inputs change")
	cmd.Flags().BoolVar(&opts.FailOnError, "fail-on-error", true, "exit with an error when any class fails")

	return cmd
}

// options loads the config file and applies the flags that were set
func (o *generateOptions) options(cmd *cobra.Command) (models.Options, error) {
	opts, err := utils.LoadOptions(o.ConfigFile)
	if err != nil {
		return models.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("package") {
		opts.BasePackage = o.BasePackage
	}
	if flags.Changed("out") {
		opts.OutputRoot = o.OutputRoot
	}
	if flags.Changed("workers") {
		opts.Workers = o.Workers
	}
	if flags.Changed("wrap-optional") {
		opts.WrapOptional = o.WrapOptional
	}
	if flags.Changed("no-scaffold") {
		scaffold := !o.NoScaffold
		opts.Scaffold = &scaffold
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, inputs []string) error {
	diagnostics := opts.diagnostics(cmd)
	reporter := opts.reporter(cmd)

	genOpts, err := opts.options(cmd)
	if err != nil {
		return opts.report(cmd, err)
	}

	diagnostics.Section("Stratum Code Generator")
	if opts.Verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.Indent()
		diagnostics.List("Base package: %s", genOpts.BasePackage)
		diagnostics.List("Output: %s", genOpts.OutputRoot)
		diagnostics.List("Workers: %d", genOpts.WorkerCount())
		diagnostics.Unindent()
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		configFile = utils.DefaultConfigFile
	}
	config := cli.Config{
		Inputs:      inputs,
		ConfigFile:  configFile,
		Options:     genOpts,
		DryRun:      opts.DryRun,
		FailOnError: opts.FailOnError,
	}
	generator := cli.NewGenerator(diagnostics, reporter)

	run := func() error {
		_, err := generator.Run(config)
		printSummary(diagnostics, generator.GetSummary(), opts.DryRun)
		if err != nil {
			reporter.ReportError(err)
			return errReported
		}
		return nil
	}

	err = run()
	if !opts.Watch {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	diagnostics.Info("Watching inputs for changes, press Ctrl+C to stop")
	return cli.NewWatcher(inputs, cli.DefaultDebounce, diagnostics).Watch(ctx, run)
}

func printSummary(diagnostics *utils.DiagnosticSystem, summary cli.GenerationSummary, dryRun bool) {
	if summary.RunID == "" {
		return
	}

	title := "Generation Complete!"
	if dryRun {
		title = "Dry Run Complete!"
	}
	diagnostics.Summary(title, map[string]interface{}{
		"Run":       summary.RunID,
		"Processed": summary.Processed,
		"Skipped":   summary.Skipped,
		"Failed":    summary.Failed,
		"Files":     len(summary.GeneratedFiles),
	})

	if dryRun || diagnostics.Level() >= utils.DiagnosticVerbose {
		diagnostics.Subsection("Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}
}
