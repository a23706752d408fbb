package cli

import (
	"fmt"
	"time"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/generator"
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/scaffold"
	"github.com/toyz/stratum/internal/utils"
)

// GenerationSummary describes the last run of a Generator
type GenerationSummary struct {
	RunID          string
	InputFiles     []string
	Processed      int
	Skipped        int
	Failed         int
	GeneratedFiles []string // paths written, or that would be written on a dry run
	Duration       time.Duration
}

// Generator coordinates the CLI generation process
type Generator struct {
	scanner     *DirectoryScanner
	reporter    *DiagnosticReporter
	diagnostics *utils.DiagnosticSystem
	summary     GenerationSummary
}

// NewGenerator creates a new CLI generator logging through diagnostics
func NewGenerator(diagnostics *utils.DiagnosticSystem, reporter *DiagnosticReporter) *Generator {
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	if reporter == nil {
		reporter = NewDiagnosticReporter(diagnostics.Level() >= utils.DiagnosticVerbose)
	}
	return &Generator{
		scanner:     NewDirectoryScanner(),
		reporter:    reporter,
		diagnostics: diagnostics,
	}
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Load scans the configured inputs and decodes their descriptors
func (g *Generator) Load(inputs []string) ([]map[string]any, []Source, error) {
	files, err := g.scanner.ScanInputs(inputs)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, errors.New(errors.FileSystemErrorCode, "no descriptor files found").
			WithContext("inputs", inputs).
			WithSuggestions(
				"Pass .json, .yaml or .yml descriptor files",
				"Use the 'dir/...' pattern to scan directories recursively",
			)
	}

	g.summary.InputFiles = files
	g.diagnostics.Debug("Descriptor files: %v", files)

	return LoadDescriptors(files)
}

// Run executes the complete generation process
func (g *Generator) Run(config Config) (*generator.Result, error) {
	startTime := time.Now()
	g.summary = GenerationSummary{}

	if err := utils.ValidateOptions(config.Options); err != nil {
		return nil, errors.WrapConfigurationError("options", "validate", err)
	}

	g.diagnostics.Verbose("Starting code generation at %s", startTime.Format("15:04:05"))

	g.scanner.Exclude(config.ConfigFile)
	descriptors, sources, err := g.Load(config.Inputs)
	if err != nil {
		return nil, err
	}
	g.diagnostics.Info("Found %d class descriptors in %d files", len(descriptors), len(g.summary.InputFiles))

	orchestrator := generator.NewOrchestrator(config.Options, g.diagnostics)
	result := orchestrator.Process(descriptors)
	report := result.Report

	g.summary.RunID = report.RunID
	g.summary.Processed = len(report.Processed)
	g.summary.Skipped = len(report.Skipped)
	g.summary.Failed = len(report.Failed)

	for _, outcome := range report.Skipped {
		loc := locate(outcome, sources)
		message := fmt.Sprintf("%s: %s", loc, outcome.Reason)
		if outcome.Err != nil {
			message = errors.Relocate(outcome.Err, loc).Error()
		}
		g.reporter.ReportWarning(message)
	}
	for _, outcome := range report.Failed {
		loc := locate(outcome, sources)
		g.diagnostics.Error("%s failed", loc)
		g.reporter.ReportError(errors.Relocate(outcome.Err, loc))
	}

	if collisions := result.Collisions(); len(collisions) > 0 {
		var multi *errors.MultipleErrors
		for _, c := range collisions {
			errors.AddToMultiple(&multi, errors.NewCollisionError(c.Path, c.Classes))
		}
		return result, multi.ErrOrNil()
	}

	project, err := g.projectFiles(config.Options)
	if err != nil {
		return result, err
	}

	writer := utils.NewWriter(config.Options)
	if config.DryRun {
		for _, file := range result.Files {
			g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, writer.SourcePath(file))
		}
		for _, file := range project {
			g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, writer.ProjectPath(file))
		}
	} else {
		written, err := writer.WriteSources(result.Files)
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, written...)
		if err != nil {
			return result, err
		}

		written, err = writer.WriteProject(project)
		g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, written...)
		if err != nil {
			return result, err
		}
	}

	g.summary.Duration = time.Since(startTime)
	g.diagnostics.Verbose("Run %s finished in %s", report.RunID, g.summary.Duration)

	if config.FailOnError && report.HasFailures() {
		total := len(report.Processed) + len(report.Skipped) + len(report.Failed)
		return result, errors.Wrap(errors.GenerationErrorCode,
			fmt.Sprintf("%d of %d classes failed", len(report.Failed), total), report.Errors())
	}
	return result, nil
}

// projectFiles returns the scaffold files when requested
func (g *Generator) projectFiles(opts models.Options) ([]models.LogicalFile, error) {
	if !opts.ShouldScaffold() {
		return nil, nil
	}
	return scaffold.Gradle(opts)
}

// locate names the class of an outcome together with the file it came from
func locate(outcome generator.Outcome, sources []Source) errors.Location {
	if outcome.Index >= 0 && outcome.Index < len(sources) {
		src := sources[outcome.Index]
		return errors.Location{Input: src.File, Index: src.Index, Class: outcome.Class}
	}
	return errors.NewLocation(outcome.Index, outcome.Class)
}
