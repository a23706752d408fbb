package generator

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/toyz/stratum/internal/classifier"
	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/parser"
)

// Orchestrator drives classification and synthesis for a batch of classes
type Orchestrator struct {
	opts     models.Options
	ctx      Context
	registry *Registry
	logger   Logger
}

// NewOrchestrator creates an orchestrator with the built-in generators
func NewOrchestrator(opts models.Options, logger Logger) *Orchestrator {
	return NewOrchestratorWithRegistry(opts, logger, DefaultRegistry())
}

// NewOrchestratorWithRegistry creates an orchestrator using the given generators
func NewOrchestratorWithRegistry(opts models.Options, logger Logger, registry *Registry) *Orchestrator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Orchestrator{
		opts:     opts,
		ctx:      NewContext(opts),
		registry: registry,
		logger:   logger,
	}
}

// job is one class to process, or the error that prevented building it
type job struct {
	index int
	name  string
	class *models.Class
	err   error
}

// classResult is the per-class output gathered back in input order
type classResult struct {
	files   []models.LogicalFile
	outcome Outcome
}

// Generate classifies and synthesizes every class
func (o *Orchestrator) Generate(classes []*models.Class) *Result {
	jobs := make([]job, len(classes))
	for i, cls := range classes {
		jobs[i] = job{index: i, class: cls}
		if cls == nil {
			jobs[i].err = errors.NewMalformedDescriptorError(i, "name")
		}
	}
	return o.run(jobs)
}

// Process builds the IR for each descriptor and generates the resulting classes.
// A malformed descriptor fails only its own class.
func (o *Orchestrator) Process(descriptors []map[string]any) *Result {
	jobs := make([]job, len(descriptors))
	for i, raw := range descriptors {
		cls, err := parser.Build(i, raw)
		name, _ := raw["name"].(string)
		jobs[i] = job{index: i, name: name, class: cls, err: err}
	}
	return o.run(jobs)
}

func (o *Orchestrator) run(jobs []job) *Result {
	results := make([]classResult, len(jobs))

	workers := o.opts.WorkerCount()
	if workers > len(jobs) {
		workers = len(jobs)
	}

	queue := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i] = o.process(jobs[i])
			}
		}()
	}
	for i := range jobs {
		queue <- i
	}
	close(queue)
	wg.Wait()

	result := &Result{Report: Report{RunID: uuid.NewString()}}
	for _, r := range results {
		switch r.outcome.Status {
		case StatusProcessed:
			result.Files = append(result.Files, r.files...)
			result.Report.Processed = append(result.Report.Processed, r.outcome)
		case StatusSkipped:
			result.Report.Skipped = append(result.Report.Skipped, r.outcome)
		default:
			result.Report.Failed = append(result.Report.Failed, r.outcome)
		}
	}
	return result
}

// process handles one class. Panics inside a generator fail that class only.
func (o *Orchestrator) process(j job) (res classResult) {
	outcome := Outcome{Index: j.index, Class: j.name}
	if j.class != nil {
		outcome.Class = j.class.Name
	}

	if j.err != nil {
		return failed(outcome, j.err, o.logger)
	}

	cls := j.class
	rule, ok := classifier.Match(cls)
	if !ok {
		warning := errors.NewUnclassifiedRoleWarning(cls.Name)
		warning.WithLocation(errors.NewLocation(j.index, cls.Name))
		o.logger.Warn("%s", warning.Error())
		outcome.Role = models.RoleUnclassified
		outcome.Status = StatusSkipped
		outcome.Reason = warning.Error()
		outcome.Err = warning
		return classResult{outcome: outcome}
	}
	outcome.Role = rule.Role
	outcome.Rule = rule.Name

	gen, ok := o.registry.Get(rule.Role)
	if !ok {
		err := errors.NewGenerationError(cls.Name, rule.Role.String(), "generate",
			fmt.Errorf("no generator registered for role %s", rule.Role))
		return failed(outcome, err, o.logger)
	}

	defer func() {
		if r := recover(); r != nil {
			err := errors.NewGenerationError(cls.Name, rule.Role.String(), "generate", fmt.Errorf("panic: %v", r))
			res = failed(outcome, err, o.logger)
		}
	}()

	files, err := gen.Generate(cls, o.ctx)
	if err != nil {
		return failed(outcome, err, o.logger)
	}

	for _, f := range files {
		outcome.Files = append(outcome.Files, f.RelativePath)
	}
	outcome.Status = StatusProcessed
	o.logger.Debug("%s classified as %s (%s), %d file(s)", cls.Name, rule.Role, rule.Name, len(files))
	return classResult{files: files, outcome: outcome}
}

func failed(outcome Outcome, err error, logger Logger) classResult {
	outcome.Status = StatusFailed
	outcome.Err = err
	outcome.Reason = err.Error()
	logger.Warn("class %d (%s) failed: %v", outcome.Index, outcome.Class, err)
	return classResult{outcome: outcome}
}
