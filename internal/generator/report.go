package generator

import (
	"fmt"
	"sort"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
)

// Status is the final state of one class in a run
type Status string

const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Outcome records what happened to one class
type Outcome struct {
	Index  int         `json:"index" yaml:"index"`
	Class  string      `json:"class" yaml:"class"`
	Role   models.Role `json:"role" yaml:"role"`
	Rule   string      `json:"rule,omitempty" yaml:"rule,omitempty"`     // classification rule that matched
	Files  []string    `json:"files,omitempty" yaml:"files,omitempty"`   // relative paths emitted
	Reason string      `json:"reason,omitempty" yaml:"reason,omitempty"` // warning or error message
	Status Status      `json:"status" yaml:"status"`
	Err    error       `json:"-" yaml:"-"`
}

// Report summarizes a run
type Report struct {
	RunID     string    `json:"runId" yaml:"runId"`
	Processed []Outcome `json:"processed" yaml:"processed"`
	Skipped   []Outcome `json:"skipped" yaml:"skipped"`
	Failed    []Outcome `json:"failed" yaml:"failed"`
}

// Summary returns a one line description of the run
func (r Report) Summary() string {
	return fmt.Sprintf("%d processed, %d skipped, %d failed", len(r.Processed), len(r.Skipped), len(r.Failed))
}

// HasFailures reports whether any class failed
func (r Report) HasFailures() bool {
	return len(r.Failed) > 0
}

// Errors collects the errors of failed classes, nil when none failed
func (r Report) Errors() error {
	var multi *errors.MultipleErrors
	for _, o := range r.Failed {
		var se errors.StratumError
		if errors.As(o.Err, &se) {
			errors.AddToMultiple(&multi, se)
			continue
		}
		errors.AddToMultiple(&multi, errors.Wrap(errors.UnknownErrorCode, "generation failed", o.Err).
			WithLocation(errors.NewLocation(o.Index, o.Class)))
	}
	return multi.ErrOrNil()
}

// Result is the output of one orchestrator run
type Result struct {
	Files  []models.LogicalFile `json:"files" yaml:"files"`
	Report Report               `json:"report" yaml:"report"`
}

// Collision is an output path produced by more than one class
type Collision struct {
	Path    string   `json:"path" yaml:"path"`
	Classes []string `json:"classes" yaml:"classes"`
}

// Collisions lists relative paths emitted by more than one class, sorted by path
func (r *Result) Collisions() []Collision {
	owners := make(map[string][]string)
	for _, o := range r.Report.Processed {
		for _, path := range o.Files {
			owners[path] = append(owners[path], o.Class)
		}
	}

	var collisions []Collision
	for path, classes := range owners {
		if len(classes) > 1 {
			collisions = append(collisions, Collision{Path: path, Classes: classes})
		}
	}
	sort.Slice(collisions, func(i, j int) bool { return collisions[i].Path < collisions[j].Path })
	return collisions
}
