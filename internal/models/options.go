package models

import (
	"path/filepath"
	"runtime"
)

// DefaultBasePackage is the root namespace used when none is configured
const DefaultBasePackage = "com.example.demo"

// Options holds the static configuration threaded through every generator call
type Options struct {
	BasePackage  string `yaml:"basePackage" json:"basePackage"`   // root namespace of all generated files
	OutputRoot   string `yaml:"outputRoot" json:"outputRoot"`     // directory logical paths are materialized under
	SourceRoot   string `yaml:"sourceRoot" json:"sourceRoot"`     // source directory inside OutputRoot
	ProjectName  string `yaml:"projectName" json:"projectName"`   // build project name, defaults to the base name of OutputRoot
	Workers      int    `yaml:"workers" json:"workers"`           // size of the per-class worker pool
	WrapOptional bool   `yaml:"wrapOptional" json:"wrapOptional"` // wrap nullable return types in Optional
	Scaffold     *bool  `yaml:"scaffold" json:"scaffold"`         // emit build files next to the sources
}

// DefaultOptions returns the default generation options
func DefaultOptions() Options {
	scaffold := true
	return Options{
		BasePackage: DefaultBasePackage,
		OutputRoot:  filepath.Join("out", "java"),
		SourceRoot:  filepath.Join("src", "main", "java"),
		Workers:     runtime.NumCPU(),
		Scaffold:    &scaffold,
	}
}

// ShouldScaffold reports whether build files are requested
func (o Options) ShouldScaffold() bool {
	return o.Scaffold == nil || *o.Scaffold
}

// Project returns the configured project name or derives it from OutputRoot
func (o Options) Project() string {
	if o.ProjectName != "" {
		return o.ProjectName
	}
	base := filepath.Base(filepath.Clean(o.OutputRoot))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "app"
	}
	return base
}

// WorkerCount returns a usable worker count
func (o Options) WorkerCount() int {
	if o.Workers < 1 {
		return 1
	}
	return o.Workers
}
