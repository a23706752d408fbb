package cli

import "github.com/toyz/stratum/internal/models"

// Config holds the configuration for one CLI generation run
type Config struct {
	// Inputs is the list of descriptor files or directories to read
	// Directories ending in "/..." are scanned recursively
	Inputs []string

	// ConfigFile is the YAML config the options came from; it is skipped
	// when an input directory contains it
	ConfigFile string

	// Options are the generation options passed to the orchestrator
	Options models.Options

	// DryRun lists the files that would be written without touching the disk
	DryRun bool

	// FailOnError makes the run return an error when any class failed
	FailOnError bool
}
