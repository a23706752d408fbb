package utils

import (
	"os"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
)

// DefaultConfigFile is looked up in the working directory when no config is given
const DefaultConfigFile = "stratum.yaml"

// LoadOptions reads a YAML config file and fills unset values from the defaults.
// An empty path loads DefaultConfigFile when it exists, otherwise the defaults.
func LoadOptions(path string) (models.Options, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return models.DefaultOptions(), nil
		}
		return models.Options{}, errors.WrapConfigurationError(path, "read", err)
	}

	var opts models.Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return models.Options{}, errors.WrapConfigurationError(path, "decode", err)
	}

	return MergeOptions(opts, models.DefaultOptions())
}

// MergeOptions fills the zero values of opts from base
func MergeOptions(opts, base models.Options) (models.Options, error) {
	if err := mergo.Merge(&opts, base); err != nil {
		return models.Options{}, errors.WrapConfigurationError("options", "merge", err)
	}
	return opts, nil
}
