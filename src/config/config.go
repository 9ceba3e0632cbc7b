// Package config holds the resolved run configuration. The engine receives
// this plain record whether the run was launched from command line flags or
// from a workflow runner's YAML file.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig is one benchmark invocation with all paths resolved
type RunConfig struct {

	// TrueTSV is the ground truth containment table
	TrueTSV string `yaml:"true_tsv"`

	// PredTSV is the predicted containment table
	PredTSV string `yaml:"pred_tsv"`

	// Output is the file to write the JSON report to (STDOUT when empty)
	Output string `yaml:"output,omitempty"`

	// LogFile is where run logging goes
	LogFile string `yaml:"log,omitempty"`
}

// Validate checks that the required inputs are set
func (conf *RunConfig) Validate() error {
	if conf.TrueTSV == "" {
		return fmt.Errorf("no true containment table set (true_tsv)")
	}
	if conf.PredTSV == "" {
		return fmt.Errorf("no predicted containment table set (pred_tsv)")
	}
	return nil
}

// LoadYAML decodes a run configuration from a YAML stream
func LoadYAML(r io.Reader) (*RunConfig, error) {
	decoder := yaml.NewDecoder(r)
	var conf RunConfig
	if err := decoder.Decode(&conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

// LoadYAMLFile decodes a run configuration from a YAML file on disk
func LoadYAMLFile(path string) (*RunConfig, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return LoadYAML(fh)
}
