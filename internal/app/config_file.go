package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/listingparse/internal/heuristic"
)

// FileConfig represents the optional single-file configuration schema. Its
// main purpose is per-deployment selector-table overrides, so the packaged
// cascades can be retargeted without touching extraction logic.
type FileConfig struct {
	Input string `yaml:"input" json:"input"`
	Out   string `yaml:"out" json:"out"`

	Max struct {
		Blocks int `yaml:"blocks" json:"blocks"`
	} `yaml:"max" json:"max"`

	PDF     bool `yaml:"pdf" json:"pdf"`
	Verbose bool `yaml:"verbose" json:"verbose"`

	Selectors heuristic.Selectors `yaml:"selectors" json:"selectors"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their flag defaults. Flags should already have been parsed; this
// lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == DefaultInputPath) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutDir == "" || cfg.OutDir == DefaultOutDir) && fc.Out != "" {
		cfg.OutDir = fc.Out
	}
	if (cfg.MaxBlocks == 0 || cfg.MaxBlocks == heuristic.DefaultMaxBlocks) && fc.Max.Blocks > 0 {
		cfg.MaxBlocks = fc.Max.Blocks
	}
	if !cfg.EnablePDF && fc.PDF {
		cfg.EnablePDF = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	cfg.Selectors.Merge(fc.Selectors)
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input path is required")
	}
	if strings.TrimSpace(cfg.OutDir) == "" {
		return errors.New("config: output directory is required")
	}
	if cfg.MaxBlocks < 0 {
		return errors.New("config: negative block cap is not allowed")
	}
	return nil
}
