// Package config loads .pagecheck.yaml and supplies defaults for every
// threshold and catalog entry the rule suites use.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vertti/pagecheck/pkg/version"
)

// FileName is the config file searched for above the project root.
const FileName = ".pagecheck.yaml"

// Config is the complete run configuration read from disk.
type Config struct {
	Target     string        `yaml:"target"`
	DocsDir    string        `yaml:"docs_dir"`
	Syntax     Syntax        `yaml:"syntax"`
	Thresholds Thresholds    `yaml:"thresholds"`
	Size       Size          `yaml:"size"`
	Libraries  []Library     `yaml:"libraries"`
	Docs       Documentation `yaml:"docs"`
}

// Syntax configures the external JavaScript validator.
type Syntax struct {
	Command string        `yaml:"command"`
	Timeout time.Duration `yaml:"timeout"`
}

// Thresholds are strict upper bounds; a count equal to the bound passes.
type Thresholds struct {
	ConsoleLog int `yaml:"console_log"`
	InnerHTML  int `yaml:"inner_html"`
}

// Size holds the artifact size tiers as human strings ("100KB").
type Size struct {
	Good       string `yaml:"good"`
	Acceptable string `yaml:"acceptable"`
}

// Library is an external script reference the page is expected to load.
type Library struct {
	Name       string `yaml:"name"`
	Pattern    string `yaml:"pattern"`
	Package    string `yaml:"package"`
	Required   bool   `yaml:"required"`
	MinVersion string `yaml:"min_version"`
}

// Documentation lists the files expected next to the artifact.
type Documentation struct {
	Required  []string `yaml:"required"`
	Optional  []string `yaml:"optional"`
	Decisions string   `yaml:"decisions"`
	Package   string   `yaml:"package"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Target:  "index.html",
		DocsDir: "docs",
		Syntax: Syntax{
			Command: "node",
			Timeout: 10 * time.Second,
		},
		Thresholds: Thresholds{
			ConsoleLog: 5,
			InnerHTML:  20,
		},
		Size: Size{
			Good:       "100KB",
			Acceptable: "200KB",
		},
		Libraries: []Library{
			{
				Name:     "React",
				Pattern:  `(?i)\breact@|/react(\.production|\.development)?(\.min)?\.js`,
				Package:  "react",
				Required: true,
			},
			{
				Name:     "ReactDOM",
				Pattern:  `(?i)\breact-dom@|/react-dom(\.production|\.development)?(\.min)?\.js`,
				Package:  "react-dom",
				Required: true,
			},
			{
				Name:    "Tailwind CSS",
				Pattern: `(?i)cdn\.tailwindcss\.com|\btailwindcss@`,
				Package: "tailwindcss",
			},
		},
		Docs: Documentation{
			Required:  []string{"README.md", "docs/ARCHITECTURE.md"},
			Optional:  []string{"CHANGELOG.md", "LICENSE"},
			Decisions: "docs/decisions",
			Package:   "package.json",
		},
	}
}

// Load reads a config file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the project config file
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates data against the schema and decodes it into cfg.
// Keys absent from data keep the values already in cfg.
func Parse(data []byte, cfg *Config) error {
	if errs := ValidateBytes(data); len(errs) > 0 {
		return &SchemaError{Problems: errs}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return cfg.Validate()
}

// Validate checks the values the schema cannot express.
func (c *Config) Validate() error {
	for _, lib := range c.Libraries {
		if _, err := regexp.Compile(lib.Pattern); err != nil {
			return fmt.Errorf("library %q: invalid pattern: %w", lib.Name, err)
		}
		if lib.MinVersion != "" {
			if _, err := version.Parse(lib.MinVersion); err != nil {
				return fmt.Errorf("library %q: %w", lib.Name, err)
			}
		}
	}
	good, acceptable, err := c.SizeLimits()
	if err != nil {
		return err
	}
	if good >= acceptable {
		return fmt.Errorf("size.good (%s) must be below size.acceptable (%s)", c.Size.Good, c.Size.Acceptable)
	}
	return nil
}

// SizeLimits returns the parsed size tiers in bytes.
func (c *Config) SizeLimits() (good, acceptable uint64, err error) {
	good, err = ParseSize(c.Size.Good)
	if err != nil {
		return 0, 0, fmt.Errorf("size.good: %w", err)
	}
	acceptable, err = ParseSize(c.Size.Acceptable)
	if err != nil {
		return 0, 0, fmt.Errorf("size.acceptable: %w", err)
	}
	return good, acceptable, nil
}
