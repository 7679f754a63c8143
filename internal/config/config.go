// Package config loads the HCL configuration file for rangegrid.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/lox/rangegrid/internal/fileutil"
)

// Config represents the complete configuration. Every block is optional;
// missing blocks take their defaults.
type Config struct {
	UI     *UISettings    `hcl:"ui,block"`
	Input  *InputSettings `hcl:"input,block"`
	Ranges *RangeSettings `hcl:"ranges,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	Theme    string `hcl:"theme,optional"`
	Compare  *bool  `hcl:"compare,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// InputSettings controls how taps are interpreted
type InputSettings struct {
	MultiClickMS int `hcl:"multi_click_ms,optional"`
}

// RangeSettings holds the ranges the grids start with, in range notation
type RangeSettings struct {
	First  string `hcl:"first,optional"`
	Second string `hcl:"second,optional"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	compare := true
	return &Config{
		UI: &UISettings{
			Theme:    "default",
			Compare:  &compare,
			LogLevel: "info",
			LogFile:  "rangegrid.log",
		},
		Input: &InputSettings{
			MultiClickMS: 350,
		},
		Ranges: &RangeSettings{},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

// applyDefaults fills in values missing from the file
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.Input == nil {
		c.Input = defaults.Input
	}
	if c.Ranges == nil {
		c.Ranges = defaults.Ranges
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.Compare == nil {
		c.UI.Compare = defaults.UI.Compare
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.Input.MultiClickMS == 0 {
		c.Input.MultiClickMS = defaults.Input.MultiClickMS
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.Input.MultiClickMS <= 0 {
		return fmt.Errorf("multi-click window must be positive")
	}

	return nil
}

// CompareEnabled reports whether the second grid is shown
func (c *Config) CompareEnabled() bool {
	return c.UI == nil || c.UI.Compare == nil || *c.UI.Compare
}

// MultiClickWindow returns the multi-click window as a duration
func (c *Config) MultiClickWindow() time.Duration {
	return time.Duration(c.Input.MultiClickMS) * time.Millisecond
}

// Save writes the configuration to an HCL file, replacing it atomically.
func Save(filename string, c *Config) error {
	c.applyDefaults()

	f := hclwrite.NewEmptyFile()
	root := f.Body()

	ui := root.AppendNewBlock("ui", nil).Body()
	ui.SetAttributeValue("theme", cty.StringVal(c.UI.Theme))
	ui.SetAttributeValue("compare", cty.BoolVal(c.CompareEnabled()))
	ui.SetAttributeValue("log_level", cty.StringVal(c.UI.LogLevel))
	ui.SetAttributeValue("log_file", cty.StringVal(c.UI.LogFile))
	root.AppendNewline()

	input := root.AppendNewBlock("input", nil).Body()
	input.SetAttributeValue("multi_click_ms", cty.NumberIntVal(int64(c.Input.MultiClickMS)))
	root.AppendNewline()

	ranges := root.AppendNewBlock("ranges", nil).Body()
	ranges.SetAttributeValue("first", cty.StringVal(c.Ranges.First))
	ranges.SetAttributeValue("second", cty.StringVal(c.Ranges.Second))

	return fileutil.WriteAtomic(filename, 0o644, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
}
