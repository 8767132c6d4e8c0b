// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

// Package config provides configuration utilities.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arrowarc/benchprep/internal/dataset"
	"github.com/huandu/xstrings"
	"gopkg.in/yaml.v3"
)

var ErrUnknownTarget = errors.New("unknown target format")

type Config struct {
	Bench   Bench   `yaml:"bench"`
	Convert Convert `yaml:"convert"`
}

// Bench configures benchmark-definition generation.
type Bench struct {
	OutputRoot string        `yaml:"output_root"`
	Formats    []BenchFormat `yaml:"formats"`
	Operators  [][]string    `yaml:"operators"`
}

// BenchFormat describes one columnar format whose datasets get benchmark files.
type BenchFormat struct {
	Name         string `yaml:"name"`
	SourceDir    string `yaml:"source_dir"`
	Group        string `yaml:"group"`
	ColumnPrefix string `yaml:"column_prefix"`
}

// Convert configures delimited-text to columnar conversion.
type Convert struct {
	OutputRoot    string   `yaml:"output_root"`
	DefaultTarget string   `yaml:"default_target"`
	Targets       []Target `yaml:"targets"`
}

// Target is a conversion output format.
type Target struct {
	Name      string   `yaml:"name"`
	Subdir    string   `yaml:"subdir"`
	Extension string   `yaml:"extension"`
	Encoding  Encoding `yaml:"encoding"`
}

// Encoding selects the writer used for a target.
type Encoding string

const (
	EncodingParquet Encoding = "parquet"
	EncodingArrow   Encoding = "arrow"
)

// Default mirrors the directory layout the benchmark runner expects.
func Default() *Config {
	return &Config{
		Bench: Bench{
			OutputRoot: "benchmark",
			Formats: []BenchFormat{
				{Name: "parquet", SourceDir: "synth-data/parquet", Group: "parquet", ColumnPrefix: "col"},
				{Name: "vortex", SourceDir: "synth-data/vortex", Group: "vortex", ColumnPrefix: "col"},
				{Name: "FastLanes", SourceDir: "synth-data/fls", ColumnPrefix: "COLUMN_"},
			},
			Operators: [][]string{{"SUM", "AVG", "MIN", "MAX"}},
		},
		Convert: Convert{
			OutputRoot:    "synth-data",
			DefaultTarget: "Parquet",
			Targets: []Target{
				{Name: "Parquet", Subdir: "parquet", Extension: "parquet", Encoding: EncodingParquet},
				{Name: "Arrow", Subdir: "arrow", Extension: "arrow", Encoding: EncodingArrow},
			},
		},
	}
}

// ParseConfig decodes a YAML file over the defaults. Lists present in the file
// replace the default lists wholesale.
func ParseConfig(configPath string) (*Config, error) {
	configFile, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer configFile.Close()

	config := Default()
	decoder := yaml.NewDecoder(configFile)
	decoder.KnownFields(true)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config '%s': %w", configPath, err)
	}

	return config, nil
}

// Load returns the defaults when configPath is empty, the parsed file otherwise.
// The result is validated either way.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath != "" {
		var err error
		if config, err = ParseConfig(configPath); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if err := c.validateBench(); err != nil {
		return err
	}
	if err := c.validateConvert(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBench() error {
	if c.Bench.OutputRoot == "" {
		return fmt.Errorf("bench output_root cannot be empty")
	}
	seen := make(map[string]bool)
	for _, format := range c.Bench.Formats {
		if format.Name == "" {
			return fmt.Errorf("bench format name cannot be empty")
		}
		if seen[format.Name] {
			return fmt.Errorf("bench format '%s' is declared twice", format.Name)
		}
		seen[format.Name] = true
		if format.SourceDir == "" {
			return fmt.Errorf("bench format '%s' must have a source_dir", format.Name)
		}
		if format.ColumnPrefix == "" {
			return fmt.Errorf("bench format '%s' must have a column_prefix", format.Name)
		}
	}
	if len(c.Bench.Operators) == 0 {
		return fmt.Errorf("bench needs at least one operator group")
	}
	for i, group := range c.Bench.Operators {
		if len(group) == 0 {
			return fmt.Errorf("operator group %d is empty", i)
		}
		for _, op := range group {
			if strings.TrimSpace(op) == "" {
				return fmt.Errorf("operator group %d has an empty operator", i)
			}
		}
	}
	return nil
}

func (c *Config) validateConvert() error {
	if c.Convert.OutputRoot == "" {
		return fmt.Errorf("convert output_root cannot be empty")
	}
	seen := make(map[string]bool)
	for _, target := range c.Convert.Targets {
		if target.Name == "" {
			return fmt.Errorf("target name cannot be empty")
		}
		key := strings.ToLower(target.Name)
		if seen[key] {
			return fmt.Errorf("target '%s' is declared twice", target.Name)
		}
		seen[key] = true
		if target.Subdir == "" || target.Extension == "" {
			return fmt.Errorf("target '%s' must have both subdir and extension", target.Name)
		}
		switch target.Encoding {
		case EncodingParquet, EncodingArrow:
		default:
			return fmt.Errorf("target '%s' has unsupported encoding '%s'", target.Name, target.Encoding)
		}
	}
	if _, err := c.Convert.Target(c.Convert.DefaultTarget); err != nil {
		return fmt.Errorf("default_target: %w", err)
	}
	return nil
}

// GroupName is the benchmark group; without an explicit group it is the snake-cased
// format name.
func (f BenchFormat) GroupName() string {
	if f.Group != "" {
		return f.Group
	}
	return xstrings.ToSnakeCase(f.Name)
}

// DirName is the base name of the source directory. It names both the reader
// function and the output subdirectory.
func (f BenchFormat) DirName() string {
	return filepath.Base(filepath.Clean(f.SourceDir))
}

// ReadFunction is the table function the benchmark runner loads the dataset with.
func (f BenchFormat) ReadFunction() string {
	return "read_" + f.DirName()
}

// OutputDir is where this format's benchmark files go.
func (b Bench) OutputDir(f BenchFormat) string {
	return filepath.Join(b.OutputRoot, f.DirName())
}

// Target finds a target by name, ignoring case.
func (c Convert) Target(name string) (Target, error) {
	for _, target := range c.Targets {
		if strings.EqualFold(target.Name, name) {
			return target, nil
		}
	}
	return Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}

// TargetNames lists the configured target names in declaration order.
func (c Convert) TargetNames() []string {
	names := make([]string, len(c.Targets))
	for i, target := range c.Targets {
		names[i] = target.Name
	}
	return names
}

// Path returns <output_root>/<subdir>/<stem>.<extension> for a source file.
func (c Convert) Path(target Target, sourcePath string) string {
	return filepath.Join(c.OutputRoot, target.Subdir, dataset.Stem(sourcePath)+"."+target.Extension)
}
