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

package config

import (
	"path/filepath"
	"testing"

	"github.com/arrowarc/benchprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	groups := map[string]string{}
	readers := map[string]string{}
	for _, f := range cfg.Bench.Formats {
		groups[f.Name] = f.GroupName()
		readers[f.Name] = f.ReadFunction()
	}
	assert.Equal(t, map[string]string{"parquet": "parquet", "vortex": "vortex", "FastLanes": "fast_lanes"}, groups)
	assert.Equal(t, map[string]string{"parquet": "read_parquet", "vortex": "read_vortex", "FastLanes": "read_fls"}, readers)
	assert.Equal(t, [][]string{{"SUM", "AVG", "MIN", "MAX"}}, cfg.Bench.Operators)
}

func TestParseConfig(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "benchprep.yaml", `
bench:
  output_root: out/bench
  formats:
    - name: parquet
      source_dir: data/pq/
      column_prefix: c
convert:
  default_target: arrow
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out/bench", cfg.Bench.OutputRoot)
	require.Len(t, cfg.Bench.Formats, 1, "Lists in the file replace the defaults")
	assert.Equal(t, "read_pq", cfg.Bench.Formats[0].ReadFunction())
	assert.Equal(t, filepath.Join("out/bench", "pq"), cfg.Bench.OutputDir(cfg.Bench.Formats[0]))
	assert.Equal(t, Default().Bench.Operators, cfg.Bench.Operators, "Absent keys keep defaults")
	assert.Equal(t, "arrow", cfg.Convert.DefaultTarget)
}

func TestParseConfigUnknownKey(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "bad.yaml", "bench:\n  formatz: []\n")
	_, err := ParseConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		mutate      func(*Config)
		description string
	}{
		{func(c *Config) { c.Bench.OutputRoot = "" }, "Empty bench output root"},
		{func(c *Config) { c.Bench.Formats[0].SourceDir = "" }, "Format without source dir"},
		{func(c *Config) { c.Bench.Formats[1].Name = c.Bench.Formats[0].Name }, "Duplicate format"},
		{func(c *Config) { c.Bench.Formats[0].ColumnPrefix = "" }, "Format without column prefix"},
		{func(c *Config) { c.Bench.Operators = nil }, "No operator groups"},
		{func(c *Config) { c.Bench.Operators = [][]string{{"SUM", " "}} }, "Blank operator"},
		{func(c *Config) { c.Convert.Targets[0].Encoding = "orc" }, "Unsupported encoding"},
		{func(c *Config) { c.Convert.Targets[1].Name = "PARQUET" }, "Duplicate target ignoring case"},
		{func(c *Config) { c.Convert.DefaultTarget = "vortex" }, "Default target not declared"},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConvertTarget(t *testing.T) {
	cfg := Default().Convert

	target, err := cfg.Target("parquet")
	require.NoError(t, err)
	assert.Equal(t, "Parquet", target.Name)
	assert.Equal(t, filepath.Join("synth-data", "parquet", "data-10-2-normal-0.5.parquet"),
		cfg.Path(target, "raw/data-10-2-normal-0.5.csv"))

	_, err = cfg.Target("FastLanes")
	assert.ErrorIs(t, err, ErrUnknownTarget)
	assert.Equal(t, []string{"Parquet", "Arrow"}, cfg.TargetNames())
}
