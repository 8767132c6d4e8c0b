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

// Package convert re-encodes raw delimited datasets into columnar target formats.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arrowarc/benchprep/encoder"
	"github.com/arrowarc/benchprep/internal/dataset"
	"github.com/arrowarc/benchprep/pipeline"
	"github.com/arrowarc/benchprep/pkg/common/config"
	"github.com/arrowarc/benchprep/pkg/csv"
	"github.com/arrowarc/benchprep/pkg/schema"
	"go.uber.org/zap"
)

// ErrNotFound is returned when the source dataset does not exist or is not a regular file.
var ErrNotFound = errors.New("source not found")

// sniffRows bounds how many source rows are checked against the inferred schema.
const sniffRows = 100

// Result describes the outcome of one conversion.
type Result struct {
	Source string
	Target string
	Format string
	// Skipped is set when the target already existed and overwrite was off.
	Skipped bool
	// Empty is set when the source had no rows and nothing was written.
	Empty         bool
	SchemaWritten bool
	Rows          int64
	Metrics       *pipeline.Metrics
}

// Converter stages a source file and hands it to an encoder.
type Converter struct {
	cfg    config.Convert
	enc    encoder.Encoder
	logger *zap.SugaredLogger
}

func NewConverter(cfg config.Convert, enc encoder.Encoder, logger *zap.SugaredLogger) *Converter {
	return &Converter{cfg: cfg, enc: enc, logger: logger}
}

// Convert writes sourcePath as target under the configured output root.
func (c *Converter) Convert(ctx context.Context, sourcePath string, target config.Target, overwrite bool) (*Result, error) {
	targetPath := c.cfg.Path(target, sourcePath)
	result := &Result{Source: sourcePath, Target: targetPath, Format: target.Name}

	if !overwrite {
		if _, err := os.Stat(targetPath); err == nil {
			c.logger.Infow("target exists, skipping", "target", targetPath)
			result.Skipped = true
			return result, nil
		}
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrNotFound, sourcePath)
		}
		return nil, fmt.Errorf("failed to stat source '%s': %w", sourcePath, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: '%s' is not a regular file", ErrNotFound, sourcePath)
	}

	tmpDir, err := os.MkdirTemp("", "benchprep-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	name := filepath.Base(sourcePath)
	rows, found, err := stageRows(sourcePath, filepath.Join(tmpDir, name))
	if err != nil {
		return nil, err
	}
	if !found {
		c.logger.Infow("source is empty, nothing to convert", "source", sourcePath)
		result.Empty = true
		return result, nil
	}
	result.Rows = rows

	result.SchemaWritten, err = schema.InferForFile(tmpDir, name, c.logger)
	if err != nil {
		return nil, err
	}
	if result.SchemaWritten {
		c.checkColumns(sourcePath, name)
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}

	result.Metrics, err = c.encode(ctx, target, tmpDir, targetPath)
	if err != nil {
		return nil, err
	}

	c.logger.Infow("converted", "source", sourcePath, "target", targetPath, "rows", rows)
	return result, nil
}

// checkColumns warns when the source data disagrees with the schema derived from its name.
func (c *Converter) checkColumns(sourcePath, name string) {
	want, err := dataset.ColumnCount(name)
	if err != nil {
		return
	}
	profile, err := csv.Sniff(sourcePath, ',', sniffRows)
	if err != nil {
		c.logger.Warnw("failed to inspect source", "source", sourcePath, "error", err)
		return
	}
	if profile.Fields != want {
		c.logger.Warnw("column count mismatch", "source", sourcePath, "schema", want, "data", profile.Fields)
	}
	if cols := profile.NonNumeric(); len(cols) > 0 {
		c.logger.Warnw("non-numeric values in double columns", "source", sourcePath, "columns", cols)
	}
}

func (c *Converter) encode(ctx context.Context, target config.Target, dir, targetPath string) (*pipeline.Metrics, error) {
	conn, err := c.enc.Open(ctx, target)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	table, err := conn.ReadCSV(ctx, dir)
	if err != nil {
		return nil, err
	}
	return table.InlineFooter().WriteTo(ctx, targetPath)
}

// ConvertAll converts sourcePath into every named target. Names match the
// configured targets case-insensitively; unknown names are logged and skipped.
// An empty list selects the default target.
func (c *Converter) ConvertAll(ctx context.Context, sourcePath string, targetNames []string, overwrite bool) ([]*Result, error) {
	if len(targetNames) == 0 {
		targetNames = []string{c.cfg.DefaultTarget}
	}

	var results []*Result
	for _, name := range targetNames {
		target, err := c.cfg.Target(name)
		if err != nil {
			c.logger.Warnw("ignoring target format, no encoder is configured for it",
				"format", name, "available", c.cfg.TargetNames())
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := c.Convert(ctx, sourcePath, target, overwrite)
		if err != nil {
			return results, fmt.Errorf("failed to convert '%s' to %s: %w", sourcePath, target.Name, err)
		}
		results = append(results, result)
	}
	return results, nil
}
