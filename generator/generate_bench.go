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

// Package generator writes benchmark definitions and synthetic datasets.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/arrowarc/benchprep/internal/dataset"
	"github.com/arrowarc/benchprep/pkg/common/config"
	"go.uber.org/zap"
)

// BenchmarkExt is the extension of every generated benchmark definition.
const BenchmarkExt = ".benchmark"

const benchmarkTemplate = `# name: {{.BenchmarkPath}}
# description: Run query {{.Name}}
# group: [{{.Group}}]

require {{.Group}}

load
CREATE VIEW {{.Group}}_table AS SELECT * FROM {{.ReadFunction}}("{{.SourcePath}}");

run
{{.Query}}
`

var benchmarkTmpl = template.Must(template.New("benchmark").Parse(benchmarkTemplate))

type benchmarkData struct {
	BenchmarkPath string
	Name          string
	Group         string
	ReadFunction  string
	SourcePath    string
	Query         string
}

// BenchReport summarizes one Generate run.
type BenchReport struct {
	Formats  int
	Datasets int
	Files    []string
	Failures int
}

// BenchGenerator derives benchmark files from the datasets found in each format's
// source directory.
type BenchGenerator struct {
	cfg    config.Bench
	logger *zap.SugaredLogger
}

func NewBenchGenerator(cfg config.Bench, logger *zap.SugaredLogger) *BenchGenerator {
	return &BenchGenerator{cfg: cfg, logger: logger}
}

// Generate runs every configured format. A failing format does not stop the others;
// all failures are returned joined.
func (g *BenchGenerator) Generate(ctx context.Context) (*BenchReport, error) {
	report := &BenchReport{}
	var errs []error

	for _, format := range g.cfg.Formats {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		datasets, files, err := g.generateFormat(ctx, format)
		report.Formats++
		report.Datasets += datasets
		report.Files = append(report.Files, files...)
		if err != nil {
			report.Failures++
			g.logger.Errorw("format failed", "format", format.Name, "error", err)
			errs = append(errs, fmt.Errorf("format %s: %w", format.Name, err))
		}
	}

	return report, errors.Join(errs...)
}

// GenerateFormat writes the benchmark files for one format and returns their paths.
// The first dataset whose name cannot be parsed stops the batch; files written
// before it are kept.
func (g *BenchGenerator) GenerateFormat(ctx context.Context, format config.BenchFormat) ([]string, error) {
	_, files, err := g.generateFormat(ctx, format)
	return files, err
}

func (g *BenchGenerator) generateFormat(ctx context.Context, format config.BenchFormat) (int, []string, error) {
	outDir := g.cfg.OutputDir(format)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, nil, fmt.Errorf("failed to create output directory '%s': %w", outDir, err)
	}

	entries, err := os.ReadDir(format.SourceDir)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to list source directory '%s': %w", format.SourceDir, err)
	}

	var (
		datasets int
		files    []string
	)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return datasets, files, err
		}
		if !isRegular(format.SourceDir, entry) {
			continue
		}

		desc, err := dataset.Parse(entry.Name())
		if err != nil {
			return datasets, files, err
		}
		datasets++

		written, err := g.writeDataset(format, outDir, filepath.Join(format.SourceDir, entry.Name()), desc)
		files = append(files, written...)
		if err != nil {
			return datasets, files, err
		}
	}
	return datasets, files, nil
}

func (g *BenchGenerator) writeDataset(format config.BenchFormat, outDir, sourcePath string, desc *dataset.Descriptor) ([]string, error) {
	group := format.GroupName()
	stem := dataset.Stem(sourcePath)
	var files []string

	for _, cutoff := range Cutoffs(desc.Cols) {
		for _, ops := range g.cfg.Operators {
			name := fmt.Sprintf("%s-%s-%d%s", stem, strings.ToLower(strings.Join(ops, ",")), cutoff, BenchmarkExt)
			benchPath := filepath.Join(outDir, name)

			var buf bytes.Buffer
			err := benchmarkTmpl.Execute(&buf, benchmarkData{
				BenchmarkPath: filepath.ToSlash(benchPath),
				Name:          stem,
				Group:         group,
				ReadFunction:  format.ReadFunction(),
				SourcePath:    filepath.ToSlash(sourcePath),
				Query:         Query(format.ColumnPrefix, group, ops, cutoff),
			})
			if err != nil {
				return files, fmt.Errorf("failed to render '%s': %w", name, err)
			}

			if err := os.WriteFile(benchPath, buf.Bytes(), 0o644); err != nil {
				return files, fmt.Errorf("failed to write '%s': %w", benchPath, err)
			}
			g.logger.Infow("written", "path", filepath.ToSlash(benchPath))
			files = append(files, benchPath)
		}
	}
	return files, nil
}

// Cutoffs lists how many leading columns each benchmark touches: one, and all of
// them when there is more than one.
func Cutoffs(cols int) []int {
	if cols > 1 {
		return []int{1, cols}
	}
	return []int{1}
}

// Query aggregates the first cutoff columns with every operator in ops.
func Query(prefix, group string, ops []string, cutoff int) string {
	exprs := make([]string, 0, cutoff*len(ops))
	for col := 0; col < cutoff; col++ {
		for _, op := range ops {
			exprs = append(exprs, fmt.Sprintf("%s(%s%d)", op, prefix, col))
		}
	}
	return fmt.Sprintf("SELECT %s FROM %s_table;", strings.Join(exprs, ","), group)
}

// isRegular follows symlinks so a link to a dataset file counts as a dataset.
func isRegular(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}
