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

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/arrowarc/benchprep/convert"
	"github.com/arrowarc/benchprep/encoder"
	"github.com/arrowarc/benchprep/internal/logging"
	"github.com/arrowarc/benchprep/internal/ui"
	"github.com/arrowarc/benchprep/pkg/common/config"
	"github.com/docopt/docopt-go"
	"github.com/joho/godotenv"
)

const usage = `Benchmark dataset converter.

Usage:
  convert <path> [--overwrite] [--target_formats=<format>...] [--config=<file>]
  convert -h | --help

Options:
  -h --help                   Show this screen.
  --overwrite                 Replace targets that already exist.
  --target_formats=<format>   Target format name. Repeat the flag for each format,
                              e.g. --target_formats=Parquet --target_formats=Arrow.
                              Defaults to the configured default target.
  --config=<file>             YAML configuration file. Falls back to $BENCHPREP_CONFIG.
`

func main() {
	_ = godotenv.Load()

	arguments, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing arguments: %v", err)
	}

	sourcePath, _ := arguments.String("<path>")
	overwrite, _ := arguments.Bool("--overwrite")
	targets, _ := arguments["--target_formats"].([]string)
	configPath, _ := arguments.String("--config")
	if configPath == "" {
		configPath = os.Getenv("BENCHPREP_CONFIG")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := convert.NewConverter(cfg.Convert, encoder.New(), logger).ConvertAll(ctx, sourcePath, targets, overwrite)
	if err != nil {
		log.Fatalf("Error converting '%s': %v", sourcePath, err)
	}

	for _, result := range results {
		fields := []ui.Field{
			{Key: "source", Value: result.Source},
			{Key: "target", Value: result.Target},
		}
		switch {
		case result.Skipped:
			fields = append(fields, ui.Field{Key: "status", Value: "skipped, target exists", Warn: true})
		case result.Empty:
			fields = append(fields, ui.Field{Key: "status", Value: "skipped, source is empty", Warn: true})
		default:
			fields = append(fields,
				ui.Field{Key: "rows", Value: result.Rows},
				ui.Field{Key: "schema", Value: result.SchemaWritten, Warn: !result.SchemaWritten},
			)
			if result.Metrics != nil {
				fields = append(fields, ui.Field{Key: "metrics", Value: result.Metrics.Report()})
			}
		}
		fmt.Println(ui.Summary(result.Format, fields...))
	}
}
