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

	"github.com/arrowarc/benchprep/generator"
	"github.com/arrowarc/benchprep/internal/logging"
	"github.com/arrowarc/benchprep/internal/ui"
	"github.com/arrowarc/benchprep/pkg/common/config"
	"github.com/docopt/docopt-go"
	"github.com/joho/godotenv"
)

func main() {
	usage := `Benchmark definition generator.

Usage:
  generate_bench [--config=<file>]
  generate_bench -h | --help

Options:
  -h --help          Show this screen.
  --config=<file>    YAML configuration file. Falls back to $BENCHPREP_CONFIG.
`

	_ = godotenv.Load()

	arguments, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing arguments: %v", err)
	}

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

	report, err := generator.NewBenchGenerator(cfg.Bench, logger).Generate(ctx)
	fmt.Println(ui.Summary("Benchmarks",
		ui.Field{Key: "formats", Value: report.Formats},
		ui.Field{Key: "datasets", Value: report.Datasets},
		ui.Field{Key: "files", Value: len(report.Files)},
		ui.Field{Key: "failures", Value: report.Failures, Warn: report.Failures > 0},
	))
	if err != nil {
		log.Fatalf("Error generating benchmarks: %v", err)
	}
}
