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
	"log"
	"path/filepath"
	"strconv"

	"github.com/arrowarc/benchprep/generator"
	"github.com/arrowarc/benchprep/internal/dataset"
	"github.com/docopt/docopt-go"
)

func main() {
	usage := `Generate a synthetic benchmark dataset.

Usage:
  generate_data --rows=<n> --cols=<n> --type=<dist> --param=<p> [--out=<dir>] [--seed=<n>]
  generate_data -h | --help

Options:
  -h --help          Show this screen.
  --rows=<n>         Number of data rows.
  --cols=<n>         Number of columns.
  --type=<dist>      Distribution: normal, uniform, exponential or constant.
  --param=<p>        Distribution parameter.
  --out=<dir>        Output directory [default: synth-data/csv].
  --seed=<n>         Random seed [default: 1].
`

	arguments, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing arguments: %v", err)
	}

	rows, _ := arguments.String("--rows")
	cols, _ := arguments.Int("--cols")
	dist, _ := arguments.String("--type")
	param, _ := arguments.Float64("--param")
	outDir, _ := arguments.String("--out")
	seed, _ := arguments.String("--seed")

	nRows, err := strconv.ParseInt(rows, 10, 64)
	if err != nil {
		log.Fatalf("Invalid --rows: %v", err)
	}
	nSeed, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		log.Fatalf("Invalid --seed: %v", err)
	}

	desc := dataset.Descriptor{Rows: nRows, Cols: cols, Type: dist, Parameter: param, Extension: "csv"}
	path := filepath.Join(outDir, desc.String())
	if err := generator.GenerateDataset(path, desc, nSeed); err != nil {
		log.Fatalf("Error generating dataset: %v", err)
	}
	log.Printf("Generated %s", path)
}
