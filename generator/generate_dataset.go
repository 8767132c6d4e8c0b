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

package generator

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arrowarc/benchprep/internal/dataset"
)

var ErrUnknownDistribution = errors.New("unknown distribution")

// Supported distribution names for synthetic datasets.
const (
	Normal      = "normal"
	Uniform     = "uniform"
	Exponential = "exponential"
	Constant    = "constant"
)

// sampler draws one value; param is the descriptor's parameter.
type sampler func(rng *rand.Rand, param float64) float64

var samplers = map[string]sampler{
	Normal:      func(rng *rand.Rand, param float64) float64 { return rng.NormFloat64() * param },
	Uniform:     func(rng *rand.Rand, param float64) float64 { return rng.Float64() * param },
	Exponential: func(rng *rand.Rand, param float64) float64 { return rng.ExpFloat64() / param },
	Constant:    func(_ *rand.Rand, param float64) float64 { return param },
}

// GenerateDataset writes a comma-separated file at path with a COLUMN_i header row
// followed by d.Rows rows of d.Cols values drawn from d.Type. The same seed always
// yields the same file.
func GenerateDataset(path string, d dataset.Descriptor, seed uint64) error {
	sample, ok := samplers[d.Type]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDistribution, d.Type)
	}
	if d.Cols <= 0 {
		return fmt.Errorf("column count must be positive, got %d", d.Cols)
	}
	if d.Rows < 0 {
		return fmt.Errorf("row count cannot be negative, got %d", d.Rows)
	}
	if d.Type == Exponential && d.Parameter == 0 {
		return fmt.Errorf("exponential rate must be non-zero")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	writer := csv.NewWriter(buf)

	row := make([]string, d.Cols)
	for i := range row {
		row[i] = "COLUMN_" + strconv.Itoa(i)
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for r := int64(0); r < d.Rows; r++ {
		for i := range row {
			row[i] = strconv.FormatFloat(sample(rng, d.Parameter), 'f', -1, 64)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush rows: %w", err)
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return file.Close()
}
