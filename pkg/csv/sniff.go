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

package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Profile is what a quick look at the first rows of a delimited file reveals.
type Profile struct {
	// Fields is the width of the first row.
	Fields int
	// Sampled counts the rows after the first that were inspected.
	Sampled int
	// Numeric reports, per column, whether every sampled value parsed as a float.
	Numeric []bool
}

// NonNumeric returns the indexes of columns holding a value that is not a number.
func (p *Profile) NonNumeric() []int {
	var cols []int
	for i, ok := range p.Numeric {
		if !ok {
			cols = append(cols, i)
		}
	}
	return cols
}

// Sniff reads the first row of filePath and up to sampleRows rows after it.
// A file without rows yields a zero Profile.
func Sniff(filePath string, delimiter rune, sampleRows int) (*Profile, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read first row: %w", err)
	}

	profile := &Profile{Fields: len(first), Numeric: make([]bool, len(first))}
	for i := range profile.Numeric {
		profile.Numeric[i] = true
	}

	for profile.Sampled < sampleRows {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", profile.Sampled+2, err)
		}
		for i, value := range row {
			if i >= len(profile.Numeric) {
				break
			}
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				profile.Numeric[i] = false
			}
		}
		profile.Sampled++
	}

	return profile, nil
}
