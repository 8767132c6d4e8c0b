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

// Package dataset parses the synthetic dataset naming convention
// data-<n_rows>-<n_cols>-<type>-<parameter>.<extension>.
package dataset

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrPatternMismatch is returned when a filename does not follow the convention.
	ErrPatternMismatch = errors.New("filename does not match expected pattern")
	// ErrSchemaIncomplete is returned when no column count can be read from a filename.
	ErrSchemaIncomplete = errors.New("filename has no column count field")
)

var namePattern = regexp.MustCompile(
	`^data-(\d+)-(\d+)-([^-]+)-([0-9]+(?:\.[0-9]+)?)\.([A-Za-z0-9]+)$`,
)

// Descriptor holds the metadata encoded in a dataset filename.
type Descriptor struct {
	Rows      int64
	Cols      int
	Type      string
	Parameter float64
	Extension string
}

// Parse parses a bare filename. Directories are not stripped; use ParsePath for that.
func Parse(name string) (*Descriptor, error) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return nil, mismatch(name)
	}

	rows, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return nil, mismatch(name)
	}
	cols, err := strconv.Atoi(m[2])
	if err != nil || cols <= 0 {
		return nil, mismatch(name)
	}
	param, err := strconv.ParseFloat(m[4], 64)
	if err != nil {
		return nil, mismatch(name)
	}

	return &Descriptor{
		Rows:      rows,
		Cols:      cols,
		Type:      m[3],
		Parameter: param,
		Extension: m[5],
	}, nil
}

// ParsePath parses the base name of path.
func ParsePath(path string) (*Descriptor, error) {
	return Parse(filepath.Base(path))
}

func mismatch(name string) error {
	return fmt.Errorf("%w: %q", ErrPatternMismatch, name)
}

// Stem returns the filename without its extension.
func (d Descriptor) Stem() string {
	return fmt.Sprintf("data-%d-%d-%s-%s",
		d.Rows, d.Cols, d.Type, strconv.FormatFloat(d.Parameter, 'f', -1, 64))
}

// String rebuilds the canonical filename. Parameters written with trailing zeros
// (e.g. "0.50") come back in their shortest form.
func (d Descriptor) String() string {
	return d.Stem() + "." + d.Extension
}

// Stem strips the final extension from the base name of path.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ColumnCount reads the column count from the third hyphen-delimited field of the
// file stem without validating the rest of the name.
func ColumnCount(path string) (int, error) {
	parts := strings.Split(Stem(path), "-")
	if len(parts) < 3 {
		return 0, fmt.Errorf("%w: %q", ErrSchemaIncomplete, filepath.Base(path))
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q has no usable column count %q",
			ErrSchemaIncomplete, filepath.Base(path), parts[2])
	}
	return n, nil
}
