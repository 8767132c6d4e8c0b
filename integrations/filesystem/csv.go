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

package integrations

import (
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/csv"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// CSVReadOptions configures how delimited text is decoded into records.
type CSVReadOptions struct {
	Delimiter  rune
	HasHeader  bool
	ChunkSize  int
	NullValues []string
}

// CSVRecordReader implements arrio.Reader for reading records from delimited files.
type CSVRecordReader struct {
	file   *os.File
	reader *csv.Reader
}

// NewCSVRecordReader opens filePath and decodes it with the given schema.
func NewCSVRecordReader(filePath string, schema *arrow.Schema, alloc memory.Allocator, opts CSVReadOptions) (*CSVRecordReader, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}

	options := []csv.Option{
		csv.WithAllocator(alloc),
		csv.WithComma(opts.Delimiter),
		csv.WithHeader(opts.HasHeader),
	}
	if opts.ChunkSize > 0 {
		options = append(options, csv.WithChunk(opts.ChunkSize))
	}
	if len(opts.NullValues) > 0 {
		options = append(options, csv.WithNullReader(true, opts.NullValues...))
	}

	return &CSVRecordReader{file: file, reader: csv.NewReader(file, schema, options...)}, nil
}

// Read reads the next record from the CSV file.
func (r *CSVRecordReader) Read() (arrow.Record, error) {
	if !r.reader.Next() {
		if err := r.reader.Err(); err != nil && err != io.EOF {
			return nil, fmt.Errorf("error reading CSV record: %w", err)
		}
		return nil, io.EOF
	}

	record := r.reader.Record()
	if record == nil {
		return nil, io.EOF
	}

	record.Retain()
	return record, nil
}

// Close releases the reader and its file.
func (r *CSVRecordReader) Close() error {
	r.reader.Release()
	return r.file.Close()
}
