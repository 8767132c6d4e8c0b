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

// Package encoder turns a staging directory of header-less, pipe-delimited text plus
// a schema.json descriptor into a columnar file. The call sequence mirrors a
// connection-oriented engine: Open, ReadCSV, InlineFooter, WriteTo.
package encoder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	integrations "github.com/arrowarc/benchprep/integrations/filesystem"
	"github.com/arrowarc/benchprep/internal/arrio"
	pool "github.com/arrowarc/benchprep/internal/memory"
	"github.com/arrowarc/benchprep/pipeline"
	"github.com/arrowarc/benchprep/pkg/common/config"
	"github.com/arrowarc/benchprep/pkg/schema"
)

// ErrEncoder marks every failure raised by an encoder call.
var ErrEncoder = errors.New("encoder failure")

// Delimiter separates fields in the staged data file.
const Delimiter = '|'

// Footer metadata keys written by InlineFooter.
const (
	MetadataSource  = "benchprep.source"
	MetadataColumns = "benchprep.columns"
)

// Encoder opens connections for a target format.
type Encoder interface {
	Open(ctx context.Context, target config.Target) (Connection, error)
}

// Connection reads staged delimited data.
type Connection interface {
	ReadCSV(ctx context.Context, dir string) (Table, error)
	Close() error
}

// Table is staged data ready to be written.
type Table interface {
	// InlineFooter returns a Table whose output embeds the schema and source
	// metadata in the file footer.
	InlineFooter() Table
	WriteTo(ctx context.Context, path string) (*pipeline.Metrics, error)
}

// ArrowEncoder encodes with the Arrow Go libraries.
type ArrowEncoder struct {
	// ChunkSize is the number of rows per record batch; zero keeps the csv default.
	ChunkSize int
	// Allocator overrides the pooled allocator.
	Allocator memory.Allocator
}

// New returns an ArrowEncoder with default settings.
func New() *ArrowEncoder {
	return &ArrowEncoder{ChunkSize: 64 * 1024}
}

func (e *ArrowEncoder) Open(ctx context.Context, target config.Target) (Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoder, err)
	}
	switch target.Encoding {
	case config.EncodingParquet, config.EncodingArrow:
	default:
		return nil, fmt.Errorf("%w: unsupported encoding '%s' for target '%s'", ErrEncoder, target.Encoding, target.Name)
	}

	conn := &arrowConnection{target: target, chunkSize: e.ChunkSize, alloc: e.Allocator}
	if conn.alloc == nil {
		conn.alloc = pool.GetAllocator()
		conn.pooled = true
	}
	return conn, nil
}

type arrowConnection struct {
	target    config.Target
	chunkSize int
	alloc     memory.Allocator
	pooled    bool
	closed    bool
}

func (c *arrowConnection) ReadCSV(ctx context.Context, dir string) (Table, error) {
	if c.closed {
		return nil, fmt.Errorf("%w: connection is closed", ErrEncoder)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoder, err)
	}

	cols, err := schema.ReadFile(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no %s in '%s'", ErrEncoder, schema.FileName, dir)
		}
		return nil, fmt.Errorf("%w: %v", ErrEncoder, err)
	}
	arrowSchema, err := cols.ArrowSchema()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoder, err)
	}

	dataPath, err := findDataFile(dir)
	if err != nil {
		return nil, err
	}

	return &csvTable{conn: c, dataPath: dataPath, schema: arrowSchema}, nil
}

func (c *arrowConnection) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.pooled {
		pool.PutAllocator(c.alloc)
	}
	return nil
}

// findDataFile returns the only regular file in dir besides the schema descriptor.
func findDataFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoder, err)
	}

	var found []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || entry.Name() == schema.FileName {
			continue
		}
		found = append(found, entry.Name())
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: no data file in '%s'", ErrEncoder, dir)
	case 1:
		return filepath.Join(dir, found[0]), nil
	default:
		return "", fmt.Errorf("%w: expected one data file in '%s', found %d", ErrEncoder, dir, len(found))
	}
}

type csvTable struct {
	conn     *arrowConnection
	dataPath string
	schema   *arrow.Schema
	inline   bool
}

func (t *csvTable) InlineFooter() Table {
	inlined := *t
	inlined.inline = true
	return &inlined
}

func (t *csvTable) WriteTo(ctx context.Context, path string) (*pipeline.Metrics, error) {
	if t.conn.closed {
		return nil, fmt.Errorf("%w: connection is closed", ErrEncoder)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoder, err)
	}

	recordSchema := t.schema
	if t.inline {
		md := arrow.NewMetadata(
			[]string{MetadataSource, MetadataColumns},
			[]string{filepath.Base(t.dataPath), strconv.Itoa(t.schema.NumFields())},
		)
		recordSchema = arrow.NewSchema(t.schema.Fields(), &md)
	}

	reader, err := integrations.NewCSVRecordReader(t.dataPath, recordSchema, t.conn.alloc, integrations.CSVReadOptions{
		Delimiter: Delimiter,
		ChunkSize: t.conn.chunkSize,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoder, err)
	}
	defer reader.Close()

	writer, err := t.newWriter(path, recordSchema)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: %v", ErrEncoder, err)
	}

	// A failed write leaves no file behind.
	metrics := pipeline.NewMetrics()
	if _, err := arrio.Copy(pipeline.MeteredWriter{Writer: writer, Metrics: metrics}, reader); err != nil {
		writer.Close()
		os.Remove(path)
		return nil, fmt.Errorf("%w: writing '%s': %v", ErrEncoder, path, err)
	}
	if err := writer.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("%w: %v", ErrEncoder, err)
	}
	metrics.Finish()
	return metrics, nil
}

func (t *csvTable) newWriter(path string, s *arrow.Schema) (arrio.WriteCloser, error) {
	switch t.conn.target.Encoding {
	case config.EncodingParquet:
		return integrations.NewParquetWriter(path, s, t.conn.alloc, t.inline)
	case config.EncodingArrow:
		return integrations.NewIPCWriter(path, s, t.conn.alloc)
	default:
		return nil, fmt.Errorf("unsupported encoding '%s'", t.conn.target.Encoding)
	}
}
