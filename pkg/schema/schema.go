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

// Package schema derives column schemas for delimited datasets and serializes them
// as the schema.json descriptor the encoder reads next to the data.
package schema

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/arrowarc/benchprep/internal/dataset"
	"github.com/arrowarc/benchprep/internal/json"
	"go.uber.org/zap"
)

// FileName is the descriptor name the encoder looks for in its input directory.
const FileName = "schema.json"

const columnPrefix = "COLUMN_"

var ErrUnsupportedType = errors.New("column type cannot be read from delimited text")

type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// ColumnSchema is the ordered column list serialized under "columns".
type ColumnSchema struct {
	Columns []Column `json:"columns"`
}

// Infer returns n columns named COLUMN_0..COLUMN_{n-1}. Every column is typed as a
// double; no value sniffing is done.
func Infer(n int) ColumnSchema {
	columns := make([]Column, n)
	for i := range columns {
		columns[i] = Column{Name: fmt.Sprintf("%s%d", columnPrefix, i), Type: Double}
	}
	return ColumnSchema{Columns: columns}
}

// Len returns the number of columns.
func (s ColumnSchema) Len() int {
	return len(s.Columns)
}

// WriteFile writes the schema as dir/schema.json and returns the file path.
func (s ColumnSchema) WriteFile(dir string) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write schema file '%s': %w", path, err)
	}
	return path, nil
}

// ReadFile loads dir/schema.json. The returned error wraps os.ErrNotExist when the
// descriptor is absent.
func ReadFile(dir string) (ColumnSchema, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return ColumnSchema{}, fmt.Errorf("failed to read schema file '%s': %w", path, err)
	}

	var s ColumnSchema
	if err := json.NewStrictDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return ColumnSchema{}, fmt.Errorf("failed to decode schema file '%s': %w", path, err)
	}
	if len(s.Columns) == 0 {
		return ColumnSchema{}, fmt.Errorf("schema file '%s' declares no columns", path)
	}
	for i, c := range s.Columns {
		if c.Name == "" {
			return ColumnSchema{}, fmt.Errorf("column %d in '%s' has no name", i, path)
		}
	}
	return s, nil
}

// ArrowSchema maps the column types onto Arrow types. Nested kinds have no
// delimited-text representation and are rejected.
func (s ColumnSchema) ArrowSchema() (*arrow.Schema, error) {
	if len(s.Columns) == 0 {
		return nil, errors.New("schema has no columns")
	}
	fields := make([]arrow.Field, len(s.Columns))
	for i, c := range s.Columns {
		dt, err := arrowType(c.Type)
		if err != nil {
			return nil, fmt.Errorf("column '%s': %w", c.Name, err)
		}
		fields[i] = arrow.Field{Name: c.Name, Type: dt, Nullable: true}
	}
	return arrow.NewSchema(fields, nil), nil
}

func arrowType(t ColumnType) (arrow.DataType, error) {
	switch t {
	case Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case Int16:
		return arrow.PrimitiveTypes.Int16, nil
	case Int8:
		return arrow.PrimitiveTypes.Int8, nil
	case Uint8:
		return arrow.PrimitiveTypes.Uint8, nil
	case Double:
		return arrow.PrimitiveTypes.Float64, nil
	case FLSStr, Varchar:
		return arrow.BinaryTypes.String, nil
	case List, Struct, Map:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, string(t))
	}
}

// InferForFile writes dir/schema.json for the dataset named sourceName, taking the
// column count from the filename. When the name carries no column count a warning
// is logged and nothing is written; the encoder then fails for want of a schema.
func InferForFile(dir, sourceName string, logger *zap.SugaredLogger) (bool, error) {
	n, err := dataset.ColumnCount(sourceName)
	if err != nil {
		if errors.Is(err, dataset.ErrSchemaIncomplete) {
			logger.Warnw("skipping schema, filename has no column count",
				"file", filepath.Base(sourceName), "error", err)
			return false, nil
		}
		return false, err
	}

	path, err := Infer(n).WriteFile(dir)
	if err != nil {
		return false, err
	}
	logger.Debugw("schema written", "path", path, "columns", n)
	return true, nil
}
