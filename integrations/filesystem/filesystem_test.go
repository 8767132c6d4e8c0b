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
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet/file"
	"github.com/arrowarc/benchprep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = arrow.NewSchema([]arrow.Field{
	{Name: "COLUMN_0", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	{Name: "COLUMN_1", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
}, nil)

func readAll(t *testing.T, r *CSVRecordReader) []arrow.Record {
	t.Helper()
	var records []arrow.Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records
		}
		require.NoError(t, err)
		records = append(records, rec)
	}
}

func TestCSVRecordReader(t *testing.T) {
	tests := []struct {
		content     string
		opts        CSVReadOptions
		rows        int64
		nulls       int
		description string
	}{
		{
			content:     "1.5|2\n3|4\n",
			opts:        CSVReadOptions{Delimiter: '|'},
			rows:        2,
			description: "Pipe delimited without header",
		},
		{
			content:     "COLUMN_0,COLUMN_1\n1,2\nNULL,3\n4,5\n",
			opts:        CSVReadOptions{Delimiter: ',', HasHeader: true, ChunkSize: 2, NullValues: []string{"NULL"}},
			rows:        3,
			nulls:       1,
			description: "Header, nulls and chunking",
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			path := testutil.WriteFile(t, t.TempDir(), "in.csv", test.content)
			mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
			defer mem.AssertSize(t, 0)

			reader, err := NewCSVRecordReader(path, testSchema, mem, test.opts)
			require.NoError(t, err)

			var rows int64
			nulls := 0
			for _, rec := range readAll(t, reader) {
				rows += rec.NumRows()
				nulls += rec.Column(0).NullN()
				rec.Release()
			}
			require.NoError(t, reader.Close())

			assert.Equal(t, test.rows, rows)
			assert.Equal(t, test.nulls, nulls)
		})
	}
}

func TestCSVRecordReaderMissingFile(t *testing.T) {
	_, err := NewCSVRecordReader(filepath.Join(t.TempDir(), "absent.csv"), testSchema, memory.DefaultAllocator, CSVReadOptions{Delimiter: ','})
	assert.Error(t, err)
}

func testRecord(mem memory.Allocator) arrow.Record {
	b := array.NewRecordBuilder(mem, testSchema)
	defer b.Release()
	b.Field(0).(*array.Float64Builder).AppendValues([]float64{1, 2, 3}, nil)
	b.Field(1).(*array.Int64Builder).AppendValues([]int64{4, 5, 6}, nil)
	return b.NewRecord()
}

func TestParquetWriter(t *testing.T) {
	for _, storeSchema := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "out.parquet")
		mem := memory.NewGoAllocator()

		w, err := NewParquetWriter(path, testSchema, mem, storeSchema)
		require.NoError(t, err)
		rec := testRecord(mem)
		require.NoError(t, w.Write(rec))
		rec.Release()
		require.NoError(t, w.Close())

		rdr, err := file.OpenParquetFile(path, false)
		require.NoError(t, err)
		assert.Equal(t, int64(3), rdr.NumRows())
		assert.Equal(t, "benchprep", rdr.MetaData().GetCreatedBy())
		assert.Equal(t, storeSchema, rdr.MetaData().KeyValueMetadata().FindValue("ARROW:schema") != nil)
		require.NoError(t, rdr.Close())
	}
}

func TestParquetWriterUnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	schema := arrow.NewSchema([]arrow.Field{{Name: "months", Type: arrow.FixedWidthTypes.MonthInterval}}, nil)

	_, err := NewParquetWriter(path, schema, memory.NewGoAllocator(), false)
	assert.Error(t, err)
	assert.NoFileExists(t, path, "A writer that failed to start leaves no file")
}

func TestIPCWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.arrow")
	mem := memory.NewGoAllocator()

	w, err := NewIPCWriter(path, testSchema, mem)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		rec := testRecord(mem)
		require.NoError(t, w.Write(rec))
		rec.Release()
	}
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rdr, err := ipc.NewFileReader(f)
	require.NoError(t, err)
	defer rdr.Close()
	assert.Equal(t, 2, rdr.NumRecords())
	assert.True(t, rdr.Schema().Equal(testSchema))
}
