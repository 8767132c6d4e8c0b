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

package schema

import (
	"errors"
	"fmt"
)

// ColumnType is the canonical tag written into schema.json.
type ColumnType string

const (
	Int64   ColumnType = "FLS_I64"
	Int32   ColumnType = "FLS_I32"
	Int16   ColumnType = "FLS_I16"
	Int8    ColumnType = "FLS_I08"
	Uint8   ColumnType = "FLS_U08"
	Double  ColumnType = "FLS_DBL"
	FLSStr  ColumnType = "FLS_STR"
	Varchar ColumnType = "STR"
	List    ColumnType = "LIST"
	Struct  ColumnType = "STRUCT"
	Map     ColumnType = "MAP"
)

var ErrUnknownType = errors.New("unknown column type")

// aliases maps every accepted spelling onto its canonical tag. Several names share a
// tag; lookups are case-sensitive.
var aliases = map[string]ColumnType{
	"INT64":   Int64,
	"BIGINT":  Int64,
	"INT32":   Int32,
	"INT16":   Int16,
	"INT8":    Int8,
	"UINT8":   Uint8,
	"DOUBLE":  Double,
	"double":  Double,
	"FLS_STR": FLSStr,
	"string":  FLSStr,
	"STR":     Varchar,
	"varchar": Varchar,
	"VARCHAR": Varchar,
	"LIST":    List,
	"STRUCT":  Struct,
	"map":     Map,
	"MAP":     Map,

	"FLS_I64": Int64,
	"FLS_I32": Int32,
	"FLS_I16": Int16,
	"FLS_I08": Int8,
	"FLS_U08": Uint8,
	"FLS_DBL": Double,
}

// LookupType resolves an alias or canonical tag.
func LookupType(name string) (ColumnType, error) {
	t, ok := aliases[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// UnmarshalText validates the tag on decode, so a schema.json with a bogus type
// fails to load instead of reaching the encoder.
func (t *ColumnType) UnmarshalText(text []byte) error {
	resolved, err := LookupType(string(text))
	if err != nil {
		return err
	}
	*t = resolved
	return nil
}

func (t ColumnType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}
