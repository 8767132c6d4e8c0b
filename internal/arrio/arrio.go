// Package arrio exposes functions to move records between readers and writers,
// with interfaces not unlike the ones defined in the stdlib io package.
package arrio

import (
	"errors"
	"io"

	"github.com/apache/arrow/go/v17/arrow"
)

// Reader is the interface that wraps the Read method.
type Reader interface {
	// Read returns the next record, or (nil, io.EOF) at the end of the stream.
	// The caller owns the returned record and must release it.
	Read() (arrow.Record, error)
}

// Writer is the interface that wraps the Write method.
type Writer interface {
	Write(rec arrow.Record) error
}

// WriteCloser is a Writer whose output is only complete once Close returns.
type WriteCloser interface {
	Writer
	Close() error
}

// Copy copies all the records available from src to dst, releasing each one once
// written. It returns the number of rows copied and the first error encountered.
//
// A successful Copy returns err == nil, not err == EOF.
func Copy(dst Writer, src Reader) (rows int64, err error) {
	for {
		rec, err := src.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return rows, nil
			}
			return rows, err
		}
		err = dst.Write(rec)
		n := rec.NumRows()
		rec.Release()
		if err != nil {
			return rows, err
		}
		rows += n
	}
}
