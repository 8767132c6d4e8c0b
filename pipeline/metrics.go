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

// Package pipeline measures record flow through an encoder write.
package pipeline

import (
	"fmt"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/arrowarc/benchprep/internal/arrio"
	"github.com/arrowarc/benchprep/internal/json"
)

// Metrics collects counters for one write.
type Metrics struct {
	RowsWritten   int64
	RecordBatches int
	TotalBytes    int64
	StartTime     time.Time
	EndTime       time.Time
}

// NewMetrics starts the clock.
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

// Observe accounts for one record batch.
func (m *Metrics) Observe(record arrow.Record) {
	m.RowsWritten += record.NumRows()
	m.RecordBatches++
	m.TotalBytes += calculateRecordSize(record)
}

// Finish stops the clock.
func (m *Metrics) Finish() {
	m.EndTime = time.Now()
}

// Duration returns the total duration of the write.
func (m *Metrics) Duration() time.Duration {
	if m.EndTime.IsZero() {
		return time.Since(m.StartTime)
	}
	return m.EndTime.Sub(m.StartTime)
}

// Throughput returns rows per second, zero for an instantaneous write.
func (m *Metrics) Throughput() float64 {
	d := m.Duration()
	if d <= 0 {
		return 0
	}
	return float64(m.RowsWritten) / d.Seconds()
}

// Report generates a summary of the collected metrics
func (m *Metrics) Report() string {
	report := struct {
		RowsWritten   int64   `json:"rows_written"`
		RecordBatches int     `json:"record_batches"`
		TotalBytes    int64   `json:"total_bytes"`
		TotalDuration string  `json:"total_duration"`
		Throughput    float64 `json:"throughput_rows_per_second"`
	}{
		RowsWritten:   m.RowsWritten,
		RecordBatches: m.RecordBatches,
		TotalBytes:    m.TotalBytes,
		TotalDuration: m.Duration().String(),
		Throughput:    m.Throughput(),
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating report: %v", err)
	}
	return string(data)
}

// calculateRecordSize calculates the approximate size of a record based on its columns
func calculateRecordSize(record arrow.Record) int64 {
	size := int64(0)
	for _, col := range record.Columns() {
		for _, buf := range col.Data().Buffers() {
			if buf != nil {
				size += int64(buf.Len())
			}
		}
	}
	return size
}

// MeteredWriter feeds every record it writes into Metrics.
type MeteredWriter struct {
	arrio.Writer
	Metrics *Metrics
}

func (w MeteredWriter) Write(record arrow.Record) error {
	if err := w.Writer.Write(record); err != nil {
		return err
	}
	w.Metrics.Observe(record)
	return nil
}
