// Package report defines the per-(scheme, corpus) result record and its CSV
// serialization.
//
// Each record is one line with the fields, in order:
//
//	scheme, settings, corpus,
//	compression speed, compression speed std,
//	decompression speed, decompression speed std,
//	compression ratio
//
// Speeds are in decimal MB/s. Absent values (settings of a scheme without
// parameters, decompression figures of a compression-only run) are written as
// empty fields. Fields are quoted only when they contain the delimiter, a
// quote or a line break. No header is written with records; callers that
// want one call WriteHeader once.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Header holds the column names matching the record layout.
var Header = []string{
	"scheme",
	"settings",
	"corpus",
	"compression speed",
	"compression speed std",
	"decompression speed",
	"decompression speed std",
	"compression ratio",
}

// Result is the finalized measurement of one scheme on one corpus.
type Result struct {
	Scheme   string
	Settings string
	Corpus   string

	// CompressionSpeed and CompressionSpeedStd are the mean and sample
	// standard deviation of compression throughput in MB/s.
	CompressionSpeed    float64
	CompressionSpeedStd float64

	// DecompressionSpeed and DecompressionSpeedStd are nil for
	// compression-only measurements.
	DecompressionSpeed    *float64
	DecompressionSpeedStd *float64

	// CompressionRatio is original length / compressed length.
	CompressionRatio float64
}

// HasDecompression reports whether the result carries decompression
// statistics.
func (r Result) HasDecompression() bool {
	return r.DecompressionSpeed != nil && r.DecompressionSpeedStd != nil
}

// Record returns the CSV fields of r in column order.
func (r Result) Record() []string {
	return []string{
		r.Scheme,
		r.Settings,
		r.Corpus,
		formatFloat(r.CompressionSpeed),
		formatFloat(r.CompressionSpeedStd),
		formatOptional(r.DecompressionSpeed),
		formatOptional(r.DecompressionSpeedStd),
		formatFloat(r.CompressionRatio),
	}
}

// Print writes r to w as a single CSV record. The record is formatted in
// memory first and handed to w in one Write call.
func Print(w io.Writer, r Result) error {
	return writeRecord(w, r.Record())
}

// WriteHeader writes the column names as a CSV record.
func WriteHeader(w io.Writer) error {
	return writeRecord(w, Header)
}

func writeRecord(w io.Writer, fields []string) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(fields); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// formatFloat writes the shortest decimal form of v that parses back to the
// same value, keeping at least one fractional digit so that whole numbers
// read as floats (1.0, not 1).
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsInf(v, 0) || math.IsNaN(v) || strings.ContainsRune(s, '.') {
		return s
	}

	return s + ".0"
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}

	return formatFloat(*v)
}
