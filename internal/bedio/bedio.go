// Package bedio provides BED file parsing functionality.
package bedio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one BED interval. It implements itree.Interval, so records go
// straight into an index; Chrom is the natural grouping key.
type Record struct {
	Chrom      string
	ChromStart int64
	ChromEnd   int64
	Name       string
}

// Start returns the interval start coordinate.
func (r Record) Start() int64 { return r.ChromStart }

// End returns the interval end coordinate.
func (r Record) End() int64 { return r.ChromEnd }

func (r Record) String() string {
	return fmt.Sprintf("%s:(%d,%d)", r.Chrom, r.ChromStart, r.ChromEnd)
}

// Parser reads interval records from a BED file.
type Parser struct {
	scanner    *bufio.Scanner
	file       *os.File
	gzipReader *gzip.Reader
	lineNumber int
}

// NewParser creates a new BED parser for the given file.
// Supports both plain BED and gzipped BED (.bed.gz) files.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bed file: %w", err)
	}

	p := &Parser{file: file}

	if strings.HasSuffix(path, ".gz") {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.scanner = bufio.NewScanner(p.gzipReader)
	} else {
		p.scanner = bufio.NewScanner(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g., stdin).
func NewParserFromReader(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next returns the next record, or nil at end of input.
func (p *Parser) Next() (*Record, error) {
	for p.scanner.Scan() {
		p.lineNumber++
		line := strings.TrimSpace(p.scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected at least 3 fields, got %d", p.lineNumber, len(fields))
		}

		start, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse chromStart %q: %w", p.lineNumber, fields[1], err)
		}
		end, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: parse chromEnd %q: %w", p.lineNumber, fields[2], err)
		}

		rec := &Record{
			Chrom:      fields[0],
			ChromStart: start,
			ChromEnd:   end,
		}
		if len(fields) > 3 {
			rec.Name = fields[3]
		}
		return rec, nil
	}

	if err := p.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read bed file: %w", err)
	}
	return nil, nil
}

// Close releases the underlying file handles.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ReadAll parses every record in a BED file.
func ReadAll(path string) ([]Record, error) {
	p, err := NewParser(path)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	var records []Record
	for {
		rec, err := p.Next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return records, nil
		}
		records = append(records, *rec)
	}
}
