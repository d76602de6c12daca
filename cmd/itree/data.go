package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/genomelab/itree"
	"github.com/genomelab/itree/internal/bedio"
	"github.com/genomelab/itree/internal/store"
)

// loadRecords reads intervals from either a BED file or a DuckDB store;
// exactly one source must be given.
func loadRecords(bedPath, dbPath string) ([]bedio.Record, error) {
	switch {
	case bedPath != "" && dbPath != "":
		return nil, errors.New("--bed and --db are mutually exclusive")
	case bedPath != "":
		return bedio.ReadAll(bedPath)
	case dbPath != "":
		s, err := store.Open(dbPath)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.LoadAll()
	default:
		return nil, errors.New("an interval source is required: --bed or --db")
	}
}

func toIntervals(records []bedio.Record) []itree.Interval {
	ivs := make([]itree.Interval, len(records))
	for i, rec := range records {
		ivs[i] = rec
	}
	return ivs
}

func chromKey(iv itree.Interval) string {
	return iv.(bedio.Record).Chrom
}

// parseRegion parses "chrom:start-end" into a query record.
func parseRegion(arg string) (bedio.Record, error) {
	chrom, span, ok := strings.Cut(arg, ":")
	if !ok || chrom == "" {
		return bedio.Record{}, fmt.Errorf("region %q: expected chrom:start-end", arg)
	}
	lo, hi, ok := strings.Cut(span, "-")
	if !ok {
		return bedio.Record{}, fmt.Errorf("region %q: expected chrom:start-end", arg)
	}
	start, err := strconv.ParseInt(lo, 10, 64)
	if err != nil {
		return bedio.Record{}, fmt.Errorf("region %q: parse start: %w", arg, err)
	}
	end, err := strconv.ParseInt(hi, 10, 64)
	if err != nil {
		return bedio.Record{}, fmt.Errorf("region %q: parse end: %w", arg, err)
	}
	if end < start {
		return bedio.Record{}, fmt.Errorf("region %q: end before start", arg)
	}
	return bedio.Record{Chrom: chrom, ChromStart: start, ChromEnd: end}, nil
}
