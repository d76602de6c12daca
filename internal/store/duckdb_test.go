package store

import (
	"path/filepath"
	"testing"

	"github.com/genomelab/itree"
	"github.com/genomelab/itree/internal/bedio"
)

func testRecords() []bedio.Record {
	return []bedio.Record{
		{Chrom: "chr1", ChromStart: 150547027, ChromEnd: 150552214, Name: "MCL1"},
		{Chrom: "chr1", ChromStart: 150547027, ChromEnd: 150549967, Name: "MCL1-201"},
		{Chrom: "chr12", ChromStart: 25205246, ChromEnd: 25250929, Name: "KRAS"},
	}
}

func TestStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.duckdb")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.CreateSchema(); err != nil {
		t.Fatalf("CreateSchema: %v", err)
	}
	if err := s.InsertRecords(testRecords()); err != nil {
		t.Fatalf("InsertRecords: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}

	chroms, err := s.Chroms()
	if err != nil {
		t.Fatalf("Chroms: %v", err)
	}
	if len(chroms) != 2 || chroms[0] != "chr1" || chroms[1] != "chr12" {
		t.Errorf("Chroms = %v, want [chr1 chr12]", chroms)
	}

	recs, err := s.LoadChrom("chr1")
	if err != nil {
		t.Fatalf("LoadChrom: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("LoadChrom returned %d records, want 2", len(recs))
	}
	if recs[0].Name != "MCL1" && recs[1].Name != "MCL1" {
		t.Errorf("MCL1 record missing from %v", recs)
	}

	g, err := s.LoadGrouped()
	if err != nil {
		t.Fatalf("LoadGrouped: %v", err)
	}
	if g.Len() != 3 {
		t.Errorf("grouped Len = %d, want 3", g.Len())
	}
	hits := g.Search(bedio.Record{Chrom: "chr12", ChromStart: 25220000, ChromEnd: 25220000})
	if len(hits) != 1 {
		t.Fatalf("search chr12 returned %d hits, want 1", len(hits))
	}
	if rec := hits[0].(bedio.Record); rec.Name != "KRAS" {
		t.Errorf("search hit = %v, want KRAS", rec)
	}
	if got := g.Search(bedio.Record{Chrom: "chrX", ChromStart: 0, ChromEnd: 1 << 40}); len(got) != 0 {
		t.Errorf("unseen chromosome returned %d hits", len(got))
	}

	var _ itree.Interval = recs[0]
}
