// Package store provides DuckDB-backed persistence for interval sets.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/genomelab/itree"
	"github.com/genomelab/itree/internal/bedio"
)

// Store holds interval records in a DuckDB database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens a DuckDB-backed interval store.
// The path can be a local file path or an S3 URL (s3://bucket/path.duckdb).
func Open(path string) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	// Enable httpfs extension for S3 support
	if strings.HasPrefix(path, "s3://") {
		if _, err := db.Exec("INSTALL httpfs; LOAD httpfs;"); err != nil {
			db.Close()
			return nil, fmt.Errorf("load httpfs extension: %w", err)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSchema creates the intervals table if it does not exist.
func (s *Store) CreateSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS intervals (
			chrom VARCHAR NOT NULL,
			start BIGINT NOT NULL,
			end_ BIGINT NOT NULL,
			name VARCHAR
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertRecords appends records inside a single transaction.
func (s *Store) InsertRecords(records []bedio.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO intervals (chrom, start, end_, name) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.Chrom, rec.ChromStart, rec.ChromEnd, rec.Name); err != nil {
			return fmt.Errorf("insert interval %s: %w", rec, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT count(*) FROM intervals`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count intervals: %w", err)
	}
	return n, nil
}

// Chroms returns the distinct chromosomes in the store, sorted.
func (s *Store) Chroms() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT chrom FROM intervals ORDER BY chrom`)
	if err != nil {
		return nil, fmt.Errorf("query chroms: %w", err)
	}
	defer rows.Close()

	var chroms []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan chrom: %w", err)
		}
		chroms = append(chroms, c)
	}
	return chroms, rows.Err()
}

// LoadChrom returns all records for one chromosome, ordered by start.
func (s *Store) LoadChrom(chrom string) ([]bedio.Record, error) {
	return s.load(`SELECT chrom, start, end_, name FROM intervals WHERE chrom = ? ORDER BY start`, chrom)
}

// LoadAll returns every stored record, ordered by chromosome and start.
func (s *Store) LoadAll() ([]bedio.Record, error) {
	return s.load(`SELECT chrom, start, end_, name FROM intervals ORDER BY chrom, start`)
}

func (s *Store) load(query string, args ...any) ([]bedio.Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query intervals: %w", err)
	}
	defer rows.Close()

	var records []bedio.Record
	for rows.Next() {
		var rec bedio.Record
		var name sql.NullString
		if err := rows.Scan(&rec.Chrom, &rec.ChromStart, &rec.ChromEnd, &name); err != nil {
			return nil, fmt.Errorf("scan interval: %w", err)
		}
		rec.Name = name.String
		records = append(records, rec)
	}
	return records, rows.Err()
}

// LoadGrouped builds a per-chromosome grouped tree from the stored
// records.
func (s *Store) LoadGrouped() (*itree.GroupedTree, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	ivs := make([]itree.Interval, len(records))
	for i, rec := range records {
		ivs[i] = rec
	}
	return itree.NewGrouped(func(iv itree.Interval) string {
		return iv.(bedio.Record).Chrom
	}, ivs...)
}
