package bedio

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBED = `track name=genes description="MCL1 locus"
# comment line
chr1	150547027	150552214	MCL1
chr1	150547027	150549967	MCL1-201

chr2	1000	2000
`

func TestParser_Sample(t *testing.T) {
	p := NewParserFromReader(strings.NewReader(sampleBED))

	var recs []Record
	for {
		rec, err := p.Next()
		require.NoError(t, err)
		if rec == nil {
			break
		}
		recs = append(recs, *rec)
	}

	require.Len(t, recs, 3)
	assert.Equal(t, Record{Chrom: "chr1", ChromStart: 150547027, ChromEnd: 150552214, Name: "MCL1"}, recs[0])
	assert.Equal(t, "MCL1-201", recs[1].Name)
	assert.Equal(t, Record{Chrom: "chr2", ChromStart: 1000, ChromEnd: 2000}, recs[2])

	// Interval contract
	assert.Equal(t, int64(150547027), recs[0].Start())
	assert.Equal(t, int64(150552214), recs[0].End())
}

func TestParser_BadRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "chr1\t100\n"},
		{"non-numeric start", "chr1\tabc\t200\n"},
		{"non-numeric end", "chr1\t100\tdef\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParserFromReader(strings.NewReader(tc.input))
			_, err := p.Next()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestReadAll_Gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.bed.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte("chr1\t10\t20\tx\nchr1\t30\t40\ty\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	recs, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "y", recs[1].Name)
}

func TestReadAll_MissingFile(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "nope.bed"))
	assert.Error(t, err)
}
