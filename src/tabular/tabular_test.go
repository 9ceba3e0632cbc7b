/*
	tests for the tabular reader
*/
package tabular

import (
	"compress/gzip"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

// test input in tabular BLAST format (with the non-numeric * placeholders)
var (
	trueTSV = "qseqid\tsseqid\tpident\tlength\tmismatch\tgapopen\tqstart\tqend\tsstart\tsend\tevalue\tbitscore\n" +
		"nmdc:mga04781_15\tnmdc:mga04781_2\t97.6\t8564\t*\t*\t1\t8565\t5736\t14300\t*\t*\n" +
		"nmdc:mga04781_3\tnmdc:mga04781_15\t95.8\t6551\t*\t*\t8865\t15416\t1\t6552\t*\t*\n"
	bareTSV = "qseqid\tsseqid\n" +
		"ctgA\tctgB\n" +
		"ctgB\tctgC\n"
	badTSV = "qseqid\tsseqid\tqual\n" +
		"ctgA\tctgB\tnot-a-number\n"
)

// helper to write a fixture file
func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := ioutil.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}
	return path
}

// this test reads a weighted containment table
func TestReadEdges(t *testing.T) {
	path := writeFixture(t, "true.tsv", trueTSV)
	edgeFile, err := ReadEdges(path)
	if err != nil {
		t.Fatalf("could not read the table: %v", err)
	}
	if !edgeFile.HasWeight {
		t.Fatal("a table with a third column must report weights present")
	}
	if len(edgeFile.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(edgeFile.Edges))
	}
	if edgeFile.Edges[0].Source != "nmdc:mga04781_15" || edgeFile.Edges[0].Target != "nmdc:mga04781_2" {
		t.Fatalf("wrong endpoints on first edge: %v", edgeFile.Edges[0])
	}
	if edgeFile.Edges[0].Weight != 97.6 || edgeFile.Edges[1].Weight != 95.8 {
		t.Fatalf("wrong weights: %v / %v", edgeFile.Edges[0].Weight, edgeFile.Edges[1].Weight)
	}
}

// a two-column table gets constant weight 1 and no quality flag
func TestReadEdgesNoWeightColumn(t *testing.T) {
	path := writeFixture(t, "pred.tsv", bareTSV)
	edgeFile, err := ReadEdges(path)
	if err != nil {
		t.Fatalf("could not read the table: %v", err)
	}
	if edgeFile.HasWeight {
		t.Fatal("a two-column table must not report weights present")
	}
	for _, edge := range edgeFile.Edges {
		if edge.Weight != 1 {
			t.Fatalf("expected constant weight 1, got %v", edge.Weight)
		}
	}
}

// a non-numeric weight is a schema violation and must fail fast
func TestReadEdgesBadWeight(t *testing.T) {
	path := writeFixture(t, "bad.tsv", badTSV)
	if _, err := ReadEdges(path); err == nil {
		t.Fatal("expected an error for a non-numeric weight")
	}
}

// an empty file is a schema violation
func TestReadEdgesEmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.tsv", "")
	if _, err := ReadEdges(path); err == nil {
		t.Fatal("expected an error for an empty table")
	}
}

// a header-only file yields an empty edge list, not an error
func TestReadEdgesHeaderOnly(t *testing.T) {
	path := writeFixture(t, "header.tsv", "qseqid\tsseqid\tpident\n")
	edgeFile, err := ReadEdges(path)
	if err != nil {
		t.Fatalf("could not read the table: %v", err)
	}
	if len(edgeFile.Edges) != 0 {
		t.Fatalf("expected no edges, got %d", len(edgeFile.Edges))
	}
}

// gzipped tables are decompressed transparently
func TestReadEdgesGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "true.tsv.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("could not create fixture: %v", err)
	}
	gz := gzip.NewWriter(fh)
	if _, err := gz.Write([]byte(trueTSV)); err != nil {
		t.Fatalf("could not write fixture: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("could not close gzip writer: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("could not close fixture: %v", err)
	}
	edgeFile, err := ReadEdges(path)
	if err != nil {
		t.Fatalf("could not read the gzipped table: %v", err)
	}
	if len(edgeFile.Edges) != 2 || !edgeFile.HasWeight {
		t.Fatalf("gzipped table parsed incorrectly: %d edges", len(edgeFile.Edges))
	}
}
