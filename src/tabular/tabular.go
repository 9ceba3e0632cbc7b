// Package tabular reads containment edge lists from tabular BLAST output
// (outfmt 6 style TSV with a header line). It is the only place input files
// are parsed; the metrics engine receives plain edge records.
package tabular

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/seqbench/contbench/src/containment"
)

// EdgeFile is the parsed content of one containment table
type EdgeFile struct {

	// Edges holds the edge records in file order
	Edges []containment.EdgeRecord

	// HasWeight reports whether the table carried a third column (percent
	// identity or quality). When false, every edge was given weight 1.
	HasWeight bool
}

// ReadEdges reads a containment table from disk. Files ending .gz are
// decompressed transparently. The first line is a header and is skipped;
// each following line needs a query id, a subject id and, when the header
// has more than two columns, a numeric weight in the third column. Anything
// else is a schema violation and fails immediately.
func ReadEdges(path string) (*EdgeFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	var r io.Reader = fh
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(fh)
		if err != nil {
			return nil, fmt.Errorf("can't decompress %v: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}
	return parseEdges(r, path)
}

func parseEdges(r io.Reader, path string) (*EdgeFile, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty containment table: %v", path)
	}
	if err != nil {
		return nil, fmt.Errorf("can't read header of %v: %v", path, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("containment table needs at least 2 columns, got %d: %v", len(header), path)
	}
	edgeFile := &EdgeFile{
		HasWeight: len(header) > 2,
	}

	line := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("can't read line %d of %v: %v", line, path, err)
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d of %v has %d columns, need at least 2", line, path, len(fields))
		}
		edge := containment.EdgeRecord{
			Source: fields[0],
			Target: fields[1],
			Weight: 1,
		}
		if edgeFile.HasWeight {
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d of %v is missing the weight column", line, path)
			}
			weight, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d of %v has a non-numeric weight (%v)", line, path, fields[2])
			}
			edge.Weight = weight
		}
		edgeFile.Edges = append(edgeFile.Edges, edge)
	}
	return edgeFile, nil
}
