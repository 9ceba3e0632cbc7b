// Package containment is used to score predicted contig containment graphs against ground truth.
// It indexes the contigs of the true graph, builds sparse adjacency graphs, computes
// precision/recall by set overlap and produces threshold-binned metric curves.
package containment

// EdgeRecord is one directed containment relationship between two contigs.
// The weight is percent identity for true containments; for predicted
// containments it is the tool's quality score, or 1 when no quality is given.
type EdgeRecord struct {
	Source string
	Target string
	Weight float64
}

// ContigIndex is a bijection between contig names and dense matrix indices.
// It is built once per run from the true edge list and then shared, read-only,
// by every downstream component. Fields are exported for serialization.
type ContigIndex struct {
	ContigToIdx map[string]int
	Contigs     []string
}

// NewContigIndex assigns an index to every distinct contig appearing in the
// true edge list, in first-appearance order (source before target)
func NewContigIndex(trueEdges []EdgeRecord) *ContigIndex {
	index := &ContigIndex{
		ContigToIdx: make(map[string]int),
	}
	for _, edge := range trueEdges {
		index.add(edge.Source)
		index.add(edge.Target)
	}
	return index
}

func (index *ContigIndex) add(contig string) {
	if _, ok := index.ContigToIdx[contig]; !ok {
		index.ContigToIdx[contig] = len(index.Contigs)
		index.Contigs = append(index.Contigs, contig)
	}
}

// NumContigs returns the number of indexed contigs (the graph dimension)
func (index *ContigIndex) NumContigs() int {
	return len(index.Contigs)
}

// Index returns the matrix index for a contig name
func (index *ContigIndex) Index(contig string) (int, bool) {
	i, ok := index.ContigToIdx[contig]
	return i, ok
}

// Contig returns the contig name for a matrix index
func (index *ContigIndex) Contig(i int) string {
	return index.Contigs[i]
}

// FilterEdges drops predicted edges with an endpoint outside the true contig
// set. It returns the kept edges, the number of distinct extra contigs seen
// and the number of edges dropped. Extra contigs are a diagnostic, not an
// error: the caller is expected to report them and move on.
func (index *ContigIndex) FilterEdges(predEdges []EdgeRecord) ([]EdgeRecord, int, int) {
	kept := make([]EdgeRecord, 0, len(predEdges))
	extras := make(map[string]struct{})
	dropped := 0
	for _, edge := range predEdges {
		_, srcOK := index.ContigToIdx[edge.Source]
		_, tgtOK := index.ContigToIdx[edge.Target]
		if !srcOK {
			extras[edge.Source] = struct{}{}
		}
		if !tgtOK {
			extras[edge.Target] = struct{}{}
		}
		if srcOK && tgtOK {
			kept = append(kept, edge)
		} else {
			dropped++
		}
	}
	return kept, len(extras), dropped
}
