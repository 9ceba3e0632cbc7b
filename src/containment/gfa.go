package containment

import (
	"fmt"
	"os"
	"time"

	"github.com/will-rowe/gfa"

	"github.com/seqbench/contbench/src/version"
)

// SaveGraphAsGFA is a method to convert and save a containment graph in GFA format.
// Contigs become sequence-less segments and containment edges become links;
// edge weights are not represented in GFA and live in the JSON report instead.
func (graph *Graph) SaveGraphAsGFA(fileName string, index *ContigIndex) error {
	t := time.Now()
	stamp := fmt.Sprintf("containment graph created by contbench (version %v) at: %v", version.GetVersion(), t.Format("Mon Jan _2 15:04:05 2006"))
	// create a GFA instance
	newGFA := gfa.NewGFA()
	_ = newGFA.AddVersion(1)
	newGFA.AddComment([]byte(stamp))
	newGFA.AddComment([]byte("contig sequences are not stored by contbench; segments are written with * placeholders"))

	// a segment per contig that is incident to at least one stored edge
	rows, cols, _ := graph.Coords()
	incident := make(map[int]struct{})
	for k := range rows {
		incident[rows[k]] = struct{}{}
		incident[cols[k]] = struct{}{}
	}
	for i := 0; i < graph.Dim; i++ {
		if _, ok := incident[i]; !ok {
			continue
		}
		seg, err := gfa.NewSegment([]byte(index.Contig(i)), []byte("*"))
		if err != nil {
			return err
		}
		seg.Add(newGFA)
	}

	// a link per containment edge
	for k := range rows {
		link, err := gfa.NewLink([]byte(index.Contig(rows[k])), []byte("+"), []byte(index.Contig(cols[k])), []byte("+"), []byte("0M"))
		if err != nil {
			return err
		}
		link.Add(newGFA)
	}

	// create a gfaWriter and write the GFA instance
	outfile, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer outfile.Close()
	writer, err := gfa.NewWriter(outfile, newGFA)
	if err != nil {
		return err
	}
	return newGFA.WriteGFAContent(writer)
}
