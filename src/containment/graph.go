package containment

import (
	"fmt"
	"sort"
)

// coordinate addresses one cell of the adjacency matrix
type coordinate struct {
	row int
	col int
}

// GraphBuilder accumulates weighted edges into a mutable coordinate table.
// Duplicate writes to the same (source, target) pair overwrite the earlier
// weight. A weight of zero removes the entry: zero means "no edge" and is
// never stored explicitly.
type GraphBuilder struct {
	index   *ContigIndex
	entries map[coordinate]float64
}

// NewGraphBuilder returns a builder over the shared contig index
func NewGraphBuilder(index *ContigIndex) *GraphBuilder {
	return &GraphBuilder{
		index:   index,
		entries: make(map[coordinate]float64),
	}
}

// Add records one edge. Both endpoints must be in the contig index.
func (builder *GraphBuilder) Add(edge EdgeRecord) error {
	row, ok := builder.index.Index(edge.Source)
	if !ok {
		return fmt.Errorf("contig not in index: %v", edge.Source)
	}
	col, ok := builder.index.Index(edge.Target)
	if !ok {
		return fmt.Errorf("contig not in index: %v", edge.Target)
	}
	coord := coordinate{row, col}
	if edge.Weight == 0 {
		delete(builder.entries, coord)
		return nil
	}
	builder.entries[coord] = edge.Weight
	return nil
}

// Compile freezes the coordinate table into a read-optimised compressed-row
// graph. The builder can be discarded afterwards; the graph is never mutated.
func (builder *GraphBuilder) Compile() *Graph {
	coords := make([]coordinate, 0, len(builder.entries))
	for coord := range builder.entries {
		coords = append(coords, coord)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].row != coords[j].row {
			return coords[i].row < coords[j].row
		}
		return coords[i].col < coords[j].col
	})
	dim := builder.index.NumContigs()
	graph := &Graph{
		Dim:    dim,
		RowPtr: make([]int, dim+1),
		Cols:   make([]int, len(coords)),
		Data:   make([]float64, len(coords)),
	}
	row := 0
	for k, coord := range coords {
		for row < coord.row {
			row++
			graph.RowPtr[row] = k
		}
		graph.Cols[k] = coord.col
		graph.Data[k] = builder.entries[coord]
	}
	for row < dim {
		row++
		graph.RowPtr[row] = len(coords)
	}
	return graph
}

// BuildGraph builds and compiles a sparse adjacency graph from an edge list
func BuildGraph(edges []EdgeRecord, index *ContigIndex) (*Graph, error) {
	builder := NewGraphBuilder(index)
	for _, edge := range edges {
		if err := builder.Add(edge); err != nil {
			return nil, err
		}
	}
	return builder.Compile(), nil
}

// Graph is a square sparse adjacency matrix in compressed-row form. Entries
// are ordered row-major; only nonzero weights are stored. Fields are exported
// for serialization but must be treated as read-only once compiled.
type Graph struct {
	Dim    int
	RowPtr []int
	Cols   []int
	Data   []float64
}

// NNZ returns the number of stored entries
func (graph *Graph) NNZ() int {
	return len(graph.Data)
}

// At returns the weight at (i, j), or 0 when no edge is stored there
func (graph *Graph) At(i, j int) float64 {
	start, end := graph.RowPtr[i], graph.RowPtr[i+1]
	cols := graph.Cols[start:end]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return graph.Data[start+k]
	}
	return 0
}

// Coords returns the stored coordinates and weights in row-major order. The
// returned slices alias the graph's internal storage and must not be modified.
func (graph *Graph) Coords() (rows, cols []int, data []float64) {
	rows = make([]int, 0, len(graph.Data))
	for i := 0; i < graph.Dim; i++ {
		for k := graph.RowPtr[i]; k < graph.RowPtr[i+1]; k++ {
			rows = append(rows, i)
		}
	}
	return rows, graph.Cols, graph.Data
}
