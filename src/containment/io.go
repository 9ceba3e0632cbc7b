package containment

import (
	"io/ioutil"

	"gopkg.in/vmihailenco/msgpack.v2"
)

// GraphStore bundles the compiled graph pair with the contig index so a run
// can be re-scored without re-parsing the input tables
type GraphStore struct {
	Index       *ContigIndex
	TrueGraph   *Graph
	PredGraph   *Graph
	PredHasQual bool
}

// Dump is a method to write a graph store to disk
func (store *GraphStore) Dump(path string) error {
	b, err := msgpack.Marshal(store)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}

// Load is a method to read a graph store from disk
func (store *GraphStore) Load(path string) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return msgpack.Unmarshal(b, store)
}
