/*
	tests for the scorer
*/
package containment

import (
	"math"
	"testing"
)

// helper to build a compiled graph from edges over a shared index
func mustBuild(t *testing.T, edges []EdgeRecord, index *ContigIndex) *Graph {
	t.Helper()
	graph, err := BuildGraph(edges, index)
	if err != nil {
		t.Fatalf("could not build the graph: %v", err)
	}
	return graph
}

// this test checks the confusion counts from boolean views
func TestConfusion(t *testing.T) {
	actual := []bool{true, true, true, false, false}
	predicted := []bool{true, false, true, true, false}
	counts := Confusion(actual, predicted)
	if counts.TP != 2 || counts.FP != 1 || counts.FN != 1 {
		t.Fatalf("expected tp=2 fp=1 fn=1, got tp=%d fp=%d fn=%d", counts.TP, counts.FP, counts.FN)
	}
}

// this test checks precision and recall over plain boolean views
func TestCalcScores(t *testing.T) {
	scores := CalcScores([]bool{true, true, false}, []bool{true, false, true})
	if scores.Precision != 0.5 {
		t.Fatalf("expected precision 0.5, got %v", scores.Precision)
	}
	if scores.Recall != 0.5 {
		t.Fatalf("expected recall 0.5, got %v", scores.Recall)
	}
}

// this test checks the division-by-zero policy: undefined, never zero or a crash
func TestCalcScoresUndefined(t *testing.T) {
	// no predicted positives: precision undefined
	scores := CalcScores([]bool{true, true}, []bool{false, false})
	if !math.IsNaN(scores.Precision) {
		t.Fatalf("precision with no predicted positives must be NaN, got %v", scores.Precision)
	}
	if scores.Recall != 0 {
		t.Fatalf("recall with no predicted positives must be 0, got %v", scores.Recall)
	}
	// no actual positives: recall undefined
	scores = CalcScores([]bool{false, false}, []bool{true, false})
	if !math.IsNaN(scores.Recall) {
		t.Fatalf("recall with no actual positives must be NaN, got %v", scores.Recall)
	}
	if scores.Precision != 0 {
		t.Fatalf("precision here is 0/1, got %v", scores.Precision)
	}
	// nothing at all: both undefined
	scores = CalcScores(nil, nil)
	if !math.IsNaN(scores.Precision) || !math.IsNaN(scores.Recall) {
		t.Fatalf("empty views must give undefined metrics, got %v / %v", scores.Precision, scores.Recall)
	}
}

// identical graphs score perfectly
func TestScoreGraphsIdentical(t *testing.T) {
	index := NewContigIndex(trueEdges)
	a := mustBuild(t, trueEdges, index)
	b := mustBuild(t, trueEdges, index)
	scores := ScoreGraphs(a, b)
	if scores.Precision != 1 || scores.Recall != 1 {
		t.Fatalf("identical graphs must give precision=recall=1, got %v / %v", scores.Precision, scores.Recall)
	}
}

// disjoint nonempty graphs score zero
func TestScoreGraphsDisjoint(t *testing.T) {
	index := NewContigIndex(trueEdges)
	a := mustBuild(t, []EdgeRecord{{Source: "A", Target: "B", Weight: 90}}, index)
	b := mustBuild(t, []EdgeRecord{{Source: "B", Target: "C", Weight: 1}}, index)
	scores := ScoreGraphs(a, b)
	if scores.Precision != 0 || scores.Recall != 0 {
		t.Fatalf("disjoint graphs must give precision=recall=0, got %v / %v", scores.Precision, scores.Recall)
	}
}

// an empty prediction has zero recall and undefined precision
func TestScoreGraphsEmptyPrediction(t *testing.T) {
	index := NewContigIndex(trueEdges)
	a := mustBuild(t, trueEdges, index)
	b := mustBuild(t, nil, index)
	scores := ScoreGraphs(a, b)
	if scores.Recall != 0 {
		t.Fatalf("recall against an empty prediction must be 0, got %v", scores.Recall)
	}
	if !math.IsNaN(scores.Precision) {
		t.Fatalf("precision of an empty prediction must be NaN, got %v", scores.Precision)
	}
}

// metrics always land in [0,1] or are undefined
func TestScoreGraphsBounds(t *testing.T) {
	index := NewContigIndex(trueEdges)
	a := mustBuild(t, trueEdges, index)
	b := mustBuild(t, []EdgeRecord{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "C", Target: "A", Weight: 1},
		{Source: "C", Target: "B", Weight: 1},
	}, index)
	scores := ScoreGraphs(a, b)
	for _, v := range []float64{scores.Precision, scores.Recall} {
		if !math.IsNaN(v) && (v < 0 || v > 1) {
			t.Fatalf("metric out of range: %v", v)
		}
	}
	// one of three predictions is a true containment
	if scores.Precision != 1.0/3.0 {
		t.Fatalf("expected precision 1/3, got %v", scores.Precision)
	}
	if scores.Recall != 0.5 {
		t.Fatalf("expected recall 1/2, got %v", scores.Recall)
	}
}
