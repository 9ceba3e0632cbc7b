package containment

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultBins is the number of weight bins used for the metric curves
const DefaultBins = 50

// BinnedCurve is an ordered precision/recall curve over ascending weight
// thresholds. The three slices are parallel and always nBins long.
type BinnedCurve struct {
	Qual      []float64
	Precision []float64
	Recall    []float64
}

// BinnedScores stratifies the edges of w into nBins equal-width weight bins
// and scores the subgraph at or above each bin's lower threshold against o.
// For each threshold s the comparison is "weight >= s in w" against "edge
// present in o", restricted to exactly the coordinates of w's edges with
// weight >= s. The curve runs from loosest to strictest threshold.
func BinnedScores(w, o *Graph, nBins int) *BinnedCurve {
	rows, cols, data := w.Coords()

	// equal-width histogram boundaries over the observed weights; the first
	// nBins of the nBins+1 boundaries serve as inclusive lower thresholds.
	// A single distinct weight degenerates to that value repeated; an empty
	// weight multiset spans [0,1] and every bin scores as undefined.
	edges := make([]float64, nBins+1)
	if len(data) == 0 {
		floats.Span(edges, 0, 1)
	} else {
		floats.Span(edges, floats.Min(data), floats.Max(data))
	}

	curve := &BinnedCurve{
		Qual:      make([]float64, 0, nBins),
		Precision: make([]float64, 0, nBins),
		Recall:    make([]float64, 0, nBins),
	}
	actualVec := make([]bool, 0, len(data))
	predVec := make([]bool, 0, len(data))
	for _, s := range edges[:nBins] {
		actualVec = actualVec[:0]
		predVec = predVec[:0]
		for k, weight := range data {
			if weight >= s {
				actualVec = append(actualVec, true)
				predVec = append(predVec, o.At(rows[k], cols[k]) != 0)
			}
		}
		scores := CalcScores(actualVec, predVec)
		curve.Qual = append(curve.Qual, s)
		curve.Precision = append(curve.Precision, scores.Precision)
		curve.Recall = append(curve.Recall, scores.Recall)
	}
	return curve
}
