package containment

import "math"

// Scores holds precision and recall for one comparison. A value of NaN marks
// an undefined metric (zero denominator); it is serialized as JSON null.
type Scores struct {
	Precision float64
	Recall    float64
}

// ConfusionCounts is the 2x2 confusion summary of two boolean views
// (true negatives are never needed and never counted)
type ConfusionCounts struct {
	TP int
	FP int
	FN int
}

// Confusion derives the confusion counts from two boolean views of the same
// coordinate set. The slices must have equal length.
func Confusion(actual, predicted []bool) ConfusionCounts {
	counts := ConfusionCounts{}
	nActual := 0
	for i, a := range actual {
		p := predicted[i]
		if a {
			nActual++
			if !p {
				counts.FN++
			}
		} else if p {
			counts.FP++
		}
	}
	counts.TP = nActual - counts.FN
	return counts
}

// CalcScores computes precision and recall from two boolean views of the same
// coordinate set. Pure function, no side effects.
func CalcScores(actual, predicted []bool) Scores {
	counts := Confusion(actual, predicted)
	return Scores{
		Precision: ratio(counts.TP, counts.TP+counts.FP),
		Recall:    ratio(counts.TP, counts.TP+counts.FN),
	}
}

// ratio implements the division-by-zero policy: 0/0 is undefined, not 0
func ratio(num, den int) float64 {
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}

// ScoreGraphs scores a predicted graph against an actual graph over the union
// of their stored coordinates. Stored entries are nonzero by construction, so
// presence of a coordinate is presence of an edge.
func ScoreGraphs(actual, predicted *Graph) Scores {
	aRows, aCols, _ := actual.Coords()
	pRows, pCols, _ := predicted.Coords()
	actualVec := make([]bool, 0, len(aRows)+len(pRows))
	predVec := make([]bool, 0, len(aRows)+len(pRows))

	// merge the two row-major coordinate lists
	i, j := 0, 0
	for i < len(aRows) || j < len(pRows) {
		switch {
		case j == len(pRows) || (i < len(aRows) && coordLess(aRows[i], aCols[i], pRows[j], pCols[j])):
			actualVec = append(actualVec, true)
			predVec = append(predVec, false)
			i++
		case i == len(aRows) || coordLess(pRows[j], pCols[j], aRows[i], aCols[i]):
			actualVec = append(actualVec, false)
			predVec = append(predVec, true)
			j++
		default:
			actualVec = append(actualVec, true)
			predVec = append(predVec, true)
			i++
			j++
		}
	}
	return CalcScores(actualVec, predVec)
}

func coordLess(r1, c1, r2, c2 int) bool {
	return r1 < r2 || (r1 == r2 && c1 < c2)
}
