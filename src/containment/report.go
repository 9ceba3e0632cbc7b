package containment

import (
	"math"
	"strconv"
)

// Metric is a float64 that serializes NaN (an undefined metric) as JSON null
type Metric float64

// MarshalJSON implements json.Marshaler
func (m Metric) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(m)) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(m), 'g', -1, 64)), nil
}

// UnmarshalJSON implements json.Unmarshaler, mapping null back to NaN
func (m *Metric) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = Metric(math.NaN())
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*m = Metric(v)
	return nil
}

// RecallCurve is recall as a function of the minimum accepted edge weight
type RecallCurve struct {
	Recall []Metric  `json:"recall"`
	Qual   []float64 `json:"qual"`
}

// PrecisionCurve is precision as a function of the minimum accepted edge weight
type PrecisionCurve struct {
	Precision []Metric  `json:"precision"`
	Qual      []float64 `json:"qual"`
}

// Report is the complete metrics record for one benchmark run
type Report struct {
	Precision     Metric          `json:"precision"`
	Recall        Metric          `json:"recall"`
	RecallQual    *RecallCurve    `json:"recall_qual"`
	PrecisionQual *PrecisionCurve `json:"precision_qual,omitempty"`
}

// Assemble combines whole-graph scores and the binned curves into one report.
// The recall curve stratifies by the true graph's percent identity. The
// precision curve is only produced when the predicted graph carried genuine
// quality weights; it stratifies by those weights with the graph roles
// swapped, so the Scorer's recall in that invocation is the tool's precision.
func Assemble(trueGraph, predGraph *Graph, predHasQual bool) *Report {
	whole := ScoreGraphs(trueGraph, predGraph)
	report := &Report{
		Precision: Metric(whole.Precision),
		Recall:    Metric(whole.Recall),
	}

	recallCurve := BinnedScores(trueGraph, predGraph, DefaultBins)
	report.RecallQual = &RecallCurve{
		Recall: toMetrics(recallCurve.Recall),
		Qual:   recallCurve.Qual,
	}

	if predHasQual {
		precisionCurve := BinnedScores(predGraph, trueGraph, DefaultBins)
		report.PrecisionQual = &PrecisionCurve{
			Precision: toMetrics(precisionCurve.Recall),
			Qual:      precisionCurve.Qual,
		}
	}
	return report
}

func toMetrics(vals []float64) []Metric {
	metrics := make([]Metric, len(vals))
	for i, v := range vals {
		metrics[i] = Metric(v)
	}
	return metrics
}
