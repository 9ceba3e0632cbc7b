package reporting

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/seqbench/contbench/src/containment"
)

// ReportWriter serializes a metrics report to JSON and optionally renders the
// binned curves as PNG plots
type ReportWriter struct {
	OutputFile string // write to STDOUT when empty
	Plot       bool
	PlotDir    string
}

// NewReportWriter returns a writer with the default plot directory
func NewReportWriter() *ReportWriter {
	return &ReportWriter{
		PlotDir: "./contbench-plots",
	}
}

// Write serializes the report and renders any requested plots
func (proc *ReportWriter) Write(report *containment.Report) error {
	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	if proc.OutputFile == "" {
		fmt.Println(string(b))
	} else {
		if err := ioutil.WriteFile(proc.OutputFile, b, 0644); err != nil {
			return err
		}
	}
	if !proc.Plot {
		return nil
	}
	if err := os.MkdirAll(proc.PlotDir, 0755); err != nil {
		return err
	}
	if report.RecallQual != nil {
		fileName := filepath.Join(proc.PlotDir, "recall-vs-qual.png")
		if err := plotCurve("recall by weight threshold", "recall", fileName, report.RecallQual.Qual, report.RecallQual.Recall); err != nil {
			return err
		}
	}
	if report.PrecisionQual != nil {
		fileName := filepath.Join(proc.PlotDir, "precision-vs-qual.png")
		if err := plotCurve("precision by quality threshold", "precision", fileName, report.PrecisionQual.Qual, report.PrecisionQual.Precision); err != nil {
			return err
		}
	}
	return nil
}

// plotCurve renders one binned metric curve, skipping undefined bins
func plotCurve(title, yLabel, fileName string, qual []float64, vals []containment.Metric) error {
	curve := make(plotter.XYs, 0, len(vals))
	for i := range vals {
		if math.IsNaN(float64(vals[i])) {
			continue
		}
		curve = append(curve, plotter.XY{X: qual[i], Y: float64(vals[i])})
	}
	metricPlot, err := plot.New()
	if err != nil {
		return err
	}
	metricPlot.Title.Text = title
	metricPlot.X.Label.Text = "minimum edge weight"
	metricPlot.Y.Label.Text = yLabel
	if err := plotutil.AddLinePoints(metricPlot, yLabel, curve); err != nil {
		return err
	}
	return metricPlot.Save(8*vg.Inch, 8*vg.Inch, fileName)
}
