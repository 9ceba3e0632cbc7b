// Copyright © 2021 the contbench authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"log"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/seqbench/contbench/src/config"
	"github.com/seqbench/contbench/src/containment"
	"github.com/seqbench/contbench/src/misc"
	"github.com/seqbench/contbench/src/reporting"
	"github.com/seqbench/contbench/src/tabular"
	"github.com/seqbench/contbench/src/version"
)

// the command line arguments
var (
	trueTSV    *string // the true containments in tabular BLAST output
	predTSV    *string // the predicted containments in tabular BLAST output
	outFile    *string // the file to save the metrics report to
	logFile    *string // the file to write the run log to
	plotSwitch *bool   // plot the binned metric curves
	graphStore *string // dump the compiled graphs and contig index to this file
	gfaFile    *string // export the true containment graph in GFA format
)

// the score command (used by cobra)
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score predicted containments against true containments",
	Long:  `Score predicted containments against true containments`,
	Run: func(cmd *cobra.Command, args []string) {
		runScore()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

/*
  A function to initialise the command line arguments
*/
func init() {
	trueTSV = scoreCmd.Flags().StringP("trueTSV", "t", "", "true containments in tabular BLAST output - required")
	predTSV = scoreCmd.Flags().StringP("predTSV", "p", "", "predicted containments in tabular BLAST output - required")
	outFile = scoreCmd.Flags().StringP("out", "o", "", "file to save the metrics report to (default: STDOUT)")
	logFile = scoreCmd.Flags().String("logFile", "contbench-score.log", "file to write the run log to")
	plotSwitch = scoreCmd.Flags().Bool("plot", false, "save PNG plots of the binned metric curves")
	graphStore = scoreCmd.Flags().String("graphStore", "", "dump the compiled containment graphs and contig index to this file")
	gfaFile = scoreCmd.Flags().String("gfa", "", "export the true containment graph to this file in GFA format")
	scoreCmd.MarkFlagRequired("trueTSV")
	scoreCmd.MarkFlagRequired("predTSV")
	RootCmd.AddCommand(scoreCmd)
}

/*
  A function to check user supplied parameters
*/
func scoreParamCheck(conf *config.RunConfig) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	for _, tsv := range []string{conf.TrueTSV, conf.PredTSV} {
		if err := misc.CheckFile(tsv); err != nil {
			return err
		}
		if err := misc.CheckExt(tsv, []string{"tsv", "tab", "txt"}); err != nil {
			return err
		}
	}
	return nil
}

/*
  The main function for the score sub-command
*/
func runScore() {
	// collect the resolved run configuration
	conf := &config.RunConfig{
		TrueTSV: *trueTSV,
		PredTSV: *predTSV,
		Output:  *outFile,
		LogFile: *logFile,
	}
	// set up logging
	logFH := misc.StartLogging(conf.LogFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	log.Printf("starting the score command (contbench version %v)", version.GetVersion())
	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	misc.ErrorCheck(scoreParamCheck(conf))
	log.Printf("\ttrue containments: %v", conf.TrueTSV)
	log.Printf("\tpredicted containments: %v", conf.PredTSV)
	scoreContainments(conf, *plotSwitch, *graphStore, *gfaFile)
}

/*
  The scoring engine wiring, shared by the score and workflow sub-commands
*/
func scoreContainments(conf *config.RunConfig, plot bool, graphStorePath, gfaPath string) {
	// load the containment tables
	log.Print("loading containment tables...")
	trueFile, err := tabular.ReadEdges(conf.TrueTSV)
	misc.ErrorCheck(err)
	log.Printf("\ttrue containment records: %d", len(trueFile.Edges))
	predFile, err := tabular.ReadEdges(conf.PredTSV)
	misc.ErrorCheck(err)
	log.Printf("\tpredicted containment records: %d", len(predFile.Edges))
	if predFile.HasWeight {
		log.Printf("\tpredictions carry quality scores: precision curve will be computed")
	} else {
		log.Printf("\tpredictions carry no quality scores")
	}

	// index the contigs of the true graph and filter the predictions
	log.Print("indexing contigs...")
	index := containment.NewContigIndex(trueFile.Edges)
	log.Printf("\tcontigs in true graph: %d", index.NumContigs())
	keptEdges, extras, dropped := index.FilterEdges(predFile.Edges)
	if extras > 0 {
		log.Printf("\tfound %d extra contigs in %v, discarding %d predicted containments before computing metrics", extras, conf.PredTSV, dropped)
	}

	// build the containment graphs
	log.Print("building containment graphs...")
	trueGraph, err := containment.BuildGraph(trueFile.Edges, index)
	misc.ErrorCheck(err)
	predGraph, err := containment.BuildGraph(keptEdges, index)
	misc.ErrorCheck(err)
	log.Printf("\ttrue graph edges: %d", trueGraph.NNZ())
	log.Printf("\tpredicted graph edges: %d", predGraph.NNZ())

	// calculate the metrics
	log.Print("calculating metrics...")
	report := containment.Assemble(trueGraph, predGraph, predFile.HasWeight)

	// handle the optional extras before writing the report
	if graphStorePath != "" {
		store := &containment.GraphStore{
			Index:       index,
			TrueGraph:   trueGraph,
			PredGraph:   predGraph,
			PredHasQual: predFile.HasWeight,
		}
		misc.ErrorCheck(store.Dump(graphStorePath))
		log.Printf("\tgraph store dumped: %v", graphStorePath)
	}
	if gfaPath != "" {
		misc.ErrorCheck(trueGraph.SaveGraphAsGFA(gfaPath, index))
		log.Printf("\ttrue containment graph written as GFA: %v", gfaPath)
	}

	// write the report
	log.Print("writing the metrics report...")
	writer := reporting.NewReportWriter()
	writer.OutputFile = conf.Output
	writer.Plot = plot
	misc.ErrorCheck(writer.Write(report))
	if conf.Output != "" {
		log.Printf("\treport written: %v", conf.Output)
	}
	log.Printf("finished: %v", misc.PrintMemUsage())
}
