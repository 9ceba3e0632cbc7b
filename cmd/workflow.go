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
	"github.com/seqbench/contbench/src/misc"
	"github.com/seqbench/contbench/src/version"
)

// the command line arguments
var (
	configFile *string // the YAML run configuration written by the workflow runner
)

// the workflow command (used by cobra)
var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Score containments as a workflow step, driven by a YAML run configuration",
	Long: `Score containments as a workflow step, driven by a YAML run configuration.

The configuration file resolves the same inputs as the score sub-command flags:

	true_tsv: true containments in tabular BLAST output
	pred_tsv: predicted containments in tabular BLAST output
	output: file to save the metrics report to (optional)
	log: file to write the run log to (optional)`,
	Run: func(cmd *cobra.Command, args []string) {
		runWorkflow()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

/*
  A function to initialise the command line arguments
*/
func init() {
	configFile = workflowCmd.Flags().StringP("config", "c", "", "YAML run configuration file - required")
	workflowCmd.MarkFlagRequired("config")
	RootCmd.AddCommand(workflowCmd)
}

/*
  The main function for the workflow sub-command
*/
func runWorkflow() {
	// load the run configuration written by the workflow runner
	conf, err := config.LoadYAMLFile(*configFile)
	misc.ErrorCheck(err)
	if conf.LogFile == "" {
		conf.LogFile = "contbench-workflow.log"
	}
	// set up logging
	logFH := misc.StartLogging(conf.LogFile)
	defer logFH.Close()
	log.SetOutput(logFH)
	// set up profiling
	if *profiling == true {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}
	log.Printf("starting the workflow command (contbench version %v)", version.GetVersion())
	log.Printf("\trun configuration: %v", *configFile)
	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	misc.ErrorCheck(scoreParamCheck(conf))
	log.Printf("\ttrue containments: %v", conf.TrueTSV)
	log.Printf("\tpredicted containments: %v", conf.PredTSV)
	scoreContainments(conf, false, "", "")
}
