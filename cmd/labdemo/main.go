/*
Command labdemo exercises the containers of module lab.

	labdemo list                    run the built-in scenario on a forward list
	labdemo vector                  run the built-in scenario on a vector
	labdemo run -f scenario.yaml    run a scenario from a YAML file

The built-in scenario generates the values 0…9, erases 2, 4 and 6, and inserts
10 at the front, 20 in the middle and 30 at the end, printing the container
after each step.

Flag --layout prints the storage layout of the container at the end of a run,
flag --verbose switches on debug tracing of the containers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// tracer traces with key 'lab.demo'.
func tracer() tracing.Trace {
	return tracing.Select("lab.demo")
}

var flags struct {
	layout   bool
	verbose  bool
	scenario string
}

var rootCmd = &cobra.Command{
	Use:   "labdemo [command]",
	Short: "exercise allocator-aware containers",
	Long: `
Runs scenarios of insertions and deletions on a forward list or a vector and
prints the contents of the container after each step.
`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupTracing(flags.verbose)
	},
}

var listCmd = &cobra.Command{
	Use:          "list",
	Short:        "runs the built-in scenario on a forward list",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRunner(cmd).Run(defaultScenario("list"))
	},
}

var vectorCmd = &cobra.Command{
	Use:          "vector",
	Short:        "runs the built-in scenario on a vector",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newRunner(cmd).Run(defaultScenario("vector"))
	},
}

var runCmd = &cobra.Command{
	Use:   "run -f <scenario.yaml>",
	Short: "runs a scenario from a YAML file",
	Long: `
Reads a scenario from a YAML file and runs it. A scenario names the container
('list' or 'vector') and a list of steps:

  container: vector
  steps:
    - op: generate
      count: 10
    - op: erase
      values: [2, 4, 6]
    - op: insert
      where: front        # front | middle | end
      value: 10
    - op: print
    - op: size
`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadScenario(flags.scenario)
		if err != nil {
			return err
		}
		return newRunner(cmd).Run(s)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flags.layout, "layout", false, "print the storage layout after the run")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "trace container operations")
	runCmd.Flags().StringVarP(&flags.scenario, "file", "f", "", "scenario file (YAML)")
	_ = runCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(listCmd, vectorCmd, runCmd)
}

func newRunner(cmd *cobra.Command) *runner {
	return &runner{
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
		layout: flags.layout,
	}
}

// setupTracing installs a Go logger as the tracer of all packages. Tracing
// output goes to stderr.
func setupTracing(verbose bool) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	level := tracing.LevelError
	if verbose {
		level = tracing.LevelDebug
	}
	tracer().SetTraceLevel(level)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
