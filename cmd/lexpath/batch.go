package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexpath/batch"
)

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

var (
	batchWorkers  int
	batchMaxDepth int
	batchLogPath  string
	batchNoSort   bool
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Solve every pair in a file and print a summary table",
		Long: `Batch reads a pair list ("start target" lines, or a YAML list for
.yaml/.yml files), solves every pair, and prints a summary table. Pairs are
scheduled shortest-words-first unless --no-sort is given. With --log, each
outcome is also appended to a shared, file-locked result log.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := batch.LoadPairs(args[0])
			if err != nil {
				return err
			}
			if !batchNoSort {
				batch.SortPairs(pairs)
			}

			r := &batch.Runner{
				Workers:  batchWorkers,
				MaxDepth: batchMaxDepth,
			}
			if batchLogPath != "" {
				r.Log = batch.NewResultLog(batchLogPath)
			}

			outcomes, err := r.Run(cmd.Context(), pairs)
			if err != nil {
				return err
			}
			renderSummary(cmd.OutOrStdout(), outcomes)

			return nil
		},
	}
	cmd.Flags().IntVarP(&batchWorkers, "workers", "w", 1, "number of parallel searches")
	cmd.Flags().IntVar(&batchMaxDepth, "max-depth", 0, "maximum BFS levels per search (0 = default bound)")
	cmd.Flags().StringVar(&batchLogPath, "log", "", "append outcomes to this result log file")
	cmd.Flags().BoolVar(&batchNoSort, "no-sort", false, "keep the file order instead of shortest-first scheduling")

	return cmd
}

// renderSummary prints one row per outcome in the order the pairs ran.
func renderSummary(w io.Writer, outcomes []batch.Outcome) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Start", "Target", "Verdict", "Depth", "Time"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, out := range outcomes {
		verdict, depth := "found", strconv.Itoa(out.Depth)
		switch {
		case out.Err != nil:
			verdict, depth = fmt.Sprintf("error: %v", out.Err), "-"
		case !out.Found:
			verdict, depth = "not-found", "-"
		}
		table.Append([]string{
			out.Start, out.Target, verdict, depth,
			out.Elapsed.Round(time.Millisecond).String(),
		})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
