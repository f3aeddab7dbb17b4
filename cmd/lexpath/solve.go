package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexpath/ladder"
)

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

var (
	solveMaxDepth int
	solveMaxLen   int
	solveProgress bool
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <start> <target>",
		Short: "Find a shortest edit path between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []ladder.Option{
				ladder.WithContext(cmd.Context()),
				ladder.WithMaxDepth(solveMaxDepth),
				ladder.WithMaxWordLen(solveMaxLen),
			}
			if solveProgress {
				opts = append(opts, ladder.WithOnLevel(func(depth, frontier, visited int) {
					fmt.Fprintf(cmd.OutOrStdout(), "%d: %d %d\n", depth, frontier, visited)
				}))
			}

			res, err := ladder.Search(args[0], args[1], opts...)
			if errors.Is(err, ladder.ErrPathNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), "no path found within depth bound")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "depth %d: %s\n",
				res.Depth, strings.Join(res.Path, " -> "))

			return nil
		},
	}
	cmd.Flags().IntVar(&solveMaxDepth, "max-depth", 0, "maximum BFS levels to expand (0 = default bound)")
	cmd.Flags().IntVar(&solveMaxLen, "max-len", 0, "word growth cap (0 = longer endpoint)")
	cmd.Flags().BoolVar(&solveProgress, "progress", false, "print per-level progress: depth, frontier, visited")

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
