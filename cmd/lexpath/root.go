package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lexpath",
		Short: "Shortest transformation paths between lowercase words",
		Long: `Lexpath finds the minimum-length sequence of elementary edits that
transforms one lowercase word into another. The four edits are:

  - duplicate the first letter        (abc → aabc)
  - drop the first letter             (abc → bc)
  - rotate the word by one position   (abc → bca or cab)
  - shift one letter up or down the alphabet, wrapping z→a and a→z

Paths are exact: the engine runs an unweighted breadth-first search, so no
shorter transformation exists than the one reported.`,
		SilenceUsage: true,
	}
}

// Execute runs the root command. It is called once, by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
