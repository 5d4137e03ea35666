// Command fastasplit splits a FASTA sequences file into one file per sequence.
//
//	fastasplit <sequences-file>
//
// The sequence files and the index file listing them are written next to the input.
package main

import (
	"os"

	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"

	"github.com/nakario/fastasplit"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the command with args and returns the process exit code
func run(args []string) int {
	log.SetOutputLevel(log.Linfo)

	cmd := newRootCmd()
	// cobra falls back to os.Args on a nil slice
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		log.Errorf("fastasplit: %v", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fastasplit <sequences-file>",
		Short: "Split a FASTA sequences file into one file per sequence",
		Long: `Split a FASTA sequences file (.fa, .faa, .fasta, .ffn, .fna or .frn)
into one file per sequence, named after the sequence description and written
next to the input, plus an index file listing the written files.`,
		Args: func(_ *cobra.Command, args []string) error {
			return fastasplit.CheckArgs(args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := fastasplit.Run(args[0])
			return err
		},
	}
}
