package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreame-maker/kat/kat"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	var fromStdin bool
	cmd := &cobra.Command{
		Use:   "dump [text]",
		Short: "Dump a chain's internal diagnostics for the given text",
		Long: `The dump command loads text into a chain and reports its length,
capacity, and hash, useful for sanity-checking the growth and caching
behavior described by the chain's invariants.

With --stdin, text is read from standard input instead of the argument,
honoring cancellation of the command's context.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if fromStdin {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromStdin {
				return runDumpStream(cmd.Context(), os.Stdin)
			}
			return runDump(args[0])
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read text from standard input")
	return cmd
}

type dumpReport struct {
	Text string `json:"text"`
	Len  int    `json:"len"`
	Cap  int    `json:"cap"`
	Hash uint32 `json:"hash"`
}

func runDump(text string) error {
	return reportChain(kat.NewString(text))
}

func runDumpStream(ctx context.Context, r io.Reader) error {
	c := kat.New()
	if err := c.ConcatStream(ctx, r, -1); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return reportChain(c)
}

func reportChain(c *kat.Chain) error {
	report := dumpReport{
		Text: c.String(),
		Len:  c.Len(),
		Cap:  c.Cap(),
		Hash: c.Hash(),
	}
	logger.Debug("dumped chain", "len", report.Len, "hash", report.Hash)

	if jsonOut {
		return printJSON(report)
	}
	fmt.Printf("text=%q len=%d cap=%d hash=%#x\n", report.Text, report.Len, report.Cap, report.Hash)
	return nil
}
