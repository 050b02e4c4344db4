package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dreame-maker/kat/query"
)

func init() {
	rootCmd.AddCommand(newDecodeCmd())
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <query-string>",
		Short: "Decode a percent-encoded query string into its key/value pairs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
	return cmd
}

func runDecode(raw string) error {
	q := query.New()
	if err := q.Parse(raw); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	m := q.ToMap()
	logger.Debug("decoded query", "pairs", len(m))

	if jsonOut {
		return printJSON(m)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, m[k])
	}
	return nil
}
