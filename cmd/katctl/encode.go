package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dreame-maker/kat/query"
)

func init() {
	rootCmd.AddCommand(newEncodeCmd())
}

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <key=value>...",
		Short: "Percent-encode key=value pairs into a query string",
		Long: `The encode command builds a percent-encoded query string from one or
more key=value arguments.

Example:
  katctl encode k="a b" n=5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(args)
		},
	}
	return cmd
}

func runEncode(args []string) error {
	q := query.New()
	for _, pair := range args {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid pair %q: expected key=value", pair)
		}
		q.Set(key).Add(value)
	}
	logger.Debug("encoded query", "pairs", len(args))
	fmt.Println(q.ToURL())
	return nil
}
