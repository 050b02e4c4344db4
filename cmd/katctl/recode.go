package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreame-maker/kat/kat"
	"github.com/dreame-maker/kat/charset"
)

func init() {
	rootCmd.AddCommand(newRecodeCmd())
}

func newRecodeCmd() *cobra.Command {
	var charsetToken string
	cmd := &cobra.Command{
		Use:   "recode <hex-bytes>",
		Short: "Decode hex-encoded bytes through a registered charset",
		Long: `The recode command loads hex-encoded bytes into a chain and decodes
them through the named charset (anything beyond the chain's built-in
UTF-8/Latin-1 fast paths routes through the charset registry).

Example:
  katctl recode --charset Windows-1252 93686994`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecode(args[0], charsetToken)
		},
	}
	cmd.Flags().StringVar(&charsetToken, "charset", "Windows-1252", "charset token to decode through")
	return cmd
}

func runRecode(hexBytes, charsetToken string) error {
	raw, err := hex.DecodeString(hexBytes)
	if err != nil {
		return fmt.Errorf("recode: invalid hex input: %w", err)
	}
	c := kat.NewBytes(raw)
	s, decodeErr := c.StringRange(charsetToken, 0, c.Len(), charset.Decode)
	if decodeErr != nil {
		return fmt.Errorf("recode: %w", decodeErr)
	}
	logger.Debug("recoded bytes", "charset", charsetToken, "len", len(raw))

	if jsonOut {
		return printJSON(map[string]string{"charset": charsetToken, "text": s})
	}
	fmt.Println(s)
	return nil
}
