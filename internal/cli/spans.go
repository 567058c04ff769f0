package cli

import (
	"fmt"

	"github.com/s8508235/src-cli/internal/output"
	"github.com/s8508235/src-cli/internal/segment"
	"github.com/spf13/cobra"
)

var spansCmd = &cobra.Command{
	Use:   "spans [text_file]",
	Short: "Show how text is divided into quoted and unquoted spans",
	Long: `Show the quoted and unquoted spans found in the input, with the byte range
of each span and, for unquoted spans, whether the CJK or Latin tokenizer
handles it.

Examples:
  src-cli spans --text "Missing \"quote here"
  cat notes.txt | src-cli spans`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSpans,
}

func init() {
	rootCmd.AddCommand(spansCmd)
	addInputFlags(spansCmd)
}

func runSpans(cmd *cobra.Command, args []string) error {
	normalize := cfg == nil || cfg.Output.Normalize
	if cmd.Flags().Changed("normalize") {
		normalize, _ = cmd.Flags().GetBool("normalize")
	}

	text, err := readInput(cmd, args, normalize)
	if err != nil {
		return err
	}

	spans := segment.Scan(text)
	logger.Debugw("Text scanned",
		"spans", len(spans),
	)

	if err := output.SpansTable(cmd.OutOrStdout(), spans); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
