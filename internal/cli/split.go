package cli

import (
	"fmt"
	"strings"

	"github.com/s8508235/src-cli/internal/config"
	"github.com/s8508235/src-cli/internal/dictionary"
	"github.com/s8508235/src-cli/internal/input"
	"github.com/s8508235/src-cli/internal/output"
	"github.com/s8508235/src-cli/internal/segment"
	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:     "split [text_file]",
	Aliases: []string{"segment"},
	Short:   "Split text into display words",
	Long: `Split text into the sequence of words shown on screen.

Text is taken from --text, from the given file, or from piped stdin, in that
order. Quoted passages become a single word. Chinese and Japanese passages
are cut with the gse dictionary; extra dictionaries can be given with --dict.

Examples:
  src-cli split --text "Hello, world-test. Done!"
  echo "There's some credibility to 'this time it's different'" | src-cli split
  src-cli split notes.txt --format table
  src-cli split article.txt -f json --dict ~/words.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	addInputFlags(splitCmd)

	splitCmd.Flags().
		StringP("format", "f", config.FormatLines, "Output format (lines, json, table)")
	splitCmd.Flags().
		Bool("hmm", true, "Use the hidden-Markov fallback for unknown CJK sequences")
	splitCmd.Flags().
		StringSlice("dict", nil, "Extra gse dictionary file (repeatable)")
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().
		StringP("text", "t", "", "Input text (if not provided, reads the file argument or stdin)")
	cmd.Flags().
		Bool("normalize", true, "Apply Unicode NFC normalisation to the input")
}

// splitOptions is the merged view of flags and config for one run
type splitOptions struct {
	Format           string
	HMM              bool
	Normalize        bool
	UserDictionaries []string
}

func resolveSplitOptions(cmd *cobra.Command, c *config.Config) (splitOptions, error) {
	defaults := config.Default()
	if c == nil {
		c = &defaults
	}
	opts := splitOptions{
		Format:           c.Output.Format,
		HMM:              c.Segment.HMM,
		Normalize:        c.Output.Normalize,
		UserDictionaries: c.Segment.UserDictionaries,
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Format, _ = flags.GetString("format")
		opts.Format = strings.ToLower(strings.TrimSpace(opts.Format))
	}
	if flags.Changed("hmm") {
		opts.HMM, _ = flags.GetBool("hmm")
	}
	if flags.Changed("normalize") {
		opts.Normalize, _ = flags.GetBool("normalize")
	}
	if flags.Changed("dict") {
		dicts, _ := flags.GetStringSlice("dict")
		opts.UserDictionaries = opts.UserDictionaries[:0:0]
		for _, d := range dicts {
			expanded, err := config.ExpandPath(strings.TrimSpace(d))
			if err != nil {
				return splitOptions{}, err
			}
			if expanded != "" {
				opts.UserDictionaries = append(opts.UserDictionaries, expanded)
			}
		}
	}
	return opts, nil
}

func readInput(cmd *cobra.Command, args []string, normalize bool) (string, error) {
	text, _ := cmd.Flags().GetString("text")
	opts := input.Options{
		Text:      text,
		HasText:   cmd.Flags().Changed("text"),
		Stdin:     cmd.InOrStdin(),
		Normalize: normalize,
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}

	content, err := input.Read(opts)
	if err != nil {
		if opts.Path == "" && !opts.HasText {
			return "", fmt.Errorf("%w. Usage: echo \"text\" | src-cli %s", err, cmd.Name())
		}
		return "", err
	}
	return content, nil
}

// swapped in tests
var defaultDictionary = dictionary.Default

func newSegmenter(opts splitOptions) (*segment.Segmenter, error) {
	if len(opts.UserDictionaries) == 0 {
		dict := defaultDictionary()
		if err := dict.Load(); err != nil {
			logger.Warnw("Dictionary unavailable, CJK spans kept whole",
				"error", err,
			)
		}
		return segment.New(
			segment.WithDictionary(dict),
			segment.WithHMM(opts.HMM),
		), nil
	}

	logger.Debugw("Loading user dictionaries",
		"files", opts.UserDictionaries,
	)
	dict := dictionary.NewGSE(opts.UserDictionaries...)
	if err := dict.Load(); err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return segment.New(
		segment.WithDictionary(dict),
		segment.WithHMM(opts.HMM),
	), nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	opts, err := resolveSplitOptions(cmd, cfg)
	if err != nil {
		return err
	}

	renderer, err := output.NewRenderer(opts.Format)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args, opts.Normalize)
	if err != nil {
		return err
	}

	seg, err := newSegmenter(opts)
	if err != nil {
		return err
	}

	tokens := seg.Tokens(text)
	logger.Infow("Text segmented",
		"chars", len([]rune(text)),
		"words", len(tokens),
		"format", opts.Format,
		"hmm", opts.HMM,
	)

	if err := renderer.Render(cmd.OutOrStdout(), tokens); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
