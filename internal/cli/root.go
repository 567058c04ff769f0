package cli

import (
	"fmt"

	"github.com/s8508235/src-cli/internal/config"
	"github.com/s8508235/src-cli/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "src-cli",
	Short: "Split text into display words for speed reading",
	Long: `src-cli splits text into the words shown one at a time on screen.

Quoted passages stay together, contractions are kept whole, punctuation and
hyphenated compounds stay attached to their words, and Chinese or Japanese
text is cut with a dictionary model.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, resolved, exists, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded

		logger = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, verbose)
		logger.Debugw("Configuration loaded",
			"path", resolved,
			"exists", exists,
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default ~/.src-cli.toml or $SRC_CLI_CONFIG)")
}
