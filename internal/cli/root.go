package cli

import (
	"fmt"

	"github.com/mgpai22/substudio/internal/config"
	"github.com/mgpai22/substudio/internal/logging"
	"github.com/mgpai22/substudio/internal/readability"
	"github.com/mgpai22/substudio/internal/timecode"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = logging.Nop()
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "substudio",
	Short: "Inspect and edit SubRip subtitle files",
	Long: `SubStudio is a CLI tool for working with SubRip (.srt) subtitles.

It lists entries with their reading speed in characters per second (CPS),
flags entries that are too fast to read, and edits text and timing.

Settings can be given in the environment or a .env file:
  SUBSTUDIO_WARN_CPS, SUBSTUDIO_ERROR_CPS, SUBSTUDIO_TIME_LAYOUT,
  SUBSTUDIO_CONCURRENCY`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if err := applyFlagOverrides(cmd, &loaded); err != nil {
			return err
		}
		cfg = loaded

		logger.Debugw("Configuration loaded",
			"warn_cps", cfg.Thresholds.Warn,
			"error_cps", cfg.Thresholds.Error,
			"time_layout", cfg.TimeLayout,
			"concurrency", cfg.Concurrency,
		)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		Int("warn-cps", 0, "CPS above which entries are flagged (default from config)")
	rootCmd.PersistentFlags().
		Int("error-cps", 0, "CPS at which entries are errors (default from config)")
	rootCmd.PersistentFlags().
		String("layout", "", "Time layout for display: centis, millis, minutes, seconds, srt, vtt, ass")
}

func applyFlagOverrides(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("warn-cps") || flags.Changed("error-cps") {
		warn, errCPS := c.Thresholds.Warn, c.Thresholds.Error
		if flags.Changed("warn-cps") {
			warn, _ = flags.GetInt("warn-cps")
		}
		if flags.Changed("error-cps") {
			errCPS, _ = flags.GetInt("error-cps")
		}
		c.Thresholds = readability.NewThresholds(warn, errCPS)
	}

	if flags.Changed("layout") {
		name, _ := flags.GetString("layout")
		layout, err := timecode.ParseLayout(name)
		if err != nil {
			return err
		}
		c.TimeLayout = layout
	}

	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
