package cli

import (
	"fmt"

	"github.com/mgpai22/substudio/internal/subtitle"
	"github.com/mgpai22/substudio/internal/timecode"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [subtitle_file]",
	Short: "Show subtitle entries with their reading speed",
	Long: `List every entry of a subtitle file as a table of index, start, end,
characters per second and text. Line breaks in the text are shown as \N.

CPS cells above the warn threshold are shaded, reaching full red at the
error threshold.

Examples:
  substudio list movie.srt
  substudio list movie.srt --layout srt --warn-cps 17
  substudio list movie.srt --no-color --width 0`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().
		Int("width", -1, "Truncate the table to this width (-1 = terminal width, 0 = no limit)")
	listCmd.Flags().
		Bool("no-color", false, "Disable CPS shading")
}

func runList(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	width, _ := cmd.Flags().GetInt("width")
	noColor, _ := cmd.Flags().GetBool("no-color")

	doc := subtitle.NewDocument(timecode.DefaultFlags)
	if err := doc.Load(subtitlePath); err != nil {
		return fmt.Errorf("failed to load subtitle file: %w", err)
	}

	logger.Infow("Loaded subtitle file",
		"input", subtitlePath,
		"entries", doc.Len(),
	)

	out := cmd.OutOrStdout()
	if width < 0 {
		width = terminalWidth(out)
	}

	return renderTable(out, doc.Entries(), tableOptions{
		Layout:     cfg.TimeLayout,
		Thresholds: cfg.Thresholds,
		Width:      width,
		NoColor:    noColor,
	})
}
