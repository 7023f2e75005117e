package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mgpai22/substudio/internal/subtitle"
	"github.com/mgpai22/substudio/internal/timecode"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Move every entry earlier or later",
	Long: `Shift all start and end times of a subtitle file by a fixed offset.
Times that would fall before zero are clamped to zero.

The offset is a timecode with an optional sign.

Examples:
  substudio shift movie.srt --by 2.5
  substudio shift movie.srt --by=-0:00:01:20 -o synced.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().String("by", "", "Offset to add, e.g. 1.5, -0:00:02:00 (required)")
	_ = shiftCmd.MarkFlagRequired("by")
}

func runShift(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	by, _ := cmd.Flags().GetString("by")
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = subtitlePath
	}

	offset, err := timecode.ParseOffset(by)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}

	doc := subtitle.NewDocument(timecode.DefaultFlags)
	if err := doc.Load(subtitlePath); err != nil {
		return fmt.Errorf("failed to load subtitle file: %w", err)
	}

	logger.Infow("Shifting subtitles",
		"input", subtitlePath,
		"output", outputPath,
		"offset", offset,
		"entries", doc.Len(),
	)

	doc.Shift(offset)

	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles shifted successfully: %s\n", absOutput)
	return nil
}
