package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgpai22/substudio/internal/subtitle"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert subtitles between SRT, VTT and ASS",
	Long: `Convert a SubRip or WebVTT file to another subtitle format.

ASS output uses a single default style and \N line breaks.

Examples:
  substudio convert movie.srt --to vtt
  substudio convert movie.vtt --to srt --renumber -o movie.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "f", "srt", "Output subtitle format (srt, vtt, ass)")
	convertCmd.Flags().Bool("renumber", false, "Number entries 1..N")
}

func parseFormat(s string) (subtitle.Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "srt":
		return subtitle.FormatSRT, nil
	case "vtt":
		return subtitle.FormatVTT, nil
	case "ass", "ssa":
		return subtitle.FormatASS, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use srt, vtt, or ass", s)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	formatStr, _ := cmd.Flags().GetString("to")
	renumber, _ := cmd.Flags().GetBool("renumber")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := parseFormat(formatStr)
	if err != nil {
		return err
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(subtitlePath, filepath.Ext(subtitlePath))
		outputPath = baseName + subtitle.GetExtensionForFormat(format)
	}
	if outputPath == subtitlePath {
		return fmt.Errorf("output would overwrite input %s: use --output", subtitlePath)
	}

	file, err := subtitle.Open(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	sub := file.Subtitle()
	if renumber {
		for i := range sub.Entries {
			sub.Entries[i].Index = i + 1
		}
	}

	logger.Infow("Converting subtitles",
		"input", subtitlePath,
		"output", outputPath,
		"from", file.Format(),
		"to", format,
		"entries", len(sub.Entries),
	)

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(sub, outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles converted successfully: %s\n", absOutput)
	return nil
}
