package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/substudio/internal/subtitle"
	"github.com/mgpai22/substudio/internal/timecode"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [subtitle_file]",
	Short: "Change the text or timing of an entry",
	Long: `Edit a single entry of a subtitle file and save the result.

Entries are addressed by their position, starting at 1. Text uses \N for
line breaks. Times accept H:MM:SS:FF, H:MM:SS.mmm, M:SS.ff and SS.ff; an
empty time means zero.

A file that does not exist yet is created with one blank entry.

Examples:
  substudio edit movie.srt --entry 3 --text "Hello\Nthere"
  substudio edit movie.srt --entry 3 --start 0:01:02:50 --end 1:04.5
  substudio edit movie.srt --entry 7 --delete
  substudio edit movie.srt --entry 2 --wrap 42
  substudio edit movie.srt --append --start 95 --end 98 --text "The end"`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().IntP("entry", "n", 1, "Entry position to edit (1-based)")
	editCmd.Flags().StringP("text", "t", "", "New text, \\N for line breaks")
	editCmd.Flags().StringP("start", "s", "", "New start time")
	editCmd.Flags().StringP("end", "e", "", "New end time")
	editCmd.Flags().Bool("delete", false, "Delete the entry")
	editCmd.Flags().Bool("insert", false, "Insert a new entry before --entry and edit it")
	editCmd.Flags().Bool("append", false, "Append a new entry and edit it")
	editCmd.Flags().
		Int("wrap", 0, "Rebalance the entry text into two lines of at most this many characters (0 = off)")
	editCmd.Flags().Bool("strict", false, "Reject minutes or seconds of 60 and above instead of clamping")

	editCmd.MarkFlagsMutuallyExclusive("delete", "insert", "append")
}

type entryEdit struct {
	Row    int
	Delete bool
	Insert bool
	Append bool
	Text   *string
	Start  *string
	End    *string
	Wrap   int
}

func runEdit(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	flags := cmd.Flags()

	entry, _ := flags.GetInt("entry")
	strict, _ := flags.GetBool("strict")
	outputPath, _ := flags.GetString("output")
	if outputPath == "" {
		outputPath = subtitlePath
	}

	edit := entryEdit{Row: entry - 1}
	edit.Delete, _ = flags.GetBool("delete")
	edit.Insert, _ = flags.GetBool("insert")
	edit.Append, _ = flags.GetBool("append")
	edit.Wrap, _ = flags.GetInt("wrap")
	for name, dst := range map[string]**string{
		"text":  &edit.Text,
		"start": &edit.Start,
		"end":   &edit.End,
	} {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*dst = &v
		}
	}

	parseFlags := timecode.DefaultFlags
	if strict {
		parseFlags |= timecode.FlagStrict
	}
	doc := subtitle.NewDocument(parseFlags)

	if err := doc.Load(subtitlePath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load subtitle file: %w", err)
		}
		logger.Infow("Starting a new subtitle file", "input", subtitlePath)
	}

	if err := applyEdit(doc, edit); err != nil {
		return err
	}

	if !edit.Delete {
		row := edit.Row
		if edit.Append {
			row = doc.Len() - 1
		}
		if e, err := doc.Entry(row); err == nil && e.EndTime < e.StartTime {
			logger.Warnw("Entry ends before it starts",
				"entry", row+1,
				"start", timecode.Format(e.StartTime, cfg.TimeLayout),
				"end", timecode.Format(e.EndTime, cfg.TimeLayout),
			)
		}
	}

	logger.Infow("Writing output file", "output", outputPath, "entries", doc.Len())
	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles saved: %s\n", absOutput)
	fmt.Fprintf(cmd.OutOrStdout(), "  Entries: %d\n", doc.Len())
	return nil
}

// applyEdit performs one structural change, if any, and then the field
// updates on the affected row.
func applyEdit(doc *subtitle.Document, edit entryEdit) error {
	row := edit.Row

	switch {
	case edit.Append:
		doc.Append(subtitle.Entry{})
		row = doc.Len() - 1
	case edit.Insert:
		if err := doc.Insert(row, subtitle.Entry{}); err != nil {
			return fmt.Errorf("entry %d: %w", row+1, err)
		}
	case edit.Delete:
		// nothing to create on an empty document
	default:
		doc.EnsureOne()
	}

	if edit.Delete {
		if err := doc.Delete(row, 1); err != nil {
			return fmt.Errorf("entry %d: %w", row+1, err)
		}
		return nil
	}

	if edit.Text != nil {
		if err := doc.SetText(row, *edit.Text); err != nil {
			return fmt.Errorf("entry %d: %w", row+1, err)
		}
	}
	if edit.Wrap > 0 {
		e, err := doc.Entry(row)
		if err != nil {
			return fmt.Errorf("entry %d: %w", row+1, err)
		}
		if err := doc.SetLines(row, subtitle.BalanceLines(e.Text, edit.Wrap)); err != nil {
			return fmt.Errorf("entry %d: %w", row+1, err)
		}
	}
	if edit.Start != nil {
		if err := doc.SetStart(row, *edit.Start); err != nil {
			return fmt.Errorf("entry %d start: %w", row+1, err)
		}
	}
	if edit.End != nil {
		if err := doc.SetEnd(row, *edit.End); err != nil {
			return fmt.Errorf("entry %d end: %w", row+1, err)
		}
	}
	return nil
}
