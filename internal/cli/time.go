package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mgpai22/substudio/internal/timecode"
	"github.com/spf13/cobra"
)

var timeCmd = &cobra.Command{
	Use:   "time [timecode]",
	Short: "Parse a timecode and show it in every layout",
	Long: `Parse a timecode the way the editor does and print it in each output
layout. Useful to check how an ambiguous value is read.

Accepted input forms:
  H:MM:SS:FF      hundredths in the last field
  H:MM:SS.mmm     dot or comma, up to three fraction digits
  M:SS.ff         fraction in hundredths
  SS.ff           bare seconds

Examples:
  substudio time 1:02:03:45
  substudio time 90.5 --only seconds
  substudio time 0:75:00 --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runTime,
}

func init() {
	rootCmd.AddCommand(timeCmd)

	timeCmd.Flags().Bool("strict", false, "Reject minutes or seconds of 60 and above")
	timeCmd.Flags().
		StringSlice("only", nil, "Accept only these input forms: centis, millis, minutes, seconds")
}

func parseInputFlags(only []string, strict bool) (timecode.Flags, error) {
	flags := timecode.DefaultFlags
	if len(only) > 0 {
		flags = 0
		for _, name := range only {
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "centis":
				flags |= timecode.FlagCentis
			case "millis":
				flags |= timecode.FlagMillis
			case "minutes":
				flags |= timecode.FlagMinutes
			case "seconds":
				flags |= timecode.FlagSeconds
			default:
				return 0, fmt.Errorf("unknown input form %q", name)
			}
		}
	}
	if strict {
		flags |= timecode.FlagStrict
	}
	return flags, nil
}

func runTime(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	only, _ := cmd.Flags().GetStringSlice("only")

	flags, err := parseInputFlags(only, strict)
	if err != nil {
		return err
	}

	d, err := timecode.Parse(args[0], flags)
	if err != nil {
		return err
	}
	return writeLayouts(cmd.OutOrStdout(), d)
}

func writeLayouts(w io.Writer, d time.Duration) error {
	if _, err := fmt.Fprintf(w, "%-8s %s\n", "duration", d); err != nil {
		return err
	}
	for _, layout := range timecode.Layouts {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", layout, timecode.Format(d, layout)); err != nil {
			return err
		}
	}
	return nil
}
