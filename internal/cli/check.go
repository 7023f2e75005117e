package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mgpai22/substudio/internal/readability"
	"github.com/mgpai22/substudio/internal/subtitle"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrThresholdExceeded is returned by check when an entry reaches the
// error CPS threshold.
var ErrThresholdExceeded = errors.New("reading speed exceeds error threshold")

var checkCmd = &cobra.Command{
	Use:   "check [subtitle_file...]",
	Short: "Report entries that are too fast to read",
	Long: `Check one or more subtitle files for entries whose characters per
second exceed the warn and error thresholds. Files are checked in parallel.

The command fails when any entry reaches the error threshold, which makes
it usable in scripts and CI.

Examples:
  substudio check movie.srt
  substudio check season1/*.srt --error-cps 25 --verbose`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().
		Int("concurrency", 0, "Number of files checked in parallel (default from config)")
}

type flaggedEntry struct {
	Index    int
	CPS      int
	Severity readability.Severity
}

type fileReport struct {
	Path    string
	Entries int
	Warn    int
	Error   int
	MaxCPS  int
	Flagged []flaggedEntry
}

func (r fileReport) Severity() readability.Severity {
	switch {
	case r.Error > 0:
		return readability.Error
	case r.Warn > 0:
		return readability.Warn
	default:
		return readability.OK
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if concurrency <= 0 {
		concurrency = cfg.Concurrency
	}

	logger.Infow("Checking subtitle files",
		"files", len(args),
		"concurrency", concurrency,
		"warn_cps", cfg.Thresholds.Warn,
		"error_cps", cfg.Thresholds.Error,
	)

	reports, err := checkFiles(cmd.Context(), args, cfg.Thresholds, concurrency)
	if err != nil {
		return err
	}

	if err := writeReports(cmd.OutOrStdout(), reports); err != nil {
		return err
	}

	for _, r := range reports {
		if r.Error > 0 {
			return ErrThresholdExceeded
		}
	}
	return nil
}

// checkFiles grades every file, keeping reports in argument order.
func checkFiles(
	ctx context.Context,
	paths []string,
	th readability.Thresholds,
	concurrency int,
) ([]fileReport, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	reports := make([]fileReport, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := checkFile(path, th)
			if err != nil {
				return err
			}
			logger.Debugw("Checked file",
				"input", path,
				"entries", report.Entries,
				"max_cps", report.MaxCPS,
			)
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func checkFile(path string, th readability.Thresholds) (fileReport, error) {
	file, err := subtitle.Open(path)
	if err != nil {
		return fileReport{}, fmt.Errorf("%s: %w", path, err)
	}

	entries := file.Subtitle().Entries
	report := fileReport{Path: path, Entries: len(entries)}
	for _, e := range entries {
		cps := e.CPS()
		report.MaxCPS = max(report.MaxCPS, cps)

		severity := th.Classify(cps)
		switch severity {
		case readability.Warn:
			report.Warn++
		case readability.Error:
			report.Error++
		default:
			continue
		}
		report.Flagged = append(report.Flagged, flaggedEntry{
			Index:    e.Index,
			CPS:      cps,
			Severity: severity,
		})
	}
	return report, nil
}

func writeReports(w io.Writer, reports []fileReport) error {
	r := lipgloss.NewRenderer(w)
	for _, report := range reports {
		label := severityStyle(r, report.Severity()).Render(report.Severity().String())
		if _, err := fmt.Fprintf(w,
			"%s: %s (%d entries, %d warn, %d error, max CPS %d)\n",
			report.Path, label, report.Entries, report.Warn, report.Error, report.MaxCPS,
		); err != nil {
			return err
		}
		for _, f := range report.Flagged {
			if _, err := fmt.Fprintf(w, "  #%d  %d CPS  %s\n",
				f.Index, f.CPS, severityStyle(r, f.Severity).Render(f.Severity.String()),
			); err != nil {
				return err
			}
		}
	}
	return nil
}
