package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/mgpai22/substudio/internal/readability"
	"github.com/mgpai22/substudio/internal/subtitle"
	"github.com/mgpai22/substudio/internal/timecode"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	colNum = iota
	colStart
	colEnd
	colCPS
	colText
)

// zebra striping of the CPS cell background
var rowBackgrounds = [2]string{"#f5f8fa", "#ffffff"}

const (
	cellTextColor = "#1f2328"
	// room taken by everything except the text column
	fixedColumnsWidth = 44
	minTextWidth      = 20
)

type tableOptions struct {
	Layout     timecode.Layout
	Thresholds readability.Thresholds
	Width      int // 0 means no truncation
	NoColor    bool
}

// renderTable writes entries as a table of index, times, CPS and text.
// CPS cells above the warn threshold are shaded towards red.
func renderTable(w io.Writer, entries []subtitle.Entry, opts tableOptions) error {
	r := lipgloss.NewRenderer(w)
	if opts.NoColor {
		r.SetColorProfile(termenv.Ascii)
	}

	headerStyle := r.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1)
	centered := cellStyle.Align(lipgloss.Center)

	textWidth := 0
	if opts.Width > 0 {
		textWidth = max(opts.Width-fixedColumnsWidth, minTextWidth)
	}

	rows := make([][]string, len(entries))
	cps := make([]int, len(entries))
	for i, e := range entries {
		cps[i] = e.CPS()
		text := subtitle.FormatGridText(e.Text)
		if textWidth > 0 {
			text = ansi.Truncate(text, textWidth, "…")
		}
		rows[i] = []string{
			strconv.Itoa(e.Index),
			timecode.Format(e.StartTime, opts.Layout),
			timecode.Format(e.EndTime, opts.Layout),
			strconv.Itoa(cps[i]),
			text,
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("#", "Start", "End", "CPS", "Text").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col != colCPS {
				if col == colText {
					return cellStyle
				}
				return centered
			}
			if row < 0 || row >= len(cps) {
				return centered
			}
			alpha := opts.Thresholds.Alpha(cps[row])
			if alpha == 0 {
				return centered
			}
			base := rowBackgrounds[row%2]
			return centered.
				Background(lipgloss.Color(readability.Shade(base, alpha))).
				Foreground(lipgloss.Color(readability.TextShade(cellTextColor, alpha)))
		})

	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}

// terminalWidth is the width of w when it is a terminal, otherwise 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// styles for check reports
func severityStyle(r *lipgloss.Renderer, s readability.Severity) lipgloss.Style {
	switch s {
	case readability.Error:
		return r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	case readability.Warn:
		return r.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return r.NewStyle().Foreground(lipgloss.Color("10"))
	}
}
