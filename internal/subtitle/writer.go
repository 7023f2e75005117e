package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/substudio/internal/timecode"
)

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// Advanced SubStation Alpha format
type ASSWriter struct {
	Title    string
	FontName string
	FontSize int
}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatASS:
		return &ASSWriter{
			Title:    "SubStudio",
			FontName: "Arial",
			FontSize: 20,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// writes the subtitle to an SRT file
func (w *SRTWriter) Write(sub *Subtitle, path string) error {
	return writeFile(path, func(out io.Writer) error {
		return WriteSRT(out, sub.Entries)
	})
}

// WriteSRT serializes entries as SubRip. An entry keeps its own index when
// it has one, otherwise it is numbered by position.
func WriteSRT(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for i, entry := range entries {
		index := entry.Index
		if index <= 0 {
			index = i + 1
		}
		fmt.Fprintf(bw, "%d\n", index)

		// timestamps: 00:00:00,000 --> 00:00:00,000
		fmt.Fprintf(bw, "%s --> %s\n",
			timecode.Format(entry.StartTime, timecode.LayoutSRT),
			timecode.Format(entry.EndTime, timecode.LayoutSRT))

		writeTextLines(bw, entry.Text)
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// writes the subtitle to a VTT file
func (w *VTTWriter) Write(sub *Subtitle, path string) error {
	return writeFile(path, func(out io.Writer) error {
		bw := bufio.NewWriter(out)

		// VTT header
		bw.WriteString("WEBVTT\n\n")

		for i, entry := range sub.Entries {
			// optional cue identifier
			fmt.Fprintf(bw, "%d\n", i+1)

			// timestamps: 00:00:00.000 --> 00:00:00.000
			fmt.Fprintf(bw, "%s --> %s\n",
				timecode.Format(entry.StartTime, timecode.LayoutVTT),
				timecode.Format(entry.EndTime, timecode.LayoutVTT))

			writeTextLines(bw, entry.Text)
			bw.WriteString("\n")
		}
		return bw.Flush()
	})
}

// writes the subtitle to an ASS file
func (w *ASSWriter) Write(sub *Subtitle, path string) error {
	return writeFile(path, func(out io.Writer) error {
		bw := bufio.NewWriter(out)

		// script info section
		bw.WriteString("[Script Info]\n")
		fmt.Fprintf(bw, "Title: %s\n", w.Title)
		bw.WriteString("ScriptType: v4.00+\n")
		bw.WriteString("Collisions: Normal\n")
		bw.WriteString("PlayDepth: 0\n\n")

		// v4+ styles section
		bw.WriteString("[V4+ Styles]\n")
		bw.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
		fmt.Fprintf(bw, "Style: Default,%s,%d,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,1\n\n",
			w.FontName, w.FontSize)

		// events section
		bw.WriteString("[Events]\n")
		bw.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")

		for _, entry := range sub.Entries {
			// ASS dialogue text uses the same \N breaks as the grid
			fmt.Fprintf(bw, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n",
				timecode.Format(entry.StartTime, timecode.LayoutASS),
				timecode.Format(entry.EndTime, timecode.LayoutASS),
				FormatGridText(entry.Text))
		}
		return bw.Flush()
	})
}

func writeTextLines(bw *bufio.Writer, text string) {
	if text == "" {
		return
	}
	for _, line := range strings.Split(newlineNormalizer.Replace(text), "\n") {
		bw.WriteString(line)
		bw.WriteString("\n")
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// subtitle format based on file extension
func GetFormatFromExtension(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return FormatSRT
	case ".vtt":
		return FormatVTT
	case ".ass", ".ssa":
		return FormatASS
	default:
		return FormatSRT
	}
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	case FormatVTT:
		return ".vtt"
	case FormatASS:
		return ".ass"
	default:
		return ".srt"
	}
}
