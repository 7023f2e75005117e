package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOpenSRTFile(t *testing.T) {
	content := `1
00:00:01,000 --> 00:00:04,000
Hello, world!

2
00:00:05,500 --> 00:00:08,200
This is a test.
With multiple lines.

3
00:00:10,000 --> 00:00:12,500
Final subtitle.
`
	tmpDir := t.TempDir()
	srtPath := filepath.Join(tmpDir, "test.srt")
	if err := os.WriteFile(srtPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	file, err := Open(srtPath)
	if err != nil {
		t.Fatalf("failed to open SRT file: %v", err)
	}

	if file.Format() != FormatSRT {
		t.Errorf("expected format SRT, got %s", file.Format())
	}

	sub := file.Subtitle()
	if len(sub.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sub.Entries))
	}

	expectedText := "This is a test.\nWith multiple lines."
	if sub.Entries[1].Text != expectedText {
		t.Errorf(
			"entry 1: expected %q, got %q",
			expectedText,
			sub.Entries[1].Text,
		)
	}
}

func TestOpenVTTFile(t *testing.T) {
	content := `WEBVTT

NOTE this block
is ignored

1
00:00:01.000 --> 00:00:04.000
Hello, world!

2
00:05.500 --> 00:08.200 align:start
This is a test.
With multiple lines.

01:00:10.000 --> 01:00:12.500
No cue identifier.
`
	tmpDir := t.TempDir()
	vttPath := filepath.Join(tmpDir, "test.vtt")
	if err := os.WriteFile(vttPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	file, err := Open(vttPath)
	if err != nil {
		t.Fatalf("failed to open VTT file: %v", err)
	}

	if file.Format() != FormatVTT {
		t.Errorf("expected format VTT, got %s", file.Format())
	}

	sub := file.Subtitle()
	if len(sub.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(sub.Entries))
	}

	if sub.Entries[1].StartTime != 5500*time.Millisecond {
		t.Errorf("entry 1: expected start 5.5s, got %v", sub.Entries[1].StartTime)
	}
	if sub.Entries[2].StartTime != time.Hour+10*time.Second {
		t.Errorf("entry 2: expected start 1h0m10s, got %v", sub.Entries[2].StartTime)
	}
	if sub.Entries[2].Text != "No cue identifier." {
		t.Errorf(
			"entry 2: expected 'No cue identifier.', got %q",
			sub.Entries[2].Text,
		)
	}
}

func TestWritersByFormat(t *testing.T) {
	sub := &Subtitle{Entries: []Entry{
		{Index: 1, StartTime: time.Second, EndTime: 2500 * time.Millisecond, Text: "Line with\nnewline."},
	}}
	tmpDir := t.TempDir()

	tests := []struct {
		format Format
		want   []string
	}{
		{FormatSRT, []string{"1\n00:00:01,000 --> 00:00:02,500\nLine with\nnewline.\n"}},
		{FormatVTT, []string{"WEBVTT\n\n", "00:00:01.000 --> 00:00:02.500\n"}},
		{FormatASS, []string{"[Events]\n", "Dialogue: 0,0:00:01.00,0:00:02.50,Default,,0,0,0,,Line with\\Nnewline.\n"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			writer, err := NewWriter(tt.format)
			if err != nil {
				t.Fatalf("NewWriter failed: %v", err)
			}
			path := filepath.Join(tmpDir, "out"+GetExtensionForFormat(tt.format))
			if err := writer.Write(sub, path); err != nil {
				t.Fatalf("Write failed: %v", err)
			}
			if GetFormatFromExtension(path) != tt.format {
				t.Errorf("extension of %s does not map back to %s", path, tt.format)
			}

			out, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read output: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(out), want) {
					t.Errorf("output missing %q, got:\n%s", want, out)
				}
			}
		})
	}

	if _, err := NewWriter(Format("sub")); err == nil {
		t.Error("expected error for unsupported writer format")
	}
}

func TestOpenUnsupportedFormat(t *testing.T) {
	tmpDir := t.TempDir()
	txtPath := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(txtPath, []byte("test"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := Open(txtPath)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected 'unsupported' in error, got: %v", err)
	}
}
