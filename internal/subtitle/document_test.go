package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mgpai22/substudio/internal/timecode"
)

func newTestDocument(t *testing.T) *Document {
	t.Helper()
	doc := NewDocument(timecode.DefaultFlags)
	doc.Append(
		Entry{StartTime: time.Second, EndTime: 2 * time.Second, Text: "first"},
		Entry{StartTime: 3 * time.Second, EndTime: 4 * time.Second, Text: "second"},
		Entry{StartTime: 5 * time.Second, EndTime: 6 * time.Second, Text: "third"},
	)
	return doc
}

func indexes(doc *Document) []int {
	var out []int
	for _, e := range doc.Entries() {
		out = append(out, e.Index)
	}
	return out
}

func texts(doc *Document) []string {
	var out []string
	for _, e := range doc.Entries() {
		out = append(out, e.Text)
	}
	return out
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDocumentSetText(t *testing.T) {
	doc := newTestDocument(t)

	if err := doc.SetText(1, `line one\Nline two`); err != nil {
		t.Fatalf("SetText failed: %v", err)
	}
	e, err := doc.Entry(1)
	if err != nil {
		t.Fatalf("Entry failed: %v", err)
	}
	if e.Text != "line one\nline two" {
		t.Errorf("expected grid text converted, got %q", e.Text)
	}
	if e.CPS() != 16 {
		t.Errorf("expected CPS 16, got %d", e.CPS())
	}

	if err := doc.SetText(3, "nope"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestDocumentSetLines(t *testing.T) {
	doc := newTestDocument(t)

	if err := doc.SetLines(0, `C:\new folder`+"\nnext"); err != nil {
		t.Fatalf("SetLines failed: %v", err)
	}
	e, _ := doc.Entry(0)
	if want := `C:\new folder` + "\nnext"; e.Text != want {
		t.Errorf("expected %q, got %q", want, e.Text)
	}

	if err := doc.SetLines(3, "nope"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestDocumentEmptyRowError(t *testing.T) {
	doc := NewDocument(timecode.DefaultFlags)

	err := doc.Delete(0, 1)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "document is empty") {
		t.Errorf("expected empty document message, got %q", err.Error())
	}
}

func TestDocumentSetTimes(t *testing.T) {
	doc := newTestDocument(t)

	if err := doc.SetStart(0, "0:00:00:50"); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}
	if err := doc.SetEnd(0, "2.5"); err != nil {
		t.Fatalf("SetEnd failed: %v", err)
	}
	e, _ := doc.Entry(0)
	if e.StartTime != 500*time.Millisecond || e.EndTime != 2500*time.Millisecond {
		t.Errorf("unexpected times %v --> %v", e.StartTime, e.EndTime)
	}

	// invalid input leaves the entry alone
	err := doc.SetEnd(0, "soon")
	if !errors.Is(err, timecode.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	e, _ = doc.Entry(0)
	if e.EndTime != 2500*time.Millisecond {
		t.Errorf("end time changed on invalid input: %v", e.EndTime)
	}

	// blank input means zero
	if err := doc.SetStart(0, "  "); err != nil {
		t.Fatalf("SetStart failed: %v", err)
	}
	e, _ = doc.Entry(0)
	if e.StartTime != 0 {
		t.Errorf("expected zero start, got %v", e.StartTime)
	}

	if err := doc.SetStart(-1, "1"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestDocumentStrictFlags(t *testing.T) {
	doc := NewDocument(timecode.DefaultFlags | timecode.FlagStrict)
	doc.EnsureOne()

	if err := doc.SetStart(0, "0:61:00"); !errors.Is(err, timecode.ErrInvalid) {
		t.Errorf("expected ErrInvalid in strict mode, got %v", err)
	}
}

func TestDocumentStructuralEdits(t *testing.T) {
	doc := newTestDocument(t)

	if err := doc.Insert(1, Entry{Text: "inserted"}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if want := []string{"first", "inserted", "second", "third"}; !equalSlices(texts(doc), want) {
		t.Errorf("after insert: got %v, want %v", texts(doc), want)
	}
	if want := []int{1, 2, 3, 4}; !equalSlices(indexes(doc), want) {
		t.Errorf("after insert: indexes %v, want %v", indexes(doc), want)
	}

	if err := doc.Insert(doc.Len(), Entry{Text: "last"}); err != nil {
		t.Fatalf("Insert at end failed: %v", err)
	}
	if err := doc.Insert(10, Entry{}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}

	// count past the end is clipped
	if err := doc.Delete(3, 10); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if want := []string{"first", "inserted", "second"}; !equalSlices(texts(doc), want) {
		t.Errorf("after delete: got %v, want %v", texts(doc), want)
	}

	if err := doc.Delete(0, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if want := []int{1, 2}; !equalSlices(indexes(doc), want) {
		t.Errorf("after delete: indexes %v, want %v", indexes(doc), want)
	}

	if err := doc.Delete(5, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if err := doc.Delete(5, 0); err != nil {
		t.Errorf("deleting zero rows should be a no-op, got %v", err)
	}
}

func TestDocumentEnsureOne(t *testing.T) {
	doc := NewDocument(timecode.DefaultFlags)
	doc.EnsureOne()
	if doc.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", doc.Len())
	}
	e, _ := doc.Entry(0)
	if e.Index != 1 || e.StartTime != 0 || e.EndTime != 5*time.Second || e.Text != "" {
		t.Errorf("unexpected placeholder %+v", e)
	}
	if e.CPS() != 0 {
		t.Errorf("expected CPS 0, got %d", e.CPS())
	}

	doc.EnsureOne()
	if doc.Len() != 1 {
		t.Errorf("EnsureOne added to a non-empty document")
	}

	doc.Clear()
	if doc.Len() != 0 {
		t.Errorf("expected empty document after Clear")
	}
}

func TestDocumentShift(t *testing.T) {
	doc := newTestDocument(t)

	doc.Shift(-1500 * time.Millisecond)
	entries := doc.Entries()
	if entries[0].StartTime != 0 || entries[0].EndTime != 500*time.Millisecond {
		t.Errorf("entry 0: unexpected times %v --> %v", entries[0].StartTime, entries[0].EndTime)
	}
	if entries[2].StartTime != 3500*time.Millisecond {
		t.Errorf("entry 2: expected start 3.5s, got %v", entries[2].StartTime)
	}
}

func TestDocumentLoadSave(t *testing.T) {
	content := `4
00:00:01,000 --> 00:00:02,000
Hello

9
00:00:03,000 --> 00:00:04,500
World
`
	tmpDir := t.TempDir()
	in := filepath.Join(tmpDir, "in.srt")
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	doc := NewDocument(timecode.DefaultFlags)
	if err := doc.Load(in); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := []int{4, 9}; !equalSlices(indexes(doc), want) {
		t.Errorf("loaded indexes %v, want %v", indexes(doc), want)
	}

	if err := doc.SetText(1, `Brave\Nnew world`); err != nil {
		t.Fatalf("SetText failed: %v", err)
	}

	out := filepath.Join(tmpDir, "nested", "out.srt")
	if err := doc.Save(out); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "4\n00:00:01,000 --> 00:00:02,000\nHello\n\n" +
		"9\n00:00:03,000 --> 00:00:04,500\nBrave\nnew world\n\n"
	if string(got) != want {
		t.Errorf("unexpected output:\n%q\nwant:\n%q", got, want)
	}

	if err := doc.Load(filepath.Join(tmpDir, "missing.srt")); err == nil {
		t.Error("expected error for missing file")
	}
}
