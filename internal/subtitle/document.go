package subtitle

import (
	"fmt"
	"time"

	"github.com/mgpai22/substudio/internal/timecode"
)

// default span of the placeholder entry added to an empty document
const placeholderDuration = 5 * time.Second

// Document is an editable, ordered table of subtitle entries. Times typed
// by the user are parsed with the document's timecode flags, and text is
// accepted in grid form.
type Document struct {
	entries []Entry
	flags   timecode.Flags
}

// NewDocument returns an empty document that parses times with flags.
func NewDocument(flags timecode.Flags) *Document {
	return &Document{flags: flags}
}

// Load replaces the document contents with the entries of a subtitle file.
func (d *Document) Load(path string) error {
	file, err := Open(path)
	if err != nil {
		return err
	}
	d.entries = append([]Entry(nil), file.Subtitle().Entries...)
	return nil
}

// Save writes the document in the format implied by the path extension.
func (d *Document) Save(path string) error {
	writer, err := NewWriter(GetFormatFromExtension(path))
	if err != nil {
		return err
	}
	return writer.Write(&Subtitle{Entries: d.entries}, path)
}

func (d *Document) Len() int {
	return len(d.entries)
}

// Entry returns a copy of the entry at row.
func (d *Document) Entry(row int) (Entry, error) {
	if err := d.checkRow(row); err != nil {
		return Entry{}, err
	}
	return d.entries[row], nil
}

// Entries returns a copy of all entries.
func (d *Document) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// SetText replaces the text of row. `\N` in text is a line break.
func (d *Document) SetText(row int, text string) error {
	if err := d.checkRow(row); err != nil {
		return err
	}
	d.entries[row].Text = ParseGridText(text)
	return nil
}

// SetLines replaces the text of row as is, with real line breaks.
func (d *Document) SetLines(row int, text string) error {
	if err := d.checkRow(row); err != nil {
		return err
	}
	d.entries[row].Text = text
	return nil
}

// SetStart parses input as a timecode and sets it as the start of row.
// Blank input means zero. On a parse error the entry is left unchanged.
func (d *Document) SetStart(row int, input string) error {
	return d.setTime(row, input, func(e *Entry, t time.Duration) { e.StartTime = t })
}

// SetEnd is SetStart for the end time.
func (d *Document) SetEnd(row int, input string) error {
	return d.setTime(row, input, func(e *Entry, t time.Duration) { e.EndTime = t })
}

func (d *Document) setTime(row int, input string, set func(*Entry, time.Duration)) error {
	if err := d.checkRow(row); err != nil {
		return err
	}
	t, err := timecode.Parse(input, d.flags)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	set(&d.entries[row], t)
	return nil
}

// Append adds entries at the end and renumbers.
func (d *Document) Append(entries ...Entry) {
	d.entries = append(d.entries, entries...)
	d.Renumber()
}

// Insert places e before pos. pos may equal Len to append.
func (d *Document) Insert(pos int, e Entry) error {
	if pos < 0 || pos > len(d.entries) {
		return fmt.Errorf("%w: %d (0-%d)", ErrOutOfRange, pos, len(d.entries))
	}
	d.entries = append(d.entries, Entry{})
	copy(d.entries[pos+1:], d.entries[pos:])
	d.entries[pos] = e
	d.Renumber()
	return nil
}

// Delete removes up to n entries starting at pos and renumbers.
func (d *Document) Delete(pos, n int) error {
	if n <= 0 {
		return nil
	}
	if err := d.checkRow(pos); err != nil {
		return err
	}
	end := min(len(d.entries), pos+n)
	d.entries = append(d.entries[:pos], d.entries[end:]...)
	d.Renumber()
	return nil
}

func (d *Document) Clear() {
	d.entries = nil
}

// EnsureOne gives an empty document a single blank entry to edit.
func (d *Document) EnsureOne() {
	if len(d.entries) > 0 {
		return
	}
	d.Append(Entry{EndTime: placeholderDuration})
}

// Renumber sets entry indexes to 1..N in document order.
func (d *Document) Renumber() {
	for i := range d.entries {
		d.entries[i].Index = i + 1
	}
}

// Shift moves every entry by offset. Times that would become negative
// are clamped to zero.
func (d *Document) Shift(offset time.Duration) {
	for i := range d.entries {
		d.entries[i].StartTime = max(0, d.entries[i].StartTime+offset)
		d.entries[i].EndTime = max(0, d.entries[i].EndTime+offset)
	}
}

func (d *Document) checkRow(row int) error {
	if len(d.entries) == 0 {
		return fmt.Errorf("%w: %d (document is empty)", ErrOutOfRange, row)
	}
	if row < 0 || row >= len(d.entries) {
		return fmt.Errorf("%w: %d (0-%d)", ErrOutOfRange, row, len(d.entries)-1)
	}
	return nil
}
