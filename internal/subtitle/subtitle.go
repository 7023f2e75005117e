package subtitle

import (
	"errors"
	"time"
)

// ErrOutOfRange is returned when a row index does not address an entry.
var ErrOutOfRange = errors.New("entry index out of range")

// represents single subtitle entry
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// Duration is the displayed time, never negative.
func (e Entry) Duration() time.Duration {
	if e.EndTime < e.StartTime {
		return 0
	}
	return e.EndTime - e.StartTime
}

// CPS is the reading speed of the entry in characters per second.
func (e Entry) CPS() int {
	return ComputeCPS(e.Text, e.StartTime, e.EndTime)
}

// represents complete subtitle track
type Subtitle struct {
	Entries []Entry
	Format  string
}

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
	FormatASS Format = "ass"
)

// interface for writing subtitles to files
type Writer interface {
	Write(subtitle *Subtitle, path string) error
}
