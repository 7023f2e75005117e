package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mgpai22/substudio/internal/timecode"
)

var srtTimingRegex = regexp.MustCompile(
	`(\d{2}:\d{2}:\d{2}[.,]\d{1,3})\s*-->\s*(\d{2}:\d{2}:\d{2}[.,]\d{1,3})`,
)

type srtState int

const (
	expectIndex srtState = iota
	expectTime
	expectText
)

type SRTFile struct {
	entries []Entry
}

func parseSRTFile(path string) (*SRTFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	entries, err := ParseSRT(file)
	if err != nil {
		return nil, err
	}
	return &SRTFile{entries: entries}, nil
}

// ParseSRT reads SubRip blocks separated by blank lines. It is lenient:
// a non-numeric index line gets the next automatic number, and a block
// whose timing line is malformed keeps zero times instead of failing.
func ParseSRT(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		entries   []Entry
		current   Entry
		textLines []string
		state     = expectIndex
		autoIndex = 0
		lineNum   = 0
	)

	flush := func() {
		current.Text = strings.Join(textLines, "\n")
		entries = append(entries, current)
		current = Entry{}
		textLines = nil
	}

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if state == expectText {
				flush()
			}
			state = expectIndex
			continue
		}

		switch state {
		case expectIndex:
			if n, err := strconv.Atoi(trimmed); err == nil {
				current.Index = n
			} else {
				autoIndex++
				current.Index = autoIndex
			}
			state = expectTime

		case expectTime:
			if matches := srtTimingRegex.FindStringSubmatch(trimmed); matches != nil {
				start, err := timecode.Parse(matches[1], timecode.FlagMillis)
				if err != nil {
					return nil, fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
				}
				end, err := timecode.Parse(matches[2], timecode.FlagMillis)
				if err != nil {
					return nil, fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
				}
				current.StartTime = start
				current.EndTime = end
			}
			state = expectText

		case expectText:
			textLines = append(textLines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	// last block without a trailing blank line
	if state == expectText && len(textLines) > 0 {
		flush()
	}

	return entries, nil
}

func (f *SRTFile) Format() Format {
	return FormatSRT
}

func (f *SRTFile) Subtitle() *Subtitle {
	return &Subtitle{
		Entries: f.entries,
		Format:  string(FormatSRT),
	}
}
