// Package timecode parses and formats subtitle timecodes in the several
// textual forms users type into an editor or find in subtitle files.
package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalid is returned when an input matches none of the enabled formats.
var ErrInvalid = errors.New("invalid timecode")

// Flags selects which input formats Parse accepts.
type Flags int

const (
	// "H:MM:SS:FF", FF in hundredths
	FlagCentis Flags = 1 << iota
	// "H:MM:SS", "H:MM:SS.mmm" or "H:MM:SS,mmm"
	FlagMillis
	// "M:SS", "M:SS.ff" or "M:SS,ff"
	FlagMinutes
	// "SS", "SS.ff" or "SS,ff"
	FlagSeconds
	// reject minute or second fields of 60 and above instead of clamping
	FlagStrict
)

// DefaultFlags enables every input format, clamping out of range fields.
const DefaultFlags = FlagCentis | FlagMillis | FlagMinutes | FlagSeconds

// Has reports whether all bits of f are set.
func (flags Flags) Has(f Flags) bool {
	return flags&f == f
}

var (
	centisRegex  = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2}):(\d{1,2})$`)
	millisRegex  = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2})(?:[.,](\d+))?$`)
	minutesRegex = regexp.MustCompile(`^(\d+):(\d{1,2})(?:[.,](\d{1,3}))?$`)
	secondsRegex = regexp.MustCompile(`^(\d+)(?:[.,](\d{1,3}))?$`)
)

// Parse converts a timecode string into a duration. Blank input is zero.
// Formats are tried from the most to the least informative, restricted to
// the ones enabled in flags.
func Parse(s string, flags Flags) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	strict := flags.Has(FlagStrict)

	parsers := []struct {
		flag  Flags
		parse func(string, bool) (time.Duration, bool, error)
	}{
		{FlagCentis, parseCentis},
		{FlagMillis, parseMillis},
		{FlagMinutes, parseMinutes},
		{FlagSeconds, parseSeconds},
	}

	for _, p := range parsers {
		if !flags.Has(p.flag) {
			continue
		}
		d, ok, err := p.parse(s, strict)
		if err != nil {
			return 0, err
		}
		if ok {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
}

// ParseOffset parses a timecode with an optional leading sign.
func ParseOffset(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	sign := time.Duration(1)
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("%w: empty offset", ErrInvalid)
	}
	d, err := Parse(s, DefaultFlags)
	if err != nil {
		return 0, err
	}
	return sign * d, nil
}

func parseCentis(s string, strict bool) (time.Duration, bool, error) {
	m := centisRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false, nil
	}
	h := atoi(m[1])
	mins, secs, err := clampMinSec(s, atoi(m[2]), atoi(m[3]), strict)
	if err != nil {
		return 0, false, err
	}
	cs := atoi(m[4])
	return compose(h, mins, secs) + time.Duration(cs)*10*time.Millisecond, true, nil
}

func parseMillis(s string, strict bool) (time.Duration, bool, error) {
	m := millisRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false, nil
	}
	h := atoi(m[1])
	mins, secs, err := clampMinSec(s, atoi(m[2]), atoi(m[3]), strict)
	if err != nil {
		return 0, false, err
	}
	ms := 0
	if m[4] != "" {
		ms = atoi(normalizeMillis(m[4]))
	}
	return compose(h, mins, secs) + time.Duration(ms)*time.Millisecond, true, nil
}

func parseMinutes(s string, strict bool) (time.Duration, bool, error) {
	m := minutesRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false, nil
	}
	mins, secs, err := clampMinSec(s, atoi(m[1]), atoi(m[2]), strict)
	if err != nil {
		return 0, false, err
	}
	cs := 0
	if m[3] != "" {
		cs = atoi(normalizeCentis(m[3]))
	}
	return compose(0, mins, secs) + time.Duration(cs)*10*time.Millisecond, true, nil
}

// the bare seconds form has no upper bound: "90" is a minute and a half
func parseSeconds(s string, _ bool) (time.Duration, bool, error) {
	m := secondsRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false, nil
	}
	sec := atoi(m[1])
	cs := 0
	if m[2] != "" {
		cs = atoi(normalizeCentis(m[2]))
	}
	return time.Duration(sec)*time.Second + time.Duration(cs)*10*time.Millisecond, true, nil
}

// one digit means tenths, extra digits are dropped
func normalizeCentis(f string) string {
	switch {
	case len(f) == 1:
		return f + "0"
	case len(f) > 2:
		return f[:2]
	}
	return f
}

// read as a decimal fraction: "5" is 500ms, "05" is 50ms
func normalizeMillis(f string) string {
	if len(f) > 3 {
		f = f[:3]
	}
	for len(f) < 3 {
		f += "0"
	}
	return f
}

func clampMinSec(input string, mins, secs int, strict bool) (int, int, error) {
	if mins >= 60 || secs >= 60 {
		if strict {
			return 0, 0, fmt.Errorf(
				"%w: %q: minutes and seconds must be below 60",
				ErrInvalid,
				input,
			)
		}
		mins = min(mins, 59)
		secs = min(secs, 59)
	}
	return mins, secs, nil
}

func compose(h, m, s int) time.Duration {
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second
}

// inputs are regex-validated digit runs
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
