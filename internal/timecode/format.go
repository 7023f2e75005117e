package timecode

import (
	"fmt"
	"strings"
	"time"
)

// Layout is an output form for Format.
type Layout string

const (
	LayoutCentis  Layout = "centis"  // H:MM:SS:FF
	LayoutMillis  Layout = "millis"  // H:MM:SS.mmm
	LayoutMinutes Layout = "minutes" // M:SS:FF, minutes not wrapped at 60
	LayoutSeconds Layout = "seconds" // S.FF, seconds not wrapped at 60
	LayoutSRT     Layout = "srt"     // HH:MM:SS,mmm
	LayoutVTT     Layout = "vtt"     // HH:MM:SS.mmm
	LayoutASS     Layout = "ass"     // H:MM:SS.cc
)

// Layouts lists every layout in display order.
var Layouts = []Layout{
	LayoutCentis,
	LayoutMillis,
	LayoutMinutes,
	LayoutSeconds,
	LayoutSRT,
	LayoutVTT,
	LayoutASS,
}

// ParseLayout resolves a layout by name, case-insensitively.
func ParseLayout(name string) (Layout, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, l := range Layouts {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown time layout %q", name)
}

// precision of the last field
func (l Layout) unit() time.Duration {
	switch l {
	case LayoutMillis, LayoutSRT, LayoutVTT:
		return time.Millisecond
	default:
		return 10 * time.Millisecond
	}
}

// Format renders d in the given layout. Negative durations render as zero.
// The value is rounded to the layout's precision before it is split into
// fields, so 1.996s in centiseconds becomes 2.00.
func Format(d time.Duration, layout Layout) string {
	if d < 0 {
		d = 0
	}
	unit := layout.unit()
	ticks := int64(d.Round(unit) / unit)
	perSecond := int64(time.Second / unit)

	frac := ticks % perSecond
	totalSec := ticks / perSecond
	s := totalSec % 60
	totalMin := totalSec / 60
	m := totalMin % 60
	h := totalMin / 60

	switch layout {
	case LayoutMillis:
		return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, frac)
	case LayoutMinutes:
		return fmt.Sprintf("%d:%02d:%02d", totalMin, s, frac)
	case LayoutSeconds:
		return fmt.Sprintf("%d.%02d", totalSec, frac)
	case LayoutSRT:
		return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, frac)
	case LayoutVTT:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, frac)
	case LayoutASS:
		return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, frac)
	default:
		return fmt.Sprintf("%d:%02d:%02d:%02d", h, m, s, frac)
	}
}
