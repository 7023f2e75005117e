package subtitle

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// shortest duration CPS is divided by
const minCPSDuration = 10 * time.Millisecond

// ComputeCPS returns characters per second for text shown from start to
// end, rounded to the nearest integer. Line breaks are not counted.
// Entries that end at or before their start have a CPS of 0.
func ComputeCPS(text string, start, end time.Duration) int {
	if end <= start {
		return 0
	}
	dur := max(end-start, minCPSDuration)

	flat := strings.NewReplacer("\r", "", "\n", "").Replace(text)
	chars := utf8.RuneCountInString(flat)

	return int(math.Round(float64(chars) / dur.Seconds()))
}
