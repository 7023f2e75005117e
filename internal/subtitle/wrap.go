package subtitle

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLineChars is the usual broadcast line length.
const DefaultMaxLineChars = 42

// BalanceLines rewraps text that does not fit on one line of maxChars into
// two lines split at the word boundary closest to the middle. Text that
// fits, or is a single word, comes back flattened onto one line.
func BalanceLines(text string, maxChars int) string {
	words := strings.Fields(newlineNormalizer.Replace(text))
	flat := strings.Join(words, " ")
	runeCount := utf8.RuneCountInString(flat)

	if runeCount <= maxChars || len(words) < 2 {
		return flat
	}

	middle := runeCount / 2
	bestSplit := 0
	bestDiff := runeCount

	currentLen := 0
	for i, word := range words[:len(words)-1] {
		currentLen += utf8.RuneCountInString(word)
		if i > 0 {
			currentLen++ // space
		}

		diff := abs(currentLen - middle)
		if diff < bestDiff {
			bestDiff = diff
			bestSplit = i + 1
		}
	}

	return strings.Join(words[:bestSplit], " ") + "\n" + strings.Join(words[bestSplit:], " ")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
