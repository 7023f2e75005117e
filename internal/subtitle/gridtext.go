package subtitle

import "strings"

var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// FormatGridText flattens text onto one line for tabular display, showing
// each line break as the two characters `\N`.
func FormatGridText(text string) string {
	text = newlineNormalizer.Replace(text)
	return strings.ReplaceAll(text, "\n", `\N`)
}

// ParseGridText turns single-line grid text back into entry text. Both
// `\N` and `\n` are accepted as line breaks.
func ParseGridText(text string) string {
	text = newlineNormalizer.Replace(text)
	return strings.NewReplacer(`\N`, "\n", `\n`, "\n").Replace(text)
}
