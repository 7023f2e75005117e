// Package readability grades subtitle reading speed against CPS thresholds
// and derives the warning shade used when displaying it.
package readability

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Severity of a CPS value.
type Severity int

const (
	OK Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ok"
	}
}

// Thresholds bound acceptable reading speed. Values above Warn start to
// shade, values at or above Error are fully shaded.
type Thresholds struct {
	Warn  int
	Error int
}

// DefaultThresholds are common broadcast limits.
var DefaultThresholds = Thresholds{Warn: 15, Error: 20}

// NewThresholds builds thresholds, raising errorCPS to warnCPS if needed.
func NewThresholds(warnCPS, errorCPS int) Thresholds {
	return Thresholds{Warn: warnCPS, Error: max(errorCPS, warnCPS)}
}

func (t Thresholds) Validate() error {
	if t.Warn <= 0 {
		return fmt.Errorf("warn CPS must be positive, got %d", t.Warn)
	}
	if t.Error < t.Warn {
		return fmt.Errorf("error CPS %d is below warn CPS %d", t.Error, t.Warn)
	}
	return nil
}

// Classify grades a CPS value.
func (t Thresholds) Classify(cps int) Severity {
	switch {
	case cps <= t.Warn:
		return OK
	case cps >= t.Error:
		return Error
	default:
		return Warn
	}
}

// Alpha is the shading strength for cps in [0, 1]. It is 0 up to the warn
// threshold and grows linearly to 1 at the error threshold.
func (t Thresholds) Alpha(cps int) float64 {
	if cps <= t.Warn {
		return 0
	}
	errorCPS := max(t.Error, t.Warn)
	alpha := float64(cps-t.Warn+1) / float64(errorCPS-t.Warn+1)
	return min(max(alpha, 0), 1)
}

var (
	errorColor = colorful.Color{R: 1, G: 0, B: 0}
	black      = colorful.Color{R: 0, G: 0, B: 0}
)

// Shade blends the error red over a hex background color by alpha and
// returns the result as hex. An unparsable base is treated as white.
func Shade(base string, alpha float64) string {
	return blend(errorColor, base, alpha)
}

// TextShade darkens a hex text color towards black by alpha.
func TextShade(base string, alpha float64) string {
	return blend(black, base, alpha)
}

// straight per-channel RGB mix, alpha of fg over bg
func blend(fg colorful.Color, base string, alpha float64) string {
	bg, err := colorful.Hex(base)
	if err != nil {
		bg = colorful.Color{R: 1, G: 1, B: 1}
	}
	alpha = min(max(alpha, 0), 1)
	return bg.BlendRgb(fg, alpha).Clamped().Hex()
}
