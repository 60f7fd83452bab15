package common

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorDanger  = 0xED4245 // Red
)

var printer = message.NewPrinter(language.English)

// FormatCount formats a count with thousand separators
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent formats a probability in [0, 1] as a percentage with two decimals
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

// FormatDuration rounds a duration for display
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}
