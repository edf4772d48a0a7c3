package game

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var counterPrinter = message.NewPrinter(language.English)

// formatInterval formats a tick interval as "200ms" or "1.0s".
func formatInterval(d time.Duration) string {
	if d >= time.Second {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// formatCount renders a counter with thousands separators.
func formatCount(n int) string {
	return counterPrinter.Sprintf("%d", n)
}
