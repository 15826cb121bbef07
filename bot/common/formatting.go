package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatCount formats a counter with thousand separators
func FormatCount(n int64) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}

	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}
	return result.String()
}

// FormatLatency renders a duration as whole milliseconds
func FormatLatency(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Round(time.Millisecond).Milliseconds())
}
