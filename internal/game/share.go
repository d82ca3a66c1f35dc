package game

import (
	"fmt"
	"strings"
)

// Share renders the copy-paste summary of a finished round: a header with
// the day ordinal and miss count, one glyph per guess in submission order,
// then the page URL. The glyph comparison is exact and case-sensitive
// against the stored title, matching how the guess list is highlighted.
func Share(dayIndex, attempts int, guesses []string, answerTitle, pageURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "MovieGuessr #%d %d/%d\n", dayIndex, attempts, MaxAttempts)
	for _, guess := range guesses {
		if guess == answerTitle {
			b.WriteString("🟩")
		} else {
			b.WriteString("🟥")
		}
	}
	if len(guesses) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(pageURL)
	return b.String()
}
