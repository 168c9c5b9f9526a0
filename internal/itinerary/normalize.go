package itinerary

import (
	"regexp"
	"strings"
)

var (
	escapedNewlineRe  = regexp.MustCompile(`\\\r?\n|\\n`)
	blankBeforeHeadRe = regexp.MustCompile(`\n(?:[ \t]*\n)+([ \t]*#{1,3})`)
	headingMarkerRe   = regexp.MustCompile(`(?m)^(?:[ \t]*#+[ \t]*)+`)
	tableRowBreakRe   = regexp.MustCompile(`\|[ \t]*\n[ \t]*\|`)
)

// maxNormalizePasses bounds the fixpoint loop. Every rewrite shortens the
// text, so the loop always ends well before this for realistic input.
const maxNormalizePasses = 16

// Normalize strips markdown and escape artifacts from model output so the
// matchers downstream see plain prose. It is idempotent.
func Normalize(text string) string {
	for i := 0; i < maxNormalizePasses; i++ {
		next := normalizePass(text)
		if next == text {
			return next
		}
		text = next
	}
	return text
}

// normalizePass applies the rewrite steps once, in order. Bold markers must go
// before heading markers because "**## Title**" shows up in model output.
func normalizePass(text string) string {
	text = escapedNewlineRe.ReplaceAllString(text, "\n")
	text = blankBeforeHeadRe.ReplaceAllString(text, "\n$1")

	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, `\*`, "*")
	text = strings.ReplaceAll(text, `\`, "")

	text = headingMarkerRe.ReplaceAllString(text, "")
	text = tableRowBreakRe.ReplaceAllString(text, "\n")
	return text
}

// splitTitle returns the first non-empty line and the remaining text.
func splitTitle(text string) (string, string) {
	text = strings.TrimSpace(text)
	title, rest, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(title), strings.TrimSpace(rest)
}

func nonEmptyLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
