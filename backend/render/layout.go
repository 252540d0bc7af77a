package render

import (
	"strings"
	"unicode/utf8"
)

// DefaultWrapWidth is the wrap width, in characters, used when none is configured.
const DefaultWrapWidth = 68

// markupStripper removes heading and bold markers by literal replacement. Longer heading markers
// come first so "### " is not left as "#".
var markupStripper = strings.NewReplacer(
	"### ", "",
	"## ", "",
	"# ", "",
	"**", "",
)

// StripMarkup removes markdown heading and bold markers, leaving the text itself.
func StripMarkup(text string) string {
	return markupStripper.Replace(text)
}

// Layout strips markup from text and greedily wraps every line to at most width characters.
// Blank source lines become a single blank output line. A word longer than width is kept whole on
// its own line.
func Layout(text string, width int) []string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var lines []string
	for _, line := range strings.Split(StripMarkup(text), "\n") {
		if strings.TrimSpace(line) == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, Wrap(line, width)...)
	}
	return lines
}

// Wrap packs whole words into lines of at most width characters.
func Wrap(line string, width int) []string {
	var (
		out     []string
		current strings.Builder
		length  int
	)
	for _, word := range strings.Fields(line) {
		n := utf8.RuneCountInString(word)
		if length > 0 && length+1+n > width {
			out = append(out, current.String())
			current.Reset()
			length = 0
		}
		if length > 0 {
			current.WriteByte(' ')
			length++
		}
		current.WriteString(word)
		length += n
	}
	if length > 0 {
		out = append(out, current.String())
	}
	return out
}
