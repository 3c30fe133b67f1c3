package bot

import (
	"strings"
	"unicode/utf16"
)

// MaxMessageLength is Telegram's limit on a message's text, counted in
// UTF-16 code units.
const MaxMessageLength = 4096

func textLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// SplitMessage breaks text into chunks of at most limit units, cutting at
// line boundaries. A single line longer than limit is cut mid-line.
func SplitMessage(text string, limit int) []string {
	if textLength(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, strings.TrimRight(current.String(), "\n"))
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		for textLength(line) > limit {
			flush()
			head, rest := cutUnits(line, limit)
			chunks = append(chunks, head)
			line = rest
		}
		n := textLength(line)
		if currentLen+n > limit {
			flush()
		}
		current.WriteString(line)
		currentLen += n
	}
	flush()

	return chunks
}

func cutUnits(s string, limit int) (string, string) {
	units := 0
	for i, r := range s {
		size := 1
		if r >= 0x10000 {
			size = 2
		}
		if units+size > limit {
			return s[:i], s[i:]
		}
		units += size
	}
	return s, ""
}
