package segment

import (
	"strings"

	"github.com/s8508235/src-cli/internal/dictionary"
)

// tokenizeCJK cuts span with the dictionary oracle. Whitespace units are
// discarded; punctuation marks keep their own class for the merger.
func tokenizeCJK(cutter dictionary.Cutter, hmm bool, span Span) []RawToken {
	units := cutter.Cut(span.Text, hmm)
	tokens := make([]RawToken, 0, len(units))

	cursor := 0
	for _, unit := range units {
		start := cursor
		if idx := strings.Index(span.Text[cursor:], unit); idx >= 0 {
			start = cursor + idx
			cursor = start + len(unit)
		} else if end := cursor + len(unit); end <= len(span.Text) &&
			strings.EqualFold(span.Text[cursor:end], unit) {
			// oracle changed the case; keep the input's text
			unit = span.Text[cursor:end]
			cursor = end
		}

		text := strings.TrimSpace(unit)
		if text == "" {
			continue
		}
		start += strings.Index(unit, text)

		class := ClassWord
		if isPunctuation(text) {
			class = ClassPunctuation
		}
		tokens = append(tokens, RawToken{
			Class: class,
			Text:  text,
			Start: span.Start + start,
			End:   span.Start + start + len(text),
		})
	}
	return tokens
}
