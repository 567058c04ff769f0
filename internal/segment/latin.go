package segment

import (
	"github.com/rivo/uniseg"
)

// tokenizeLatin splits span on Unicode word boundaries (UAX #29).
// Whitespace and symbol-only units are dropped here; their byte ranges still
// count, so the merger can tell a tight "-" from a spaced one.
func tokenizeLatin(span Span) []RawToken {
	var tokens []RawToken

	rest := span.Text
	offset := span.Start
	state := -1
	for len(rest) > 0 {
		var unit string
		unit, rest, state = uniseg.FirstWordInString(rest, state)
		start := offset
		offset += len(unit)

		class := classifyLatin(unit)
		if class == ClassWhitespace || class == ClassSymbol {
			continue
		}
		tokens = append(tokens, RawToken{
			Class: class,
			Text:  unit,
			Start: start,
			End:   offset,
		})
	}
	return tokens
}

func classifyLatin(unit string) Class {
	switch {
	case isWhitespace(unit):
		return ClassWhitespace
	case unit == "-":
		return ClassConnector
	case isPunctuation(unit):
		return ClassPunctuation
	case hasAlphanumeric(unit):
		return ClassWord
	default:
		return ClassSymbol
	}
}
