package segment

import (
	"unicode"
	"unicode/utf8"
)

type Mode int

const (
	Unquoted Mode = iota
	Quoted
)

func (m Mode) String() string {
	if m == Quoted {
		return "quoted"
	}
	return "unquoted"
}

// maximal substring of the input tagged quoted or unquoted.
// Text is input[Start:End].
type Span struct {
	Mode  Mode
	Text  string
	Start int
	End   int
	// opening quote rune of a Quoted span
	Delim rune
	// false for a quoted span cut off by end of input
	Terminated bool
}

// Scan partitions text into quoted and unquoted spans in one pass.
// Concatenating the Text of the returned spans yields text exactly.
func Scan(text string) []Span {
	var (
		spans  []Span
		start  int
		quoted bool
		delim  rune
	)

	flush := func(end int, mode Mode, terminated bool) {
		if end <= start {
			return
		}
		span := Span{
			Mode:       mode,
			Text:       text[start:end],
			Start:      start,
			End:        end,
			Terminated: terminated,
		}
		if mode == Quoted {
			span.Delim = delim
		}
		spans = append(spans, span)
		start = end
	}

	for i, r := range text {
		if r != '"' && r != '\'' {
			continue
		}

		if quoted {
			if r != delim {
				continue
			}
			flush(i+utf8.RuneLen(r), Quoted, true)
			quoted = false
			delim = 0
			continue
		}

		if r == '\'' && isContraction(text[i+1:]) {
			continue
		}

		flush(i, Unquoted, true)
		quoted = true
		delim = r
	}

	if quoted {
		flush(len(text), Quoted, false)
	} else {
		flush(len(text), Unquoted, true)
	}
	return spans
}

// an apostrophe followed directly by a letter joins the word around it
func isContraction(rest string) bool {
	r, size := utf8.DecodeRuneInString(rest)
	return size > 0 && r != utf8.RuneError && unicode.IsLetter(r)
}
