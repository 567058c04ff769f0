// Package segment splits raw text into display words for timed presentation.
//
// Text is scanned once for quoted spans, each unquoted span is routed to a
// CJK or Latin tokenizer, and the resulting tokens are merged so punctuation
// and hyphen compounds stay attached to their words. Segmentation is total:
// every input, including the empty string, yields a (possibly empty) result.
package segment

import (
	"strings"
	"unicode"

	"github.com/s8508235/src-cli/internal/dictionary"
)

// coarse class of a RawToken
type Class int

const (
	ClassWord Class = iota
	ClassPunctuation
	ClassConnector
	ClassWhitespace
	ClassSymbol
	ClassQuotedBlock
)

func (c Class) String() string {
	switch c {
	case ClassWord:
		return "word"
	case ClassPunctuation:
		return "punctuation"
	case ClassConnector:
		return "connector"
	case ClassWhitespace:
		return "whitespace"
	case ClassSymbol:
		return "symbol-only"
	case ClassQuotedBlock:
		return "quoted-block"
	default:
		return "unknown"
	}
}

// intermediate unit produced by a tokenizer for one span.
// Start and End are byte offsets into the segmented text.
type RawToken struct {
	Class Class
	Text  string
	Start int
	End   int
}

// final output unit
type DisplayToken struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
}

// Segmenter turns text into display tokens. A Segmenter is immutable once
// built and safe for concurrent use.
type Segmenter struct {
	dict *dictionary.Dictionary
	hmm  bool
}

type Option func(*Segmenter)

// WithDictionary replaces the process-wide gse dictionary.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(s *Segmenter) {
		if d != nil {
			s.dict = d
		}
	}
}

// WithHMM toggles the hidden-Markov fallback for unknown CJK sequences.
func WithHMM(enabled bool) Option {
	return func(s *Segmenter) {
		s.hmm = enabled
	}
}

func New(opts ...Option) *Segmenter {
	s := &Segmenter{hmm: true}
	for _, opt := range opts {
		opt(s)
	}
	if s.dict == nil {
		s.dict = dictionary.Default()
	}
	return s
}

var defaultSegmenter = New()

// Segment splits text with the default segmenter.
func Segment(text string) []string {
	return defaultSegmenter.Segment(text)
}

func (s *Segmenter) Segment(text string) []string {
	tokens := s.Tokens(text)
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}
	return words
}

// Tokens returns the display tokens of text numbered from 0 in input order.
func (s *Segmenter) Tokens(text string) []DisplayToken {
	var words []string
	for _, span := range Scan(text) {
		if span.Mode == Quoted {
			if block, ok := quotedBlock(span); ok {
				words = append(words, block)
			}
			continue
		}

		var raw []RawToken
		mode := Classify(span.Text)
		switch mode {
		case ScriptCJK:
			raw = tokenizeCJK(s.cutter(), s.hmm, span)
		default:
			raw = tokenizeLatin(span)
		}
		words = append(words, merge(raw, mode)...)
	}

	tokens := make([]DisplayToken, len(words))
	for i, w := range words {
		tokens[i] = DisplayToken{Position: i, Text: w}
	}
	return tokens
}

// Load forces the dictionary to initialise and returns its error.
func (s *Segmenter) Load() error {
	return s.dict.Load()
}

func (s *Segmenter) cutter() dictionary.Cutter {
	c, err := s.dict.Cutter()
	if err != nil {
		return dictionary.Whole{}
	}
	return c
}

// quoted span as a single display word. A closed block is kept even when
// empty; an unclosed one with nothing after its delimiter produces no word.
func quotedBlock(span Span) (string, bool) {
	if !span.Terminated && isWhitespace(strings.TrimPrefix(span.Text, string(span.Delim))) {
		return "", false
	}
	return span.Text, true
}

func hasAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func isWhitespace(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isPunctuation(s string) bool {
	switch s {
	case ",", ".", "!", "?", "。", "、", "！", "？":
		return true
	}
	return false
}
