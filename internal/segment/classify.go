package segment

// tokenization strategy for an unquoted span
type Script int

const (
	ScriptLatin Script = iota
	ScriptCJK
)

func (s Script) String() string {
	if s == ScriptCJK {
		return "cjk"
	}
	return "latin"
}

// Classify routes the whole span to the CJK tokenizer when any rune is a
// CJK unified ideograph or kana, and to the Latin tokenizer otherwise.
func Classify(text string) Script {
	for _, r := range text {
		if isCJK(r) {
			return ScriptCJK
		}
	}
	return ScriptLatin
}

func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3040 && r <= 0x30FF)
}
