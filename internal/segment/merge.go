package segment

// merge folds the raw tokens of one span into display words.
//
// At each position, in order:
//   - a connector glued to a following token joins previous + "-" + next
//   - punctuation is appended to the previous word
//   - anything with a letter or digit (any CJK word) becomes a new word
//
// Everything else is dropped. Nothing is carried between spans.
func merge(tokens []RawToken, script Script) []string {
	words := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		cur := tokens[i]
		last := len(words) - 1

		if cur.Class == ClassConnector && last >= 0 && i+1 < len(tokens) {
			next := tokens[i+1]
			if next.Class != ClassWhitespace && next.Start == cur.End {
				words[last] += cur.Text + next.Text
				i++
				continue
			}
		}

		if cur.Class == ClassPunctuation && last >= 0 {
			words[last] += cur.Text
			continue
		}

		if (script == ScriptCJK && cur.Class == ClassWord) || hasAlphanumeric(cur.Text) {
			words = append(words, cur.Text)
		}
	}
	return words
}
