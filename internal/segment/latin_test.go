package segment

import (
	"strings"
	"testing"
)

func TestTokenizeLatin(t *testing.T) {
	type want struct {
		class Class
		text  string
	}
	tests := []struct {
		input string
		want  []want
	}{
		{"", nil},
		{"  \t", nil},
		{
			"Hello, world-test.",
			[]want{
				{ClassWord, "Hello"},
				{ClassPunctuation, ","},
				{ClassWord, "world"},
				{ClassConnector, "-"},
				{ClassWord, "test"},
				{ClassPunctuation, "."},
			},
		},
		{"There's", []want{{ClassWord, "There's"}}},
		{"a $ b", []want{{ClassWord, "a"}, {ClassWord, "b"}}},
		{"3.14!", []want{{ClassWord, "3.14"}, {ClassPunctuation, "!"}}},
		{"em \u2014 dash", []want{{ClassWord, "em"}, {ClassWord, "dash"}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := tokenizeLatin(Span{Mode: Unquoted, Text: tt.input, End: len(tt.input)})
			if len(got) != len(tt.want) {
				t.Fatalf("tokenizeLatin(%q) = %+v, want %d tokens", tt.input, got, len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].Class != w.class || got[i].Text != w.text {
					t.Errorf(
						"tokenizeLatin(%q)[%d] = {%s %q}, want {%s %q}",
						tt.input, i, got[i].Class, got[i].Text, w.class, w.text,
					)
				}
				if got[i].Text != tt.input[got[i].Start:got[i].End] {
					t.Errorf("tokenizeLatin(%q)[%d] offsets [%d:%d] do not match %q", tt.input, i, got[i].Start, got[i].End, got[i].Text)
				}
			}
		})
	}
}

func TestTokenizeLatinOffsetsFollowSpan(t *testing.T) {
	text := `say "x" a -b`
	spans := Scan(text)
	last := spans[len(spans)-1]

	got := tokenizeLatin(last)
	if len(got) != 3 {
		t.Fatalf("tokenizeLatin(%q) = %+v, want 3 tokens", last.Text, got)
	}
	for _, tok := range got {
		if text[tok.Start:tok.End] != tok.Text {
			t.Errorf("token %q has offsets [%d:%d] into %q", tok.Text, tok.Start, tok.End, text)
		}
	}
	if got[1].Class != ClassConnector || got[2].Start != got[1].End {
		t.Errorf("expected tight connector before %q, got %+v", got[2].Text, got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Script
	}{
		{"", ScriptLatin},
		{"plain ascii", ScriptLatin},
		{"café naïve", ScriptLatin},
		{"한국어", ScriptLatin},
		{"mostly latin 世", ScriptCJK},
		{"ひらがな", ScriptCJK},
		{"カタカナ", ScriptCJK},
		{"\u4e00", ScriptCJK},
		{"\u9fff", ScriptCJK},
		{"\ua000", ScriptLatin},
		{"，。", ScriptLatin},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeCJK(t *testing.T) {
	text := "x 処理、 完了"
	span := Span{Mode: Unquoted, Text: text, End: len(text)}
	got := tokenizeCJK(newVocabCutter("処理", "完了"), true, span)

	want := []struct {
		class Class
		text  string
	}{
		{ClassWord, "x"},
		{ClassWord, "処理"},
		{ClassPunctuation, "、"},
		{ClassWord, "完了"},
	}
	if len(got) != len(want) {
		t.Fatalf("tokenizeCJK(%q) = %+v, want %d tokens", text, got, len(want))
	}
	for i, w := range want {
		if got[i].Class != w.class || got[i].Text != w.text {
			t.Errorf("tokenizeCJK(%q)[%d] = {%s %q}, want {%s %q}", text, i, got[i].Class, got[i].Text, w.class, w.text)
		}
		if text[got[i].Start:got[i].End] != got[i].Text {
			t.Errorf("tokenizeCJK(%q)[%d] offsets [%d:%d] do not match %q", text, i, got[i].Start, got[i].End, got[i].Text)
		}
	}
}

// lowerCutter mimics an oracle that folds Latin letters to lowercase
type lowerCutter struct{ *vocabCutter }

func (c lowerCutter) Cut(text string, hmm ...bool) []string {
	units := c.vocabCutter.Cut(text, hmm...)
	for i, u := range units {
		units[i] = strings.ToLower(u)
	}
	return units
}

func TestTokenizeCJKKeepsInputCase(t *testing.T) {
	text := "Go 世界 ABC"
	span := Span{Mode: Unquoted, Text: text, Start: 3, End: 3 + len(text)}
	got := tokenizeCJK(lowerCutter{newVocabCutter("Go", "世界", "ABC")}, true, span)

	want := []string{"Go", "世界", "ABC"}
	if len(got) != len(want) {
		t.Fatalf("tokenizeCJK(%q) = %+v, want %q", text, got, want)
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("tokenizeCJK(%q)[%d] = %q, want %q", text, i, got[i].Text, w)
		}
		if text[got[i].Start-3:got[i].End-3] != w {
			t.Errorf("tokenizeCJK(%q)[%d] offsets [%d:%d] do not match %q", text, i, got[i].Start, got[i].End, w)
		}
	}
}
