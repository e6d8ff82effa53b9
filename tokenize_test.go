package mpsent

import (
	"reflect"
	"testing"
)

func TestWordSplitter(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"The Bank raised rates.", []string{"The", "Bank", "raised", "rates", "."}},
		{"Don't cut rates!", []string{"Do", "n't", "cut", "rates", "!"}},
		{"($100)", []string{"(", "$", "100", ")"}},
		{"the U.S. economy", []string{"the", "U.S.", "economy"}},
		{"rates rose 2.5%.", []string{"rates", "rose", "2.5%", "."}},
		{"“hawkish” tone", []string{`"`, "hawkish", `"`, "tone"}},
		{"기준금리 인상", []string{"기준금리", "인상"}},
		{"   ", nil},
	}

	splitter := newWordSplitter()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tokens := splitter.split(tt.text)
			var got []string
			for _, tok := range tokens {
				got = append(got, tok.Text)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("split(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWordSplitterOffsets(t *testing.T) {
	text := "Rates rose, sharply."
	tokens := newWordSplitter().split(text)

	for _, tok := range tokens {
		if text[tok.Start:tok.End] != tok.Text {
			t.Errorf("token %q has offsets [%d:%d] covering %q",
				tok.Text, tok.Start, tok.End, text[tok.Start:tok.End])
		}
	}
}

func TestSplitterOptions(t *testing.T) {
	splitter := newWordSplitter(UsingSuffixes([]string{"!"}), UsingContractions(nil))

	var got []string
	for _, tok := range splitter.split("don't, stop!") {
		got = append(got, tok.Text)
	}
	want := []string{"don't,", "stop", "!"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("split = %q, want %q", got, want)
	}
}
