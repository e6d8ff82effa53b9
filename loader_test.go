package mpsent

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

func mustParse(t *testing.T, data string) *Lexicon {
	t.Helper()
	lex, err := ParseLexicon(strings.NewReader(data), "test.csv")
	if err != nil {
		t.Fatalf("ParseLexicon: %v", err)
	}
	return lex
}

func TestParseLexicon(t *testing.T) {
	lex := mustParse(t, "word,polarity,intensity\n"+
		"hike,1,0.8\n"+
		"cut,-1,-0.7\n"+
		"stable,0,0.05\n"+
		"x,1,0.5\n"+
		"금,1,0.3\n")

	tests := []struct {
		term     string
		positive bool
		negative bool
		present  bool
		polarity float64
	}{
		{"hike", true, false, true, 0.8},
		{"cut", false, true, true, -0.7},
		{"stable", false, false, true, 0.05},
		{"x", false, false, false, 0},
		{"금", false, false, false, 0},
		{"word", false, false, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := lex.IsPositive(tt.term); got != tt.positive {
				t.Errorf("IsPositive(%q) = %v, want %v", tt.term, got, tt.positive)
			}
			if got := lex.IsNegative(tt.term); got != tt.negative {
				t.Errorf("IsNegative(%q) = %v, want %v", tt.term, got, tt.negative)
			}
			pol, ok := lex.Polarity(tt.term)
			if ok != tt.present {
				t.Errorf("Polarity(%q) present = %v, want %v", tt.term, ok, tt.present)
			}
			if pol != tt.polarity {
				t.Errorf("Polarity(%q) = %v, want %v", tt.term, pol, tt.polarity)
			}
		})
	}

	if lex.NumPositive() != 1 || lex.NumNegative() != 1 || lex.Len() != 3 {
		t.Errorf("got %d positive, %d negative, %d terms; want 1, 1, 3",
			lex.NumPositive(), lex.NumNegative(), lex.Len())
	}
}

func TestParseLexiconLineEndings(t *testing.T) {
	lex := mustParse(t, "\ufeffword,polarity,intensity\r\nhike,1, 0.8\r\n\r\ncut, -1,-0.7\r\n")

	if got := lex.PolarityScore("hike"); got != 0.8 {
		t.Errorf("PolarityScore(hike) = %v, want 0.8", got)
	}
	if !lex.IsNegative("cut") {
		t.Error("expected cut to be negative")
	}
	if lex.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lex.Len())
	}
}

func TestParseLexiconLaterRecordWins(t *testing.T) {
	lex := mustParse(t, "hike,1,0.8\nhike,-1,-0.2\n")

	if lex.IsPositive("hike") {
		t.Error("hike should have left the positive set")
	}
	if !lex.IsNegative("hike") {
		t.Error("hike should be negative")
	}
	if got := lex.PolarityScore("hike"); got != -0.2 {
		t.Errorf("PolarityScore(hike) = %v, want -0.2", got)
	}
}

func TestParseLexiconErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		line  int
		field string
	}{
		{"bad class", "word,polarity,intensity\nhike,abc,0.5\n", 2, "polarity_class"},
		{"bad score", "hike,1,high\n", 1, "polarity_score"},
		{"short word still parsed", "hike,1,0.8\nx,1,?\n", 2, "polarity_score"},
		{"missing fields", "hike,1\n", 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex, err := ParseLexicon(strings.NewReader(tt.data), "bad.csv")
			if err == nil {
				t.Fatal("expected an error")
			}
			if lex != nil {
				t.Error("expected no lexicon on failure")
			}
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("expected ErrMalformedRecord, got %v", err)
			}
			var recErr *RecordError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected *RecordError, got %T", err)
			}
			if recErr.Line != tt.line || recErr.Field != tt.field {
				t.Errorf("got line %d field %q, want line %d field %q",
					recErr.Line, recErr.Field, tt.line, tt.field)
			}
			if !strings.Contains(err.Error(), "bad.csv") {
				t.Errorf("error %q does not name the lexicon", err)
			}
		})
	}
}

func TestLoadLexiconNotFound(t *testing.T) {
	_, err := LoadLexicon(fstest.MapFS{}, "mpko/missing.csv")
	if !errors.Is(err, ErrLexiconNotFound) {
		t.Errorf("expected ErrLexiconNotFound, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadLexiconPolarityRoundTrip(t *testing.T) {
	filesys := os.DirFS("testdata/lexicon")
	lex, err := LoadLexicon(filesys, "mpko/mp_polarity_lexicon_mkt.csv")
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}

	want := map[string]float64{
		"hike":      0.8,
		"cut":       -0.7,
		"tighten":   0.55,
		"inflation": 0.35,
		"easing":    -0.6,
		"slowdown":  -0.45,
		"rate;hike": 0.9,
		"rate;cut":  -0.85,
		"stable":    0.05,
		"인상":        0.62,
		"인하":        -0.58,
	}
	if lex.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", lex.Len(), len(want))
	}
	for term, pol := range want {
		if got := lex.TermScore(term, ByPolarity); got != pol {
			t.Errorf("TermScore(%q, ByPolarity) = %v, want %v", term, got, pol)
		}
	}
	if lex.Has("x") {
		t.Error("single-character word should be discarded")
	}
}
