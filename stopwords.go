package mpsent

import (
	"strings"
	"sync"
	"unicode"

	"github.com/bbalet/stopwords"
)

// stopwordFilter reports stop words of one language. Results are memoized
// because the stopwords library only exposes a string cleaner.
type stopwordFilter struct {
	language Language
	seen     sync.Map // string -> bool
}

func newStopwordFilter(lang Language) *stopwordFilter {
	return &stopwordFilter{language: lang}
}

// IsStopWord reports whether word is removed by the language's stopword
// list. Words containing anything but letters, marks, hyphens and
// apostrophes are never stop words.
func (f *stopwordFilter) IsStopWord(word string) bool {
	if !isStopwordCandidate(word) {
		return false
	}
	if v, ok := f.seen.Load(word); ok {
		return v.(bool)
	}
	cleaned := strings.TrimSpace(stopwords.CleanString(word, string(f.language), false))
	stop := cleaned == ""
	f.seen.Store(word, stop)
	return stop
}

func isStopwordCandidate(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}
