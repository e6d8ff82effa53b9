package mpsent

import (
	"fmt"
	"sort"
	"strings"
)

// Lexicon holds the term tables of a loaded lexicon file. A Lexicon is
// immutable once built and is safe for concurrent use.
type Lexicon struct {
	Name string

	posdict map[string]float64 // +1 for hawkish terms
	negdict map[string]float64 // -1 for dovish terms
	poldict map[string]float64 // continuous polarity for every retained term
}

func newLexicon(name string) *Lexicon {
	return &Lexicon{
		Name:    name,
		posdict: make(map[string]float64),
		negdict: make(map[string]float64),
		poldict: make(map[string]float64),
	}
}

// add records a term. A term is in at most one of the count sets; the most
// recent class wins.
func (l *Lexicon) add(term string, class, polarity float64) {
	l.poldict[term] = polarity
	switch {
	case class > 0:
		l.posdict[term] = 1
		delete(l.negdict, term)
	case class < 0:
		l.negdict[term] = -1
		delete(l.posdict, term)
	default:
		delete(l.posdict, term)
		delete(l.negdict, term)
	}
}

// CountScore returns +1 for positive terms, -1 for negative terms, and 0
// otherwise.
func (l *Lexicon) CountScore(term string) float64 {
	if s, ok := l.posdict[term]; ok {
		return s
	}
	if s, ok := l.negdict[term]; ok {
		return s
	}
	return 0
}

// PolarityScore returns the term's polarity value, or 0 if unknown.
func (l *Lexicon) PolarityScore(term string) float64 {
	return l.poldict[term]
}

// TermScore returns the score of a single term under mode.
func (l *Lexicon) TermScore(term string, mode ScoreMode) float64 {
	if mode == ByPolarity {
		return l.PolarityScore(term)
	}
	return l.CountScore(term)
}

// Polarity returns the term's polarity value and whether it is present.
func (l *Lexicon) Polarity(term string) (float64, bool) {
	s, ok := l.poldict[term]
	return s, ok
}

// IsPositive reports whether term is in the positive set.
func (l *Lexicon) IsPositive(term string) bool {
	_, ok := l.posdict[term]
	return ok
}

// IsNegative reports whether term is in the negative set.
func (l *Lexicon) IsNegative(term string) bool {
	_, ok := l.negdict[term]
	return ok
}

// Has reports whether term was retained from the lexicon file.
func (l *Lexicon) Has(term string) bool {
	_, ok := l.poldict[term]
	return ok
}

// NumPositive returns the size of the positive set.
func (l *Lexicon) NumPositive() int { return len(l.posdict) }

// NumNegative returns the size of the negative set.
func (l *Lexicon) NumNegative() int { return len(l.negdict) }

// Len returns the number of retained terms.
func (l *Lexicon) Len() int { return len(l.poldict) }

// Terms returns every retained term in sorted order.
func (l *Lexicon) Terms() []string {
	terms := make([]string, 0, len(l.poldict))
	for term := range l.poldict {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// MaxNGram returns the largest number of sep-joined words in any term.
func (l *Lexicon) MaxNGram(sep string) int {
	longest := 0
	for term := range l.poldict {
		n := 1
		if sep != "" {
			n = strings.Count(term, sep) + 1
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}

// Validate returns ErrEmptyLexicon unless both count sets are non-empty.
func (l *Lexicon) Validate() error {
	if len(l.posdict) == 0 || len(l.negdict) == 0 {
		return fmt.Errorf("%s: %w (positive=%d, negative=%d)",
			l.Name, ErrEmptyLexicon, len(l.posdict), len(l.negdict))
	}
	return nil
}
