package mpsent

import (
	"fmt"
	"strings"
	"sync"
)

// A Token represents an individual word or punctuation symbol produced by
// the word splitter, along with its byte offsets in the source text.
type Token struct {
	Text  string // The token's actual content.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// TokenPool manages a pool of Token objects to reduce GC pressure
type TokenPool struct {
	pool sync.Pool
}

// NewTokenPool creates a new token pool
func NewTokenPool() *TokenPool {
	return &TokenPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Token{}
			},
		},
	}
}

// Get retrieves a token from the pool
func (tp *TokenPool) Get() *Token {
	return tp.pool.Get().(*Token)
}

// Put returns a token to the pool
func (tp *TokenPool) Put(token *Token) {
	token.Text = ""
	token.Start = 0
	token.End = 0
	tp.pool.Put(token)
}

// Language is an ISO 639-1 code used to select a stopword list.
type Language string

const (
	English Language = "en"
	Korean  Language = "ko"
)

// Kind selects one of the lexicon variants shipped with a dictionary.
type Kind int

const (
	// KindMarket is the lexicon induced with a Naive Bayes classifier over
	// 5-gram features labeled by movements of the call rate.
	KindMarket Kind = 0
	// KindLexical is the lexicon built by polarity induction and seed
	// propagation over 5-gram tokens.
	KindLexical Kind = 1
	// KindUncertainty is the policy uncertainty lexicon.
	KindUncertainty Kind = 3
)

var lexiconFiles = map[Kind]string{
	KindMarket:      "mp_polarity_lexicon_mkt.csv",
	KindLexical:     "mp_polarity_lexicon_lex.csv",
	KindUncertainty: "mp_uncertainty_lexicon.csv",
}

// Resolve maps unknown kinds to KindMarket.
func (k Kind) Resolve() Kind {
	if _, ok := lexiconFiles[k]; ok {
		return k
	}
	return KindMarket
}

// FileName returns the lexicon file backing k, after resolution.
func (k Kind) FileName() string {
	return lexiconFiles[k.Resolve()]
}

func (k Kind) String() string {
	switch k.Resolve() {
	case KindLexical:
		return "lexical"
	case KindUncertainty:
		return "uncertainty"
	default:
		return "market"
	}
}

// ScoreMode selects how a term contributes to a Score.
type ScoreMode int

const (
	// ByCount scores lexicon classes: +1 positive, -1 negative.
	ByCount ScoreMode = iota
	// ByPolarity sums the continuous polarity values.
	ByPolarity
)

func (m ScoreMode) String() string {
	if m == ByPolarity {
		return "polarity"
	}
	return "count"
}

// ParseScoreMode accepts "count" or "polarity" (case-insensitive).
func ParseScoreMode(s string) (ScoreMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "count", "by_count":
		return ByCount, nil
	case "polarity", "by_polarity":
		return ByPolarity, nil
	}
	return ByCount, fmt.Errorf("%w: %q", ErrUnknownScoreMode, s)
}

// Tags used by Score.Map.
const (
	TagPolarity     = "Polarity"
	TagSubjectivity = "Subjectivity"
	TagPositive     = "Positive"
	TagNegative     = "Negative"
)

// Score holds the aggregate sentiment metrics of a term sequence.
type Score struct {
	Positive     float64 // Sum of strictly positive term scores
	Negative     float64 // Sum of strictly negative term scores (<= 0)
	Polarity     float64 // Net sentiment, roughly -1.0 (dovish) to 1.0 (hawkish)
	Subjectivity float64 // Share of terms carrying any sentiment, 0.0 to 1.0
}

// Map returns the score keyed by its tag names.
func (s Score) Map() map[string]float64 {
	return map[string]float64{
		TagPositive:     s.Positive,
		TagNegative:     s.Negative,
		TagPolarity:     s.Polarity,
		TagSubjectivity: s.Subjectivity,
	}
}

// Tone is the policy stance implied by a Score.
type Tone string

const (
	Hawkish Tone = "hawkish"
	Dovish  Tone = "dovish"
	Neutral Tone = "neutral"
)

// Tone classifies the score's polarity. Polarities within threshold of zero
// are Neutral.
func (s Score) Tone(threshold float64) Tone {
	switch {
	case s.Polarity > threshold:
		return Hawkish
	case s.Polarity < -threshold:
		return Dovish
	default:
		return Neutral
	}
}
