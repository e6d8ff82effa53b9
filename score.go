package mpsent

import (
	"gonum.org/v1/gonum/floats"
)

// Epsilon keeps Polarity and Subjectivity defined when no term carries
// sentiment.
const Epsilon = 1e-6

// Score aggregates the term scores of terms.
//
// Polarity is (Positive+Negative) divided by Positive-Negative when mode is
// ByCount and by the number of terms when mode is ByPolarity. Subjectivity
// is the share of terms with a nonzero score.
func (l *Lexicon) Score(terms []string, mode ScoreMode) Score {
	var pos, neg []float64
	for _, term := range terms {
		s := l.TermScore(term, mode)
		if s > 0 {
			pos = append(pos, s)
		} else if s < 0 {
			neg = append(neg, s)
		}
	}

	sPos := floats.Sum(pos)
	sNeg := floats.Sum(neg)

	denominator := sPos - sNeg
	if mode == ByPolarity {
		denominator = float64(len(terms))
	}

	return Score{
		Positive:     sPos,
		Negative:     sNeg,
		Polarity:     (sPos + sNeg) / (denominator + Epsilon),
		Subjectivity: float64(len(pos)+len(neg)) / (float64(len(terms)) + Epsilon),
	}
}

// TermScore returns the score of a single term.
func (d *Dictionary) TermScore(term string, mode ScoreMode) float64 {
	return d.lexicon.TermScore(term, mode)
}

// Score aggregates Positive, Negative, Polarity and Subjectivity over terms.
func (d *Dictionary) Score(terms []string, mode ScoreMode) Score {
	return d.lexicon.Score(terms, mode)
}

// ScoreText tokenizes text and scores the resulting terms.
func (d *Dictionary) ScoreText(text string, mode ScoreMode) Score {
	return d.Score(d.Tokenize(text), mode)
}
