package mpsent

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordSplitter splits a sentence into words and punctuation.
type wordSplitter struct {
	specialRE  *regexp.Regexp
	sanitizer  *strings.Replacer
	splitCases []string
	suffixes   []string
	prefixes   []string
	tokenPool  *TokenPool
}

// SplitterOpt configures the word splitter of a LexiconTokenizer.
type SplitterOpt func(*wordSplitter)

// UsingSpecialRE keeps tokens matching x intact.
func UsingSpecialRE(x *regexp.Regexp) SplitterOpt {
	return func(s *wordSplitter) {
		s.specialRE = x
	}
}

// UsingSanitizer replaces the quote-folding sanitizer.
func UsingSanitizer(x *strings.Replacer) SplitterOpt {
	return func(s *wordSplitter) {
		s.sanitizer = x
	}
}

// UsingSuffixes sets the single-byte suffixes split from the end of a word.
func UsingSuffixes(x []string) SplitterOpt {
	return func(s *wordSplitter) {
		s.suffixes = x
	}
}

// UsingPrefixes sets the single-byte prefixes split from the start of a word.
func UsingPrefixes(x []string) SplitterOpt {
	return func(s *wordSplitter) {
		s.prefixes = x
	}
}

// UsingContractions sets the contractions split from the word they follow.
func UsingContractions(x []string) SplitterOpt {
	return func(s *wordSplitter) {
		s.splitCases = x
	}
}

func newWordSplitter(opts ...SplitterOpt) *wordSplitter {
	s := &wordSplitter{
		specialRE:  internalRE,
		sanitizer:  sanitizer,
		splitCases: contractions,
		suffixes:   suffixes,
		prefixes:   prefixes,
		tokenPool:  NewTokenPool(),
	}
	for _, applyOpt := range opts {
		applyOpt(s)
	}
	return s
}

// split returns the tokens of text. Offsets refer to the sanitized text.
func (s *wordSplitter) split(text string) []*Token {
	var tokens []*Token

	clean := s.sanitizer.Replace(text)
	start := -1
	for i, r := range clean {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, s.splitSpan(clean[start:i], start)...)
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s.splitSpan(clean[start:], start)...)
	}

	return tokens
}

// release returns tokens to the pool.
func (s *wordSplitter) release(tokens []*Token) {
	for _, tok := range tokens {
		s.tokenPool.Put(tok)
	}
}

func (s *wordSplitter) newToken(text string, start int) *Token {
	tok := s.tokenPool.Get()
	tok.Text = text
	tok.Start = start
	tok.End = start + len(text)
	return tok
}

func (s *wordSplitter) appendToken(toks []*Token, text string, start int) []*Token {
	if strings.TrimSpace(text) != "" {
		toks = append(toks, s.newToken(text, start))
	}
	return toks
}

// splitSpan peels prefixes, contractions and suffixes off a
// whitespace-delimited span.
//
// $100 -> [$, 100], don't -> [do, n't], Well) -> [Well, )].
func (s *wordSplitter) splitSpan(span string, offset int) []*Token {
	var tokens, suffs []*Token

	last := 0
	for span != "" && utf8.RuneCountInString(span) != last {
		if s.specialRE.MatchString(span) {
			tokens = s.appendToken(tokens, span, offset)
			break
		}
		last = utf8.RuneCountInString(span)
		lower := strings.ToLower(span)
		if hasAnyPrefix(span, s.prefixes) {
			tokens = s.appendToken(tokens, span[:1], offset)
			span = span[1:]
			offset++
		} else if idx := hasAnyIndex(lower, s.splitCases); idx > 0 {
			tokens = s.appendToken(tokens, span[:idx], offset)
			offset += idx
			span = span[idx:]
		} else if hasAnySuffix(span, s.suffixes) {
			end := offset + len(span) - 1
			suffs = append([]*Token{s.newToken(span[len(span)-1:], end)}, suffs...)
			span = span[:len(span)-1]
		} else {
			tokens = s.appendToken(tokens, span, offset)
			break
		}
	}

	return append(tokens, suffs...)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// hasAnyIndex returns the position of the first case found in s, or -1.
func hasAnyIndex(s string, cases []string) int {
	for _, c := range cases {
		if idx := strings.Index(s, c); idx >= 0 && len(s) > len(c) {
			return idx
		}
	}
	return -1
}

// isWordLike reports whether text contains a letter or a digit.
func isWordLike(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$|^\d+(?:[.,]\d+)+%?$`)
var sanitizer = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
	"&rsquo;", "'")
var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'", "%"}
var prefixes = []string{"$", "(", `"`, "["}
