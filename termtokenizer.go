package mpsent

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// DefaultSeparator joins the words of an n-gram term.
const DefaultSeparator = ";"

// TokenizerConfig configures a LexiconTokenizer.
type TokenizerConfig struct {
	MaxNGram  int      `mapstructure:"max_ngram" yaml:"max_ngram"` // 0 derives it from the lexicon
	Separator string   `mapstructure:"separator" yaml:"separator"` // n-gram separator
	Segment   bool     `mapstructure:"segment" yaml:"segment"`     // keep n-grams within sentences
	Stopwords Language `mapstructure:"stopwords" yaml:"stopwords"` // empty disables stopword removal
}

// DefaultTokenizerConfig returns standard configuration
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{
		Separator: DefaultSeparator,
		Segment:   true,
	}
}

// LexiconTokenizer splits text into lower-cased words and appends every
// contiguous word run that is itself a lexicon term.
type LexiconTokenizer struct {
	lexicon   *Lexicon
	words     *wordSplitter
	sentences func(text string) []string
	stopwords *stopwordFilter
	maxNGram  int
	sep       string
}

// NewLexiconTokenizer creates a tokenizer whose n-grams are matched against
// lex.
func NewLexiconTokenizer(lex *Lexicon, cfg TokenizerConfig, opts ...SplitterOpt) (*LexiconTokenizer, error) {
	if lex == nil {
		return nil, errors.New("lexicon tokenizer requires a lexicon")
	}

	t := &LexiconTokenizer{
		lexicon:  lex,
		words:    newWordSplitter(opts...),
		maxNGram: cfg.MaxNGram,
		sep:      cfg.Separator,
	}
	if t.sep == "" {
		t.sep = DefaultSeparator
	}
	if t.maxNGram <= 0 {
		t.maxNGram = lex.MaxNGram(t.sep)
	}
	if cfg.Segment {
		segmenter, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("error loading sentence segmenter: %w", err)
		}
		t.sentences = func(text string) []string {
			var sents []string
			for _, s := range segmenter.Tokenize(text) {
				if sent := strings.TrimSpace(s.Text); sent != "" {
					sents = append(sents, sent)
				}
			}
			return sents
		}
	}
	if cfg.Stopwords != "" {
		t.stopwords = newStopwordFilter(cfg.Stopwords)
	}

	return t, nil
}

// MaxNGram returns the longest word run the tokenizer matches.
func (t *LexiconTokenizer) MaxNGram() int {
	return t.maxNGram
}

// Tokenize returns the words of text followed, sentence by sentence, by the
// matched n-gram terms.
func (t *LexiconTokenizer) Tokenize(text string) []string {
	text = norm.NFKC.String(text)
	lower := cases.Lower(language.Und)

	var terms []string
	for _, sent := range t.segment(text) {
		words := t.sentenceWords(sent, lower)
		terms = append(terms, words...)
		terms = append(terms, t.ngrams(words)...)
	}
	return terms
}

func (t *LexiconTokenizer) segment(text string) []string {
	if t.sentences == nil {
		return []string{text}
	}
	return t.sentences(text)
}

func (t *LexiconTokenizer) sentenceWords(sent string, lower cases.Caser) []string {
	tokens := t.words.split(sent)
	defer t.words.release(tokens)

	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isWordLike(tok.Text) {
			continue
		}
		word := lower.String(tok.Text)
		if t.stopwords != nil && t.stopwords.IsStopWord(word) {
			continue
		}
		words = append(words, word)
	}
	return words
}

func (t *LexiconTokenizer) ngrams(words []string) []string {
	var grams []string
	for n := 2; n <= t.maxNGram; n++ {
		for i := 0; i+n <= len(words); i++ {
			gram := strings.Join(words[i:i+n], t.sep)
			if t.lexicon.Has(gram) {
				grams = append(grams, gram)
			}
		}
	}
	return grams
}
