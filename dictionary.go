package mpsent

import (
	"fmt"
	"io"
	"log/slog"
)

// A Tokenizer splits text into the terms a Dictionary scores.
type Tokenizer interface {
	Tokenize(text string) []string
}

// An Initializer provides the lexicon and default tokenizer of a concrete
// dictionary. InitDict is called first; InitTokenizer receives its result
// and is skipped when the caller supplies a Tokenizer.
type Initializer interface {
	InitDict(kind Kind) (*Lexicon, error)
	InitTokenizer(kind Kind, lex *Lexicon) (Tokenizer, error)
}

// A DictOpt represents a setting that changes the dictionary construction
// process.
//
// For example, it might replace the default tokenizer:
//
//	dict, err := mpsent.New(cfg, mpsent.UsingTokenizer(myTokenizer))
type DictOpt func(opts *DictOpts)

// DictOpts controls the Dictionary creation process:
type DictOpts struct {
	Tokenizer Tokenizer     // Tokenizer to use instead of the initializer's
	Logger    *slog.Logger  // Receives construction diagnostics
	Cache     *LexiconCache // Shares parsed lexicons between calls to New
}

func applyDictOpts(opts []DictOpt) DictOpts {
	base := DictOpts{}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	return base
}

// UsingTokenizer specifies the Tokenizer to use.
func UsingTokenizer(tokenizer Tokenizer) DictOpt {
	return func(opts *DictOpts) {
		opts.Tokenizer = tokenizer
	}
}

// WithLogger sets the logger used during construction.
func WithLogger(logger *slog.Logger) DictOpt {
	return func(opts *DictOpts) {
		opts.Logger = logger
	}
}

// UsingLexiconCache shares parsed lexicons between dictionaries built by New.
func UsingLexiconCache(cache *LexiconCache) DictOpt {
	return func(opts *DictOpts) {
		opts.Cache = cache
	}
}

// A Dictionary scores term sequences against a lexicon.
type Dictionary struct {
	kind      Kind
	lexicon   *Lexicon
	tokenizer Tokenizer
}

// NewDictionary builds a Dictionary from init. It fails if the lexicon
// cannot be loaded or if either its positive or negative set is empty.
func NewDictionary(init Initializer, kind Kind, opts ...DictOpt) (*Dictionary, error) {
	base := applyDictOpts(opts)
	logger := base.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	kind = kind.Resolve()
	lex, err := init.InitDict(kind)
	if err != nil {
		return nil, fmt.Errorf("init dictionary %s: %w", kind, err)
	}

	tokenizer := base.Tokenizer
	if tokenizer == nil {
		tokenizer, err = init.InitTokenizer(kind, lex)
		if err != nil {
			return nil, fmt.Errorf("init tokenizer %s: %w", kind, err)
		}
	}

	if err := lex.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("lexicon loaded",
		"lexicon", lex.Name,
		"kind", kind.String(),
		"terms", lex.Len(),
		"positive", lex.NumPositive(),
		"negative", lex.NumNegative())

	return &Dictionary{
		kind:      kind,
		lexicon:   lex,
		tokenizer: tokenizer,
	}, nil
}

// New builds the MPKO dictionary described by cfg.
func New(cfg Config, opts ...DictOpt) (*Dictionary, error) {
	mpko := MPKOFromDisk(cfg.LexiconDir)
	mpko.Tokenizer = cfg.Tokenizer
	mpko.Cache = applyDictOpts(opts).Cache
	return NewDictionary(mpko, cfg.Kind, opts...)
}

// Kind returns the lexicon variant the dictionary was built from.
func (d *Dictionary) Kind() Kind {
	return d.kind
}

// Lexicon returns the dictionary's term tables.
func (d *Dictionary) Lexicon() *Lexicon {
	return d.lexicon
}

// Tokenize splits text into terms with the dictionary's tokenizer.
func (d *Dictionary) Tokenize(text string) []string {
	return d.tokenizer.Tokenize(text)
}
