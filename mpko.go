package mpsent

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// mpkoDir is the folder holding the MPKO lexicons within a lexicon
// directory.
const mpkoDir = "mpko"

// MPKO is the Korean monetary policy dictionary. Positive terms are
// hawkish and negative terms are dovish.
type MPKO struct {
	Name      string          // Identifies FS within Cache
	FS        fs.FS           // Lexicon directory; files live under mpko/
	Cache     *LexiconCache   // Optional; shares parsed lexicons
	Tokenizer TokenizerConfig // Options for the default tokenizer
}

// MPKOFromDisk reads lexicons from the user-provided lexicon directory.
func MPKOFromDisk(dir string) *MPKO {
	name := dir
	if abs, err := filepath.Abs(dir); err == nil {
		name = abs
	}
	return &MPKO{
		Name:      name,
		FS:        os.DirFS(dir),
		Tokenizer: DefaultTokenizerConfig(),
	}
}

// NewMPKO creates a dictionary that reads lexicons from filesys.
func NewMPKO(name string, filesys fs.FS) *MPKO {
	return &MPKO{
		Name:      name,
		FS:        filesys,
		Tokenizer: DefaultTokenizerConfig(),
	}
}

// InitDict loads the lexicon file selected by kind.
func (m *MPKO) InitDict(kind Kind) (*Lexicon, error) {
	file := path.Join(mpkoDir, kind.FileName())
	key := m.Name + ":" + file

	if m.Cache != nil {
		if lex, ok := m.Cache.Get(key); ok {
			return lex, nil
		}
	}

	lex, err := LoadLexicon(m.FS, file)
	if err != nil {
		return nil, err
	}

	if m.Cache != nil {
		m.Cache.Set(key, lex)
	}
	return lex, nil
}

// InitTokenizer builds a LexiconTokenizer over lex.
func (m *MPKO) InitTokenizer(kind Kind, lex *Lexicon) (Tokenizer, error) {
	return NewLexiconTokenizer(lex, m.Tokenizer)
}
