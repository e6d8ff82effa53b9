package mpsent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"unicode/utf8"
)

// headerWord marks the header line of a lexicon file.
const headerWord = "word"

// LoadLexicon reads the lexicon stored at file within fsys.
func LoadLexicon(fsys fs.FS, file string) (*Lexicon, error) {
	f, err := fsys.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrLexiconNotFound, file, err)
		}
		return nil, fmt.Errorf("error opening lexicon file: %w", err)
	}
	defer f.Close()

	return ParseLexicon(f, file)
}

// ParseLexicon builds a Lexicon from comma-separated records of the form
//
//	word,polarity_class,polarity_score
//
// The sign of polarity_class places the word in the positive or negative
// set; polarity_score is kept for every word longer than one character.
func ParseLexicon(r io.Reader, name string) (*Lexicon, error) {
	lex := newLexicon(name)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if line == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		fields := strings.Split(text, ",")
		word := strings.TrimSpace(fields[0])
		if word == headerWord {
			continue
		}
		if len(fields) < 3 {
			return nil, &RecordError{
				Lexicon: name,
				Line:    line,
				Err:     fmt.Errorf("expected 3 fields, got %d", len(fields)),
			}
		}

		class, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, &RecordError{Lexicon: name, Line: line, Field: "polarity_class", Err: err}
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, &RecordError{Lexicon: name, Line: line, Field: "polarity_score", Err: err}
		}

		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		lex.add(word, class, score)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lexicon %s: %w", name, err)
	}

	return lex, nil
}
