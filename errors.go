package mpsent

import (
	"errors"
	"fmt"
)

var (
	// ErrLexiconNotFound is returned when a lexicon file does not exist.
	ErrLexiconNotFound = errors.New("lexicon file not found")
	// ErrMalformedRecord is matched by every *RecordError.
	ErrMalformedRecord = errors.New("malformed lexicon record")
	// ErrEmptyLexicon is returned when a lexicon has no positive or no
	// negative terms.
	ErrEmptyLexicon = errors.New("lexicon has no positive or negative terms")
	// ErrUnknownScoreMode is returned by ParseScoreMode.
	ErrUnknownScoreMode = errors.New("unknown score mode")
)

// A RecordError reports a lexicon line that could not be parsed.
type RecordError struct {
	Lexicon string // Name of the lexicon being parsed
	Line    int    // 1-based line number
	Field   string // Offending column, if any
	Err     error  // Underlying cause
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s:%d: %v", e.Lexicon, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: field %s: %v", e.Lexicon, e.Line, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedRecord.
func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
