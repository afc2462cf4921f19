package lexicon

import (
	"errors"
	"fmt"
)

// ErrMalformed marks a lexicon line with fewer than two fields.
var ErrMalformed = errors.New("malformed lexicon line")

// LoadError reports why the lexicon for a language could not be built.
// It is the only error the tagging pipeline ever returns.
type LoadError struct {
	Language string
	Path     string
	Line     int
	Err      error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("initialization failed for language %q", e.Language)
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	return msg + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
