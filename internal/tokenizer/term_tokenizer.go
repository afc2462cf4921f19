package tokenizer

import (
	"context"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"postag/internal/common"
)

// TermSpec splits a whitespace-delimited chunk into three groups:
// leading non-letters, a letter core that may contain single hyphens or
// periods ("e.g", "well-known"), and trailing non-letters plus any letters
// that follow them.
var TermSpec = regexp.MustCompile(`([^\p{L}]*)((?:\p{L}?[-.]?)*\p{L})([^\p{L}]*\p{L}*)`)

const (
	DefaultMatchTimeout = time.Second
	// chunks shorter than this are matched inline, without a deadline.
	guardMinLen = 64
)

type matcher interface {
	FindStringSubmatchIndex(s string) []int
}

// TermTokenizer implements types.Tokenizer on top of TermSpec.
type TermTokenizer struct {
	pattern matcher
	timeout time.Duration
	nfc     bool
}

type Option func(*TermTokenizer)

// WithMatchTimeout bounds the time spent matching a single chunk. A chunk
// whose match does not finish in d is kept whole. d <= 0 disables the guard.
func WithMatchTimeout(d time.Duration) Option {
	return func(t *TermTokenizer) {
		t.timeout = d
	}
}

// WithNFC composes the input to Unicode NFC before splitting, so letters
// written with combining marks stay inside one word.
func WithNFC() Option {
	return func(t *TermTokenizer) {
		t.nfc = true
	}
}

func NewTermTokenizer(opts ...Option) *TermTokenizer {
	t := &TermTokenizer{
		pattern: TermSpec,
		timeout: DefaultMatchTimeout,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Tokenize splits text on whitespace and every chunk on TermSpec. split[i]
// is true when terms[i] was followed by whitespace in text; the last token
// cut from a chunk always is.
func (t *TermTokenizer) Tokenize(text string) (split []bool, terms []string) {
	if t.nfc {
		text = norm.NFC.String(text)
	}
	for _, chunk := range strings.Fields(text) {
		loc := t.match(chunk)
		if loc == nil {
			terms = append(terms, chunk)
			split = append(split, true)
			continue
		}
		for g := 1; g <= 3; g++ {
			start, end := loc[2*g], loc[2*g+1]
			if start < 0 || start == end {
				continue
			}
			terms = append(terms, chunk[start:end])
			split = append(split, false)
		}
		// keep whatever the pattern left behind, e.g. ".baz" in "foo,bar.baz"
		if loc[1] < len(chunk) {
			terms = append(terms, chunk[loc[1]:])
			split = append(split, false)
		}
		split[len(split)-1] = true
	}
	return split, terms
}

func (t *TermTokenizer) match(chunk string) []int {
	if t.timeout <= 0 || len(chunk) < guardMinLen {
		return t.pattern.FindStringSubmatchIndex(chunk)
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	done := make(chan []int, 1)
	go func() {
		done <- t.pattern.FindStringSubmatchIndex(chunk)
	}()

	select {
	case loc := <-done:
		return loc
	case <-ctx.Done():
		common.WARN("term match gave up after %v on a %d-byte chunk, keeping it whole", t.timeout, len(chunk))
		return nil
	}
}
