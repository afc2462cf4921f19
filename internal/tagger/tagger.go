// Package tagger assigns part-of-speech tags to tokens from a lexicon and
// refines them with a fixed set of correction rules.
package tagger

import (
	"fmt"

	"postag/internal/lexicon"
	"postag/internal/tokenizer"
	"postag/internal/types"
)

// LexiconTagger tags tokens by lexicon lookup, falling back to NND, then
// runs the correction rules over the whole sequence.
type LexiconTagger struct {
	lex       *lexicon.Lexicon
	tokenizer types.Tokenizer
	rules     []types.Rule
}

var _ types.Tagger = (*LexiconTagger)(nil)

type Option func(*LexiconTagger)

func WithTokenizer(tz types.Tokenizer) Option {
	return func(t *LexiconTagger) {
		t.tokenizer = tz
	}
}

// WithRules replaces DefaultRules.
func WithRules(rules ...types.Rule) Option {
	return func(t *LexiconTagger) {
		t.rules = rules
	}
}

func New(lex *lexicon.Lexicon, opts ...Option) *LexiconTagger {
	t := &LexiconTagger{
		lex:       lex,
		tokenizer: tokenizer.NewTermTokenizer(),
		rules:     DefaultRules(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Initialize loads the lexicon for language through r. A failure is always
// a *lexicon.LoadError.
func Initialize(r *lexicon.Registry, language string, opts ...Option) (*LexiconTagger, error) {
	lex, err := r.Lexicon(language)
	if err != nil {
		return nil, err
	}
	return New(lex, opts...), nil
}

func (t *LexiconTagger) Lexicon() *lexicon.Lexicon {
	return t.lex
}

func (t *LexiconTagger) Tokenize(text string) ([]bool, []string) {
	return t.tokenizer.Tokenize(text)
}

func (t *LexiconTagger) Tag(terms []string) []types.TaggedTerm {
	tagged := Assign(terms, t.lex)
	ApplyRules(tagged, t.lex, t.rules...)
	return tagged
}

func (t *LexiconTagger) Process(text string) ([]bool, []types.TaggedTerm) {
	split, terms := t.Tokenize(text)
	return split, t.Tag(terms)
}

func (t *LexiconTagger) String() string {
	return fmt.Sprintf("<LexiconTagger for %s>", t.lex.Language())
}

// Assign builds the initial tagged sequence: the lexicon tag of every term,
// or NND when the term is unknown, with the normalised form equal to the
// term.
func Assign(terms []string, lex types.Lookup) []types.TaggedTerm {
	tagged := make([]types.TaggedTerm, len(terms))
	for i, term := range terms {
		tag, ok := lex.Tag(term)
		if !ok {
			tag = types.TagDefaultNoun
		}
		tagged[i] = types.TaggedTerm{Term: term, Tag: tag, Norm: term}
	}
	return tagged
}

// ApplyRules runs every rule at index 0, then every rule at index 1, and
// so on. A rule sees what earlier rules wrote anywhere in the sequence,
// including elements ahead of the current index.
func ApplyRules(tagged []types.TaggedTerm, lex types.Lookup, rules ...types.Rule) {
	for idx := range tagged {
		for _, rule := range rules {
			rule(tagged, idx, lex)
		}
	}
}
