package types

// Part-of-speech tags the correction rules know about.
const (
	TagDefaultNoun      = "NND" // unresolved, absent from the lexicon
	TagNoun             = "NN"
	TagPluralNoun       = "NNS"
	TagProperNoun       = "NNP"
	TagPluralProperNoun = "NNPS"
	TagModal            = "MD"
	TagAdverb           = "RB"
	TagVerb             = "VB"
	TagSentenceEnd      = "."
)

// TaggedTerm is the (surface, tag, normalized) triple produced by a Tagger.
// Rules mutate Tag and Norm in place, and Term only when demoting a
// sentence-initial capital.
type TaggedTerm struct {
	Term string `json:"term"`
	Tag  string `json:"tag"`
	Norm string `json:"norm"`
}

// Lookup is the read-only view of a lexicon the tagger depends on.
type Lookup interface {
	Tag(term string) (string, bool)
	Has(term string) bool
}

type Tokenizer interface {
	// Tokenize returns the tokens of text and, for each token, whether it
	// was followed by whitespace in the source.
	Tokenize(text string) (split []bool, terms []string)
}

type Tagger interface {
	Tokenizer
	Tag(terms []string) []TaggedTerm
	Process(text string) (split []bool, tagged []TaggedTerm)
}

// Rule inspects the sequence at idx and may mutate any of its elements.
type Rule func(terms []TaggedTerm, idx int, lex Lookup)

// Filter post-processes a tagged sequence, e.g. keeping candidate nouns.
type Filter interface {
	Gen([]TaggedTerm) []TaggedTerm
}

type Cache interface {
	Get(string) (interface{}, bool)
	Put(string, interface{})
	Len() int
	Clear()
}
