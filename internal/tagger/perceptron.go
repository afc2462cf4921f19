package tagger

import (
	"fmt"
	"sync"

	"github.com/jdkato/prose/tag"

	"postag/internal/common"
	"postag/internal/lexicon"
	"postag/internal/tokenizer"
	"postag/internal/types"
)

// PerceptronTagger replaces the lexicon lookup of the first pass with the
// averaged perceptron model shipped with prose. The lexicon still backs the
// correction rules, so sentence-start demotion and plural normalisation
// behave as in LexiconTagger.
type PerceptronTagger struct {
	lex       *lexicon.Lexicon
	tokenizer types.Tokenizer
	rules     []types.Rule

	once  sync.Once
	model *tag.PerceptronTagger
}

var _ types.Tagger = (*PerceptronTagger)(nil)

// NewPerceptronTagger builds a tagger around lex; a nil lex behaves as an
// empty lexicon.
func NewPerceptronTagger(lex *lexicon.Lexicon, tz types.Tokenizer) *PerceptronTagger {
	if lex == nil {
		lex = lexicon.FromMap("", nil)
	}
	if tz == nil {
		tz = tokenizer.NewTermTokenizer()
	}
	return &PerceptronTagger{
		lex:       lex,
		tokenizer: tz,
		rules:     DefaultRules(),
	}
}

func (p *PerceptronTagger) perceptron() *tag.PerceptronTagger {
	p.once.Do(func() {
		common.DINFO("loading perceptron model")
		p.model = tag.NewPerceptronTagger()
	})
	return p.model
}

func (p *PerceptronTagger) Tokenize(text string) ([]bool, []string) {
	return p.tokenizer.Tokenize(text)
}

func (p *PerceptronTagger) Tag(terms []string) []types.TaggedTerm {
	tagged := make([]types.TaggedTerm, len(terms))
	if len(terms) == 0 {
		return tagged
	}
	tokens := p.perceptron().Tag(terms)
	for i, term := range terms {
		t := types.TagDefaultNoun
		if i < len(tokens) && tokens[i].Tag != "" {
			t = tokens[i].Tag
		}
		tagged[i] = types.TaggedTerm{Term: term, Tag: t, Norm: term}
	}
	ApplyRules(tagged, p.lex, p.rules...)
	return tagged
}

func (p *PerceptronTagger) Process(text string) ([]bool, []types.TaggedTerm) {
	split, terms := p.Tokenize(text)
	return split, p.Tag(terms)
}

func (p *PerceptronTagger) String() string {
	return fmt.Sprintf("<PerceptronTagger for %s>", p.lex.Language())
}
