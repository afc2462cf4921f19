// Package engine wires configuration, lexicons, a tagging strategy and the
// candidate-term filters into the pipeline the CLI and server run.
package engine

import (
	"fmt"

	"postag/internal/common"
	"postag/internal/config"
	"postag/internal/filter/en"
	"postag/internal/lexicon"
	"postag/internal/tagger"
	"postag/internal/tokenizer"
	"postag/internal/types"
)

type Engine struct {
	cfg     *config.Config
	tagger  types.Tagger
	filters []types.Filter
}

// Result of one Process call. Candidates is only set when filters are in
// use; Split and Terms are always parallel.
type Result struct {
	Split      []bool             `json:"split"`
	Terms      []types.TaggedTerm `json:"terms"`
	Candidates []types.TaggedTerm `json:"candidates,omitempty"`
}

// FilterOptions selects the post-tagging filters, applied in field order.
type FilterOptions struct {
	Nouns     bool
	Stopwords bool
	Lowercase bool
	Stem      bool
}

func (o FilterOptions) filters() []types.Filter {
	var fs []types.Filter
	if o.Nouns {
		fs = append(fs, en.NounsFilter{})
	}
	if o.Stopwords {
		fs = append(fs, en.StopWordFilter{})
	}
	if o.Lowercase {
		fs = append(fs, en.LowercaseFilter{})
	}
	if o.Stem {
		fs = append(fs, en.StemmerFilter{})
	}
	return fs
}

// New loads the configured language and builds the configured tagger.
func New(cfg *config.Config, opts FilterOptions) (*Engine, error) {
	return NewWithRegistry(cfg, lexicon.NewDirRegistry(cfg.LexiconDir, cfg.CacheSize), opts)
}

func NewWithRegistry(cfg *config.Config, r *lexicon.Registry, opts FilterOptions) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lex, err := r.Lexicon(cfg.Language)
	if err != nil {
		return nil, err
	}

	tzOpts := []tokenizer.Option{tokenizer.WithMatchTimeout(cfg.MatchTimeout)}
	if cfg.NFC {
		tzOpts = append(tzOpts, tokenizer.WithNFC())
	}
	tz := tokenizer.NewTermTokenizer(tzOpts...)

	var tg types.Tagger
	switch cfg.Engine {
	case config.EnginePerceptron:
		tg = tagger.NewPerceptronTagger(lex, tz)
	default:
		tg = tagger.New(lex, tagger.WithTokenizer(tz))
	}
	common.INFO("engine ready: %v", tg)

	return &Engine{
		cfg:     cfg,
		tagger:  tg,
		filters: opts.filters(),
	}, nil
}

func (e *Engine) Tagger() types.Tagger {
	return e.tagger
}

func (e *Engine) Tokenize(text string) ([]bool, []string) {
	return e.tagger.Tokenize(text)
}

func (e *Engine) Process(text string) Result {
	split, tagged := e.tagger.Process(text)
	res := Result{Split: split, Terms: tagged}
	if len(e.filters) > 0 {
		out := tagged
		for _, f := range e.filters {
			out = f.Gen(out)
		}
		res.Candidates = out
	}
	common.DINFO("processed %d tokens", len(tagged))
	return res
}

func (e *Engine) String() string {
	return fmt.Sprintf("<Engine %s/%s>", e.cfg.Engine, e.cfg.Language)
}
