// Package lexicon loads the term → tag tables the tagger looks words up in.
//
// A lexicon source is plain text, one "<term> <tag>" entry per line. Fields
// after the second are ignored and a later entry for the same term replaces
// an earlier one.
package lexicon

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"strings"

	"postag/internal/codec"
	"postag/internal/common"
)

// Lexicon is immutable once built and safe to share between goroutines.
type Lexicon struct {
	language string
	tags     map[string]string
}

// FromMap copies tags into a new Lexicon.
func FromMap(language string, tags map[string]string) *Lexicon {
	l := &Lexicon{
		language: language,
		tags:     make(map[string]string, len(tags)),
	}
	for k, v := range tags {
		l.tags[k] = v
	}
	return l
}

func (l *Lexicon) Language() string {
	return l.language
}

// Tag returns the tag stored for term. Lookups are case-sensitive.
func (l *Lexicon) Tag(term string) (string, bool) {
	tag, ok := l.tags[term]
	return tag, ok
}

func (l *Lexicon) Has(term string) bool {
	_, ok := l.tags[term]
	return ok
}

func (l *Lexicon) Len() int {
	return len(l.tags)
}

// SourceName is the file a language's lexicon is read from.
func SourceName(language string) string {
	return language + "-lexicon.txt"
}

// Load reads the lexicon for language from fsys. A gzip-compressed
// "<language>-lexicon.txt.gz" is used when the plain file is absent.
func Load(fsys fs.FS, language string) (*Lexicon, error) {
	name := SourceName(language)
	f, err := fsys.Open(name)
	compressed := false
	if errors.Is(err, fs.ErrNotExist) {
		if gf, gerr := fsys.Open(name + ".gz"); gerr == nil {
			f, err = gf, nil
			name += ".gz"
			compressed = true
		}
	}
	if err != nil {
		return nil, &LoadError{Language: language, Path: name, Err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		gc := codec.NewGzipCodec()
		gc.BindR(f)
		zr, err := gc.Reader()
		if err != nil {
			return nil, &LoadError{Language: language, Path: name, Err: err}
		}
		defer zr.Close()
		r = zr
	}

	cr := codec.NewCountReader(r)
	lex, err := Parse(language, cr)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = name
		}
		return nil, err
	}
	common.INFO("loaded %d terms for %s from %s (%d bytes)", lex.Len(), language, name, cr.Count())
	return lex, nil
}

// Parse builds a lexicon from r. Blank lines are skipped; any other line
// needs at least a term and a tag.
func Parse(language string, r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{
		language: language,
		tags:     make(map[string]string),
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, &LoadError{Language: language, Line: line, Err: ErrMalformed}
		}
		lex.tags[fields[0]] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Language: language, Line: line, Err: err}
	}
	return lex, nil
}
