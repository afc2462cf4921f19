package en

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"postag/internal/types"
)

var _ = []types.Filter{LowercaseFilter{}, NounsFilter{}, StemmerFilter{}, StopWordFilter{}}

func tt(term, tag, norm string) types.TaggedTerm {
	return types.TaggedTerm{Term: term, Tag: tag, Norm: norm}
}

func TestLowercase(t *testing.T) {
	in := []types.TaggedTerm{
		tt("HELLO", "NN", "HELLO"),
		tt("Dog", "NNP", "Dog"),
	}

	f := LowercaseFilter{}
	out := f.Gen(in)

	assert.Equal(t, "hello", out[0].Norm)
	assert.Equal(t, "dog", out[1].Norm)
	// the surface form and the input are untouched
	assert.Equal(t, "Dog", out[1].Term)
	assert.Equal(t, "Dog", in[1].Norm)
}

func TestStem(t *testing.T) {
	var (
		in = []types.TaggedTerm{
			tt("cat", "NN", "cat"),
			tt("fishing", "VBG", "fishing"),
			tt("fished", "VBD", "fished"),
			tt("airline", "NN", "airline"),
		}
		out = []string{
			"cat",
			"fish",
			"fish",
			"airlin",
		}
	)

	f := StemmerFilter{}
	tokens := f.Gen(in)

	for i := range tokens {
		assert.Equal(t, out[i], tokens[i].Norm)
	}
}

func TestStopWord(t *testing.T) {
	var (
		in = []types.TaggedTerm{
			tt("I", "PRP", "I"),
			tt("am", "VBP", "am"),
			tt("The", "DT", "The"),
			tt("cat", "NN", "cat"),
		}
		out = []string{"cat"}
	)

	f := StopWordFilter{}
	tokens := f.Gen(in)

	assert.Len(t, tokens, len(out))
	for i := range tokens {
		assert.Equal(t, out[i], tokens[i].Term)
	}
}

func TestNouns(t *testing.T) {
	var (
		in = []types.TaggedTerm{
			tt("A", "DT", "A"),
			tt("nouns", "NNS", "noun"),
			tt("is", "VBZ", "is"),
			tt("John", "NNP", "John"),
			tt("word", "NN", "word"),
			tt("run", "VB", "run"),
		}

		out = []string{"nouns", "John", "word"}
	)

	f := NounsFilter{}
	tokens := f.Gen(in)

	assert.Len(t, tokens, len(out))
	for i := range tokens {
		assert.Equal(t, out[i], tokens[i].Term)
	}
}
