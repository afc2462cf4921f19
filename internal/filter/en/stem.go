package en

import (
	"postag/internal/common"
	"postag/internal/types"

	snowballeng "github.com/kljensen/snowball/english"
)

// StemmerFilter replaces the normalised form with its Snowball stem.
type StemmerFilter struct {
}

func (StemmerFilter) Gen(tokens []types.TaggedTerm) []types.TaggedTerm {
	r := common.CopyTaggedTerms(tokens)
	for i := range r {
		r[i].Norm = snowballeng.Stem(r[i].Norm, false)
	}
	return r
}
