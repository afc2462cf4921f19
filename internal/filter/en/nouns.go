package en

import (
	"postag/internal/common"
	"postag/internal/types"
)

// NounsFilter keeps the candidate terms: singular, plural and proper nouns.
type NounsFilter struct {
}

func (NounsFilter) Gen(tokens []types.TaggedTerm) []types.TaggedTerm {
	r := make([]types.TaggedTerm, 0)
	for _, token := range tokens {
		if common.IsNounTag(token.Tag) {
			r = append(r, token)
		}
	}
	return r
}
