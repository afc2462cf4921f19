package en

import (
	"strings"

	"postag/internal/common"
	"postag/internal/filter/dic"
	"postag/internal/types"
)

// StopWordFilter drops terms whose lowercased normalised form is an
// English stopword.
type StopWordFilter struct {
}

func (StopWordFilter) Gen(tokens []types.TaggedTerm) []types.TaggedTerm {
	en, err := dic.LoadDic("en")
	if err != nil {
		common.WARN("stopword dictionary unavailable: %v", err)
		return tokens
	}
	r := make([]types.TaggedTerm, 0)
	for _, token := range tokens {
		if !en.TestWords(strings.ToLower(token.Norm)) {
			r = append(r, token)
		}
	}
	return r
}
