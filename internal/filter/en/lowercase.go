package en

import (
	"strings"

	"postag/internal/common"
	"postag/internal/types"
)

// LowercaseFilter folds the normalised form to lower case.
type LowercaseFilter struct {
}

func (LowercaseFilter) Gen(tokens []types.TaggedTerm) []types.TaggedTerm {
	r := common.CopyTaggedTerms(tokens)
	for i := range r {
		r[i].Norm = strings.ToLower(r[i].Norm)
	}
	return r
}
