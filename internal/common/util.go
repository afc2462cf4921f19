package common

import (
	"strings"

	"postag/internal/types"
)

// JoinSpaced rebuilds text from tokens, writing a single space after every
// token whose split flag is set except the last.
func JoinSpaced(terms []string, split []bool) string {
	var b strings.Builder
	for i, t := range terms {
		b.WriteString(t)
		if i < len(terms)-1 && i < len(split) && split[i] {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// SurfaceTerms extracts the Term field of every element.
func SurfaceTerms(tagged []types.TaggedTerm) []string {
	out := make([]string, len(tagged))
	for i, t := range tagged {
		out[i] = t.Term
	}
	return out
}

func CopyTaggedTerms(src []types.TaggedTerm) []types.TaggedTerm {
	dst := make([]types.TaggedTerm, len(src))
	copy(dst, src)
	return dst
}

// IsNounTag reports whether tag is one of NN, NNS, NNP, NNPS.
func IsNounTag(tag string) bool {
	switch tag {
	case types.TagNoun, types.TagPluralNoun, types.TagProperNoun, types.TagPluralProperNoun:
		return true
	}
	return false
}
