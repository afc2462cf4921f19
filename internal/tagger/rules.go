package tagger

import (
	"strings"

	"postag/internal/types"
)

// DefaultRules returns the correction rules in the order they must run.
func DefaultRules() []types.Rule {
	return []types.Rule{
		CorrectDefaultNounTag,
		VerifyProperNounAtSentenceStart,
		DetermineVerbAfterModal,
		NormalizePluralForms,
	}
}

// CorrectDefaultNounTag decides whether a word missing from the lexicon is
// a plural or a singular noun.
func CorrectDefaultNounTag(terms []types.TaggedTerm, idx int, _ types.Lookup) {
	t := &terms[idx]
	if t.Tag != types.TagDefaultNoun {
		return
	}
	if strings.HasSuffix(t.Term, "s") {
		t.Tag = types.TagPluralNoun
		t.Norm = t.Term[:len(t.Term)-1]
	} else {
		t.Tag = types.TagNoun
	}
}

// VerifyProperNounAtSentenceStart demotes a capitalised proper noun that
// opens a sentence when its lowercase form is a known common noun.
func VerifyProperNounAtSentenceStart(terms []types.TaggedTerm, idx int, lex types.Lookup) {
	t := &terms[idx]
	if t.Tag != types.TagProperNoun && t.Tag != types.TagPluralProperNoun {
		return
	}
	if idx > 0 && terms[idx-1].Tag != types.TagSentenceEnd {
		return
	}
	lower := strings.ToLower(t.Term)
	tag, ok := lex.Tag(lower)
	if !ok || (tag != types.TagNoun && tag != types.TagPluralNoun) {
		return
	}
	t.Term = lower
	t.Norm = lower
	t.Tag = tag
}

// DetermineVerbAfterModal turns the first noun after a modal, skipping
// adverbs, into a verb: "can (really) run".
func DetermineVerbAfterModal(terms []types.TaggedTerm, idx int, _ types.Lookup) {
	if terms[idx].Tag != types.TagModal {
		return
	}
	for i := idx + 1; i < len(terms); i++ {
		if terms[i].Tag == types.TagAdverb {
			continue
		}
		if terms[i].Tag == types.TagNoun {
			terms[i].Tag = types.TagVerb
		}
		return
	}
}

// NormalizePluralForms finds the singular of a plural noun that the
// default-noun rule has not already normalised, trying -s, -es and -ies/-y
// against the lexicon in that order.
func NormalizePluralForms(terms []types.TaggedTerm, idx int, lex types.Lookup) {
	t := &terms[idx]
	if t.Tag != types.TagPluralNoun && t.Tag != types.TagPluralProperNoun {
		return
	}
	if t.Term != t.Norm {
		return
	}
	if s, ok := strings.CutSuffix(t.Term, "s"); ok && lex.Has(s) {
		t.Norm = s
		return
	}
	if s, ok := strings.CutSuffix(t.Term, "es"); ok && lex.Has(s) {
		t.Norm = s
		return
	}
	if s, ok := strings.CutSuffix(t.Term, "ies"); ok && lex.Has(s+"y") {
		t.Norm = s + "y"
	}
}
