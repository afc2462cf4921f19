package tokenizer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postag/internal/common"
)

func init() {
	common.Silence()
}

func TestTokenizePunctuation(t *testing.T) {
	tz := NewTermTokenizer()

	split, terms := tz.Tokenize("Hello, world. This is (e.g. a) well-known test!")

	assert.Equal(t, []string{
		"Hello", ",", "world", ".", "This", "is", "(", "e.g", ".",
		"a", ")", "well-known", "test", "!",
	}, terms)
	assert.Equal(t, []bool{
		false, true, false, true, true, true, false, false, true,
		false, true, true, false, true,
	}, split)
}

func TestTokenizeUnmatchedChunk(t *testing.T) {
	tz := NewTermTokenizer()

	split, terms := tz.Tokenize("in 1999 -- 42%")

	assert.Equal(t, []string{"in", "1999", "--", "42%"}, terms)
	assert.Equal(t, []bool{true, true, true, true}, split)
}

func TestTokenizeGroups(t *testing.T) {
	tz := NewTermTokenizer()

	var cases = []struct {
		in    string
		terms []string
	}{
		{"3rd", []string{"3", "rd"}},
		{"don't", []string{"don", "'t"}},
		{"\"quoted\"", []string{"\"", "quoted", "\""}},
		{"U.S.A.", []string{"U.S.A", "."}},
		{"foo,bar.baz", []string{"foo", ",bar", ".baz"}},
	}
	for _, c := range cases {
		split, terms := tz.Tokenize(c.in)
		assert.Equal(t, c.terms, terms, c.in)
		require.Len(t, split, len(terms))
		for i := 0; i < len(split)-1; i++ {
			assert.False(t, split[i], "%s: token %d", c.in, i)
		}
		assert.True(t, split[len(split)-1], c.in)
	}
}

func TestTokenizeUnicodeLetters(t *testing.T) {
	tz := NewTermTokenizer()

	_, terms := tz.Tokenize("Straße naïve «Ärger»")
	assert.Equal(t, []string{"Straße", "naïve", "«", "Ärger", "»"}, terms)

	// a combining acute is not a letter on its own
	_, terms = tz.Tokenize("cafe\u0301")
	assert.Equal(t, []string{"cafe", "\u0301"}, terms)

	_, terms = NewTermTokenizer(WithNFC()).Tokenize("cafe\u0301")
	assert.Equal(t, []string{"caf\u00e9"}, terms)
}

func TestTokenizeEmpty(t *testing.T) {
	tz := NewTermTokenizer()

	split, terms := tz.Tokenize(" \t\n  ")
	assert.Empty(t, split)
	assert.Empty(t, terms)
}

func TestTokenizeRoundTrip(t *testing.T) {
	tz := NewTermTokenizer()

	texts := []string{
		"The cats sat on the mat.",
		"  Multiple   spaces\tand\nnewlines (here) !  ",
		"She said: \"it's well-known, e.g. in U.S. law\" -- 100% true?",
		"commas,everywhere,in,this;chunk",
	}
	for _, text := range texts {
		split, terms := tz.Tokenize(text)
		require.Len(t, split, len(terms))
		assert.Equal(t, strings.Join(strings.Fields(text), " "), common.JoinSpaced(terms, split), text)
	}
}

func TestTokenizePathologicalChunk(t *testing.T) {
	tz := NewTermTokenizer()
	chunk := strings.Repeat("-", 20000) + strings.Repeat("a-", 5000) + "!"

	start := time.Now()
	split, terms := tz.Tokenize(chunk + " next")
	assert.Less(t, time.Since(start), 2*time.Second)

	require.NotEmpty(t, terms)
	assert.Equal(t, "next", terms[len(terms)-1])
	assert.Equal(t, strings.Join([]string{chunk, "next"}, " "), common.JoinSpaced(terms, split))
}

type slowMatcher struct {
	delay time.Duration
}

func (m slowMatcher) FindStringSubmatchIndex(s string) []int {
	time.Sleep(m.delay)
	return TermSpec.FindStringSubmatchIndex(s)
}

func TestTokenizeMatchTimeoutFallsBack(t *testing.T) {
	tz := NewTermTokenizer(WithMatchTimeout(10 * time.Millisecond))
	tz.pattern = slowMatcher{delay: 300 * time.Millisecond}

	long := "(" + strings.Repeat("x", guardMinLen) + ")"
	split, terms := tz.Tokenize(long + " (short)")

	// the long chunk timed out and stays whole, the short one is matched inline
	assert.Equal(t, []string{long, "(", "short", ")"}, terms)
	assert.Equal(t, []bool{true, false, false, true}, split)
}

func TestTokenizeGuardDisabled(t *testing.T) {
	tz := NewTermTokenizer(WithMatchTimeout(0))
	tz.pattern = slowMatcher{delay: 20 * time.Millisecond}

	long := strings.Repeat("y", guardMinLen) + "."
	_, terms := tz.Tokenize(long)
	assert.Equal(t, []string{strings.Repeat("y", guardMinLen), "."}, terms)
}
