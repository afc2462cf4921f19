package main

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postag/internal/common"
	"postag/internal/engine"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	common.Silence()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	common.Silence()
	return out.String()
}

func TestTagCommand(t *testing.T) {
	out := execute(t, "tag", "--lexicon-dir", "testdata", "--log-level", "error", "testdata/input.txt")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "cats\tNNS\tcat", lines[1])
	assert.Equal(t, "run\tVB\trun", lines[4])
	assert.Equal(t, "Widgets\tNNS\tWidget", lines[6])
}

func TestTagCommandJSONCandidates(t *testing.T) {
	out := execute(t, "tag", "--lexicon-dir", "testdata", "--log-level", "error",
		"--json", "--nouns", "--stopwords", "--lowercase", "testdata/input.txt")
	tagJSON = false
	tagFilter = engine.FilterOptions{}

	var res engine.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Terms, 12)
	var norms []string
	for _, c := range res.Candidates {
		norms = append(norms, c.Norm)
	}
	assert.Equal(t, []string{"cat", "widget", "sat", "mat"}, norms)
}

func TestTokenizeCommand(t *testing.T) {
	out := execute(t, "tokenize", "--log-level", "error", "testdata/input.txt")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "The cats can really run. Widgets sat on the mat.", lines[len(lines)-1])
	assert.Equal(t, "run\t", lines[4])
	assert.Equal(t, ".\t+", lines[5])
}

func TestPackCommand(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "english-lexicon.txt.gz")
	execute(t, "pack", "testdata/english-lexicon.txt", dst)

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)

	want, err := os.ReadFile("testdata/english-lexicon.txt")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
