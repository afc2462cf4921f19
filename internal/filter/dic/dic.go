// Package dic holds the stopword dictionaries used by the candidate-term
// filters. Dictionaries are files named "<lang>_stopwords*.txt" whose first
// line is "// <word count>"; each further line is one word.
package dic

import (
	"bufio"
	"embed"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
	"time"

	"postag/internal/bloom"
	"postag/internal/common"
)

//go:embed *_stopwords*.txt
var builtin embed.FS

var (
	mu          sync.Mutex
	stopWordDic = make(map[string]*StopWordsDic)
)

type StopWordsDic struct {
	bloom *bloom.Filter
}

func (sd *StopWordsDic) AddWords(s string) {
	sd.bloom.AddString(s)
}

func (sd *StopWordsDic) TestWords(s string) bool {
	return sd.bloom.TestString(s)
}

func (sd *StopWordsDic) Len() uint64 {
	return sd.bloom.KeySize()
}

// LoadDic returns the builtin dictionary for a language prefix such as
// "en", loading it on first use.
func LoadDic(pre string) (*StopWordsDic, error) {
	mu.Lock()
	defer mu.Unlock()
	if sd, ok := stopWordDic[pre]; ok {
		return sd, nil
	}
	sd, err := LoadFS(builtin, pre)
	if err != nil {
		return nil, err
	}
	stopWordDic[pre] = sd
	return sd, nil
}

// LoadFS builds a dictionary from every "<pre>_stopwords*.txt" in fsys.
func LoadFS(fsys fs.FS, pre string) (*StopWordsDic, error) {
	t := time.Now()
	paths, err := fs.Glob(fsys, pre+"_stopwords*.txt")
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no stopword dictionary for %q: %w", pre, fs.ErrNotExist)
	}

	var words []string
	var size uint64
	for _, p := range paths {
		n, ws, err := readPart(fsys, p)
		if err != nil {
			return nil, err
		}
		size += n
		words = append(words, ws...)
	}
	if size < uint64(len(words)) {
		size = uint64(len(words))
	}

	sd := &StopWordsDic{bloom: bloom.NewWithEstimates(size, 0.001)}
	for _, w := range words {
		sd.AddWords(w)
	}
	common.DINFO("Complete Loading %s Dictionary (%d words) in %v", pre, sd.Len(), time.Since(t))
	return sd, nil
}

func readPart(fsys fs.FS, p string) (uint64, []string, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return 0, nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return 0, nil, fmt.Errorf("%s: empty dictionary", p)
	}
	head := sc.Text()
	if !strings.HasPrefix(head, "//") {
		return 0, nil, fmt.Errorf("%s: missing word count header", p)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(head[2:]), 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: word count: %w", p, err)
	}

	words := make([]string, 0, n)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	return n, words, sc.Err()
}
