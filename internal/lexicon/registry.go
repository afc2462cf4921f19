package lexicon

import (
	"io/fs"
	"os"
	"sync"

	"postag/internal/cache"
	"postag/internal/common"
)

const DefaultCacheSize = 4

// Registry resolves language identifiers to lexicons and keeps the most
// recently used ones loaded.
type Registry struct {
	fsys  fs.FS
	mu    sync.Mutex
	cache *cache.LruCache
}

func NewRegistry(fsys fs.FS, size int) *Registry {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Registry{
		fsys: fsys,
		cache: cache.NewLruCache(int64(size), func(language string, _ interface{}) {
			common.DINFO("lexicon for %s evicted", language)
		}),
	}
}

// NewDirRegistry reads lexicons from "<dir>/<language>-lexicon.txt[.gz]".
func NewDirRegistry(dir string, size int) *Registry {
	return NewRegistry(os.DirFS(dir), size)
}

// Lexicon returns the cached lexicon for language, loading it on first use.
// Failed loads are not cached.
func (r *Registry) Lexicon(language string) (*Lexicon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.cache.Get(language); ok {
		return v.(*Lexicon), nil
	}
	lex, err := Load(r.fsys, language)
	if err != nil {
		return nil, err
	}
	r.cache.Put(language, lex)
	return lex, nil
}

func (r *Registry) Loaded() int {
	return r.cache.Len()
}
