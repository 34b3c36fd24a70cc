package stemmers

import (
	"runtime"
	"sync"

	"github.com/andreribeiro87/py-rust-stemmers-tuned/cache"
)

// sharedCache is the process-wide stem cache. It is created lazily on first
// use and lives for the lifetime of the process; every handle defaults to it
// regardless of when or where the handle was constructed.
var (
	sharedOnce  sync.Once
	sharedCache *cache.Memory
)

// SharedCache returns the process-wide stem cache shared by all handles.
func SharedCache() *cache.Memory {
	sharedOnce.Do(func() {
		sharedCache = cache.NewMemory()
	})
	return sharedCache
}

// SnowballStemmer stems words for a single language. Handles are immutable
// after construction and hold no per-instance cache: two handles for the same
// language are interchangeable and observe the same cached results.
type SnowballStemmer struct {
	language          string
	stem              StemFunc
	cache             cache.StemCache
	workers           int
	parallelThreshold int
}

// Option is a functional option for configuring a SnowballStemmer.
type Option func(*SnowballStemmer)

// WithCache substitutes the stem cache for this handle, e.g. a Redis-backed
// cache shared across processes. The default is the process-wide shared cache.
func WithCache(c cache.StemCache) Option {
	return func(s *SnowballStemmer) {
		s.cache = c
	}
}

// WithStemFunc substitutes the stemming algorithm. The replacement must be
// deterministic and safe for concurrent use.
func WithStemFunc(fn StemFunc) Option {
	return func(s *SnowballStemmer) {
		s.stem = fn
	}
}

// WithWorkers sets the number of workers used by StemWordsParallel.
func WithWorkers(n int) Option {
	return func(s *SnowballStemmer) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithParallelThreshold sets the minimum batch size for parallel execution.
// Smaller batches fall back to the sequential path, which is cheaper than
// spawning workers.
func WithParallelThreshold(n int) Option {
	return func(s *SnowballStemmer) {
		s.parallelThreshold = n
	}
}

// New creates a stemmer handle for the given language. The identifier is
// validated against the supported-language registry; an unsupported
// identifier returns an *InvalidLanguageError, never a fallback language.
// Construction performs no stemming and does not touch the cache.
func New(language string, opts ...Option) (*SnowballStemmer, error) {
	lang := NormalizeLanguage(language)
	if _, ok := SupportedLanguages[lang]; !ok {
		return nil, &InvalidLanguageError{Language: language}
	}

	s := &SnowballStemmer{
		language:          lang,
		stem:              SnowballStem,
		cache:             SharedCache(),
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: defaultParallelThreshold,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Language returns the validated language identifier the handle is bound to.
func (s *SnowballStemmer) Language() string {
	return s.language
}

// StemWord returns the stemmed root of word. On a cache hit the stored root
// is returned without invoking the algorithm; on a miss the root is computed,
// inserted under the (language, word) key, and returned. Safe for concurrent
// use from any number of handles and goroutines. The empty string is a valid
// word and stems to itself.
func (s *SnowballStemmer) StemWord(word string) string {
	return cache.GetOrCompute(s.cache, Key(s.language, word), func() string {
		return s.stem(s.language, word)
	})
}

// StemWords stems a batch of words sequentially. The output preserves input
// order and length: roots[i] is the stem of words[i]. Duplicate words reuse
// the cache rather than recomputing.
func (s *SnowballStemmer) StemWords(words []string) []string {
	roots := make([]string, len(words))
	for i, word := range words {
		roots[i] = s.StemWord(word)
	}
	return roots
}
