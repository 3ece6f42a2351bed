package search

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/justinvassantachart/cs111-interactive-sub002/internal/course"
)

// DefaultCacheSize is the default capacity of the per-session result cache.
const DefaultCacheSize = 128

// Session is the stateful search surface handed to callers (CLI, TUI, MCP
// server). It owns the memoized index, the last query/results pair, and a
// small LRU cache of recent results.
//
// The index is built lazily on first use and rebuilt only when Reload swaps in
// a new catalog; it is never mutated in place. The query/results pair is
// replaced wholesale on every Search and Clear, never updated field by field.
// The result cache is pure memoization keyed on the normalized phrase: a hit
// returns exactly what a fresh ranking pass would.
type Session struct {
	mu      sync.Mutex
	catalog *course.Catalog
	index   []IndexEntry
	built   bool

	query   string
	results []Result

	cache *lru.Cache[string, []Result]
}

// NewSession creates a session over the given catalog with the default cache
// size.
func NewSession(catalog *course.Catalog) *Session {
	return NewSessionWithCache(catalog, DefaultCacheSize)
}

// NewSessionWithCache creates a session with a custom result cache capacity.
// A non-positive size falls back to DefaultCacheSize.
func NewSessionWithCache(catalog *course.Catalog, cacheSize int) *Session {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// lru.New only errors on non-positive size, which is excluded above.
	cache, _ := lru.New[string, []Result](cacheSize)
	return &Session{
		catalog: catalog,
		results: []Result{},
		cache:   cache,
	}
}

// Search ranks the raw query against the index, stores the query/results pair
// as current state, and returns the results. Results are never mutated after
// creation, so cached and returned slices may be shared.
func (s *Session) Search(raw string) []Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := ParseQuery(raw)

	var results []Result
	switch {
	case q.Empty():
		results = []Result{}
	default:
		if cached, ok := s.cache.Get(q.Phrase); ok {
			results = cached
		} else {
			results = Rank(s.ensureIndex(), q)
			s.cache.Add(q.Phrase, results)
		}
	}

	s.query = raw
	s.results = results
	return results
}

// Clear resets the current query to "" and the current results to an empty
// list. The index and cache are untouched.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.results = []Result{}
}

// Reload swaps in a new catalog, dropping the memoized index and the result
// cache. The current query/results pair is left as-is; callers that care
// re-run their last search.
func (s *Session) Reload(catalog *course.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = catalog
	s.index = nil
	s.built = false
	s.cache.Purge()
}

// CurrentQuery returns the raw query from the last Search, or "" after Clear.
func (s *Session) CurrentQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// CurrentResults returns the results from the last Search, or an empty list
// after Clear.
func (s *Session) CurrentResults() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// TotalIndexed returns the number of entries in the memoized index, building
// it if needed. Diagnostic only.
func (s *Session) TotalIndexed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ensureIndex())
}

// ensureIndex builds the index on first use. Callers must hold s.mu.
func (s *Session) ensureIndex() []IndexEntry {
	if !s.built {
		s.index = BuildIndex(s.catalog.Lectures, s.catalog.Sections, s.catalog.Assignments)
		s.built = true
	}
	return s.index
}
