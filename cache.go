package vrex

import (
	"iter"
	"sync"
)

// CacheOptions configures the package-level compiled-pattern cache used
// by Match, Search, FindIter, and FindAll.
type CacheOptions struct {
	// MaxEntries caps how many distinct pattern strings are kept
	// compiled at once. Zero means unbounded.
	MaxEntries int
}

// DefaultCacheOptions returns an unbounded cache, matching the behavior
// of an unconfigured memoizing compile.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{}
}

// Validate reports whether the options are well-formed.
func (o CacheOptions) Validate() error {
	if o.MaxEntries < 0 {
		return &OptionsError{Field: "MaxEntries", Message: "must be >= 0"}
	}
	return nil
}

// OptionsError reports an invalid CacheOptions field.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "vrex: invalid option " + e.Field + ": " + e.Message
}

var patternCache = newCache(DefaultCacheOptions())

// cache is an optionally bounded (see CacheOptions.MaxEntries),
// concurrency-safe map from pattern source text to
// its compiled Pattern. Only successful compiles are memoized: a
// malformed pattern is recompiled (and re-reported) on every call,
// exactly as a failed compile is never memoized in the upstream library
// this package's cache behavior mirrors.
type cache struct {
	mu      sync.RWMutex
	entries map[string]*Pattern
	order   []string // insertion order, for MaxEntries eviction
	opts    CacheOptions
}

func newCache(opts CacheOptions) *cache {
	return &cache{entries: make(map[string]*Pattern), opts: opts}
}

func (c *cache) compile(pattern string) (*Pattern, error) {
	c.mu.RLock()
	if p, ok := c.entries[pattern]; ok {
		c.mu.RUnlock()
		return p, nil
	}
	c.mu.RUnlock()

	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[pattern]; ok {
		return existing, nil
	}
	if c.opts.MaxEntries > 0 && len(c.order) >= c.opts.MaxEntries {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[pattern] = p
	c.order = append(c.order, pattern)
	return p, nil
}

// SetCacheOptions replaces the package-level cache's configuration and
// discards all cached entries.
func SetCacheOptions(opts CacheOptions) {
	patternCache = newCache(opts)
}

// Match compiles pattern (using the package-level cache) and anchors it
// at the start of subject, without requiring it to consume the subject
// to its end.
func Match(pattern, subject string) (*Match, error) {
	p, err := patternCache.compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.Match(subject)
}

// Search compiles pattern (using the package-level cache) and searches
// subject for the first position the pattern matches.
func Search(pattern, subject string) (*Match, error) {
	p, err := patternCache.compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.Search(subject)
}

// FindIter compiles pattern (using the package-level cache) and returns
// an iterator over every non-overlapping match in subject.
func FindIter(pattern, subject string) (iter.Seq[*Match], error) {
	p, err := patternCache.compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.FindIter(subject), nil
}

// FindAll compiles pattern (using the package-level cache) and returns
// every non-overlapping match in subject as a slice.
func FindAll(pattern, subject string) ([]*Match, error) {
	p, err := patternCache.compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.FindAll(subject), nil
}
