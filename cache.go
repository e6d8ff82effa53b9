package mpsent

import (
	gocache "github.com/patrickmn/go-cache"
)

// LexiconCache shares parsed lexicons between dictionaries. Lexicons are
// immutable, so cached entries never expire.
type LexiconCache struct {
	cache *gocache.Cache
}

// NewLexiconCache creates an empty cache.
func NewLexiconCache() *LexiconCache {
	return &LexiconCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a lexicon from the cache
func (c *LexiconCache) Get(key string) (*Lexicon, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*Lexicon), true
	}
	return nil, false
}

// Set stores a lexicon under key.
func (c *LexiconCache) Set(key string, lex *Lexicon) {
	c.cache.Set(key, lex, gocache.NoExpiration)
}

// Len returns the number of cached lexicons.
func (c *LexiconCache) Len() int {
	return c.cache.ItemCount()
}

// Flush removes every cached lexicon.
func (c *LexiconCache) Flush() {
	c.cache.Flush()
}
