package intelligence

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/pbarbosa/vida/internal/contract"
	"github.com/pbarbosa/vida/internal/domain"
)

// SuggestionCache memoizes agenda suggestions per (date, context) pair.
// Any record mutation bumps the revision, which participates in every key,
// so stale entries simply stop being addressable.
type SuggestionCache struct {
	mu       sync.Mutex
	revision uint64
	entries  map[string]*contract.AgendaSuggestions
}

func NewSuggestionCache() *SuggestionCache {
	return &SuggestionCache{entries: map[string]*contract.AgendaSuggestions{}}
}

// Invalidate bumps the revision counter. Callers invoke it after any write
// that could change what the model should see (new task, edited rule, ...).
func (c *SuggestionCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revision++
	// Old-revision keys can never be looked up again; drop them.
	c.entries = map[string]*contract.AgendaSuggestions{}
}

func (c *SuggestionCache) key(date time.Time, sctx contract.SuggestionContext) (string, error) {
	hash, err := hashstructure.Hash(sctx, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("hashing suggestion context: %w", err)
	}
	c.mu.Lock()
	rev := c.revision
	c.mu.Unlock()
	return fmt.Sprintf("%s:%d:%d", domain.DateString(date), rev, hash), nil
}

// Get returns the cached suggestions for the context, if any.
func (c *SuggestionCache) Get(date time.Time, sctx contract.SuggestionContext) (*contract.AgendaSuggestions, bool) {
	key, err := c.key(date, sctx)
	if err != nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.entries[key]
	return s, ok
}

// Put stores suggestions under the context's current key.
func (c *SuggestionCache) Put(date time.Time, sctx contract.SuggestionContext, s *contract.AgendaSuggestions) {
	key, err := c.key(date, sctx)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = s
}
