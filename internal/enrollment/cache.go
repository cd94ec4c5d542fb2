package enrollment

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// TemplateCache is a bounded read-through cache of enrolled templates keyed
// by user ID. Templates are immutable, so cached pointers are shared.
type TemplateCache struct {
	*lru.Cache[string, *Template]
}

// NewTemplateCache creates a TemplateCache holding at most size templates.
func NewTemplateCache(size int) (*TemplateCache, error) {
	lruCache, err := lru.New[string, *Template](size)
	if err != nil {
		return nil, err
	}

	return &TemplateCache{
		Cache: lruCache,
	}, nil
}

// Put caches tpl under its user ID.
func (tc *TemplateCache) Put(tpl *Template) {
	tc.Cache.Add(tpl.UserID, tpl)
}

// Lookup returns the cached template for userID, if any.
func (tc *TemplateCache) Lookup(userID string) (*Template, bool) {
	return tc.Cache.Get(userID)
}

// Invalidate drops any cached template for userID.
func (tc *TemplateCache) Invalidate(userID string) {
	tc.Cache.Remove(userID)
}
