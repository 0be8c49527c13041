package propconfig

import (
	"sync"
	"time"
)

// ValidatorLike is the subset of PropertyValidator's whole-map surface the
// caching decorator wraps. It lets tests substitute a stub delegate.
type ValidatorLike interface {
	Validate(caller map[string]string) (ValidationResult, error)
}

type cacheEntry struct {
	key      map[string]string
	result   ValidationResult
	err      error
	expireAt time.Time
}

// CachingPropertyValidator decorates any whole-map validator with a
// bounded, time-expiring memoization. Only Validate is cached:
// ValidateProperty and ValidateGroup calls bypass it and go straight to the
// delegate, since they are typically ad-hoc. Safe for concurrent
// validate/clear/size calls; no external lock is required.
type CachingPropertyValidator struct {
	delegate ValidatorLike
	maxSize  int
	ttl      time.Duration

	mu      sync.Mutex
	entries []*cacheEntry
}

const (
	defaultCacheMaxSize = 256
	defaultCacheTTL     = 5 * time.Minute
)

// NewCachingPropertyValidator wraps delegate. maxSize <= 0 uses the default
// cap; ttl <= 0 uses the default time-to-live.
func NewCachingPropertyValidator(delegate ValidatorLike, maxSize int, ttl time.Duration) (*CachingPropertyValidator, error) {
	if delegate == nil {
		return nil, &ArgumentError{Message: "delegate validator must not be nil"}
	}
	if maxSize <= 0 {
		maxSize = defaultCacheMaxSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachingPropertyValidator{delegate: delegate, maxSize: maxSize, ttl: ttl}, nil
}

// Validate returns the memoized result for an equal, unexpired caller map
// if one exists; otherwise it computes, evicts expired entries, memoizes the
// result if the cache is below capacity, and returns the delegate's result.
//
// The cache key is map equality, not a bare hash: every candidate entry's
// retained map is compared key-by-key against caller, so a hash collision
// can never produce an incorrect hit.
func (c *CachingPropertyValidator) Validate(caller map[string]string) (ValidationResult, error) {
	if caller == nil {
		return ValidationResult{}, &ArgumentError{Message: "properties map must not be nil"}
	}

	now := time.Now()

	c.mu.Lock()
	for _, e := range c.entries {
		if e.expireAt.Before(now) {
			continue
		}
		if mapsEqual(e.key, caller) {
			result, err := e.result, e.err
			c.mu.Unlock()
			return result, err
		}
	}
	c.mu.Unlock()

	result, err := c.delegate.Validate(caller)

	retained := make(map[string]string, len(caller))
	for k, v := range caller {
		retained[k] = v
	}
	entry := &cacheEntry{key: retained, result: result, err: err, expireAt: now.Add(c.ttl)}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictExpiredLocked(now)
	if len(c.entries) < c.maxSize {
		c.entries = append(c.entries, entry)
	}
	return result, err
}

// ClearCache empties the cache.
func (c *CachingPropertyValidator) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// CacheSize reports the number of entries currently retained, including
// any not yet lazily expired.
func (c *CachingPropertyValidator) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *CachingPropertyValidator) evictExpiredLocked(now time.Time) {
	if len(c.entries) == 0 {
		return
	}
	kept := c.entries[:0]
	for _, e := range c.entries {
		if !e.expireAt.Before(now) {
			kept = append(kept, e)
		}
	}
	c.entries = kept
}

func mapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
