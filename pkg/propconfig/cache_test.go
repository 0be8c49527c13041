package propconfig

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingValidator struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (c *countingValidator) Validate(caller map[string]string) (ValidationResult, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.err != nil {
		return ValidationResult{}, c.err
	}
	if caller["fail"] == "true" {
		return Failure(NewValidationError("fail", "forced failure")), nil
	}
	return Success(), nil
}

func (c *countingValidator) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestCachingValidatorHitsOnEqualMap(t *testing.T) {
	delegate := &countingValidator{}
	cache, err := NewCachingPropertyValidator(delegate, 10, time.Minute)
	require.NoError(t, err)

	input := map[string]string{"a": "1"}
	r1, err := cache.Validate(input)
	require.NoError(t, err)
	r2, err := cache.Validate(map[string]string{"a": "1"})
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.Equal(t, 1, delegate.callCount())
}

func TestCachingValidatorMissesOnDifferentMap(t *testing.T) {
	delegate := &countingValidator{}
	cache, err := NewCachingPropertyValidator(delegate, 10, time.Minute)
	require.NoError(t, err)

	_, err = cache.Validate(map[string]string{"a": "1"})
	require.NoError(t, err)
	_, err = cache.Validate(map[string]string{"a": "2"})
	require.NoError(t, err)

	assert.Equal(t, 2, delegate.callCount())
}

func TestCachingValidatorExpiresByTTL(t *testing.T) {
	delegate := &countingValidator{}
	cache, err := NewCachingPropertyValidator(delegate, 10, time.Millisecond)
	require.NoError(t, err)

	_, err = cache.Validate(map[string]string{"a": "1"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = cache.Validate(map[string]string{"a": "1"})
	require.NoError(t, err)

	assert.Equal(t, 2, delegate.callCount())
}

func TestCachingValidatorClearCache(t *testing.T) {
	delegate := &countingValidator{}
	cache, err := NewCachingPropertyValidator(delegate, 10, time.Minute)
	require.NoError(t, err)

	_, err = cache.Validate(map[string]string{"a": "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.CacheSize())

	cache.ClearCache()
	assert.Equal(t, 0, cache.CacheSize())

	_, err = cache.Validate(map[string]string{"a": "1"})
	require.NoError(t, err)
	assert.Equal(t, 2, delegate.callCount())
}

func TestCachingValidatorRespectsMaxSize(t *testing.T) {
	delegate := &countingValidator{}
	cache, err := NewCachingPropertyValidator(delegate, 2, time.Minute)
	require.NoError(t, err)

	_, _ = cache.Validate(map[string]string{"a": "1"})
	_, _ = cache.Validate(map[string]string{"a": "2"})
	_, _ = cache.Validate(map[string]string{"a": "3"})

	assert.LessOrEqual(t, cache.CacheSize(), 2)
}

func TestCachingValidatorRejectsNilMap(t *testing.T) {
	delegate := &countingValidator{}
	cache, err := NewCachingPropertyValidator(delegate, 10, time.Minute)
	require.NoError(t, err)

	_, err = cache.Validate(nil)
	require.Error(t, err)
}

func TestNewCachingPropertyValidatorRejectsNilDelegate(t *testing.T) {
	_, err := NewCachingPropertyValidator(nil, 10, time.Minute)
	require.Error(t, err)
}

func TestCachingValidatorConcurrentAccess(t *testing.T) {
	delegate := &countingValidator{}
	cache, err := NewCachingPropertyValidator(delegate, 50, time.Minute)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = cache.Validate(map[string]string{"a": "1"})
			_ = cache.CacheSize()
		}(i)
	}
	wg.Wait()
}
