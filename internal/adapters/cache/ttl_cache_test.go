package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		cache := NewTTLCache[catalog](1000 * time.Second)

		cache.set("catalog", catalog{"https://socialclub.example/job/abc"})

		result := cache.getOrClaim("catalog")
		assert.False(t, result.claimed, "Expected entry to exist")
		assert.True(t, result.valid)
		assert.Equal(t, catalog{"https://socialclub.example/job/abc"}, result.data)
	})

	t.Run("getOrClaim claims when missing", func(t *testing.T) {
		cache := NewTTLCache[catalog](1000 * time.Second)

		result := cache.getOrClaim("catalog")
		assert.True(t, result.claimed, "Expected entry to not exist and get claimed")

		result = cache.getOrClaim("catalog")
		assert.False(t, result.claimed, "Expected entry to exist and not get claimed")
		assert.False(t, result.valid, "Expected entry to be invalid")
	})

	t.Run("delete", func(t *testing.T) {
		cache := NewTTLCache[catalog](1000 * time.Second)
		cache.set("catalog", catalog{"https://socialclub.example/job/abc"})

		cache.Delete("catalog")

		result := cache.getOrClaim("catalog")
		assert.True(t, result.claimed, "Expected to not find a value")
	})

	t.Run("delete missing entry", func(t *testing.T) {
		cache := NewTTLCache[catalog](1000 * time.Second)

		cache.Delete("catalog")

		result := cache.getOrClaim("catalog")
		assert.True(t, result.claimed, "Expected to not find a value")
	})

	t.Run("entries expire", func(t *testing.T) {
		cache := NewTTLCache[catalog](10 * time.Millisecond)
		cache.set("catalog", catalog{"https://socialclub.example/job/abc"})

		time.Sleep(50 * time.Millisecond)

		result := cache.getOrClaim("catalog")
		assert.True(t, result.claimed, "Expected entry to have expired")
	})

	t.Run("wait", func(t *testing.T) {
		cache := NewTTLCache[catalog](1000 * time.Second)
		cache.wait()
	})
}
