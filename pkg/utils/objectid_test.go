package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectIDShape(t *testing.T) {
	id := NewObjectID()
	assert.Len(t, id, 24)
	assert.True(t, IsValidID(id))
}

func TestNewObjectIDUnique(t *testing.T) {
	const n = 64
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- NewObjectID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("507f1f77bcf86cd799439011"))
	assert.True(t, IsValidID("ABCDEF0123456789abcdef01"))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("507f1f77bcf86cd79943901"))    // 23 chars
	assert.False(t, IsValidID("507f1f77bcf86cd7994390111")) // 25 chars
	assert.False(t, IsValidID("507f1f77bcf86cd79943901z"))  // non-hex
}
