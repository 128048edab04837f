package dircache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEntryStore(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("expiration", func(t *testing.T) {
		ce := newCachedEntry(NewRecord("a"), true, now, time.Second)
		assert.False(ce.isExpired(now))
		assert.False(ce.isExpired(now.Add(999 * time.Millisecond)))
		assert.True(ce.isExpired(now.Add(time.Second)))

		ce = newCachedEntry(NewRecord("a"), true, now, 0)
		assert.True(ce.expireAt.IsZero())
		assert.False(ce.isExpired(now.Add(24 * time.Hour)))
	})

	t.Run("get_skips_expired", func(t *testing.T) {
		store := newEntryStore[*Record]()
		store.put("a", newCachedEntry(NewRecord("a"), true, now, time.Second), 10, nil)

		ce, ok := store.get("a", now)
		assert.True(ok)
		assert.Equal("a", ce.entry.ID)

		_, ok = store.get("a", now.Add(2*time.Second))
		assert.False(ok)
		assert.Equal(1, store.len())

		_, ok = store.get("b", now)
		assert.False(ok)
	})

	t.Run("put_flushes_when_full", func(t *testing.T) {
		store := newEntryStore[*Record]()
		var calls [][2]int
		onStore := func(added bool, flushed int) {
			a := 0
			if added {
				a = 1
			}
			calls = append(calls, [2]int{a, flushed})
		}

		store.put("a", newCachedEntry(NewRecord("a"), true, now, 0), 2, onStore)
		store.put("b", newCachedEntry(NewRecord("b"), true, now, 0), 2, onStore)
		store.put("b", newCachedEntry(NewRecord("b"), true, now, 0), 2, onStore)
		store.put("c", newCachedEntry(NewRecord("c"), true, now, 0), 2, onStore)

		assert.Equal([][2]int{{1, 0}, {1, 0}, {0, 0}, {1, 2}}, calls)
		assert.Equal(1, store.len())
		_, ok := store.get("c", now)
		assert.True(ok)
	})

	t.Run("remove_and_flush", func(t *testing.T) {
		store := newEntryStore[*Record]()
		store.put("a", newCachedEntry(NewRecord("a"), true, now, 0), 10, nil)
		store.put("b", newCachedEntry(NewRecord("b"), true, now, 0), 10, nil)

		store.mu.Lock()
		assert.True(store.remove("a"))
		assert.False(store.remove("a"))
		assert.Equal(1, store.flush())
		assert.Equal(0, store.flush())
		store.mu.Unlock()

		assert.Equal(0, store.len())
	})
}
