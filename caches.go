package keybench

import (
	"encoding/binary"

	"github.com/coocood/freecache"
	"github.com/dgraph-io/ristretto"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/maypok86/otter/v2"
	"github.com/vmihailenco/go-tinylfu"
)

// Bounded caches are sized to hold the whole batch, but their admission and
// eviction policies may still drop entries. Lookups then miss and the
// checksum comes out below the key count.

type otterCache struct {
	c *otter.Cache[string, int]
}

func newOtterCache(capacity int) Container {
	return &otterCache{c: otter.Must(&otter.Options[string, int]{MaximumSize: max(capacity, 1)})}
}

func (c *otterCache) Insert(key string, value int) { c.c.Set(key, value) }

func (c *otterCache) Get(key string) (int, bool) { return c.c.GetIfPresent(key) }

func (c *otterCache) Len() int { return c.c.EstimatedSize() }

type ristrettoCache struct {
	c *ristretto.Cache
}

func newRistrettoCache(capacity int) Container {
	capacity = max(capacity, 1)
	// Count only the cost passed to Set, so MaxCost holds the whole batch.
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        int64(capacity * 10),
		MaxCost:            int64(capacity),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		panic("keybench: ristretto config: " + err.Error())
	}
	return &ristrettoCache{c: c}
}

func (c *ristrettoCache) Insert(key string, value int) { c.c.Set(key, value, 1) }

func (c *ristrettoCache) Get(key string) (int, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// Wait drains ristretto's set buffers so the lookup pass sees every
// admitted entry.
func (c *ristrettoCache) Wait() { c.c.Wait() }

func (c *ristrettoCache) Close() { c.c.Close() }

type lruCache struct {
	c *lru.Cache[string, int]
}

func newLRUCache(capacity int) Container {
	c, err := lru.New[string, int](max(capacity, 1))
	if err != nil {
		panic("keybench: lru size: " + err.Error())
	}
	return &lruCache{c: c}
}

func (c *lruCache) Insert(key string, value int) { c.c.Add(key, value) }

func (c *lruCache) Get(key string) (int, bool) { return c.c.Get(key) }

func (c *lruCache) Len() int { return c.c.Len() }

type tinyLFUCache struct {
	c *tinylfu.SyncT
}

func newTinyLFUCache(capacity int) Container {
	capacity = max(capacity, 1)
	return &tinyLFUCache{c: tinylfu.NewSync(capacity, capacity*10)}
}

func (c *tinyLFUCache) Insert(key string, value int) {
	c.c.Set(&tinylfu.Item{Key: key, Value: value})
}

func (c *tinyLFUCache) Get(key string) (int, bool) {
	v, ok := c.c.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// freecacheEntryBudget is the bytes reserved per entry. It covers the largest
// key in the default sweep plus freecache's 24-byte header and the value.
const (
	freecacheEntryBudget = 2048
	freecacheMinSize     = 512 * 1024
)

type freeCache struct {
	c *freecache.Cache
}

func newFreeCache(capacity int) Container {
	return &freeCache{c: freecache.NewCache(max(capacity*freecacheEntryBudget, freecacheMinSize))}
}

func (c *freeCache) Insert(key string, value int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(value))
	// Rejected entries show up as lookup misses.
	_ = c.c.Set(bytesOf(key), buf[:], 0)
}

func (c *freeCache) Get(key string) (int, bool) {
	v, err := c.c.Get(bytesOf(key))
	if err != nil || len(v) != 8 {
		return 0, false
	}
	return int(binary.LittleEndian.Uint64(v)), true
}

func (c *freeCache) Len() int { return int(c.c.EntryCount()) }
