package keybench

import (
	"github.com/alphadose/haxmap"
	"github.com/tidwall/hashmap"
)

// goMap is Go's builtin map with the runtime's general-purpose hasher.
type goMap map[string]int

func newGoMap(capacity int) Container {
	return goMap(make(map[string]int, max(capacity, 0)))
}

func (m goMap) Insert(key string, value int) { m[key] = value }

func (m goMap) Get(key string) (int, bool) {
	v, ok := m[key]
	return v, ok
}

func (m goMap) Len() int { return len(m) }

// hashedMap is a haxmap driven by an injected hash function.
type hashedMap struct {
	m *haxmap.Map[string, int]
}

func newHaxmap(capacity int) *haxmap.Map[string, int] {
	if capacity > 0 {
		return haxmap.New[string, int](uintptr(capacity))
	}
	return haxmap.New[string, int]()
}

// newHaxmapDefault keeps haxmap's built-in string hasher, isolating the
// table structure from the choice of hash.
func newHaxmapDefault(capacity int) Container {
	return &hashedMap{m: newHaxmap(capacity)}
}

func newHashedMap(capacity int, h Hasher) Container {
	m := newHaxmap(capacity)
	m.SetHasher(func(key string) uintptr { return uintptr(nonZero(h(key))) })
	return &hashedMap{m: m}
}

// nonZero remaps a zero hash to 1. haxmap's list head is keyed by hash 0, so
// a key hashing to 0 would overwrite the head instead of adding an entry.
func nonZero(h uint64) uint64 {
	if h == 0 {
		return 1
	}
	return h
}

// hashedVariant binds a hasher to the haxmap constructor.
func hashedVariant(name string, h Hasher) Variant {
	return Variant{
		Name: name,
		New:  func(capacity int) Container { return newHashedMap(capacity, h) },
	}
}

func (c *hashedMap) Insert(key string, value int) { c.m.Set(key, value) }

func (c *hashedMap) Get(key string) (int, bool) { return c.m.Get(key) }

func (c *hashedMap) Len() int { return int(c.m.Len()) }

// robinHoodMap is an open-addressing table with Robin Hood displacement.
type robinHoodMap struct {
	m *hashmap.Map[string, int]
}

func newRobinHoodMap(capacity int) Container {
	return &robinHoodMap{m: hashmap.New[string, int](max(capacity, 0))}
}

func (c *robinHoodMap) Insert(key string, value int) { c.m.Set(key, value) }

func (c *robinHoodMap) Get(key string) (int, bool) { return c.m.Get(key) }

func (c *robinHoodMap) Len() int { return c.m.Len() }

// bloomMap answers definite misses from a blocked bloom filter before
// touching the map. Every key is hashed once per operation with XXH3.
type bloomMap struct {
	filter *blockBloomFilter
	m      map[string]int
}

const bloomFalsePositiveRate = 0.01

func newBloomMap(capacity int) Container {
	return &bloomMap{
		filter: newBlockBloomFilter(capacity, bloomFalsePositiveRate),
		m:      make(map[string]int, max(capacity, 0)),
	}
}

func (c *bloomMap) Insert(key string, value int) {
	c.filter.Add(XXH3(key))
	c.m[key] = value
}

func (c *bloomMap) Get(key string) (int, bool) {
	if !c.filter.Contains(XXH3(key)) {
		return 0, false
	}
	v, ok := c.m[key]
	return v, ok
}

func (c *bloomMap) Len() int { return len(c.m) }
