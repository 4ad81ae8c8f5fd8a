package keybench

import (
	"fmt"
	"strings"
)

// HashMap is Go's builtin map, the general-purpose baseline.
var HashMap = Variant{Name: "hash_map", New: newGoMap}

// FNVHashMap is a hash map keyed through 64-bit FNV-1a.
var FNVHashMap = hashedVariant("fnv_hash_map", FNV1a)

// Defaults returns the variants compared by the fixed sweep, in run order.
func Defaults() []Variant {
	return []Variant{HashMap, FNVHashMap}
}

// Variants returns every registered variant in a stable order: the defaults,
// then the other hash maps, then the bounded caches.
func Variants() []Variant {
	return []Variant{
		HashMap,
		FNVHashMap,
		{Name: "haxmap_default", New: newHaxmapDefault},
		hashedVariant("xxhash_hash_map", XXHash),
		hashedVariant("xxh3_hash_map", XXH3),
		hashedVariant("murmur3_hash_map", Murmur3),
		{Name: "siphash_hash_map", New: func(capacity int) Container {
			return newHashedMap(capacity, NewSipHasher(NewRand()))
		}},
		{Name: "robinhood_hash_map", New: newRobinHoodMap},
		{Name: "bloom_hash_map", New: newBloomMap},
		{Name: "otter_cache", New: newOtterCache},
		{Name: "ristretto_cache", New: newRistrettoCache},
		{Name: "lru_cache", New: newLRUCache},
		{Name: "tinylfu_cache", New: newTinyLFUCache},
		{Name: "freecache", New: newFreeCache},
	}
}

// VariantByName returns the registered variant called name.
func VariantByName(name string) (Variant, bool) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// ParseVariants resolves a comma-separated list of names. "all" selects every
// registered variant.
func ParseVariants(list string) ([]Variant, error) {
	list = strings.TrimSpace(list)
	if list == "all" {
		return Variants(), nil
	}

	var out []Variant
	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		v, ok := VariantByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown variant %q", name)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no variants in %q", list)
	}
	return out, nil
}
