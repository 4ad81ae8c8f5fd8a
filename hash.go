package keybench

import (
	"math/rand/v2"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hasher maps a key to a 64-bit hash.
type Hasher func(key string) uint64

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// FNV1a is the 64-bit FNV-1a hash, computed inline so the hot path neither
// allocates a hash.Hash64 nor crosses an interface.
func FNV1a(key string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime64
	}
	return h
}

// XXHash is xxHash64 with a zero seed.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// XXH3 is the 64-bit XXH3 hash.
func XXH3(key string) uint64 {
	return xxh3.HashString(key)
}

// Murmur3 is the low 64 bits of MurmurHash3 x64/128.
func Murmur3(key string) uint64 {
	return murmur3.Sum64(bytesOf(key))
}

// NewSipHasher returns SipHash-2-4 keyed with 128 bits drawn from rng.
func NewSipHasher(rng *rand.Rand) Hasher {
	k0, k1 := rng.Uint64(), rng.Uint64()
	return func(key string) uint64 {
		return siphash.Hash(k0, k1, bytesOf(key))
	}
}

// bytesOf views s as a byte slice without copying. The result must not be
// written to.
func bytesOf(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
