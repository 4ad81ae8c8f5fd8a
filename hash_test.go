package keybench

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFNV1aVectors(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
		{"foobar", 0x85944171f73967e8},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FNV1a(tc.in), "FNV1a(%q)", tc.in)
	}
}

func TestFNV1aMatchesStdlib(t *testing.T) {
	for _, k := range GenerateKeys(NewSeededRand(5), 200, 33) {
		h := fnv.New64a()
		h.Write([]byte(k))
		assert.Equal(t, h.Sum64(), FNV1a(k))
	}
}

func TestHashersDeterministic(t *testing.T) {
	sip := NewSipHasher(NewSeededRand(1))
	for name, h := range map[string]Hasher{
		"fnv1a":   FNV1a,
		"xxhash":  XXHash,
		"xxh3":    XXH3,
		"murmur3": Murmur3,
		"siphash": sip,
	} {
		t.Run(name, func(t *testing.T) {
			key := "\x00\x01binary\xffkey"
			assert.Equal(t, h(key), h(string([]byte(key))))
			assert.NotEqual(t, h("a"), h("b"))
			// Empty keys are legal.
			_ = h("")
		})
	}
}

func TestSipHasherKeyed(t *testing.T) {
	a := NewSipHasher(NewSeededRand(1))
	b := NewSipHasher(NewSeededRand(2))
	assert.NotEqual(t, a("same input"), b("same input"))
}

func TestBytesOf(t *testing.T) {
	assert.Equal(t, []byte("abc"), bytesOf("abc"))
	assert.Empty(t, bytesOf(""))
}

func BenchmarkHashers(b *testing.B) {
	key := GenerateKeys(NewSeededRand(1), 1, 64)[0]
	sip := NewSipHasher(NewSeededRand(1))
	for _, tc := range []struct {
		name string
		h    Hasher
	}{
		{"FNV1a", FNV1a},
		{"XXHash", XXHash},
		{"XXH3", XXH3},
		{"Murmur3", Murmur3},
		{"SipHash", sip},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.SetBytes(int64(len(key)))
			var sink uint64
			for b.Loop() {
				sink += tc.h(key)
			}
			_ = sink
		})
	}
}
