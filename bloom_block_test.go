package keybench

import (
	"math/rand/v2"
	"testing"
)

func TestBlockBloomFilter(t *testing.T) {
	capacity := 1000
	fpRate := 0.01
	bf := newBlockBloomFilter(capacity, fpRate)

	keys := GenerateKeys(NewSeededRand(1), capacity, 16)
	for _, k := range keys {
		bf.Add(XXH3(k))
	}
	if bf.entries != capacity {
		t.Errorf("entries = %d, want %d", bf.entries, capacity)
	}

	for i, k := range keys {
		if !bf.Contains(XXH3(k)) {
			t.Errorf("key %d should be in filter", i)
		}
	}

	falsePositives := 0
	testSize := 10000
	for _, k := range GenerateKeys(NewSeededRand(2), testSize, 16) {
		if bf.Contains(XXH3(k)) {
			falsePositives++
		}
	}

	actualFPRate := float64(falsePositives) / float64(testSize)
	t.Logf("Block bloom filter: capacity=%d, k=%d, blocks=%d, FP rate=%.4f (target=%.4f)",
		capacity, bf.k, len(bf.blocks), actualFPRate, fpRate)

	// Confining bits to one block costs some accuracy; allow 4x.
	if actualFPRate > fpRate*4 {
		t.Errorf("False positive rate too high: %.4f > %.4f (4x target)", actualFPRate, fpRate*4)
	}
}

func TestBlockBloomFilterSizing(t *testing.T) {
	for _, capacity := range []int{-1, 0, 1, 3, 100, 10000} {
		bf := newBlockBloomFilter(capacity, 0.01)
		n := len(bf.blocks)
		if n < 1 || n&(n-1) != 0 {
			t.Errorf("capacity %d: %d blocks is not a power of two", capacity, n)
		}
		if bf.mask != uint64(n-1) {
			t.Errorf("capacity %d: mask %d, want %d", capacity, bf.mask, n-1)
		}
		if bf.k < 1 || bf.k > 16 {
			t.Errorf("capacity %d: k = %d out of range", capacity, bf.k)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := map[uint64]uint64{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1000: 1024, 1024: 1024, 1025: 2048}
	for in, want := range tests {
		if got := nextPowerOf2(in); got != want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestBloomMapMisses(t *testing.T) {
	c := newBloomMap(100)
	for i := range 100 {
		c.Insert(string(rune('a'+i%26))+string(rune(i)), 1)
	}
	if _, ok := c.Get("definitely absent"); ok {
		t.Error("absent key found")
	}
}

func BenchmarkBlockBloomAdd(b *testing.B) {
	bf := newBlockBloomFilter(10000, 0.01)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bf.Add(uint64(i) * 0x9e3779b97f4a7c15)
	}
}

func BenchmarkBlockBloomContains(b *testing.B) {
	bf := newBlockBloomFilter(10000, 0.01)
	hashes := make([]uint64, 10000)
	for i := range hashes {
		hashes[i] = rand.Uint64()
		bf.Add(hashes[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bf.Contains(hashes[i%len(hashes)])
	}
}
