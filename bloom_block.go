package keybench

import (
	"math"
	"math/bits"
)

// bloomBlock is one cache line: 512 bits as 8 words.
type bloomBlock [8]uint64

const bitsPerBlock = 512

// blockBloomFilter keeps all k bits for a hash inside a single block,
// so a membership test touches one cache line regardless of k.
type blockBloomFilter struct {
	blocks  []bloomBlock
	mask    uint64 // len(blocks) - 1
	k       int
	entries int
}

// newBlockBloomFilter sizes a filter for capacity hashes at roughly fpRate
// false positives. The block count is a power of two.
func newBlockBloomFilter(capacity int, fpRate float64) *blockBloomFilter {
	capacity = max(capacity, 1)

	// m = -n ln(p) / ln(2)^2, k = -ln(p) / ln(2), k clamped to [1, 16].
	ln2 := math.Ln2
	m := float64(capacity) * -math.Log(fpRate) / (ln2 * ln2)
	k := min(max(int(math.Ceil(-math.Log(fpRate)/ln2)), 1), 16)

	n := int(math.Ceil(m / bitsPerBlock))
	// Bits confined to a block lose entropy; keep at least k bits per entry.
	n = max(n, int(math.Ceil(float64(capacity*k)/bitsPerBlock)), 1)
	n = int(nextPowerOf2(uint64(n)))

	return &blockBloomFilter{
		blocks: make([]bloomBlock, n),
		mask:   uint64(n - 1),
		k:      k,
	}
}

// nextPowerOf2 returns the smallest power of two >= v, and 1 for v == 0.
func nextPowerOf2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len64(v-1)
}

// locate returns the block for h and the two halves used for double hashing.
// Block selection uses the upper bits, bit positions use the lower.
func (b *blockBloomFilter) locate(h uint64) (*bloomBlock, uint64, uint64) {
	return &b.blocks[(h>>32)&b.mask], h & 0xFFFFFFFF, bits.RotateLeft64(h, 32)
}

// bitPos is the i-th bit position (0..511) within a block.
func bitPos(h1, h2 uint64, i int) uint64 {
	return (h1 + uint64(i)*h2 + uint64(i*i)*0x9e3779b1) & (bitsPerBlock - 1)
}

// Add records h.
func (b *blockBloomFilter) Add(h uint64) {
	block, h1, h2 := b.locate(h)
	for i := range b.k {
		pos := bitPos(h1, h2, i)
		block[pos>>6] |= 1 << (pos & 63)
	}
	b.entries++
}

// Contains reports whether h may have been added. False means definitely not.
func (b *blockBloomFilter) Contains(h uint64) bool {
	block, h1, h2 := b.locate(h)
	for i := range b.k {
		pos := bitPos(h1, h2, i)
		if block[pos>>6]&(1<<(pos&63)) == 0 {
			return false
		}
	}
	return true
}
