package keybench

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v6"
)

// NewRand returns a PCG source seeded from the process-wide generator.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRand returns a deterministic source for reproducible key batches.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GenerateKeys returns n keys of exactly keySize bytes, each byte uniform
// over the full range. A keySize of 0 yields n empty keys.
func GenerateKeys(rng *rand.Rand, n, keySize int) []string {
	n = max(n, 0)
	keySize = max(keySize, 0)

	keys := make([]string, n)
	buf := make([]byte, keySize)
	for i := range keys {
		fill(rng, buf)
		keys[i] = string(buf)
	}
	return keys
}

// fill writes uniform random bytes into buf, eight at a time.
func fill(rng *rand.Rand, buf []byte) {
	var word [8]byte
	for i := 0; i < len(buf); i += 8 {
		binary.LittleEndian.PutUint64(word[:], rng.Uint64())
		copy(buf[i:], word[:])
	}
}

// KeySource produces a fresh key batch for each run.
type KeySource interface {
	Keys(n, keySize int) []string
}

// RandomBytes draws keys uniformly over all byte values.
type RandomBytes struct {
	rng *rand.Rand
}

// NewRandomBytes returns a source drawing from rng. A nil rng is replaced with
// a process-seeded one.
func NewRandomBytes(rng *rand.Rand) *RandomBytes {
	if rng == nil {
		rng = NewRand()
	}
	return &RandomBytes{rng: rng}
}

// Keys implements KeySource.
func (s *RandomBytes) Keys(n, keySize int) []string {
	return GenerateKeys(s.rng, n, keySize)
}

// Letters produces ASCII letter keys, closer to the text identifiers most
// string-keyed maps see in practice.
type Letters struct {
	faker *gofakeit.Faker
}

// NewLetters returns a letter source. A seed of 0 selects a random seed.
func NewLetters(seed int64) *Letters {
	return &Letters{faker: gofakeit.New(seed)}
}

// Keys implements KeySource.
func (s *Letters) Keys(n, keySize int) []string {
	n = max(n, 0)
	keySize = max(keySize, 0)

	keys := make([]string, n)
	for i := range keys {
		keys[i] = s.faker.LetterN(uint(keySize))
	}
	return keys
}
