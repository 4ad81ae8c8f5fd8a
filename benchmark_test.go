//nolint:errcheck,thelper // benchmark code - errors not critical for performance measurement
package keybench

import (
	"fmt"
	"slices"
	"strconv"
	"testing"

	"github.com/dustin/go-humanize"
)

// =============================================================================
// Go Benchmarks (for go test -bench=.)
// =============================================================================

var benchKeySizes = []int{8, 64, 512}

const benchKeyCount = 10000

var benchSink int

func BenchmarkInsert(b *testing.B) {
	for _, size := range benchKeySizes {
		keys := GenerateKeys(NewSeededRand(uint64(size)), benchKeyCount, size)
		for _, v := range Variants() {
			b.Run(v.Name+"/"+strconv.Itoa(size), func(b *testing.B) {
				b.ReportAllocs()
				c := v.New(benchKeyCount)
				defer release(c)
				b.ResetTimer()
				for i := range b.N {
					c.Insert(keys[i%benchKeyCount], 1)
				}
			})
		}
	}
}

func BenchmarkLookup(b *testing.B) {
	for _, size := range benchKeySizes {
		keys := GenerateKeys(NewSeededRand(uint64(size)), benchKeyCount, size)
		for _, v := range Variants() {
			b.Run(v.Name+"/"+strconv.Itoa(size), func(b *testing.B) {
				b.ReportAllocs()
				c := v.New(benchKeyCount)
				defer release(c)
				for _, k := range keys {
					c.Insert(k, 1)
				}
				settle(c)
				var r int
				b.ResetTimer()
				for i := range b.N {
					if x, ok := c.Get(keys[i%benchKeyCount]); ok {
						r += x
					}
				}
				benchSink = r
			})
		}
	}
}

// =============================================================================
// Full Comparison Suite
// =============================================================================

// TestBenchmarkSuite runs every variant through testing.Benchmark at each key
// size and prints a latency table per size.
// Run with: go test -run=TestBenchmarkSuite -v
func TestBenchmarkSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping benchmark suite in short mode")
	}

	fmt.Println()
	fmt.Println("keybench variant bake-off")
	fmt.Println()

	for _, size := range benchKeySizes {
		runLatencyTable(size)
	}
}

type perfResult struct {
	name     string
	getNs    float64
	setNs    float64
	getAlloc int64
	setAlloc int64
	heap     uint64
}

func runLatencyTable(keySize int) {
	keys := GenerateKeys(NewSeededRand(1), benchKeyCount, keySize)

	results := make([]perfResult, 0, len(Variants()))
	for _, v := range Variants() {
		results = append(results, measurePerf(v, keys))
	}
	slices.SortFunc(results, func(a, b perfResult) int {
		switch {
		case a.getNs < b.getNs:
			return -1
		case a.getNs > b.getNs:
			return 1
		}
		return 0
	})

	fmt.Printf("### Single-Threaded Latency, %d-byte keys (sorted by Get)\n", keySize)
	fmt.Println()
	fmt.Println("| Variant            | Get ns/op | Get allocs | Set ns/op | Set allocs | Heap      |")
	fmt.Println("|--------------------|-----------|------------|-----------|------------|-----------|")
	for _, r := range results {
		fmt.Printf("| %-18s | %9.1f | %10d | %9.1f | %10d | %9s |\n",
			r.name, r.getNs, r.getAlloc, r.setNs, r.setAlloc, humanize.Bytes(r.heap))
	}
	fmt.Println()
}

func measurePerf(v Variant, keys []string) perfResult {
	n := len(keys)
	getResult := testing.Benchmark(func(b *testing.B) {
		c := v.New(n)
		defer release(c)
		for _, k := range keys {
			c.Insert(k, 1)
		}
		settle(c)
		b.ResetTimer()
		for i := range b.N {
			c.Get(keys[i%n])
		}
	})
	setResult := testing.Benchmark(func(b *testing.B) {
		c := v.New(n)
		defer release(c)
		b.ResetTimer()
		for i := range b.N {
			c.Insert(keys[i%n], i)
		}
	})
	return perfResult{
		name:     v.Name,
		getNs:    float64(getResult.NsPerOp()),
		setNs:    float64(setResult.NsPerOp()),
		getAlloc: getResult.AllocsPerOp(),
		setAlloc: setResult.AllocsPerOp(),
		heap:     Footprint(v, keys),
	}
}
