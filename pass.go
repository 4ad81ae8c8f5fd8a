package keybench

import "time"

// InsertPass inserts every key with value 1, in order, and returns the summed
// wall-clock time of the individual inserts.
func InsertPass(c Container, keys []string) time.Duration {
	var total time.Duration
	for _, key := range keys {
		start := time.Now()
		c.Insert(key, 1)
		total += time.Since(start)
	}
	return total
}

// LookupPass looks up every key, in order, and returns the summed wall-clock
// time of the individual lookups along with the sum of the values found.
// The sum keeps each result live.
func LookupPass(c Container, keys []string) (time.Duration, int) {
	var total time.Duration
	var r int
	for _, key := range keys {
		start := time.Now()
		if v, ok := c.Get(key); ok {
			r += v
		}
		total += time.Since(start)
	}
	return total, r
}
