package keybench

import (
	"runtime"
	"runtime/debug"
	"time"
)

// keepAlive holds the container across the second heap reading.
var keepAlive any

// Footprint estimates the heap bytes retained by a container of variant v
// holding keys. The key batch itself is allocated before the first reading
// and is not counted.
func Footprint(v Variant, keys []string) uint64 {
	before := settledHeap()

	c := v.New(len(keys))
	for _, key := range keys {
		c.Insert(key, 1)
	}
	settle(c)
	keepAlive = c

	after := settledHeap()
	keepAlive = nil
	release(c)

	if after < before {
		return 0
	}
	return after - before
}

// settledHeap collects garbage twice, with a pause for background sweepers in
// between, and returns the live heap size.
func settledHeap() uint64 {
	//nolint:revive // explicit GC required for accurate memory measurement
	runtime.GC()
	time.Sleep(10 * time.Millisecond)
	//nolint:revive // explicit GC required for accurate memory measurement
	runtime.GC()
	debug.FreeOSMemory()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return mem.HeapAlloc
}
