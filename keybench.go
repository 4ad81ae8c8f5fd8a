// Package keybench measures per-operation insert and lookup latency of keyed
// containers across a sweep of key sizes.
//
// A run generates a batch of random keys, inserts each into a fresh container
// while timing every call, then looks every key back up in the same order.
// The lookup pass sums the values it finds so the results are observably used.
package keybench

// Container is the capability set every variant under test provides.
// Keys are raw byte sequences held in strings.
type Container interface {
	Insert(key string, value int)
	Get(key string) (int, bool)
}

// Lener is implemented by containers that can report their entry count.
type Lener interface {
	Len() int
}

// Waiter is implemented by containers that buffer writes. Wait is called
// between the insert and lookup passes, outside of any timed region.
type Waiter interface {
	Wait()
}

// Closer is implemented by containers holding background resources.
type Closer interface {
	Close()
}

// Variant names a container implementation and constructs empty instances
// pre-sized for capacity entries.
type Variant struct {
	Name string
	New  func(capacity int) Container
}

// Len returns the entry count of c, or -1 if c cannot report it.
func Len(c Container) int {
	if l, ok := c.(Lener); ok {
		return l.Len()
	}
	return -1
}

// settle flushes buffered writes, if c buffers any.
func settle(c Container) {
	if w, ok := c.(Waiter); ok {
		w.Wait()
	}
}

func release(c Container) {
	if cl, ok := c.(Closer); ok {
		cl.Close()
	}
}
