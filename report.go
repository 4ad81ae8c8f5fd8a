package keybench

import (
	"fmt"
	"io"
	"time"
)

// Pass names a timed phase.
type Pass string

const (
	Insert Pass = "insert"
	Lookup Pass = "get"
)

// Result describes one timed pass.
type Result struct {
	Variant  string        `json:"variant"`
	Pass     Pass          `json:"pass"`
	KeySize  int           `json:"keySize"`
	Count    int           `json:"count"`
	Total    time.Duration `json:"totalNs"`
	Checksum int           `json:"checksum,omitempty"`
	Entries  int           `json:"entries"` // -1 if the container cannot report it
}

// Average is Total divided by Count, or zero for an empty pass.
func (r Result) Average() time.Duration {
	if r.Count <= 0 {
		return 0
	}
	return r.Total / time.Duration(r.Count)
}

// Label is the variant and pass joined, e.g. "hash_map_insert".
func (r Result) Label() string {
	return r.Variant + "_" + string(r.Pass)
}

// Reporter writes one human-readable line per header or pass.
type Reporter struct {
	w io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Header announces the key count.
func (p *Reporter) Header(n int) {
	fmt.Fprintf(p.w, "n: %d\n", n)
}

// Report writes r. Lookup lines carry the checksum as a trailing r field.
func (p *Reporter) Report(r Result) {
	if r.Pass == Lookup {
		fmt.Fprintf(p.w, "%s, key_size: %d, total: %v, average: %v, r: %d\n",
			r.Label(), r.KeySize, r.Total, r.Average(), r.Checksum)
		return
	}
	fmt.Fprintf(p.w, "%s, key_size: %d, total: %v, average: %v\n",
		r.Label(), r.KeySize, r.Total, r.Average())
}
