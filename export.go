package keybench

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Report is the exported form of a sweep.
type Report struct {
	Metadata Metadata `json:"metadata"`
	Results  []Result `json:"results"`
}

// Metadata records where and when a sweep ran.
type Metadata struct {
	GoVersion   string `json:"goVersion"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	CPUs        int    `json:"cpus"`
	CollectedAt string `json:"collectedAt"`
	Count       int    `json:"count"`
}

// NewReport wraps results with metadata describing the current process.
func NewReport(count int, results []Result) *Report {
	return &Report{
		Metadata: Metadata{
			GoVersion:   runtime.Version(),
			OS:          runtime.GOOS,
			Arch:        runtime.GOARCH,
			CPUs:        runtime.NumCPU(),
			CollectedAt: time.Now().UTC().Format(time.RFC3339),
			Count:       count,
		},
		Results: results,
	}
}

// Export writes rep to w as indented JSON.
func Export(w io.Writer, rep *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// Import reads a report written by Export.
func Import(r io.Reader) (*Report, error) {
	var rep Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &rep, nil
}

// WriteFile exports rep to path, compressed according to its extension:
// .zst (zstd), .gz (gzip), .lz4 (lz4), anything else plain JSON.
func WriteFile(path string, rep *Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	w, err := compressor(filepath.Ext(path), f)
	if err != nil {
		return err
	}
	if err := Export(w, rep); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a report written by WriteFile.
func ReadFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }() // read-only

	r, err := decompressor(filepath.Ext(path), f)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	rep, err := Import(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rep, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func compressor(ext string, w io.Writer) (io.WriteCloser, error) {
	switch ext {
	case ".zst":
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	case ".gz":
		return gzip.NewWriter(w), nil
	case ".lz4":
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

func decompressor(ext string, r io.Reader) (io.ReadCloser, error) {
	switch ext {
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return zr, nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// Delta compares the average latency of one pass across two sweeps.
type Delta struct {
	Label   string
	KeySize int
	Ref     time.Duration
	Cur     time.Duration
}

// Change is Cur minus Ref.
func (d Delta) Change() time.Duration { return d.Cur - d.Ref }

// Percent is the change relative to Ref.
func (d Delta) Percent() float64 {
	if d.Ref == 0 {
		return 0
	}
	return float64(d.Change()) / float64(d.Ref) * 100
}

// Compare pairs results by variant, pass and key size, in the order of cur.
// Results present in only one sweep are skipped.
func Compare(ref, cur []Result) []Delta {
	type key struct {
		label string
		size  int
	}
	byKey := make(map[key]Result, len(ref))
	for _, r := range ref {
		byKey[key{r.Label(), r.KeySize}] = r
	}

	var out []Delta
	for _, c := range cur {
		r, ok := byKey[key{c.Label(), c.KeySize}]
		if !ok {
			continue
		}
		out = append(out, Delta{Label: c.Label(), KeySize: c.KeySize, Ref: r.Average(), Cur: c.Average()})
	}
	return out
}
