// Package main runs a configurable key-size sweep over any of the registered
// container variants, optionally exporting results and comparing them with a
// previous export.
//
// Usage:
//
//	go run ./cmd/keybench-sweep                              # every variant, default sweep
//	go run ./cmd/keybench-sweep -variants hash_map,xxh3_hash_map -sizes 8,64
//	go run ./cmd/keybench-sweep -out results.json.zst -baseline old.json.zst
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/codeGROOVE-dev/keybench"
	"github.com/dustin/go-humanize"
	"github.com/zeromicro/go-zero/core/logx"
)

func main() {
	n := flag.Int("n", keybench.DefaultCount, "keys per run")
	sizes := flag.String("sizes", joinInts(keybench.DefaultKeySizes), "comma-separated key sizes in bytes")
	variants := flag.String("variants", "all", "comma-separated variant names, or all")
	keys := flag.String("keys", "random", "key shape: random or letters")
	seed := flag.Uint64("seed", 0, "random seed; 0 seeds from the process")
	out := flag.String("out", "", "export results to this path (.json, .zst, .gz, .lz4)")
	baseline := flag.String("baseline", "", "compare against a previous export")
	mem := flag.Bool("mem", false, "report retained heap per variant and key size")
	flag.Parse()

	// Diagnostics go to stderr; stdout carries the report lines.
	logx.DisableStat()
	logx.SetWriter(logx.NewWriter(os.Stderr))
	defer func() { _ = logx.Close() }()

	keySizes, err := parseInts(*sizes)
	if err != nil {
		fatal("parsing -sizes: %v", err)
	}
	vs, err := keybench.ParseVariants(*variants)
	if err != nil {
		fatal("parsing -variants: %v", err)
	}
	src, err := keySource(*keys, *seed)
	if err != nil {
		fatal("parsing -keys: %v", err)
	}

	// Load the baseline first so a bad path fails before a long sweep.
	var ref *keybench.Report
	if *baseline != "" {
		ref, err = keybench.ReadFile(*baseline)
		if err != nil {
			fatal("loading baseline: %v", err)
		}
		logx.Infow("loaded baseline", logx.Field("path", *baseline), logx.Field("results", len(ref.Results)))
	}

	logx.Infow("sweep starting",
		logx.Field("n", humanize.Comma(int64(*n))),
		logx.Field("sizes", keySizes),
		logx.Field("variants", len(vs)),
		logx.Field("keys", *keys))

	r := keybench.New(
		keybench.WithCount(*n),
		keybench.WithKeySizes(keySizes...),
		keybench.WithVariants(vs...),
		keybench.WithSource(src),
	)
	results := r.Run()

	if *mem {
		showFootprints(r.Config())
	}
	if ref != nil {
		showDeltas(ref.Results, results)
	}

	if *out != "" {
		if err := keybench.WriteFile(*out, keybench.NewReport(*n, results)); err != nil {
			fatal("saving results: %v", err)
		}
		logx.Infow("results saved", logx.Field("path", *out))
	}
}

func keySource(shape string, seed uint64) (keybench.KeySource, error) {
	switch shape {
	case "random":
		if seed == 0 {
			return keybench.NewRandomBytes(nil), nil
		}
		return keybench.NewRandomBytes(keybench.NewSeededRand(seed)), nil
	case "letters":
		return keybench.NewLetters(int64(seed)), nil
	default:
		return nil, fmt.Errorf("unknown key shape %q", shape)
	}
}

func showFootprints(cfg keybench.Config) {
	fmt.Println()
	fmt.Println("=== Retained Heap ===")
	for _, size := range cfg.KeySizes {
		keys := cfg.Source.Keys(cfg.Count, size)
		for _, v := range cfg.Variants {
			b := keybench.Footprint(v, keys)
			perEntry := uint64(0)
			if cfg.Count > 0 {
				perEntry = b / uint64(cfg.Count)
			}
			fmt.Printf("%s, key_size: %d, heap: %s, per_entry: %s\n",
				v.Name, size, humanize.Bytes(b), humanize.Bytes(perEntry))
		}
	}
}

func showDeltas(ref, cur []keybench.Result) {
	fmt.Println()
	fmt.Println("=== Deltas vs Baseline ===")
	deltas := keybench.Compare(ref, cur)
	if len(deltas) == 0 {
		fmt.Println("  (no matching results)")
		return
	}
	for _, d := range deltas {
		fmt.Printf("  %s/%d: %v → %v (%v, %+.1f%%)\n", d.Label, d.KeySize, d.Ref, d.Cur, d.Change(), d.Percent())
	}
}

func parseInts(list string) ([]int, error) {
	var out []int
	for s := range strings.SplitSeq(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("negative size %d", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes in %q", list)
	}
	return out, nil
}

func joinInts(vs []int) string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

func fatal(format string, args ...any) {
	logx.Errorf(format, args...)
	_ = logx.Close()
	os.Exit(1)
}
