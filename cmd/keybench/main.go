// Package main compares insert and lookup latency of Go's builtin map and an
// FNV-1a keyed hash map over key sizes from 1 to 1024 bytes.
package main

import "github.com/codeGROOVE-dev/keybench"

func main() {
	keybench.New().Run()
}
