// Package main provides voicectl, an offline tool for inspecting voice
// samples without a running server.
//
// Usage:
//
//	voicectl [--base64] extract FILE
//	voicectl [--base64] fingerprint FILE
//	voicectl [--base64] compare STORED CAPTURED [--threshold 0.75]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
