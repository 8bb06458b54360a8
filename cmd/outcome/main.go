// Package main provides the outcome command: an interactive demo host for the
// outcome overlays and a renderer for single overlay frames.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
