// Command testdoc generates markdown documentation from the Scenario and
// Expected doc comments on test functions.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	root := flag.String("root", ".", "module root to scan for test files")
	out := flag.String("out", "docs/testing.md", "output markdown file")
	flag.Parse()

	absRoot, err := filepath.Abs(*root)
	if err != nil {
		fatalf("resolve root: %v", err)
	}

	packages, err := ParseTestFiles(absRoot)
	if err != nil {
		fatalf("parse test files: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fatalf("create output directory: %v", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		fatalf("create %s: %v", *out, err)
	}
	defer f.Close()

	if err := RenderMarkdown(f, packages); err != nil {
		fatalf("render markdown: %v", err)
	}
	fmt.Printf("wrote %s (%d packages)\n", *out, len(packages))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "testdoc: "+format+"\n", args...)
	os.Exit(1)
}
