// Package discovery enumerates the documentation files a repair run
// processes.
//
// The corpus root holds the FrameworksIndex subtree (the authoritative
// identifier index) next to one or more namespace subtrees of per-type
// XML files. Discovery yields only the per-type files; the index subtree
// and hidden directories are skipped.
package discovery

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// Candidates returns the paths of all documentation files under root, in
// walk order. indexDir is the name of the authoritative-index subtree
// directly under root and is excluded from the results.
func Candidates(root, indexDir string) ([]string, error) {
	indexPath := filepath.Join(root, indexDir)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == indexPath || (strings.HasPrefix(d.Name(), ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".xml") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover documentation files under %s: %w", root, err)
	}
	return files, nil
}
