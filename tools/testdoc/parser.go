package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// TestFunc is one parsed test function.
type TestFunc struct {
	Name string // e.g. "TestProcessFileRewrite"
	Doc  string // doc comment text, ideally in Scenario/Expected form
}

// TestFile groups the test functions of one _test.go file.
type TestFile struct {
	Name  string
	Path  string
	Tests []TestFunc
}

// TestPackage groups the test files under one directory.
type TestPackage struct {
	Name  string // package path relative to the module root
	Files []TestFile
}

// ParseTestFiles walks the module tree and parses every _test.go file.
// Hidden, vendor, and underscore-prefixed directories (which the Go
// toolchain ignores) are skipped.
func ParseTestFiles(root string) ([]TestPackage, error) {
	byPath := make(map[string]*TestPackage)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}

		file, err := parseTestFile(path)
		if err != nil {
			return err
		}
		if len(file.Tests) == 0 {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil || rel == "." {
			rel = filepath.Base(root)
		}
		pkg, ok := byPath[rel]
		if !ok {
			pkg = &TestPackage{Name: rel}
			byPath[rel] = pkg
		}
		pkg.Files = append(pkg.Files, *file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	packages := make([]TestPackage, 0, len(byPath))
	for _, pkg := range byPath {
		sort.Slice(pkg.Files, func(i, j int) bool {
			return pkg.Files[i].Name < pkg.Files[j].Name
		})
		packages = append(packages, *pkg)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Name < packages[j].Name
	})
	return packages, nil
}

func parseTestFile(path string) (*TestFile, error) {
	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	file := &TestFile{Name: filepath.Base(path), Path: path}
	for _, decl := range parsed.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !strings.HasPrefix(fn.Name.Name, "Test") || !takesTestingT(fn) {
			continue
		}
		tf := TestFunc{Name: fn.Name.Name}
		if fn.Doc != nil {
			tf.Doc = strings.TrimSpace(fn.Doc.Text())
		}
		file.Tests = append(file.Tests, tf)
	}
	return file, nil
}

// takesTestingT reports whether fn takes exactly one *testing.T, which
// separates tests from same-prefixed helpers.
func takesTestingT(fn *ast.FuncDecl) bool {
	if fn.Type.Params == nil || len(fn.Type.Params.List) != 1 {
		return false
	}
	star, ok := fn.Type.Params.List[0].Type.(*ast.StarExpr)
	if !ok {
		return false
	}
	sel, ok := star.X.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "testing" && sel.Sel.Name == "T"
}
