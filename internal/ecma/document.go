package ecma

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// Document is one ECMA XML documentation file, mutable in place.
// It is owned by the file-processing unit that loaded it.
type Document struct {
	doc  *etree.Document
	path string
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	d.path = path
	return d, nil
}

// Parse parses document bytes without binding them to a file path.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("no root element")
	}

	// Drop declaration headers and top-level comments so serialization
	// emits the root element only.
	for _, tok := range append([]etree.Token(nil), doc.Child...) {
		if _, ok := tok.(*etree.Element); !ok {
			doc.RemoveChild(tok)
		}
	}
	return &Document{doc: doc}, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Root returns the document's top-level element.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// Bytes serializes the tree under the rewrite contract.
func (d *Document) Bytes() ([]byte, error) {
	reindent(d.doc.Root(), 0)
	out, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	return append(bytes.TrimRight(out, "\n"), '\n'), nil
}

// reindent applies two-space structural indentation under el. An element
// whose children include non-whitespace character data holds prose and is
// left exactly as parsed: inline markup such as <see/> sits mid-sentence,
// and injecting indentation there would rewrite documentation text.
func reindent(el *etree.Element, depth int) {
	hasChildElem := false
	for _, tok := range el.Child {
		switch c := tok.(type) {
		case *etree.CharData:
			if strings.TrimSpace(c.Data) != "" {
				return
			}
		case *etree.Element:
			hasChildElem = true
		}
	}

	// Only whitespace filler here; drop it so the element either
	// collapses or gets fresh indentation.
	for _, tok := range append([]etree.Token(nil), el.Child...) {
		if _, ok := tok.(*etree.CharData); ok {
			el.RemoveChild(tok)
		}
	}
	if !hasChildElem {
		return
	}

	for _, child := range el.ChildElements() {
		reindent(child, depth+1)
	}
	n := len(el.Child)
	for i := 0; i <= n; i++ {
		level := depth + 1
		if i == n {
			level = depth
		}
		el.InsertChildAt(2*i, etree.NewText("\n"+strings.Repeat("  ", level)))
	}
}

// Save rewrites the document to the path it was loaded from. The content
// goes to a temporary file first and replaces the original atomically, so
// a failed write never truncates the existing file.
func (d *Document) Save() error {
	if d.path == "" {
		return fmt.Errorf("document has no path")
	}
	out, err := d.Bytes()
	if err != nil {
		return fmt.Errorf("serialize %s: %w", d.path, err)
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, ".docsweep-*.xml")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(out); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, d.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", d.path, err)
	}
	return nil
}
