package frameworks

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

// Set is the immutable universe of valid stable identifiers.
// Membership tests are case-insensitive.
type Set struct {
	// folded identifier -> first original spelling seen
	members map[string]string
}

// NewSet builds a Set directly from identifiers, bypassing index scanning.
func NewSet(ids ...string) *Set {
	s := &Set{members: make(map[string]string, len(ids))}
	for _, id := range ids {
		folded := strings.ToLower(id)
		if _, seen := s.members[folded]; !seen {
			s.members[folded] = id
		}
	}
	return s
}

// Build scans dir recursively for index documents and collects every Id
// attribute value into a Set. Any unreadable or malformed document fails
// the build.
func Build(dir string) (*Set, error) {
	s := &Set{members: make(map[string]string)}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}

		doc := etree.NewDocument()
		if err := doc.ReadFromFile(path); err != nil {
			return fmt.Errorf("index document %s: %w", path, err)
		}
		if root := doc.Root(); root != nil {
			s.collect(root)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("build identifier set from %s: %w", dir, err)
	}
	return s, nil
}

func (s *Set) collect(el *etree.Element) {
	if attr := el.SelectAttr("Id"); attr != nil {
		folded := strings.ToLower(attr.Value)
		if _, seen := s.members[folded]; !seen {
			s.members[folded] = attr.Value
		}
	}
	for _, child := range el.ChildElements() {
		s.collect(child)
	}
}

// Contains reports whether id is a known identifier, ignoring case.
func (s *Set) Contains(id string) bool {
	_, ok := s.members[strings.ToLower(id)]
	return ok
}

// Len returns the number of distinct identifiers.
func (s *Set) Len() int {
	return len(s.members)
}

// Values returns the known identifiers in their original spelling,
// sorted for deterministic iteration.
func (s *Set) Values() []string {
	vals := make([]string, 0, len(s.members))
	for _, v := range s.members {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}
