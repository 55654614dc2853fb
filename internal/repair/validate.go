package repair

import (
	"context"
	"strings"

	"github.com/beevik/etree"
	"github.com/sahilm/fuzzy"

	"github.com/docsweep/docsweep/internal/ecma"
	"github.com/docsweep/docsweep/internal/log"
)

// maxSuggestions caps the near-miss identifiers attached to prune logs.
const maxSuggestions = 3

// validate checks every DocId declaration in the tree against the
// authoritative set. An unknown type-level identifier signals whole-file
// deletion and stops further pruning; unknown member-level identifiers
// have their enclosing Member removed. After pruning, empty leaf elements
// left behind are swept. Returns the delete signal and the number of
// members pruned.
func (r *Repairer) validate(ctx context.Context, d *ecma.Document) (deleteFile bool, pruned int) {
	root := d.Root()
	if root == nil {
		return false, 0
	}

	l := log.FromContext(ctx)
	for _, decl := range ecma.Declarations(root) {
		if r.set.Contains(decl.Value) {
			continue
		}
		member := ecma.EnclosingMember(decl.El)
		if member == nil {
			// The type itself is unknown; the file's content is moot.
			l.Debug().Str("file", d.Path()).Str("docid", decl.Value).Msg("type not in framework index")
			return true, pruned
		}
		if member.Parent() == nil {
			// Already detached by an earlier prune in this pass.
			continue
		}
		member.Parent().RemoveChild(member)
		pruned++

		evt := l.Debug().Str("file", d.Path()).Str("docid", decl.Value)
		if evt.Enabled() {
			evt = evt.Strs("closest", r.suggest(decl.Value))
		}
		evt.Msg("pruned orphaned member")
	}

	if pruned > 0 {
		sweepEmpty(root)
	}
	return false, pruned
}

// suggest returns the closest known identifiers for an orphaned value.
func (r *Repairer) suggest(value string) []string {
	matches := fuzzy.Find(value, r.values)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}

// sweepEmpty removes, bottom-up, every element under root that has no
// attributes, no child elements, and no text. Prune residue such as an
// emptied Members element disappears here.
func sweepEmpty(root *etree.Element) {
	for _, child := range root.ChildElements() {
		sweepEmpty(child)
		if isEmpty(child) {
			root.RemoveChild(child)
		}
	}
}

func isEmpty(el *etree.Element) bool {
	if len(el.Attr) > 0 {
		return false
	}
	for _, tok := range el.Child {
		switch c := tok.(type) {
		case *etree.Element:
			return false
		case *etree.CharData:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		}
	}
	return true
}
