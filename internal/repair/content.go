package repair

import (
	"context"
	"strings"

	"github.com/beevik/etree"

	"github.com/docsweep/docsweep/internal/ecma"
	"github.com/docsweep/docsweep/internal/log"
)

// DefaultUnaryKinds are the documentation-body kinds permitted at most one
// instance per Docs node.
var DefaultUnaryKinds = []string{"summary", "remarks", "returns", "value"}

// dedupeContent collapses duplicate documentation-body elements inside
// every Docs node. Unary kinds keep the first instance in document order
// regardless of content; repeatable kinds keep the first instance of each
// distinct fingerprint. Surviving siblings keep their order. Returns the
// number of elements removed.
func (r *Repairer) dedupeContent(ctx context.Context, d *ecma.Document) int {
	l := log.FromContext(ctx)
	removed := 0
	for _, docs := range d.DocsNodes() {
		seenUnary := make(map[string]bool)
		seenFingerprint := make(map[string]bool)
		for _, child := range docs.ChildElements() {
			if r.unary[child.Tag] {
				if seenUnary[child.Tag] {
					docs.RemoveChild(child)
					removed++
					l.Debug().Str("file", d.Path()).Str("kind", child.Tag).Msg("dropped extra unary element")
					continue
				}
				seenUnary[child.Tag] = true
				continue
			}
			fp := fingerprint(child)
			if seenFingerprint[fp] {
				docs.RemoveChild(child)
				removed++
				l.Debug().Str("file", d.Path()).Str("kind", child.Tag).Msg("dropped duplicate content")
				continue
			}
			seenFingerprint[fp] = true
		}
	}
	return removed
}

// fingerprint builds the normalized identity of a documentation-body
// element: tag, attributes, nested markup, and text, with whitespace runs
// collapsed. The tag is included, so elements of different kinds never
// share a fingerprint.
func fingerprint(el *etree.Element) string {
	var sb strings.Builder
	writeCanonical(&sb, el)
	return normalizeText(sb.String())
}

func writeCanonical(sb *strings.Builder, el *etree.Element) {
	sb.WriteByte('<')
	sb.WriteString(el.Tag)
	for _, attr := range el.Attr {
		sb.WriteByte(' ')
		sb.WriteString(attr.FullKey())
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	for _, tok := range el.Child {
		switch c := tok.(type) {
		case *etree.CharData:
			sb.WriteString(c.Data)
		case *etree.Element:
			writeCanonical(sb, c)
		}
	}
	sb.WriteString("</")
	sb.WriteString(el.Tag)
	sb.WriteByte('>')
}

// textContent concatenates all character data under el.
func textContent(el *etree.Element) string {
	var sb strings.Builder
	collectText(&sb, el)
	return sb.String()
}

func collectText(sb *strings.Builder, el *etree.Element) {
	for _, tok := range el.Child {
		switch c := tok.(type) {
		case *etree.CharData:
			sb.WriteString(c.Data)
		case *etree.Element:
			collectText(sb, c)
		}
	}
}

// normalizeText trims the string and collapses every internal whitespace
// run to a single space. Case is preserved; comparison stays
// case-sensitive.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
