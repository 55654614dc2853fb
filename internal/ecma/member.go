package ecma

import (
	"strings"

	"github.com/beevik/etree"
)

// Element and attribute names of the ECMA documentation shape.
const (
	TagMembers = "Members"
	TagMember  = "Member"
	TagDocs    = "Docs"

	attrLanguage  = "Language"
	attrValue     = "Value"
	docIDLanguage = "DocId"
)

// Declaration is a stable-identifier declaration found in a tree: an
// element carrying Language="DocId" and a Value attribute.
type Declaration struct {
	El    *etree.Element
	Value string
}

// DocIDOf returns the DocId value declared on el, if any. The Language
// attribute value is compared case-insensitively.
func DocIDOf(el *etree.Element) (string, bool) {
	lang := el.SelectAttr(attrLanguage)
	if lang == nil || !strings.EqualFold(lang.Value, docIDLanguage) {
		return "", false
	}
	val := el.SelectAttr(attrValue)
	if val == nil {
		return "", false
	}
	return val.Value, true
}

// Declarations collects every DocId declaration in the subtree rooted at
// el, in document order.
func Declarations(el *etree.Element) []Declaration {
	var decls []Declaration
	if v, ok := DocIDOf(el); ok {
		decls = append(decls, Declaration{El: el, Value: v})
	}
	for _, child := range el.ChildElements() {
		decls = append(decls, Declarations(child)...)
	}
	return decls
}

// MemberDocID returns the stable identifier of a Member element, read
// from its MemberSignature child tagged Language="DocId". Members without
// such a signature report absence.
func MemberDocID(member *etree.Element) (string, bool) {
	for _, child := range member.ChildElements() {
		if v, ok := DocIDOf(child); ok {
			return v, true
		}
	}
	return "", false
}

// TypeDocID returns the type-level stable identifier declared on a
// signature child of the document root.
func (d *Document) TypeDocID() (string, bool) {
	root := d.Root()
	if root == nil {
		return "", false
	}
	for _, child := range root.ChildElements() {
		if child.Tag == TagMembers {
			continue
		}
		if v, ok := DocIDOf(child); ok {
			return v, true
		}
	}
	return "", false
}

// Members returns the root's Members element, or nil when absent.
func (d *Document) Members() *etree.Element {
	root := d.Root()
	if root == nil {
		return nil
	}
	return root.SelectElement(TagMembers)
}

// MemberList returns the Member children of the Members element in
// document order.
func (d *Document) MemberList() []*etree.Element {
	members := d.Members()
	if members == nil {
		return nil
	}
	return members.SelectElements(TagMember)
}

// DocsNodes returns every Docs element in the tree, type-level and
// member-level, in document order.
func (d *Document) DocsNodes() []*etree.Element {
	root := d.Root()
	if root == nil {
		return nil
	}
	return collectDocs(root)
}

func collectDocs(el *etree.Element) []*etree.Element {
	var nodes []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == TagDocs {
			nodes = append(nodes, child)
			continue
		}
		nodes = append(nodes, collectDocs(child)...)
	}
	return nodes
}

// EnclosingMember walks up from el to the nearest enclosing Member
// element. Returns nil when el belongs to the type level.
func EnclosingMember(el *etree.Element) *etree.Element {
	for p := el.Parent(); p != nil; p = p.Parent() {
		if p.Tag == TagMember {
			return p
		}
	}
	return nil
}
