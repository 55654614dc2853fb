package repair

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/docsweep/docsweep/internal/ecma"
)

// SurvivorPolicy decides which members of a duplicate group to discard.
// Given the group in document order it returns the losers, leaving exactly
// one survivor.
type SurvivorPolicy interface {
	// Name identifies the policy in config and flags.
	Name() string
	// Losers returns the members to remove. The result is a strict
	// subset of group with len(group)-1 entries.
	Losers(group []*etree.Element) []*etree.Element
}

// PolicyByName resolves a policy name from config or flags.
func PolicyByName(name string) (SurvivorPolicy, error) {
	switch name {
	case "", KeepFirst.Name():
		return KeepFirst, nil
	case KeepRichest.Name():
		return KeepRichest, nil
	default:
		return nil, fmt.Errorf("unknown survivor policy %q (have %q, %q)", name, KeepFirst.Name(), KeepRichest.Name())
	}
}

// KeepFirst keeps the member that appears first in document order.
// Deterministic and cheap; the default.
var KeepFirst SurvivorPolicy = keepFirst{}

type keepFirst struct{}

func (keepFirst) Name() string { return "keep-first" }

func (keepFirst) Losers(group []*etree.Element) []*etree.Element {
	if len(group) < 2 {
		return nil
	}
	return group[1:]
}

// KeepRichest keeps the member with the most documentation text,
// breaking ties in favor of the earliest in document order.
var KeepRichest SurvivorPolicy = keepRichest{}

type keepRichest struct{}

func (keepRichest) Name() string { return "keep-richest" }

func (keepRichest) Losers(group []*etree.Element) []*etree.Element {
	if len(group) < 2 {
		return nil
	}
	survivor := 0
	best := docsRichness(group[0])
	for i := 1; i < len(group); i++ {
		if r := docsRichness(group[i]); r > best {
			survivor, best = i, r
		}
	}
	losers := make([]*etree.Element, 0, len(group)-1)
	for i, m := range group {
		if i != survivor {
			losers = append(losers, m)
		}
	}
	return losers
}

// docsRichness measures how much normalized documentation text a member
// carries.
func docsRichness(member *etree.Element) int {
	docs := member.SelectElement(ecma.TagDocs)
	if docs == nil {
		return 0
	}
	total := 0
	for _, child := range docs.ChildElements() {
		total += len(normalizeText(textContent(child)))
	}
	return total
}
