package repair

import (
	"context"

	"github.com/beevik/etree"

	"github.com/docsweep/docsweep/internal/ecma"
	"github.com/docsweep/docsweep/internal/log"
)

// dedupeMembers collapses members sharing a stable identifier, leaving the
// policy's survivor per group. Members without a DocId are never merged.
// Returns the number of members removed.
func (r *Repairer) dedupeMembers(ctx context.Context, d *ecma.Document) int {
	groups := make(map[string][]*etree.Element)
	var order []string
	for _, m := range d.MemberList() {
		id, ok := ecma.MemberDocID(m)
		if !ok {
			continue
		}
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], m)
	}

	l := log.FromContext(ctx)
	removed := 0
	for _, id := range order {
		group := groups[id]
		if len(group) < 2 {
			continue
		}
		// Losers are removed by live element handle, once per group.
		for _, loser := range r.policy.Losers(group) {
			if p := loser.Parent(); p != nil {
				p.RemoveChild(loser)
				removed++
			}
		}
		l.Debug().Str("file", d.Path()).Str("docid", id).Int("duplicates", len(group)-1).Msg("collapsed duplicate members")
	}
	return removed
}
