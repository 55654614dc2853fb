// Package repair implements the three-stage tree repair applied to each
// documentation file.
//
// Stage order per file:
//
//  1. Member deduplication: members sharing a stable identifier are
//     collapsed to one survivor chosen by the configured policy.
//  2. Content deduplication: inside every Docs node, unary kinds keep the
//     first instance in document order and repeatable kinds keep the first
//     instance of each distinct normalized fingerprint.
//  3. Framework validation: identifier declarations absent from the
//     authoritative set are pruned; an unknown type-level identifier
//     deletes the whole file.
//
// Each file's outcome is an explicit value (unchanged, rewritten, deleted,
// failed) rather than an error unwound across file boundaries. Repairing
// a file the pipeline already repaired is a no-op.
//
// # Normalization Policy
//
// Repeatable-kind fingerprints trim leading and trailing whitespace and
// collapse every internal whitespace run to a single space; comparison is
// case-sensitive. Attributes and nested markup are part of the
// fingerprint, so two param elements for different parameters never
// collapse even when their prose matches.
package repair
