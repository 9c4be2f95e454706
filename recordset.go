package valuedomain

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
)

// Triplet is one DNS record in the vendor's representation: a lower-cased
// record type, a zone-relative name ("@" denotes the apex) and the
// vendor-formatted content.
type Triplet struct {
	Type    string
	Name    string
	Content string
}

// Identifier derives a stable, content-addressed ID for the triplet: the
// first 7 hex characters of the SHA-256 of its fields. The vendor has no
// per-record IDs and rewrites the whole zone on every update, so a
// content hash is the only addressing scheme that survives round-trips.
// Truncation to 7 characters means two distinct records can in principle
// share an ID; lookups then resolve to the first structural match.
func (t Triplet) Identifier() string {
	sum := sha256.New()
	sum.Write([]byte("type=" + strings.ToLower(t.Type)))
	sum.Write([]byte("name=" + t.Name))
	sum.Write([]byte("data=" + t.Content))
	return hex.EncodeToString(sum.Sum(nil))[:7]
}

// RecordSet is an ordered sequence of triplets, one per zone line. All
// operations are pure: the receiver is never mutated, mutating operations
// return a new slice to be serialized and written back wholesale.
type RecordSet []Triplet

// Filter selects triplets by any combination of derived identifier, type
// (case-insensitive), zone-relative name and exact content. A zero Filter
// matches every triplet.
type Filter struct {
	ID      string
	Type    string
	Name    string
	Content string
}

func (f Filter) fieldsMatch(t Triplet) bool {
	if f.Type != "" && !strings.EqualFold(t.Type, f.Type) {
		return false
	}
	if f.Name != "" && t.Name != f.Name {
		return false
	}
	if f.Content != "" && t.Content != f.Content {
		return false
	}

	return true
}

func (f Filter) matches(t Triplet) bool {
	if f.ID != "" && t.Identifier() != f.ID {
		return false
	}

	return f.fieldsMatch(t)
}

// Find returns the index of the first triplet matching the filter, or -1.
// A matching identifier selects its triplet immediately, overriding the
// other filter fields for that candidate; otherwise all given fields must
// match. An identifier that matches nothing, with no other fields given,
// finds nothing.
func (rs RecordSet) Find(f Filter) int {
	for i, t := range rs {
		if f.ID != "" {
			if t.Identifier() == f.ID {
				return i
			}
			if f.Type == "" && f.Name == "" && f.Content == "" {
				// identifier-only filter, no fallback to broader matching
				continue
			}
		}
		if f.fieldsMatch(t) {
			return i
		}
	}

	return -1
}

// FilterAll returns the triplets matching every given filter field, in
// original order. Unlike Find, the identifier participates as an ordinary
// conjunct: it narrows to at most one record rather than short-circuiting.
func (rs RecordSet) FilterAll(f Filter) RecordSet {
	var result RecordSet
	for _, t := range rs {
		if f.matches(t) {
			result = append(result, t)
		}
	}

	return result
}

// Upsert replaces the first triplet matching the filter with t, preserving
// its position, or appends t when nothing matches.
func (rs RecordSet) Upsert(f Filter, t Triplet) RecordSet {
	if i := rs.Find(f); i >= 0 {
		next := slices.Clone(rs)
		next[i] = t
		return next
	}

	return append(slices.Clone(rs), t)
}

// InsertIfAbsent appends t unless an identical triplet already exists.
// The second return reports whether the set changed.
func (rs RecordSet) InsertIfAbsent(t Triplet) (RecordSet, bool) {
	if slices.Contains(rs, t) {
		return rs, false
	}

	return append(slices.Clone(rs), t), true
}

// DeleteMatching removes every triplet matching the filter and reports how
// many were removed. When nothing matches, the original set is returned.
func (rs RecordSet) DeleteMatching(f Filter) (RecordSet, int) {
	next := make(RecordSet, 0, len(rs))
	for _, t := range rs {
		if !f.matches(t) {
			next = append(next, t)
		}
	}

	removed := len(rs) - len(next)
	if removed == 0 {
		return rs, 0
	}

	return next, removed
}
