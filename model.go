package valuedomain

import (
	"time"

	"github.com/libdns/libdns"
)

// ZoneSnapshot is the whole-domain state as held by the vendor. It lives for
// a single operation: fetched at the start, discarded (or written back
// wholesale) at the end. Nothing is cached across calls.
type ZoneSnapshot struct {
	DomainID string
	Domain   string
	// TTL in seconds, applied to the zone as a whole.
	TTL int
	// NSType is the vendor's nameserver-group setting.
	NSType string
	// Records preserves the vendor's line order.
	Records RecordSet
}

// Record is a single DNS record as exposed to callers. Its ID is derived
// from the record contents, not stored by the vendor: editing any field of
// the underlying triplet yields a different ID.
type Record struct {
	ID      string
	Type    string
	Name    string
	TTL     time.Duration
	Content string
}

func (r Record) RR() libdns.RR {
	return libdns.RR{
		Name: r.Name,
		TTL:  r.TTL,
		Type: r.Type,
		Data: r.Content,
	}
}
