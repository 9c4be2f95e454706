//go:generate mockgen -destination mocks.go -package valuedomain . API,Client
package valuedomain

import (
	"context"
	"encoding/json"
)

// DNSResource is the vendor's representation of a domain's DNS
// configuration, as returned by GET /domains/{domain}/dns.
type DNSResource struct {
	DomainID   json.Number `json:"domainid"`
	DomainName string      `json:"domainname"`
	TTL        json.Number `json:"ttl"`
	NSType     string      `json:"ns_type"`
	Records    string      `json:"records"`
}

// DNSUpdate is the full-replace write body for PUT /domains/{domain}/dns.
// The vendor has no partial update: Records always carries the entire zone.
type DNSUpdate struct {
	NSType  string `json:"ns_type"`
	Records string `json:"records"`
	TTL     int    `json:"ttl"`
}

// API is the raw Value-Domain DNS endpoint pair.
type API interface {
	GetDNS(ctx context.Context, domain string) (*DNSResource, error)
	PutDNS(ctx context.Context, domain string, update DNSUpdate) error
}

// Client translates between the vendor's zone-blob representation and
// structured zone snapshots.
type Client interface {
	FetchZone(ctx context.Context, domain string) (*ZoneSnapshot, error)
	StoreZone(ctx context.Context, domain string, snapshot *ZoneSnapshot) error
}
